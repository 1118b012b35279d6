package main

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"

	"github.com/AnkushinDaniil/waveguide/entity/format"
	"github.com/AnkushinDaniil/waveguide/entity/shape"
	"github.com/AnkushinDaniil/waveguide/waveguide"
)

func TestRootCmd(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "te11.csv")

	cmd := newRootCmd()
	cmd.SetArgs([]string{"--shape", "circular", "--n", "1", "--p", "1", "--format", "csv", "-o", out, "--resolution", "11"})
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	for _, name := range []string{"te11.csv", "te11_fields.csv"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("Expected %s to be written: %v", name, err)
		}
	}
}

func TestRootCmdInvalidMode(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"--m", "0", "--n", "0", "-o", filepath.Join(t.TempDir(), "out.html")})
	cmd.SetErr(io.Discard)
	if err := cmd.ExecuteContext(context.Background()); !errors.Is(err, waveguide.ErrInvalidModeCombination) {
		t.Errorf("Expected ErrInvalidModeCombination, got %v", err)
	}
}

func TestParamsFromConfig(t *testing.T) {
	t.Setenv("WAVEGUIDE_SHAPE", "circ")
	t.Setenv("WAVEGUIDE_FORMAT", "png")
	t.Setenv("WAVEGUIDE_FREQ", "12.5")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	v := bindFlags(flags)
	if err := flags.Parse([]string{"--n", "2", "--unit", "mm"}); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	p, err := paramsFromConfig(v)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if p.Shape != shape.Circular {
		t.Errorf("Expected circular shape, got %v", p.Shape)
	}
	if p.Format != format.Png {
		t.Errorf("Expected png format, got %v", p.Format)
	}
	if p.Frequency != 12.5 {
		t.Errorf("Expected 12.5 GHz, got %g", p.Frequency)
	}
	if p.M != 1 || p.N != 2 || p.P != 1 {
		t.Errorf("Expected modes 1, 2 and 1, got %d, %d and %d", p.M, p.N, p.P)
	}
	if p.Unit != "mm" || p.Resolution != waveguide.DefaultResolution {
		t.Errorf("Expected mm at default resolution, got %s at %d", p.Unit, p.Resolution)
	}
}

func TestRootCmdCircularRadialOrder(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want error
	}{
		{"p=0", []string{"--n", "1", "--p", "0"}, waveguide.ErrInvalidModeCombination},
		{"m does not set p", []string{"--m", "0", "--n", "1"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"--shape", "circular", "--resolution", "5", "-o", filepath.Join(t.TempDir(), "out.html")}, tt.args...)
			cmd := newRootCmd()
			cmd.SetArgs(args)
			cmd.SetErr(io.Discard)
			err := cmd.ExecuteContext(context.Background())
			if tt.want == nil {
				if err != nil {
					t.Errorf("Expected no error, got %v", err)
				}
				return
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("Expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestParamsFromConfigRejectsUnknownValues(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"Shape", []string{"--shape", "elliptic"}},
		{"Format", []string{"--format", "svg"}},
		{"Unit", []string{"--unit", "inch"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
			v := bindFlags(flags)
			if err := flags.Parse(tt.args); err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if _, err := paramsFromConfig(v); err == nil {
				t.Error("Expected error")
			}
		})
	}
}
