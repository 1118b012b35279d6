package render

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-gota/gota/dataframe"

	"github.com/AnkushinDaniil/waveguide/waveguide"
)

func compute(t *testing.T, spec waveguide.Spec, resolution int) *waveguide.Result {
	t.Helper()
	res, err := waveguide.Compute(spec, resolution)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	return res
}

func TestParameterFrame(t *testing.T) {
	res := compute(t, waveguide.NewRectangular(1, 0, 0.1, 0.05), 11)
	df := ParameterFrame(res.Params)
	if df.Err != nil {
		t.Fatalf("Unexpected error: %v", df.Err)
	}
	if r, c := df.Dims(); r != 7 || c != 3 {
		t.Fatalf("Expected 7x3 table, got %dx%d", r, c)
	}
	want := []string{"Kc", "Fc", "Beta-g", "Vg", "Zin", "Zg", "lambda-g"}
	for i, name := range df.Col("Parameter").Records() {
		if name != want[i] {
			t.Errorf("Expected row %d to be %s, got %s", i, want[i], name)
		}
	}
}

func TestCSV(t *testing.T) {
	res := compute(t, waveguide.NewCircular(1, 1, waveguide.DisplayLength), 11)

	var buf bytes.Buffer
	if err := CSV(&buf, res); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	df := dataframe.ReadCSV(strings.NewReader(buf.String()))
	if df.Err != nil {
		t.Fatalf("Unexpected error reading back: %v", df.Err)
	}
	if df.Nrow() != 7 {
		t.Errorf("Expected 7 rows, got %d", df.Nrow())
	}
	if units := df.Col("Unit").Records(); units[0] != "1/m" || units[1] != "Hz" {
		t.Errorf("Expected units 1/m and Hz first, got %v", units[:2])
	}
}

func TestFieldsCSV(t *testing.T) {
	tests := []struct {
		name   string
		spec   waveguide.Spec
		header string
	}{
		{"Rectangular", waveguide.NewRectangular(1, 1, 0.1, 0.05), "x,y,Ex,Ey,Hx,Hy"},
		{"Circular", waveguide.NewCircular(0, 1, 0.02), "theta,r,Etheta,Er,Htheta,Hr"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := compute(t, tt.spec, 6)
			var buf bytes.Buffer
			if err := FieldsCSV(&buf, res); err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
			if lines[0] != tt.header {
				t.Errorf("Expected header %q, got %q", tt.header, lines[0])
			}
			if len(lines) != 1+6*6 {
				t.Errorf("Expected %d lines, got %d", 1+6*6, len(lines))
			}
		})
	}
}

func TestHTML(t *testing.T) {
	res := compute(t, waveguide.NewCircular(1, 1, waveguide.DisplayLength), 21)

	var buf bytes.Buffer
	if err := HTML(&buf, res); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"echarts", "E field", "H field", "2.3 cm"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected page to contain %q", want)
		}
	}
}

func TestPNG(t *testing.T) {
	for _, spec := range []waveguide.Spec{
		waveguide.NewRectangular(2, 1, 0.1, 0.05),
		waveguide.NewCircular(1, 1, waveguide.DisplayLength),
	} {
		res := compute(t, spec, waveguide.DefaultResolution)
		base := filepath.Join(t.TempDir(), "field")
		paths, err := PNG(base, res)
		if err != nil {
			t.Fatalf("%v: unexpected error: %v", spec, err)
		}
		if len(paths) != 2 {
			t.Fatalf("Expected 2 files, got %d", len(paths))
		}
		for _, path := range paths {
			info, err := os.Stat(path)
			if err != nil {
				t.Fatalf("Expected %s to exist: %v", path, err)
			}
			if info.Size() == 0 {
				t.Errorf("Expected %s to be non-empty", path)
			}
		}
	}
}

func TestPNGRemovesPartialOutput(t *testing.T) {
	res := compute(t, waveguide.NewRectangular(1, 0, 0.1, 0.05), 11)
	base := filepath.Join(t.TempDir(), "field")
	// A directory in place of the H plot makes its save fail after E is written.
	if err := os.Mkdir(base+"_H.png", 0o755); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	paths, err := PNG(base, res)
	if err == nil {
		t.Fatal("Expected error")
	}
	if paths != nil {
		t.Errorf("Expected no paths, got %v", paths)
	}
	if _, err := os.Stat(base + "_E.png"); !os.IsNotExist(err) {
		t.Errorf("Expected E plot to be removed, got %v", err)
	}
}
