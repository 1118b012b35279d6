package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/AnkushinDaniil/waveguide/app"
	"github.com/AnkushinDaniil/waveguide/entity/format"
	"github.com/AnkushinDaniil/waveguide/entity/parameters"
	"github.com/AnkushinDaniil/waveguide/entity/shape"
	"github.com/AnkushinDaniil/waveguide/waveguide"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		if errors.Is(err, waveguide.ErrInvalidModeCombination) {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
		log.Fatal(err)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "waveguide",
		Short: "TE mode fields and parameters of rectangular and circular waveguides",
		Long: `Compute the transverse E and H fields of a TE mode together with its
cutoff wavenumber, cutoff frequency, phase constant, group velocity,
impedances and guided wavelength.

Rectangular guides take mode indices m, n and dimensions a, b.
Circular guides take the azimuthal order n, the radial order p and
the radius r.

Every flag can also be set through a WAVEGUIDE_<FLAG> environment
variable or a config file passed with --config.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	v := bindFlags(cmd.Flags())

	cmd.PersistentPreRunE = func(*cobra.Command, []string) error {
		return loadConfig(v)
	}
	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		params, err := paramsFromConfig(v)
		if err != nil {
			return err
		}
		return app.New(params).Run(cmd.Context())
	}
	return cmd
}

// bindFlags declares the command line flags on flags and returns a viper
// instance that resolves them against the environment and config file.
func bindFlags(flags *pflag.FlagSet) *viper.Viper {
	flags.String("config", "", "config file (yaml, json or toml)")
	flags.StringP("shape", "s", "rectangular", "waveguide shape: rectangular or circular")
	flags.Int("m", 1, "rectangular mode index along a")
	flags.Int("n", 0, "rectangular mode index along b, or circular azimuthal order")
	flags.Int("p", 1, "circular radial order")
	flags.Float64("a", 10, "rectangular width")
	flags.Float64("b", 5, "rectangular height")
	flags.Float64("r", 2.3, "circular radius")
	flags.StringP("unit", "u", "cm", "length unit: m, cm or mm")
	flags.Float64P("freq", "f", waveguide.DefaultFrequency/1e9, "operating frequency, GHz")
	flags.Int("resolution", waveguide.DefaultResolution, "samples along each grid axis")
	flags.String("format", "html", "output format: html, png or csv")
	flags.StringP("output", "o", "waveguide.html", "output file")
	flags.BoolP("verbose", "v", false, "verbose logging")

	v := viper.New()
	if err := v.BindPFlags(flags); err != nil {
		panic(err)
	}
	v.SetEnvPrefix("waveguide")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

func loadConfig(v *viper.Viper) error {
	if v.GetBool("verbose") {
		log.SetLevel(log.DebugLevel)
	}
	path := v.GetString("config")
	if path == "" {
		return nil
	}
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config: %w", err)
	}
	log.WithField("name", v.ConfigFileUsed()).Debug("Config loaded")
	if v.GetBool("verbose") {
		log.SetLevel(log.DebugLevel)
	}
	return nil
}

func paramsFromConfig(v *viper.Viper) (*parameters.Parameters, error) {
	s, err := shape.UnmarshalText(v.GetString("shape"))
	if err != nil {
		return nil, err
	}
	f, err := format.UnmarshalText(v.GetString("format"))
	if err != nil {
		return nil, err
	}
	if _, err := parameters.UnitScale(v.GetString("unit")); err != nil {
		return nil, err
	}
	return &parameters.Parameters{
		Shape:      s,
		Format:     f,
		M:          v.GetInt("m"),
		N:          v.GetInt("n"),
		P:          v.GetInt("p"),
		A:          v.GetFloat64("a"),
		B:          v.GetFloat64("b"),
		R:          v.GetFloat64("r"),
		Unit:       v.GetString("unit"),
		Frequency:  v.GetFloat64("freq"),
		Resolution: v.GetInt("resolution"),
		Output:     v.GetString("output"),
	}, nil
}
