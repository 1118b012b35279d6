package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/AnkushinDaniil/waveguide/entity/format"
	"github.com/AnkushinDaniil/waveguide/entity/parameters"
	"github.com/AnkushinDaniil/waveguide/render"
	"github.com/AnkushinDaniil/waveguide/waveguide"
)

type App struct {
	Params *parameters.Parameters
}

func New(params *parameters.Parameters) *App {
	return &App{Params: params}
}

func (a *App) Run(ctx context.Context) error {
	appTime := time.Now()
	defer func() {
		log.WithField("time", time.Since(appTime)).Debug("App finished")
	}()
	log.WithFields(log.Fields{
		"shape":      a.Params.Shape,
		"m":          a.Params.M,
		"n":          a.Params.N,
		"p":          a.Params.P,
		"a":          a.Params.A,
		"b":          a.Params.B,
		"r":          a.Params.R,
		"unit":       a.Params.Unit,
		"frequency":  a.Params.Frequency,
		"resolution": a.Params.Resolution,
		"format":     a.Params.Format,
		"output":     a.Params.Output,
	}).Debug("App started")

	res, err := a.Compute()
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	return a.write(res)
}

// Compute builds the spec from the parameters and evaluates it.
func (a *App) Compute() (*waveguide.Result, error) {
	spec, err := a.Params.Spec()
	if err != nil {
		return nil, fmt.Errorf("failed to build waveguide spec: %w", err)
	}

	computeTime := time.Now()
	res, err := waveguide.Compute(spec, a.Params.Resolution)
	if err != nil {
		return nil, err
	}
	fields := log.Fields{
		"spec":        spec.String(),
		"propagating": res.Params.Propagating,
		"time":        time.Since(computeTime),
	}
	for _, p := range res.Params.Params {
		fields[p.Name] = p.Value
	}
	log.WithFields(fields).Info("Mode computed")
	return res, nil
}

func (a *App) write(res *waveguide.Result) error {
	renderTime := time.Now()
	base := strings.TrimSuffix(a.Params.Output, filepath.Ext(a.Params.Output))

	switch a.Params.Format {
	case format.Png:
		paths, err := render.PNG(base, res)
		if err != nil {
			return fmt.Errorf("failed to render plots: %w", err)
		}
		log.WithFields(log.Fields{
			"files": paths,
			"time":  time.Since(renderTime),
		}).Info("Plots rendered and saved")
		return nil
	case format.Csv:
		if err := writeFile(base+format.Csv.Ext(), res, render.CSV); err != nil {
			return err
		}
		if err := writeFile(base+"_fields"+format.Csv.Ext(), res, render.FieldsCSV); err != nil {
			return err
		}
	default:
		if err := writeFile(base+format.HTML.Ext(), res, render.HTML); err != nil {
			return err
		}
	}
	log.WithField("time", time.Since(renderTime)).Info("Output rendered and saved")
	return nil
}

func writeFile(path string, res *waveguide.Result, fn func(io.Writer, *waveguide.Result) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	if err := fn(f, res); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	log.WithField("name", path).Debug("File written")
	return nil
}
