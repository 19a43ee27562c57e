// Package demo runs the interpolations listed in the configuration and a short
// tour of the vector operations, printing each result.
package demo

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/zeusync/vectorlib/internal/config"
	"github.com/zeusync/vectorlib/internal/core/observability/log"
	"github.com/zeusync/vectorlib/internal/verbose"
	"github.com/zeusync/vectorlib/pkg/vector"
)

type App struct {
	cfg    *config.Config
	logger log.Log
}

func New(cfg *config.Config, logger log.Log) *App {
	return &App{
		cfg:    cfg,
		logger: logger.With(log.String("component", "demo")),
	}
}

// Close flushes buffered log entries.
func (a *App) Close() error {
	return a.logger.Sync()
}

// Run prints the result of every configured lerp step to w, followed by the
// operation tour.
func (a *App) Run(w io.Writer) error {
	if err := a.cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	for i, step := range a.cfg.Demo.Lerps {
		result := a.lerp(step)
		if _, err := fmt.Fprintln(w, result); err != nil {
			return err
		}
		a.logger.Debug("lerp",
			log.Int("step", i),
			log.Object("from", step.From),
			log.Float64("factor", step.Factor),
			log.Bool("reciprocal", step.Reciprocal),
			log.Object("result", result),
		)
	}

	return a.tour(w)
}

func (a *App) lerp(step config.LerpStep) vector.Vector2d[float64] {
	wrapped := verbose.New(vector.Lerp(step.From, step.To, step.Factor, step.Reciprocal), a.cfg.Verbose, a.logger)
	defer wrapped.Close()

	wrapped.DisplayIfVerbose()
	result, _ := wrapped.Vector()
	return result
}

func (a *App) tour(w io.Writer) error {
	v := vector.New(3.0, 4.0)
	u := vector.New(2.0, 1.0)

	lines := []string{
		fmt.Sprintf("%s + %s = %s", v, u, v.Add(u)),
		fmt.Sprintf("%s - %s = %s", v, u, v.Sub(u)),
		fmt.Sprintf("%s * %s = %s", v, u, v.Mul(u)),
		fmt.Sprintf("|%s| = %.3f", v, vector.Magnitude(v)),
		fmt.Sprintf("distance(%s, %s) = %.3f", v, u, vector.Distance(v, u)),
		fmt.Sprintf("%s . %s = %.3f", v, u, vector.Dot(v, u)),
		fmt.Sprintf("rotate(%s, pi/2) = %s", v, vector.Rotate(v, math.Pi/2)),
		fmt.Sprintf("round(%s) = %s", vector.New(3.4, -2.8), vector.Round(vector.New(3.4, -2.8))),
	}

	lines = append(lines, a.fallible("normalize", func() (vector.Vector2d[float64], error) {
		return vector.Normalize(v)
	}))
	lines = append(lines, a.fallible("projection", func() (vector.Vector2d[float64], error) {
		return vector.ProjectionOnto(v, u)
	}))
	lines = append(lines, a.fallible("orthogonal", func() (vector.Vector2d[float64], error) {
		return vector.OrthogonalOn(v, u)
	}))
	lines = append(lines, a.fallible("divide", func() (vector.Vector2d[float64], error) {
		return v.Div(u)
	}))
	lines = append(lines, a.fallible("divide by zero", func() (vector.Vector2d[float64], error) {
		return v.DivScalar(0)
	}))
	lines = append(lines, a.fallible("normalize zero", func() (vector.Vector2d[float64], error) {
		return vector.Normalize(vector.Zero[float64]())
	}))

	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func (a *App) fallible(name string, op func() (vector.Vector2d[float64], error)) string {
	result, err := op()
	switch {
	case errors.Is(err, vector.ErrDivisionByZero), errors.Is(err, vector.ErrZeroLengthVector):
		a.logger.Warn("operation rejected", log.String("operation", name), log.Error(err))
		return fmt.Sprintf("%s: error: %v", name, err)
	case err != nil:
		a.logger.Error("operation failed", log.String("operation", name), log.Error(err))
		return fmt.Sprintf("%s: error: %v", name, err)
	default:
		return fmt.Sprintf("%s = %s", name, result)
	}
}
