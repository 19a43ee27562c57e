// Package verbose provides a decorator around a vector that reports its
// lifecycle through the structured logger.
package verbose

import (
	"runtime"

	"github.com/google/uuid"

	"github.com/zeusync/vectorlib/internal/core/observability/log"
	"github.com/zeusync/vectorlib/pkg/vector"
)

// Vector2d owns an optional vector. When verbose is set it logs the vector on
// display, on IntoInner, and on Close if the vector was never taken.
//
// Use it with defer:
//
//	w := verbose.New(v, true, logger)
//	defer w.Close()
type Vector2d[T vector.Numeric] struct {
	id      string
	vector  *vector.Vector2d[T]
	verbose bool
	logger  log.Log
}

func New[T vector.Numeric](v vector.Vector2d[T], verbose bool, logger log.Log) *Vector2d[T] {
	if logger == nil {
		logger = log.Provide()
	}
	id := uuid.NewString()
	return &Vector2d[T]{
		id:      id,
		vector:  &v,
		verbose: verbose,
		logger:  logger.With(log.String("wrapper_id", id)),
	}
}

func (w *Vector2d[T]) ID() string { return w.id }

// Vector returns the held vector without taking it.
func (w *Vector2d[T]) Vector() (vector.Vector2d[T], bool) {
	if w.vector == nil {
		return vector.Vector2d[T]{}, false
	}
	return *w.vector, true
}

// DisplayIfVerbose logs the held vector when the verbose flag is set.
func (w *Vector2d[T]) DisplayIfVerbose() {
	if !w.verbose || w.vector == nil {
		return
	}
	w.logger.Info("vector", log.Object("vector", *w.vector))
}

// IntoInner takes the vector out of the wrapper. Later calls, and Close,
// see an empty wrapper.
func (w *Vector2d[T]) IntoInner() (vector.Vector2d[T], bool) {
	if w.vector == nil {
		return vector.Vector2d[T]{}, false
	}
	v := *w.vector
	w.vector = nil
	if w.verbose {
		w.logger.Info("vector taken", log.Object("vector", v))
	}
	return v, true
}

// Close releases the wrapper. If verbose is set and the vector was not taken,
// it logs the dropped vector and the function that released it. Close is
// idempotent and always returns nil.
func (w *Vector2d[T]) Close() error {
	if w.vector == nil {
		return nil
	}
	v := *w.vector
	w.vector = nil
	if !w.verbose {
		return nil
	}

	caller := "unknown"
	if pc, _, _, ok := runtime.Caller(1); ok {
		if fn := runtime.FuncForPC(pc); fn != nil {
			caller = fn.Name()
		}
	}
	w.logger.Info("vector dropped",
		log.Object("vector", v),
		log.String("last_call", caller),
	)
	return nil
}

func (w *Vector2d[T]) String() string {
	s := ""
	if w.vector != nil {
		s = "Vector2d: " + w.vector.String()
	}
	if w.verbose {
		return s + " - Verbose: true"
	}
	return s + " - Verbose: false"
}
