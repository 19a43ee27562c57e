package log

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type point struct{ x, y float64 }

func (p point) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddFloat64("x", p.x)
	enc.AddFloat64("y", p.y)
	return nil
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    Level
		wantErr bool
	}{
		{"debug", LevelDebug, false},
		{"INFO", LevelInfo, false},
		{"", LevelInfo, false},
		{" warn ", LevelWarn, false},
		{"warning", LevelWarn, false},
		{"error", LevelError, false},
		{"verbose", LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
			require.Equal(t, got, fromZapLevel(toZapLevel(got)))
		})
	}
}

func TestLogger_Levels(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := NewWithCore(core, LevelInfo)

	l.Debug("hidden")
	l.Info("shown")
	require.Equal(t, 1, logs.Len())

	l.SetLevel(LevelDebug)
	require.Equal(t, LevelDebug, l.GetLevel())
	l.Debug("now shown")
	require.Equal(t, 2, logs.Len())

	l.SetLevel(LevelError)
	l.Warn("hidden")
	l.Error("shown")
	require.Equal(t, 3, logs.Len())
	require.Equal(t, zap.ErrorLevel, logs.All()[2].Level)
}

func TestLogger_Fields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := NewWithCore(core, LevelDebug).With(String("component", "test"))

	l.Info("fields",
		Bool("b", true),
		Float64("f", 1.5),
		Int("i", 7),
		Object("p", point{x: 1, y: 2}),
		Error(errors.New("boom")),
		Any("any", "raw"),
	)

	entries := logs.All()
	require.Len(t, entries, 1)
	ctx := entries[0].ContextMap()
	require.Equal(t, "test", ctx["component"])
	require.Equal(t, true, ctx["b"])
	require.Equal(t, 1.5, ctx["f"])
	require.Equal(t, int64(7), ctx["i"])
	require.Equal(t, map[string]any{"x": 1.0, "y": 2.0}, ctx["p"])
	require.Equal(t, "boom", ctx["error"])
	require.Equal(t, "raw", ctx["any"])
}

func TestNew(t *testing.T) {
	l, err := New(LevelWarn, WithEncoding("console"), WithOutputPaths("stdout"))
	require.NoError(t, err)
	require.Equal(t, LevelWarn, l.GetLevel())
	require.NotNil(t, Provide())

	_, err = New(LevelInfo, WithEncoding("xml"))
	require.Error(t, err)
}
