package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zeusync/vectorlib/internal/core/observability/log"
	"github.com/zeusync/vectorlib/pkg/vector"
)

const yamlConfig = `
log:
  level: debug
  encoding: json
verbose: true
demo:
  lerps:
    - from: {x: 1, y: 2}
      to: {x: 3, y: 4}
      factor: 0.25
    - from: {x: 8, y: 8}
      factor: 4
      reciprocal: true
`

func TestDefault(t *testing.T) {
	c := Default()
	require.NoError(t, c.Validate())
	require.Equal(t, log.LevelInfo, c.LogLevel())
	require.Len(t, c.Demo.Lerps, 2)

	first := c.Demo.Lerps[0]
	require.Equal(t, vector.Zero[float64](), first.From)
	require.NotNil(t, first.To)
	require.Equal(t, vector.New(6.0, 6.0), *first.To)
	require.Equal(t, 0.5, first.Factor)

	second := c.Demo.Lerps[1]
	require.Nil(t, second.To)
	require.True(t, second.Reciprocal)
}

func TestLoadYAML(t *testing.T) {
	c, err := LoadYAML(strings.NewReader(yamlConfig))
	require.NoError(t, err)
	require.NoError(t, c.Validate())

	require.Equal(t, log.LevelDebug, c.LogLevel())
	require.Equal(t, "json", c.Log.Encoding)
	require.True(t, c.Verbose)
	require.Len(t, c.Demo.Lerps, 2)
	require.Equal(t, vector.New(1.0, 2.0), c.Demo.Lerps[0].From)
	require.Equal(t, vector.New(3.0, 4.0), *c.Demo.Lerps[0].To)
	require.Nil(t, c.Demo.Lerps[1].To)
	require.Equal(t, 4.0, c.Demo.Lerps[1].Factor)
}

func TestLoadYAML_Empty(t *testing.T) {
	c, err := LoadYAML(strings.NewReader(""))
	require.NoError(t, err)
	require.Equal(t, Default(), c)
}

func TestLoadJSON(t *testing.T) {
	c, err := LoadJSON(strings.NewReader(`{"verbose": true, "log": {"level": "warn"}}`))
	require.NoError(t, err)
	require.True(t, c.Verbose)
	require.Equal(t, log.LevelWarn, c.LogLevel())
	require.Equal(t, "console", c.Log.Encoding)
	require.Len(t, c.Demo.Lerps, 2)
}

func TestLoadJSON_LerpsReplaceDefaults(t *testing.T) {
	c, err := LoadJSON(strings.NewReader(`{"demo": {"lerps": [{"from": {"x": 1, "y": 1}, "factor": 3}]}}`))
	require.NoError(t, err)
	require.NoError(t, c.Validate())

	require.Len(t, c.Demo.Lerps, 1)
	step := c.Demo.Lerps[0]
	require.Equal(t, vector.New(1.0, 1.0), step.From)
	require.Nil(t, step.To)
	require.Equal(t, 3.0, step.Factor)
	require.False(t, step.Reciprocal)

	fromYAML, err := LoadYAML(strings.NewReader("demo:\n  lerps:\n    - from: {x: 1, y: 1}\n      factor: 3\n"))
	require.NoError(t, err)
	require.Equal(t, fromYAML.Demo.Lerps, c.Demo.Lerps)
}

func TestLoadJSON_Malformed(t *testing.T) {
	_, err := LoadJSON(strings.NewReader(`{"demo": `))
	require.Error(t, err)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	t.Run("yaml file", func(t *testing.T) {
		path := filepath.Join(dir, "demo.yaml")
		require.NoError(t, os.WriteFile(path, []byte(yamlConfig), 0o600))
		c, err := Load(path)
		require.NoError(t, err)
		require.True(t, c.Verbose)
	})

	t.Run("json file", func(t *testing.T) {
		path := filepath.Join(dir, "demo.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"demo": {"lerps": []}}`), 0o600))
		c, err := Load(path)
		require.NoError(t, err)
		require.Empty(t, c.Demo.Lerps)
	})

	t.Run("no path", func(t *testing.T) {
		c, err := Load("")
		require.NoError(t, err)
		require.Equal(t, Default(), c)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(dir, "nope.yaml"))
		require.Error(t, err)
	})

	t.Run("malformed", func(t *testing.T) {
		path := filepath.Join(dir, "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("log: [1, 2"), 0o600))
		_, err := Load(path)
		require.Error(t, err)
	})
}

func TestValidate(t *testing.T) {
	c := Default()
	c.Log.Level = "loud"
	c.Log.Encoding = "xml"
	c.Demo.Lerps = append(c.Demo.Lerps, LerpStep{From: vector.New(1.0, 1.0), Reciprocal: true})

	err := c.Validate()
	require.Error(t, err)
	require.ErrorContains(t, err, `unknown log level "loud"`)
	require.ErrorContains(t, err, `unknown log encoding "xml"`)
	require.ErrorContains(t, err, "demo.lerps[2]")
}
