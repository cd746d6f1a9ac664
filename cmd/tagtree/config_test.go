package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := loadConfig("")
	require.NoError(t, err)
	require.Equal(t, defaultConfig(), cfg)

	cfg, err = loadConfig(writeFile(t, "empty.yaml", nil))
	require.NoError(t, err)
	require.Equal(t, defaultConfig(), cfg)
}

func TestLoadConfigValues(t *testing.T) {
	path := writeFile(t, "c.yaml", []byte("output: yaml\nindent: 4\nmax_depth: 32\nencoding: windows-1252\n"))
	cfg, err := loadConfig(path)
	require.NoError(t, err)
	require.Equal(t, Config{Output: "yaml", Indent: 4, MaxDepth: 32, Encoding: "windows-1252"}, cfg)
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		message string
	}{
		{"unknown field", "colour: blue\n", "failed to parse configuration file"},
		{"bad yaml", "output: [\n", "failed to parse configuration file"},
		{"bad output", "output: csv\n", `unknown output format "csv"`},
		{"negative indent", "indent: -1\n", "indent must not be negative"},
		{"negative depth", "max_depth: -3\n", "max_depth must not be negative"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := loadConfig(writeFile(t, "c.yaml", []byte(tt.content)))
			require.ErrorContains(t, err, tt.message)
		})
	}

	_, err := loadConfig("/nonexistent/tagtree.yaml")
	require.ErrorContains(t, err, "failed to read configuration file")
}
