package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/esparse/parse/js"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectFormat(t *testing.T) {
	assert.Equal(t, FormatYAML, DetectFormat("a.yaml"))
	assert.Equal(t, FormatYAML, DetectFormat("dir/a.YML"))
	assert.Equal(t, FormatTOML, DetectFormat("a.toml"))
	assert.Equal(t, FormatTOML, DetectFormat("esparse"))
}

func TestParseYAML(t *testing.T) {
	f, err := Parse([]byte("module: true\njsx: true\nweb_compat: false\nmax_depth: 64\nformat: sexpr\n"), FormatYAML)
	require.NoError(t, err)
	assert.True(t, f.Module)
	assert.True(t, f.JSX)
	assert.False(t, f.Strict)
	assert.False(t, f.WebCompat)
	assert.Equal(t, 64, f.MaxDepth)
	assert.Equal(t, OutputSExpr, f.Format)
}

func TestParseTOML(t *testing.T) {
	f, err := Parse([]byte("strict = true\nlocations = true\nraw = true\nexperimental = true\n"), FormatTOML)
	require.NoError(t, err)
	assert.True(t, f.Strict)
	assert.True(t, f.Locations)
	assert.True(t, f.Raw)
	assert.True(t, f.Experimental)
	assert.True(t, f.WebCompat)
	assert.Equal(t, js.DefaultMaxDepth, f.MaxDepth)
	assert.Equal(t, OutputJSON, f.Format)
}

func TestParseEmpty(t *testing.T) {
	for _, format := range []Format{FormatYAML, FormatTOML} {
		f, err := Parse(nil, format)
		require.NoError(t, err, format.String())
		assert.Equal(t, Default(), f, format.String())
	}
}

func TestParseErrors(t *testing.T) {
	var tests = []struct {
		name    string
		src     string
		format  Format
		message string
	}{
		{"negative depth", "max_depth: -1", FormatYAML, "max_depth must be non-negative, got -1"},
		{"bad format", "format = \"xml\"", FormatTOML, "format must be 'json' or 'sexpr', got 'xml'"},
		{"unknown toml key", "modules = true", FormatTOML, "unknown key 'modules'"},
		{"unknown yaml key", "modules: true", FormatYAML, "YAML parse error"},
		{"bad toml", "module = ", FormatTOML, "TOML parse error"},
		{"bad yaml", "module: [", FormatYAML, "YAML parse error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.src), tt.format)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "esparse.yml")
	require.NoError(t, os.WriteFile(path, []byte("module: true\n"), 0644))

	f, err := Load(path)
	require.NoError(t, err)
	assert.True(t, f.Module)

	_, err = Load(filepath.Join(dir, "missing.toml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config")

	bad := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte("max_depth = -5\n"), 0644))
	_, err = Load(bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), bad)
}

func TestOptions(t *testing.T) {
	f := Default()
	f.Module = true
	f.Raw = true
	f.WebCompat = false
	f.MaxDepth = 10
	assert.Equal(t, js.Options{
		RecordRawLiteralText:        true,
		DisableLegacyWebCompatForms: true,
		TreatInputAsModule:          true,
		MaxDepth:                    10,
	}, f.Options())
}
