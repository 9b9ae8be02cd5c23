// Package config loads parser options from YAML or TOML files.
package config

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/esparse/parse/js"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Format is the encoding of a configuration file.
type Format int

// Format values.
const (
	FormatTOML Format = iota
	FormatYAML
)

func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	}
	return "unknown"
}

// Output formats of the command line tool.
const (
	OutputJSON  = "json"
	OutputSExpr = "sexpr"
)

// File is the on-disk form of the parser options.
type File struct {
	Module       bool   `yaml:"module" toml:"module"`
	Strict       bool   `yaml:"strict" toml:"strict"`
	Locations    bool   `yaml:"locations" toml:"locations"`
	Raw          bool   `yaml:"raw" toml:"raw"`
	JSX          bool   `yaml:"jsx" toml:"jsx"`
	Experimental bool   `yaml:"experimental" toml:"experimental"`
	WebCompat    bool   `yaml:"web_compat" toml:"web_compat"`
	MaxDepth     int    `yaml:"max_depth" toml:"max_depth"`
	Format       string `yaml:"format" toml:"format"`
}

// Default returns the configuration used when no file is given.
func Default() File {
	return File{
		WebCompat: true,
		MaxDepth:  js.DefaultMaxDepth,
		Format:    OutputJSON,
	}
}

// DetectFormat returns the format for the extension of path, TOML unless it is .yaml or .yml.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	}
	return FormatTOML
}

// Load reads and validates the configuration file at path.
func Load(path string) (File, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return File{}, errors.Wrap(err, "read config")
	}
	f, err := Parse(b, DetectFormat(path))
	if err != nil {
		return File{}, errors.Wrapf(err, "config %s", path)
	}
	return f, nil
}

// Parse decodes a configuration over the defaults and validates it. Unknown keys are an error.
func Parse(b []byte, format Format) (File, error) {
	f := Default()
	switch format {
	case FormatTOML:
		md, err := toml.Decode(string(b), &f)
		if err != nil {
			return File{}, errors.Wrap(err, "TOML parse error")
		}
		if undecoded := md.Undecoded(); 0 < len(undecoded) {
			return File{}, errors.Errorf("unknown key '%s'", undecoded[0].String())
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(b))
		dec.KnownFields(true)
		if err := dec.Decode(&f); err != nil && err != io.EOF {
			return File{}, errors.Wrap(err, "YAML parse error")
		}
	default:
		return File{}, errors.Errorf("unsupported format %s", format)
	}
	if err := f.Validate(); err != nil {
		return File{}, err
	}
	return f, nil
}

// Validate checks the value ranges of the configuration.
func (f File) Validate() error {
	if f.MaxDepth < 0 {
		return errors.Errorf("max_depth must be non-negative, got %d", f.MaxDepth)
	}
	if f.Format != OutputJSON && f.Format != OutputSExpr {
		return errors.Errorf("format must be '%s' or '%s', got '%s'", OutputJSON, OutputSExpr, f.Format)
	}
	return nil
}

// Options returns the parser options of the configuration.
func (f File) Options() js.Options {
	return js.Options{
		StrictByDefault:             f.Strict,
		RecordSourceLocations:       f.Locations,
		RecordRawLiteralText:        f.Raw,
		EnableExperimentalSyntax:    f.Experimental,
		DisableLegacyWebCompatForms: !f.WebCompat,
		TreatInputAsModule:          f.Module,
		JSX:                         f.JSX,
		MaxDepth:                    f.MaxDepth,
	}
}
