// Command esparse parses JavaScript files and prints their ESTree syntax tree.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	arg "github.com/alexflint/go-arg"
	"github.com/esparse/parse"
	"github.com/esparse/parse/internal/config"
	"github.com/esparse/parse/js"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type args struct {
	Files        []string `arg:"positional,required" help:"JavaScript files to parse"`
	Module       *bool    `arg:"--module" help:"parse with the module goal"`
	Strict       *bool    `arg:"--strict" help:"parse scripts as strict mode code"`
	Locations    *bool    `arg:"--locations" help:"record line and column locations"`
	Raw          *bool    `arg:"--raw" help:"record the raw text of literals"`
	JSX          *bool    `arg:"--jsx" help:"parse JSX elements"`
	Experimental *bool    `arg:"--experimental" help:"enable experimental syntax"`
	NoWebCompat  *bool    `arg:"--no-web-compat" help:"reject legacy web compatibility forms"`
	MaxDepth     int      `arg:"--max-depth" help:"maximum nesting depth"`
	Config       string   `arg:"--config" help:"YAML or TOML configuration file"`
	Format       string   `arg:"--format" help:"output format: json or sexpr"`
	Expr         bool     `arg:"--expr" help:"parse each file as a single expression"`
	Verbose      bool     `arg:"-v,--verbose" help:"log debug information"`
}

func (args) Description() string {
	return "esparse parses JavaScript files and prints their ESTree syntax tree"
}

func main() {
	var a args
	arg.MustParse(&a)

	logger := newLogger(a.Verbose)
	defer logger.Sync()

	if err := run(a, os.Stdout, logger); err != nil {
		if perr, ok := errors.Cause(err).(*parse.Error); ok {
			logger.Error("parse failed",
				zap.String("kind", perr.Kind.String()),
				zap.Int("offset", perr.Offset),
				zap.Int("line", perr.Line),
				zap.Int("column", perr.Column),
				zap.Error(err))
			fmt.Fprintln(os.Stderr, perr.Context)
		} else {
			logger.Error("esparse failed", zap.Error(err))
		}
		os.Exit(1)
	}
}

// newLogger writes error entries to stderr and the rest to stdout as JSON.
func newLogger(verbose bool) *zap.Logger {
	minLevel := zapcore.InfoLevel
	if verbose {
		minLevel = zapcore.DebugLevel
	}
	isErrorLevel := zap.LevelEnablerFunc(func(lvl zapcore.Level) bool {
		return lvl >= zapcore.ErrorLevel
	})
	isInfoLevel := zap.LevelEnablerFunc(func(lvl zapcore.Level) bool {
		return minLevel <= lvl && lvl < zapcore.ErrorLevel
	})
	stdoutWriter := zapcore.Lock(os.Stdout)
	stderrWriter := zapcore.Lock(os.Stderr)

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.RFC3339TimeEncoder
	encoder := zapcore.NewJSONEncoder(encoderConfig)

	core := zapcore.NewTee(
		zapcore.NewCore(encoder, stderrWriter, isErrorLevel),
		zapcore.NewCore(encoder, stdoutWriter, isInfoLevel),
	)
	return zap.New(core, zap.AddCaller())
}

// resolve loads the configuration file, if any, and applies the flags over it.
func resolve(a args, logger *zap.Logger) (config.File, error) {
	f := config.Default()
	if a.Config != "" {
		var err error
		if f, err = config.Load(a.Config); err != nil {
			return f, err
		}
		logger.Debug("config loaded", zap.String("path", a.Config), zap.String("format", config.DetectFormat(a.Config).String()))
	}
	override(&f.Module, a.Module)
	override(&f.Strict, a.Strict)
	override(&f.Locations, a.Locations)
	override(&f.Raw, a.Raw)
	override(&f.JSX, a.JSX)
	override(&f.Experimental, a.Experimental)
	if a.NoWebCompat != nil {
		f.WebCompat = !*a.NoWebCompat
	}
	if a.MaxDepth != 0 {
		f.MaxDepth = a.MaxDepth
	}
	if a.Format != "" {
		f.Format = a.Format
	}
	return f, f.Validate()
}

// override replaces a configured switch when its flag was given, so --module=false turns off a module setting from the file.
func override(dst *bool, given *bool) {
	if given != nil {
		*dst = *given
	}
}

func run(a args, w io.Writer, logger *zap.Logger) error {
	f, err := resolve(a, logger)
	if err != nil {
		return err
	}
	o := f.Options()
	for _, filename := range a.Files {
		src, err := os.ReadFile(filename)
		if err != nil {
			return errors.Wrap(err, "read input")
		}

		t := time.Now()
		var root js.INode
		if a.Expr {
			expr, err := js.ParseExpr(parse.NewInputBytes(src), o)
			if err != nil {
				return errors.Wrap(err, filename)
			}
			root = expr
		} else {
			program, err := js.Parse(parse.NewInputBytes(src), o)
			if err != nil {
				return errors.Wrap(err, filename)
			}
			root = program
		}
		logger.Info("parsed",
			zap.String("path", filename),
			zap.Int("bytes", len(src)),
			zap.Int("nodes", countNodes(root)),
			zap.Duration("duration", time.Since(t)))

		if err := write(w, root, f.Format); err != nil {
			return err
		}
	}
	return nil
}

func write(w io.Writer, root js.INode, format string) error {
	if format == config.OutputSExpr {
		_, err := fmt.Fprintln(w, root.String())
		return errors.Wrap(err, "write output")
	}
	b, err := json.MarshalIndent(root, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encode tree")
	}
	_, err = fmt.Fprintln(w, string(b))
	return errors.Wrap(err, "write output")
}

type nodeCounter int

func (c *nodeCounter) Enter(n js.INode) js.IVisitor {
	*c++
	return c
}

func countNodes(root js.INode) int {
	var c nodeCounter
	js.Walk(&c, root)
	return int(c)
}
