package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/esparse/parse"
	"github.com/esparse/parse/js"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func writeFile(t *testing.T, name, content string) string {
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func boolFlag(b bool) *bool {
	return &b
}

func TestRunSExpr(t *testing.T) {
	path := writeFile(t, "a.js", "let a = 1;\nexport {a};")
	var w bytes.Buffer
	err := run(args{Files: []string{path}, Module: boolFlag(true), Format: "sexpr"}, &w, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, "Decl(let a = 1) Stmt(export {a})\n", w.String())
}

func TestRunJSON(t *testing.T) {
	path := writeFile(t, "a.js", "a + 1")
	var w bytes.Buffer
	err := run(args{Files: []string{path}, Locations: boolFlag(true)}, &w, zap.NewNop())
	require.NoError(t, err)

	var program map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Bytes(), &program))
	assert.Equal(t, "Program", program["type"])
	assert.Equal(t, "script", program["sourceType"])
	assert.Contains(t, program, "loc")
}

func TestRunExpr(t *testing.T) {
	path := writeFile(t, "a.js", "a ? b : c")
	var w bytes.Buffer
	err := run(args{Files: []string{path}, Expr: true, Format: "sexpr"}, &w, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, "(a ? b : c)\n", w.String())
}

func TestRunConfig(t *testing.T) {
	cfg := writeFile(t, "esparse.toml", "module = true\nformat = \"sexpr\"\n")
	path := writeFile(t, "a.js", "await x")
	var w bytes.Buffer
	err := run(args{Files: []string{path}, Config: cfg}, &w, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, "Stmt((await x))\n", w.String())
}

func TestRunParseError(t *testing.T) {
	path := writeFile(t, "a.js", "a +")
	err := run(args{Files: []string{path}}, &bytes.Buffer{}, zap.NewNop())
	require.Error(t, err)
	perr, ok := errors.Cause(err).(*parse.Error)
	require.True(t, ok)
	assert.Equal(t, parse.SyntaxError, perr.Kind)
	assert.Equal(t, 3, perr.Offset)
}

func TestResolve(t *testing.T) {
	f, err := resolve(args{NoWebCompat: boolFlag(true), MaxDepth: 5, JSX: boolFlag(true)}, zap.NewNop())
	require.NoError(t, err)
	assert.False(t, f.WebCompat)
	assert.True(t, f.JSX)
	assert.Equal(t, 5, f.MaxDepth)
	assert.Equal(t, "json", f.Format)

	_, err = resolve(args{Format: "xml"}, zap.NewNop())
	require.Error(t, err)

	_, err = resolve(args{MaxDepth: -1}, zap.NewNop())
	require.Error(t, err)
}

func TestResolveOverridesConfig(t *testing.T) {
	cfg := writeFile(t, "esparse.yaml", "module: true\nstrict: true\nweb_compat: false\n")

	f, err := resolve(args{Config: cfg}, zap.NewNop())
	require.NoError(t, err)
	assert.True(t, f.Module)
	assert.True(t, f.Strict)
	assert.False(t, f.WebCompat)

	f, err = resolve(args{Config: cfg, Module: boolFlag(false), Strict: boolFlag(false), NoWebCompat: boolFlag(false)}, zap.NewNop())
	require.NoError(t, err)
	assert.False(t, f.Module)
	assert.False(t, f.Strict)
	assert.True(t, f.WebCompat)
}

func TestCountNodes(t *testing.T) {
	program, err := js.Parse(parse.NewInputString("a + b"), js.Options{})
	require.NoError(t, err)
	assert.Equal(t, 5, countNodes(program))
}
