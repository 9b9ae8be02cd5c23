package js

import (
	"encoding/json"
	"testing"

	"github.com/esparse/parse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xeipuuv/gojsonschema"
)

// estreeSchema requires every object carrying a type field to be a node with a valid span.
const estreeSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"definitions": {
		"position": {
			"type": "object",
			"required": ["line", "column"],
			"properties": {
				"line": {"type": "integer", "minimum": 1},
				"column": {"type": "integer", "minimum": 0}
			}
		},
		"loc": {
			"type": "object",
			"required": ["start", "end"],
			"properties": {
				"start": {"$ref": "#/definitions/position"},
				"end": {"$ref": "#/definitions/position"}
			}
		},
		"node": {
			"type": "object",
			"required": ["type", "start", "end"],
			"properties": {
				"type": {"type": "string", "minLength": 1},
				"start": {"type": "integer", "minimum": 0},
				"end": {"type": "integer", "minimum": 0},
				"loc": {"$ref": "#/definitions/loc"}
			}
		},
		"object": {
			"type": "object",
			"if": {"required": ["type"]},
			"then": {"$ref": "#/definitions/node"},
			"additionalProperties": {"$ref": "#/definitions/value"}
		},
		"value": {
			"anyOf": [
				{"type": ["null", "boolean", "number", "string"]},
				{"type": "array", "items": {"$ref": "#/definitions/value"}},
				{"$ref": "#/definitions/object"}
			]
		}
	},
	"allOf": [
		{"$ref": "#/definitions/object"},
		{
			"required": ["body", "sourceType"],
			"properties": {
				"type": {"enum": ["Program"]},
				"sourceType": {"enum": ["script", "module"]},
				"body": {"type": "array"}
			}
		}
	]
}`

func TestJSON(t *testing.T) {
	var tests = []struct {
		js string
		o  Options
	}{
		{"'use strict'; var a = 1, [b, , ...c] = d, {e: f = 2, ...g} = h;", Options{}},
		{"function* f(a = 1, ...b) { yield* a; } async function g() { for await (const x of y) ; }", Options{RecordSourceLocations: true}},
		{"class A extends B { static #x = 1; static { this.#x; } get y() { return super.y; } }", Options{RecordSourceLocations: true}},
		{"a?.b?.[c]?.(d); tag`x${y}z`; /re/gi; 10n; null; true; 0x1F;", Options{RecordRawLiteralText: true}},
		{"label: for (;;) { switch (a) { case 1: break label; default: continue label; } }", Options{}},
		{"try { throw a } catch ({message}) {} finally {}", Options{}},
		{"import a, {b as c} from 'm'; export default class {}; export * as ns from 'n'; export {c};", Options{TreatInputAsModule: true}},
		{"x = <div a='1' {...b}>text {c} <d.e /><f:g /></div>", Options{JSX: true, RecordSourceLocations: true}},
	}

	schema := gojsonschema.NewStringLoader(estreeSchema)
	for _, tt := range tests {
		t.Run(tt.js, func(t *testing.T) {
			ast, err := Parse(parse.NewInputString(tt.js), tt.o)
			require.NoError(t, err)
			b, err := json.Marshal(ast)
			require.NoError(t, err)

			result, err := gojsonschema.Validate(schema, gojsonschema.NewBytesLoader(b))
			require.NoError(t, err)
			for _, e := range result.Errors() {
				t.Error(e.String())
			}
		})
	}
}

func TestJSONFields(t *testing.T) {
	ast, err := Parse(parse.NewInputString("'use strict'; a?.b; ({c, d() {}})"), Options{})
	require.NoError(t, err)
	b, err := json.Marshal(ast)
	require.NoError(t, err)

	var program map[string]interface{}
	require.NoError(t, json.Unmarshal(b, &program))
	assert.Equal(t, "Program", program["type"])
	assert.Equal(t, "script", program["sourceType"])
	assert.Equal(t, 0.0, program["start"])
	assert.Equal(t, 33.0, program["end"])
	assert.NotContains(t, program, "loc")

	body := program["body"].([]interface{})
	require.Len(t, body, 3)

	directive := body[0].(map[string]interface{})
	assert.Equal(t, "use strict", directive["directive"])

	chain := body[1].(map[string]interface{})["expression"].(map[string]interface{})
	assert.Equal(t, "ChainExpression", chain["type"])
	member := chain["expression"].(map[string]interface{})
	assert.Equal(t, "MemberExpression", member["type"])
	assert.Equal(t, true, member["optional"])
	assert.Equal(t, false, member["computed"])

	object := body[2].(map[string]interface{})["expression"].(map[string]interface{})
	assert.Equal(t, "ObjectExpression", object["type"])
	props := object["properties"].([]interface{})
	require.Len(t, props, 2)
	assert.Equal(t, true, props[0].(map[string]interface{})["shorthand"])
	assert.Equal(t, true, props[1].(map[string]interface{})["method"])
	assert.Equal(t, "init", props[1].(map[string]interface{})["kind"])
}

func TestJSONLiteral(t *testing.T) {
	ast, err := Parse(parse.NewInputString("/a/g"), Options{RecordRawLiteralText: true})
	require.NoError(t, err)
	b, err := json.Marshal(ast.Body[0].(*ExpressionStatement).Expression)
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"Literal","start":0,"end":4,"value":null,"raw":"/a/g","regex":{"pattern":"a","flags":"g"}}`, string(b))
}
