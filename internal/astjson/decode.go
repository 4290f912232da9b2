// Package astjson is the JSON wire format that stands in for "the
// compiler" — the upstream collaborator spec.md §6 describes as handing
// a finished AST to the driver, but explicitly leaves out of scope.
// cmd/pixie eval needs some way to obtain an ast.Node tree without
// reimplementing a reader, so this package decodes a small JSON schema
// (one object per node, tagged by a "node" field) into pkg/ast nodes,
// and encodes a terminal Exception value back out for reporting.
//
// Decoding uses github.com/tidwall/gjson for path-based field access
// rather than encoding/json + structs, since the schema is a tagged
// union whose shape per-tag doesn't map cleanly onto one Go struct.
package astjson

import (
	"fmt"

	"github.com/tidwall/gjson"
	"github.com/tmclane/pixie/pkg/ast"
	"github.com/tmclane/pixie/pkg/sym"
	"github.com/tmclane/pixie/pkg/value"
)

// Decoder turns JSON AST documents into pkg/ast node trees, interning
// every name token it encounters through in so that two occurrences of
// the same source name always compare identity-equal (spec.md §4.4).
type Decoder struct {
	in *sym.Interner
}

// NewDecoder builds a Decoder that interns names through in.
func NewDecoder(in *sym.Interner) *Decoder {
	return &Decoder{in: in}
}

// DecodeString parses a single JSON AST document into a root ast.Node.
func (d *Decoder) DecodeString(doc string) (ast.Node, error) {
	if !gjson.Valid(doc) {
		return nil, fmt.Errorf("astjson: invalid JSON document")
	}
	return d.decodeNode(gjson.Parse(doc))
}

func (d *Decoder) decodeNode(n gjson.Result) (ast.Node, error) {
	if !n.IsObject() {
		return nil, fmt.Errorf("astjson: expected a JSON object node, got %s", n.Type)
	}

	tag := n.Get("node").String()
	meta := decodeMeta(n.Get("meta"))

	switch tag {
	case "const":
		val, err := decodeScalar(n.Get("value"))
		if err != nil {
			return nil, err
		}
		return ast.NewConst(val, meta), nil

	case "lookup":
		name := n.Get("name").String()
		if name == "" {
			return nil, fmt.Errorf("astjson: lookup node missing \"name\"")
		}
		return ast.NewLookup(d.in.Intern(name), meta), nil

	case "if":
		test, err := d.decodeNode(n.Get("test"))
		if err != nil {
			return nil, fmt.Errorf("astjson: if.test: %w", err)
		}
		then, err := d.decodeNode(n.Get("then"))
		if err != nil {
			return nil, fmt.Errorf("astjson: if.then: %w", err)
		}
		els, err := d.decodeNode(n.Get("else"))
		if err != nil {
			return nil, fmt.Errorf("astjson: if.else: %w", err)
		}
		return ast.NewIf(test, then, els, meta), nil

	case "do":
		bodies, err := d.decodeNodeArray(n.Get("body"))
		if err != nil {
			return nil, fmt.Errorf("astjson: do.body: %w", err)
		}
		if len(bodies) == 0 {
			return nil, fmt.Errorf("astjson: do.body must be non-empty")
		}
		return ast.NewDo(bodies, meta), nil

	case "let":
		names, err := d.decodeNameArray(n.Get("names"))
		if err != nil {
			return nil, fmt.Errorf("astjson: let.names: %w", err)
		}
		bindings, err := d.decodeNodeArray(n.Get("bindings"))
		if err != nil {
			return nil, fmt.Errorf("astjson: let.bindings: %w", err)
		}
		if len(names) != len(bindings) {
			return nil, fmt.Errorf("astjson: let has %d names but %d bindings", len(names), len(bindings))
		}
		if len(names) == 0 {
			return nil, fmt.Errorf("astjson: let.names must be non-empty")
		}
		body, err := d.decodeNode(n.Get("body"))
		if err != nil {
			return nil, fmt.Errorf("astjson: let.body: %w", err)
		}
		return ast.NewLet(names, bindings, body, meta), nil

	case "fn":
		var name *sym.Symbol
		if n.Get("name").Exists() && n.Get("name").String() != "" {
			name = d.in.Intern(n.Get("name").String())
		}
		args, err := d.decodeNameArray(n.Get("args"))
		if err != nil {
			return nil, fmt.Errorf("astjson: fn.args: %w", err)
		}
		closedOver, err := d.decodeNameArray(n.Get("closedOver"))
		if err != nil {
			return nil, fmt.Errorf("astjson: fn.closedOver: %w", err)
		}
		body, err := d.decodeNode(n.Get("body"))
		if err != nil {
			return nil, fmt.Errorf("astjson: fn.body: %w", err)
		}
		return ast.NewFn(name, args, body, closedOver, meta), nil

	case "invoke", "tailcall":
		args, err := d.decodeNodeArray(n.Get("args"))
		if err != nil {
			return nil, fmt.Errorf("astjson: %s.args: %w", tag, err)
		}
		if len(args) == 0 {
			return nil, fmt.Errorf("astjson: %s.args must contain at least the callable", tag)
		}
		if tag == "invoke" {
			return ast.NewInvoke(args, meta), nil
		}
		return ast.NewTailCall(args, meta), nil

	case "vderef":
		// VarDeref targets a *value.Var constructed at runtime by a host
		// (e.g. a global binding installed before Evaluate runs); there is
		// no JSON representation of "the same Var" across two occurrences
		// in a document, so this boundary does not support vderef. A host
		// that needs one builds ast.VarDeref directly in Go.
		return nil, fmt.Errorf("astjson: \"vderef\" is not constructible from JSON; build ast.VarDeref directly")

	case "":
		return nil, fmt.Errorf("astjson: node object missing \"node\" tag")

	default:
		return nil, fmt.Errorf("astjson: unknown node tag %q", tag)
	}
}

func (d *Decoder) decodeNodeArray(arr gjson.Result) ([]ast.Node, error) {
	if !arr.Exists() {
		return nil, nil
	}
	if !arr.IsArray() {
		return nil, fmt.Errorf("expected a JSON array, got %s", arr.Type)
	}
	items := arr.Array()
	out := make([]ast.Node, len(items))
	for i, item := range items {
		node, err := d.decodeNode(item)
		if err != nil {
			return nil, fmt.Errorf("[%d]: %w", i, err)
		}
		out[i] = node
	}
	return out, nil
}

func (d *Decoder) decodeNameArray(arr gjson.Result) ([]*sym.Symbol, error) {
	if !arr.Exists() {
		return nil, nil
	}
	if !arr.IsArray() {
		return nil, fmt.Errorf("expected a JSON array of names, got %s", arr.Type)
	}
	items := arr.Array()
	out := make([]*sym.Symbol, len(items))
	for i, item := range items {
		if item.Type != gjson.String {
			return nil, fmt.Errorf("[%d]: expected a string name, got %s", i, item.Type)
		}
		out[i] = d.in.Intern(item.String())
	}
	return out, nil
}

func decodeMeta(m gjson.Result) *ast.Meta {
	if !m.Exists() {
		return nil
	}
	return &ast.Meta{
		FileName:     m.Get("file").String(),
		LineText:     m.Get("lineText").String(),
		LineNumber:   int(m.Get("line").Int()),
		ColumnNumber: int(m.Get("column").Int()),
	}
}

func decodeScalar(v gjson.Result) (value.Value, error) {
	switch v.Type {
	case gjson.Null:
		return value.Nil, nil
	case gjson.True:
		return value.True, nil
	case gjson.False:
		return value.False, nil
	case gjson.Number:
		raw := v.Raw
		for _, c := range raw {
			if c == '.' || c == 'e' || c == 'E' {
				return value.Float64(v.Float()), nil
			}
		}
		return value.Int64(v.Int()), nil
	case gjson.String:
		return &value.StringValue{Val: v.String()}, nil
	default:
		return nil, fmt.Errorf("astjson: unsupported const value type %s", v.Type)
	}
}
