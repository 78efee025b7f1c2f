package rust

import (
	"strings"

	"github.com/schurhammer/gleam/ast"
	"github.com/schurhammer/gleam/token"
)

// resolve walks Link forwarding until it reaches a concrete type or a
// Generic/Unbound variable. The walk is bounded: the type checker promises
// acyclic chains, and a chain this long means the promise was broken.
const maxLinkSteps = 10000

func resolve(t ast.Type) (ast.Type, *token.CompileError) {
	for i := 0; i < maxLinkSteps; i++ {
		v, ok := t.(*ast.TVar)
		if !ok {
			return t, nil
		}
		link, ok := v.Ref.(ast.Link)
		if !ok {
			return t, nil
		}
		t = link.To
	}
	return nil, &token.CompileError{
		Span: t.Span(),
		Kind: token.ErrMalformedLink,
		Msg:  "type variable link chain does not terminate",
	}
}

// Gleam prelude types with a direct Rust spelling. Anything else keeps its
// name: user types were declared by an emitted statement, and the frontend
// qualifies foreign names before they get here.
var preludeTypes = map[string]string{
	"Int":    "i64",
	"Float":  "f64",
	"Bool":   "bool",
	"String": "String",
	"Nil":    "()",
}

func rustTypeName(name string) string {
	if mapped, ok := preludeTypes[name]; ok {
		return mapped
	}
	return escape(name)
}

// typ renders a type expression. It is total over the Type union: every
// variant renders, and Link variables are fully dereferenced first so a raw
// link marker can never leak into the output.
func (e *emitter) typ(t ast.Type) (string, error) {
	t, cerr := resolve(t)
	if cerr != nil {
		cerr.Decl = e.decl
		return "", cerr
	}
	switch t := t.(type) {
	case *ast.TNamed:
		name := rustTypeName(t.Name)
		if len(t.Args) == 0 {
			return name, nil
		}
		args, err := e.typeList(t.Args)
		if err != nil {
			return "", err
		}
		return name + "<" + args + ">", nil
	case *ast.TVar:
		switch ref := t.Ref.(type) {
		case ast.Generic:
			return e.gen.name(ref.ID), nil
		case ast.Unbound:
			// Unbound renders like Generic: the emitter never
			// triggers further inference.
			return e.gen.name(ref.ID), nil
		default:
			// Link is consumed by resolve above.
			return "", e.unsupported(t.Span(), "type variable state")
		}
	case *ast.TFn:
		args, err := e.typeList(t.Args)
		if err != nil {
			return "", err
		}
		ret, err := e.typ(t.Ret)
		if err != nil {
			return "", err
		}
		return "fn(" + args + ") -> " + ret, nil
	case *ast.TTuple:
		elems, err := e.typeList(t.Elems)
		if err != nil {
			return "", err
		}
		if len(t.Elems) == 1 {
			return "(" + elems + ",)", nil
		}
		return "(" + elems + ")", nil
	default:
		return "", e.unsupported(t.Span(), "type")
	}
}

func (e *emitter) typeList(ts []ast.Type) (string, error) {
	rendered := make([]string, 0, len(ts))
	for _, t := range ts {
		s, err := e.typ(t)
		if err != nil {
			return "", err
		}
		rendered = append(rendered, s)
	}
	return strings.Join(rendered, ", "), nil
}
