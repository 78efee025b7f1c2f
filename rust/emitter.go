// Package rust renders type-checked Gleam module IR as Rust source text.
//
// The emitter is the last stage before the Rust toolchain: it assumes its
// input already passed the type checker and performs no re-validation. All
// renderers are pure functions from IR fragment to text; the only state is
// the per-declaration generic namer and the name scopes, neither of which
// outlives a declaration.
package rust

import (
	"strconv"
	"strings"

	"github.com/schurhammer/gleam/ast"
	"github.com/schurhammer/gleam/token"
)

// emitter renders one module. It is not safe for concurrent use; render
// independent modules with independent emitters.
type emitter struct {
	module string

	// decl is the name of the declaration being rendered, carried into
	// diagnostics so failures can be located.
	decl string

	// gen names the generic type variables of the current declaration.
	// It is replaced at every declaration boundary.
	gen *genericNamer

	// scopes tracks names introduced into the emitted text: declaration
	// arguments, let bindings and pattern binds of the branch being
	// rendered.
	scopes []Scope
}

func (e *emitter) beginDecl(name string, taken map[string]bool) {
	e.decl = name
	e.gen = newGenericNamer(taken)
	e.scopes = []Scope{NewScope(DeclScope)}
}

func (e *emitter) bind(name string) {
	Put(e.scopes, name)
}

func (e *emitter) unsupported(span token.Span, construct string) *token.CompileError {
	ce := token.Unsupported(span, construct)
	ce.Decl = e.decl
	return ce
}

// indent prefixes every line of s with one tab.
func indent(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = "\t" + line
		}
	}
	return strings.Join(lines, "\n")
}

// fieldName resolves a possibly-unnamed field to the identifier the target
// sees: positional arguments render as _0, _1, ...
func fieldName(f ast.Field, i int) string {
	if f.Name == "" {
		return "_" + strconv.Itoa(i)
	}
	return escape(f.Name)
}
