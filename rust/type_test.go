package rust

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schurhammer/gleam/ast"
	"github.com/schurhammer/gleam/token"
)

func newTestEmitter() *emitter {
	e := &emitter{module: "test"}
	e.beginDecl("test", nil)
	return e
}

func named(name string, args ...ast.Type) *ast.TNamed {
	return &ast.TNamed{Name: name, Args: args}
}

func generic(id uint64) *ast.TVar {
	return &ast.TVar{Ref: ast.Generic{ID: id}}
}

func unbound(id uint64) *ast.TVar {
	return &ast.TVar{Ref: ast.Unbound{ID: id}}
}

func link(to ast.Type) *ast.TVar {
	return &ast.TVar{Ref: ast.Link{To: to}}
}

func TestRenderType(t *testing.T) {
	tests := []struct {
		name     string
		typ      ast.Type
		expected string
	}{
		{"builtin int", named("Int"), "i64"},
		{"builtin float", named("Float"), "f64"},
		{"builtin bool", named("Bool"), "bool"},
		{"builtin string", named("String"), "String"},
		{"builtin nil", named("Nil"), "()"},
		{"plain name", named("Wibble"), "Wibble"},
		{"one arg", named("List", named("Int")), "List<i64>"},
		{"two args", named("Result", named("Int"), named("String")), "Result<i64, String>"},
		{"nested args", named("Rc", named("List", named("a"))), "Rc<List<a>>"},
		{"fn type", &ast.TFn{Args: []ast.Type{named("Int"), named("Float")}, Ret: named("Bool")}, "fn(i64, f64) -> bool"},
		{"tuple type", &ast.TTuple{Elems: []ast.Type{named("Int"), named("String")}}, "(i64, String)"},
		{"single tuple", &ast.TTuple{Elems: []ast.Type{named("Int")}}, "(i64,)"},
		{"linked to concrete", link(named("Int")), "i64"},
		{"link chain", link(link(link(named("Float")))), "f64"},
		{"link inside args", named("List", link(named("Int"))), "List<i64>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEmitter()
			out, err := e.typ(tt.typ)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, out)
		})
	}
}

func TestRenderTypeVariables(t *testing.T) {
	e := newTestEmitter()

	a, err := e.typ(generic(7))
	require.NoError(t, err)
	assert.Equal(t, "A", a)

	// Same identity renders to the same name within the declaration.
	again, err := e.typ(generic(7))
	require.NoError(t, err)
	assert.Equal(t, "A", again)

	// Unbound is treated exactly like generic.
	b, err := e.typ(unbound(9))
	require.NoError(t, err)
	assert.Equal(t, "B", b)

	// A link to a variable renders the variable's name, never a raw
	// link marker.
	viaLink, err := e.typ(link(generic(7)))
	require.NoError(t, err)
	assert.Equal(t, "A", viaLink)
}

func TestRenderTypeVariableNamesResetPerDeclaration(t *testing.T) {
	e := newTestEmitter()
	first, err := e.typ(generic(1))
	require.NoError(t, err)
	second, err := e.typ(generic(2))
	require.NoError(t, err)
	assert.Equal(t, "A", first)
	assert.Equal(t, "B", second)

	e.beginDecl("other", nil)
	renamed, err := e.typ(generic(2))
	require.NoError(t, err)
	assert.Equal(t, "A", renamed, "counter must reset at the declaration boundary")
}

func TestMalformedLinkChain(t *testing.T) {
	// A self-referential link cannot happen with a correct type checker;
	// the renderer must fail instead of spinning.
	cycle := &ast.TVar{}
	cycle.Ref = ast.Link{To: cycle}

	e := newTestEmitter()
	out, err := e.typ(cycle)
	assert.Empty(t, out)
	var ce *token.CompileError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, token.ErrMalformedLink, ce.Kind)
}
