package rust

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schurhammer/gleam/ast"
)

func TestCollectGenericsDedupes(t *testing.T) {
	// (a: ?1, b: ?1, c: ?2) must collect [1, 2], not [1, 1, 2].
	args := []ast.Field{
		{Name: "a", Typ: generic(1)},
		{Name: "b", Typ: generic(1)},
		{Name: "c", Typ: generic(2)},
	}
	e := newTestEmitter()
	require.NoError(t, e.collectGenerics(args))
	assert.Equal(t, []uint64{1, 2}, e.gen.order)
	assert.Equal(t, []string{"A", "B"}, e.gen.params())
}

func TestCollectGenericsFirstOccurrenceOrder(t *testing.T) {
	args := []ast.Field{
		{Name: "x", Typ: generic(9)},
		{Name: "y", Typ: generic(3)},
		{Name: "z", Typ: generic(9)},
	}
	e := newTestEmitter()
	require.NoError(t, e.collectGenerics(args))
	assert.Equal(t, []uint64{9, 3}, e.gen.order, "order is by first occurrence, not identity value")
}

func TestCollectGenericsWalksNestedTypes(t *testing.T) {
	tests := []struct {
		name string
		typ  ast.Type
		ids  []uint64
	}{
		{"inside applied args", named("List", generic(4)), []uint64{4}},
		{"deeply nested", named("Result", named("List", generic(1)), generic(2)), []uint64{1, 2}},
		{"through links", link(named("List", link(generic(5)))), []uint64{5}},
		{"fn type", &ast.TFn{Args: []ast.Type{generic(1)}, Ret: generic(2)}, []uint64{1, 2}},
		{"tuple type", &ast.TTuple{Elems: []ast.Type{generic(2), generic(1)}}, []uint64{2, 1}},
		{"unbound counts too", named("List", unbound(6)), []uint64{6}},
		{"concrete only", named("Result", named("Int"), named("String")), nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEmitter()
			require.NoError(t, e.collectGenerics([]ast.Field{{Name: "x", Typ: tt.typ}}))
			assert.Equal(t, tt.ids, e.gen.order)
		})
	}
}

func TestGenericNamerSkipsTakenNames(t *testing.T) {
	// A user type called A must not collide with the first synthetic
	// name; the namer resolves it silently by skipping ahead.
	taken := takenNames("f", []ast.Field{{Name: "x", Typ: named("A")}}, nil)
	g := newGenericNamer(taken)
	assert.Equal(t, "B", g.name(1))
	assert.Equal(t, "C", g.name(2))
	assert.Equal(t, "B", g.name(1), "identity keeps its assigned name")
}

func TestGenericNamerOverflowsToNumberedNames(t *testing.T) {
	g := newGenericNamer(nil)
	for id := uint64(0); id < 26; id++ {
		g.name(id)
	}
	assert.Equal(t, "T26", g.name(99))
}

func TestTakenNamesCoversSignatureIdentifiers(t *testing.T) {
	ret := named("Wobble")
	taken := takenNames("wibble", []ast.Field{
		{Name: "count", Typ: named("List", named("Inner"))},
	}, ret)
	for _, name := range []string{"wibble", "count", "List", "Inner", "Wobble", "fn", "match"} {
		assert.True(t, taken[name], "expected %q to be taken", name)
	}
}
