package rust

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schurhammer/gleam/ast"
)

func TestRenderPattern(t *testing.T) {
	tests := []struct {
		name     string
		pattern  ast.Pattern
		expected string
	}{
		{"wildcard", &ast.PDiscard{}, "_"},
		{"int literal keeps width suffix", &ast.PInt{Value: 42}, "42i64"},
		{"negative int", &ast.PInt{Value: -7}, "-7i64"},
		{"float literal", &ast.PFloat{Value: 1.5}, "1.5f64"},
		{"whole float", &ast.PFloat{Value: 2}, "2.0f64"},
		{"string literal", &ast.PString{Value: "ok"}, `"ok"`},
		{"variable bind", &ast.PVar{Name: "x"}, "x"},
		{"keyword variable escaped", &ast.PVar{Name: "type"}, "r#type"},
		{"bare constructor", &ast.PConstructor{Name: "List::Empty"}, "List::Empty"},
		{
			"constructor with fields",
			&ast.PConstructor{Name: "Point", Fields: []ast.PField{
				{Label: "x", Pattern: &ast.PVar{Name: "a"}},
				{Label: "y", Pattern: &ast.PVar{Name: "b"}},
			}},
			"Point { x: a, y: b }",
		},
		{
			// Field order is the match site's, even when it disagrees
			// with the constructor's declared order.
			"reordered fields preserved",
			&ast.PConstructor{Name: "Point", Fields: []ast.PField{
				{Label: "y", Pattern: &ast.PVar{Name: "b"}},
				{Label: "x", Pattern: &ast.PVar{Name: "a"}},
			}},
			"Point { y: b, x: a }",
		},
		{
			"nested patterns",
			&ast.PConstructor{Name: "List::Cons", Fields: []ast.PField{
				{Label: "item", Pattern: &ast.PInt{Value: 1}},
				{Label: "next", Pattern: &ast.PDiscard{}},
			}},
			"List::Cons { item: 1i64, next: _ }",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEmitter()
			out, err := e.pattern(tt.pattern)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, out)
		})
	}
}

func TestPatternBindsIntoBranchScope(t *testing.T) {
	e := newTestEmitter()
	PushScope(&e.scopes, BranchScope)

	_, err := e.pattern(&ast.PConstructor{Name: "Point", Fields: []ast.PField{
		{Label: "x", Pattern: &ast.PVar{Name: "a"}},
		{Label: "y", Pattern: &ast.PDiscard{}},
	}})
	require.NoError(t, err)

	assert.True(t, Bound(e.scopes, "a"), "pattern variable must be in scope before the body renders")
	assert.False(t, Bound(e.scopes, "y"), "field labels are not bindings")

	PopScope(&e.scopes)
	assert.False(t, Bound(e.scopes, "a"), "branch bindings do not outlive the branch")
}
