package rust

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schurhammer/gleam/ast"
)

func renderStatement(t *testing.T, s ast.Statement) string {
	t.Helper()
	e := &emitter{module: "test"}
	out, err := e.statement(s)
	require.NoError(t, err)
	return out
}

func TestRenderFn(t *testing.T) {
	out := renderStatement(t, &ast.Fn{
		Name:   "plus_one",
		Public: true,
		Args:   []ast.Field{{Name: "n", Typ: named("Int")}},
		Return: named("Int"),
		Body:   &ast.BinOp{Op: ast.AddInt, Left: varRef("n"), Right: intLit(1)},
	})
	expected := "pub fn plus_one(n: i64) -> i64 {\n" +
		"\t(n.clone() + 1)\n" +
		"}\n"
	assert.Equal(t, expected, out)
}

func TestRenderFnConcreteSignatureHasNoParameterClause(t *testing.T) {
	out := renderStatement(t, &ast.Fn{
		Name:   "double",
		Args:   []ast.Field{{Name: "n", Typ: named("Int")}},
		Return: named("Int"),
		Body:   varRef("n"),
	})
	assert.NotContains(t, out, "<")
	assert.True(t, out[:3] == "fn ", "private function must not be pub")
}

func TestRenderFnSharedGenericDeclaredOnce(t *testing.T) {
	out := renderStatement(t, &ast.Fn{
		Name:   "identity",
		Public: true,
		Args:   []ast.Field{{Name: "x", Typ: generic(1)}},
		Return: generic(1),
		Body:   varRef("x"),
	})
	expected := "pub fn identity<A>(x: A) -> A {\n" +
		"\tx.clone()\n" +
		"}\n"
	assert.Equal(t, expected, out)
}

func TestRenderFnReturnOnlyGenericAppendedLast(t *testing.T) {
	out := renderStatement(t, &ast.Fn{
		Name:   "coerce",
		Public: true,
		Args:   []ast.Field{{Name: "x", Typ: generic(8)}},
		Return: generic(3),
		Body:   &ast.Todo{},
	})
	expected := "pub fn coerce<A, B>(x: A) -> B {\n" +
		"\ttodo!()\n" +
		"}\n"
	assert.Equal(t, expected, out)
}

func TestRenderFnDocComment(t *testing.T) {
	out := renderStatement(t, &ast.Fn{
		Name:   "plus_one",
		Public: true,
		Args:   []ast.Field{{Name: "n", Typ: named("Int")}},
		Return: named("Int"),
		Body:   varRef("n"),
		Doc:    "Adds one to an int.",
	})
	assert.True(t, len(out) > 0)
	assert.Contains(t, out, "/// Adds one to an int.\npub fn plus_one")
}

func TestRenderCustomType(t *testing.T) {
	out := renderStatement(t, &ast.CustomType{
		Name:   "List",
		Params: []string{"a"},
		Public: true,
		Constructors: []ast.Constructor{
			{Name: "Empty"},
			{Name: "Cons", Fields: []ast.Field{
				{Name: "item", Typ: named("a")},
				{Name: "next", Typ: named("Rc", named("List", named("a")))},
			}},
		},
	})
	expected := "#[derive(Debug, Clone, PartialEq)]\n" +
		"pub enum List<a> {\n" +
		"\tEmpty,\n" +
		"\tCons {\n" +
		"\t\titem: a,\n" +
		"\t\tnext: Rc<List<a>>,\n" +
		"\t},\n" +
		"}\n"
	assert.Equal(t, expected, out)
}

func TestRenderSingleConstructorTypeLowersToStruct(t *testing.T) {
	out := renderStatement(t, &ast.CustomType{
		Name:   "Point",
		Public: true,
		Constructors: []ast.Constructor{
			{Name: "Point", Fields: []ast.Field{
				{Name: "x", Typ: named("Int")},
				{Name: "y", Typ: named("Int")},
			}},
		},
	})
	expected := "#[derive(Debug, Clone, PartialEq)]\n" +
		"pub struct Point {\n" +
		"\tpub x: i64,\n" +
		"\tpub y: i64,\n" +
		"}\n"
	assert.Equal(t, expected, out)
}

func TestRenderSingleConstructorTypeAliasesRenamedConstructor(t *testing.T) {
	out := renderStatement(t, &ast.CustomType{
		Name:   "Wrapper",
		Params: []string{"a"},
		Public: true,
		Constructors: []ast.Constructor{
			{Name: "Box", Fields: []ast.Field{
				{Name: "inner", Typ: named("a")},
			}},
		},
	})
	expected := "#[derive(Debug, Clone, PartialEq)]\n" +
		"pub struct Box<a> {\n" +
		"\tpub inner: a,\n" +
		"}\n" +
		"pub type Wrapper<a> = Box<a>;\n"
	assert.Equal(t, expected, out)
}

func TestRenderSingleConstructorTypeWithoutFields(t *testing.T) {
	out := renderStatement(t, &ast.CustomType{
		Name:         "Unit",
		Public:       true,
		Constructors: []ast.Constructor{{Name: "Unit"}},
	})
	assert.Equal(t, "#[derive(Debug, Clone, PartialEq)]\npub struct Unit;\n", out)
}

func TestRenderCustomTypeWithoutParams(t *testing.T) {
	out := renderStatement(t, &ast.CustomType{
		Name:   "Direction",
		Public: true,
		Constructors: []ast.Constructor{
			{Name: "North"}, {Name: "South"},
		},
	})
	expected := "#[derive(Debug, Clone, PartialEq)]\n" +
		"pub enum Direction {\n" +
		"\tNorth,\n" +
		"\tSouth,\n" +
		"}\n"
	assert.Equal(t, expected, out)
}

func TestRenderTypeAlias(t *testing.T) {
	out := renderStatement(t, &ast.TypeAlias{
		Name:   "Headers",
		Public: true,
		Aliased: named("List", &ast.TTuple{
			Elems: []ast.Type{named("String"), named("String")},
		}),
	})
	assert.Equal(t, "pub type Headers = List<(String, String)>;\n", out)
}

func TestRenderExternalFn(t *testing.T) {
	out := renderStatement(t, &ast.ExternalFn{
		Name:   "print",
		Public: true,
		Args:   []ast.Field{{Typ: named("String")}},
		Return: named("Nil"),
		Module: "gleam_stdlib",
		Fun:    "io_print",
	})
	expected := "// implemented by gleam_stdlib.io_print\n" +
		"extern \"Rust\" {\n" +
		"\t#[link_name = \"io_print\"]\n" +
		"\tpub fn print(_0: String) -> ();\n" +
		"}\n"
	assert.Equal(t, expected, out)
}

func TestRenderExternalType(t *testing.T) {
	plain := renderStatement(t, &ast.ExternalType{Name: "Connection", Public: true})
	assert.Equal(t, "pub struct Connection;\n", plain)

	applied := renderStatement(t, &ast.ExternalType{
		Name:   "Queue",
		Public: true,
		Params: []string{"a"},
	})
	assert.Equal(t, "pub struct Queue<a>(std::marker::PhantomData<a>);\n", applied)
}

func TestRenderImport(t *testing.T) {
	plain := renderStatement(t, &ast.Import{Module: "gleam/list"})
	assert.Equal(t, "pub use crate::gleam_list as list;\n", plain)

	full := renderStatement(t, &ast.Import{
		Module:      "gleam/result",
		Alias:       "res",
		Unqualified: []string{"map", "unwrap"},
	})
	expected := "pub use crate::gleam_result as res;\n" +
		"pub use crate::gleam_result::{map, unwrap};\n"
	assert.Equal(t, expected, full)
}

func TestRenderModuleConstant(t *testing.T) {
	number := renderStatement(t, &ast.ModuleConstant{
		Name:      "answer",
		Public:    true,
		Annotated: named("Int"),
		Value:     intLit(42),
	})
	assert.Equal(t, "pub const answer: i64 = 42;\n", number)

	// String constants bind a literal directly: String::from is not
	// const-evaluable.
	text := renderStatement(t, &ast.ModuleConstant{
		Name:      "version",
		Annotated: named("String"),
		Value:     strLit("1.0.0"),
	})
	assert.Equal(t, `const version: &str = "1.0.0";`+"\n", text)
}
