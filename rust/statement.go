package rust

import (
	"strconv"
	"strings"

	"github.com/schurhammer/gleam/ast"
)

// statement renders one top-level declaration.
func (e *emitter) statement(s ast.Statement) (string, error) {
	switch s := s.(type) {
	case *ast.Fn:
		return e.fn(s)
	case *ast.CustomType:
		return e.customType(s)
	case *ast.TypeAlias:
		return e.typeAlias(s)
	case *ast.ExternalFn:
		return e.externalFn(s)
	case *ast.ExternalType:
		return e.externalType(s)
	case *ast.Import:
		return e.importStmt(s)
	case *ast.ModuleConstant:
		return e.moduleConstant(s)
	default:
		ce := e.unsupported(s.Span(), "statement")
		ce.Decl = s.DeclName()
		return "", ce
	}
}

func (e *emitter) fn(s *ast.Fn) (string, error) {
	e.beginDecl(s.Name, takenNames(s.Name, s.Args, s.Return))

	// Collect before rendering so the parameter clause order is fixed by
	// the arguments' first occurrences, not by rendering order.
	if err := e.collectGenerics(s.Args); err != nil {
		return "", err
	}

	args := make([]string, 0, len(s.Args))
	for i, arg := range s.Args {
		name := fieldName(arg, i)
		e.bind(name)
		typ, err := e.typ(arg.Typ)
		if err != nil {
			return "", err
		}
		args = append(args, name+": "+typ)
	}
	ret, err := e.typ(s.Return)
	if err != nil {
		return "", err
	}
	body, err := e.expression(s.Body)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString(docComment(s.Doc))
	if s.Public {
		sb.WriteString("pub ")
	}
	sb.WriteString("fn " + escape(s.Name))
	// The namer now holds every generic the signature mentions; a
	// variable that only surfaced in the return type is appended after
	// the argument-ordered ones.
	if params := e.gen.params(); len(params) > 0 {
		sb.WriteString("<" + strings.Join(params, ", ") + ">")
	}
	sb.WriteString("(" + strings.Join(args, ", ") + ") -> " + ret + " {\n")
	sb.WriteString(indent(body))
	sb.WriteString("\n}\n")
	return sb.String(), nil
}

func (e *emitter) customType(s *ast.CustomType) (string, error) {
	e.beginDecl(s.Name, nil)

	// A single constructor lowers to a struct: field access and functional
	// record update are struct-only syntax in Rust, and the checker only
	// admits them on single-constructor types.
	if len(s.Constructors) == 1 {
		return e.recordType(s, s.Constructors[0])
	}

	var sb strings.Builder
	sb.WriteString(docComment(s.Doc))
	// Clone backs the always-duplicate value policy, PartialEq backs
	// literal equality tests on constructed values.
	sb.WriteString("#[derive(Debug, Clone, PartialEq)]\n")
	if s.Public {
		sb.WriteString("pub ")
	}
	sb.WriteString("enum " + escape(s.Name))
	if len(s.Params) > 0 {
		sb.WriteString("<" + strings.Join(s.Params, ", ") + ">")
	}
	sb.WriteString(" {")
	for _, c := range s.Constructors {
		ctor, err := e.constructor(c)
		if err != nil {
			return "", err
		}
		sb.WriteString("\n\t" + ctor)
	}
	sb.WriteString("\n}\n")
	return sb.String(), nil
}

// recordType renders a single-constructor type as a struct named after the
// constructor, which is the name construct and pattern sites reference. When
// the type is named differently, an alias keeps type annotations working.
func (e *emitter) recordType(s *ast.CustomType, c ast.Constructor) (string, error) {
	pub := ""
	if s.Public {
		pub = "pub "
	}
	params := ""
	if len(s.Params) > 0 {
		params = "<" + strings.Join(s.Params, ", ") + ">"
	}

	var sb strings.Builder
	sb.WriteString(docComment(s.Doc))
	sb.WriteString("#[derive(Debug, Clone, PartialEq)]\n")
	sb.WriteString(pub + "struct " + escape(c.Name) + params)
	if len(c.Fields) == 0 {
		sb.WriteString(";\n")
	} else {
		sb.WriteString(" {")
		for i, f := range c.Fields {
			typ, err := e.typ(f.Typ)
			if err != nil {
				return "", err
			}
			sb.WriteString("\n\tpub " + fieldName(f, i) + ": " + typ + ",")
		}
		sb.WriteString("\n}\n")
	}
	if c.Name != s.Name {
		sb.WriteString(pub + "type " + escape(s.Name) + params + " = " + escape(c.Name) + params + ";\n")
	}
	return sb.String(), nil
}

func (e *emitter) constructor(c ast.Constructor) (string, error) {
	if len(c.Fields) == 0 {
		return escape(c.Name) + ",", nil
	}
	var sb strings.Builder
	sb.WriteString(escape(c.Name) + " {")
	for i, f := range c.Fields {
		typ, err := e.typ(f.Typ)
		if err != nil {
			return "", err
		}
		sb.WriteString("\n\t\t" + fieldName(f, i) + ": " + typ + ",")
	}
	sb.WriteString("\n\t},")
	return sb.String(), nil
}

func (e *emitter) typeAlias(s *ast.TypeAlias) (string, error) {
	e.beginDecl(s.Name, nil)
	aliased, err := e.typ(s.Aliased)
	if err != nil {
		return "", err
	}
	out := "type " + escape(s.Name)
	if len(s.Params) > 0 {
		out += "<" + strings.Join(s.Params, ", ") + ">"
	}
	out += " = " + aliased + ";\n"
	if s.Public {
		out = "pub " + out
	}
	return out, nil
}

// externalFn renders signature only: the body lives in the foreign module,
// reached through its unmangled symbol.
func (e *emitter) externalFn(s *ast.ExternalFn) (string, error) {
	e.beginDecl(s.Name, takenNames(s.Name, s.Args, s.Return))
	args := make([]string, 0, len(s.Args))
	for i, arg := range s.Args {
		typ, err := e.typ(arg.Typ)
		if err != nil {
			return "", err
		}
		args = append(args, fieldName(arg, i)+": "+typ)
	}
	ret, err := e.typ(s.Return)
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	sb.WriteString("// implemented by " + s.Module + "." + s.Fun + "\n")
	sb.WriteString("extern \"Rust\" {\n")
	sb.WriteString("\t#[link_name = " + strconv.Quote(s.Fun) + "]\n\t")
	if s.Public {
		sb.WriteString("pub ")
	}
	sb.WriteString("fn " + escape(s.Name) + "(" + strings.Join(args, ", ") + ") -> " + ret + ";\n")
	sb.WriteString("}\n")
	return sb.String(), nil
}

// externalType renders an opaque placeholder: nothing but the name and
// arity is known to this module.
func (e *emitter) externalType(s *ast.ExternalType) (string, error) {
	e.beginDecl(s.Name, nil)
	pub := ""
	if s.Public {
		pub = "pub "
	}
	if len(s.Params) == 0 {
		return pub + "struct " + escape(s.Name) + ";\n", nil
	}
	params := strings.Join(s.Params, ", ")
	markers := make([]string, 0, len(s.Params))
	for _, p := range s.Params {
		markers = append(markers, "std::marker::PhantomData<"+p+">")
	}
	return pub + "struct " + escape(s.Name) + "<" + params + ">(" +
		strings.Join(markers, ", ") + ");\n", nil
}

// importStmt re-exports the imported module under its binding name, plus
// any unqualified names the import exposed.
func (e *emitter) importStmt(s *ast.Import) (string, error) {
	e.beginDecl(s.Module, nil)
	binding := s.Alias
	if binding == "" {
		parts := strings.Split(s.Module, "/")
		binding = parts[len(parts)-1]
	}
	path := modulePath(s.Module)
	out := "pub use " + path + " as " + escape(binding) + ";\n"
	if len(s.Unqualified) > 0 {
		names := make([]string, 0, len(s.Unqualified))
		for _, n := range s.Unqualified {
			names = append(names, escape(n))
		}
		out += "pub use " + path + "::{" + strings.Join(names, ", ") + "};\n"
	}
	return out, nil
}

func (e *emitter) moduleConstant(s *ast.ModuleConstant) (string, error) {
	e.beginDecl(s.Name, nil)
	typ, value, err := e.constParts(s)
	if err != nil {
		return "", err
	}
	out := "const " + escape(s.Name) + ": " + typ + " = " + value + ";\n"
	if s.Public {
		out = "pub " + out
	}
	return out, nil
}

// constParts renders a constant's type and value. String constants become
// &str bindings: String::from is not const-evaluable.
func (e *emitter) constParts(s *ast.ModuleConstant) (string, string, error) {
	if lit, ok := s.Value.(*ast.String); ok {
		return "&str", strconv.Quote(lit.Value), nil
	}
	typ, err := e.typ(s.Annotated)
	if err != nil {
		return "", "", err
	}
	value, err := e.expression(s.Value)
	if err != nil {
		return "", "", err
	}
	return typ, value, nil
}

func docComment(doc string) string {
	if doc == "" {
		return ""
	}
	var sb strings.Builder
	for _, line := range strings.Split(strings.TrimRight(doc, "\n"), "\n") {
		sb.WriteString("/// " + line + "\n")
	}
	return sb.String()
}
