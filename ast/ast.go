package ast

import (
	"github.com/schurhammer/gleam/token"
)

// Module is one type-checked Gleam module: the ordered list of top-level
// statements the frontend produced. Statement order is a user-visible
// contract and is preserved verbatim by the emitter.
type Module struct {
	Name       string
	Statements []Statement
}

// Statement is a top-level declaration. All statement nodes implement this.
type Statement interface {
	statementNode()
	Span() token.Span
	// DeclName is the user-facing name of the declaration, used to locate
	// emission failures.
	DeclName() string
}

// Field is a named, typed slot: a function argument or a constructor field.
// Name may be empty for positional arguments; order is significant.
type Field struct {
	Name string
	Typ  Type
}

// Constructor is one variant of a custom type.
type Constructor struct {
	Name   string
	Fields []Field
}

// Fn is a module function definition.
type Fn struct {
	Loc    token.Span
	Name   string
	Args   []Field
	Body   Expression
	Public bool
	Return Type
	Doc    string
}

func (*Fn) statementNode() {}
func (s *Fn) Span() token.Span { return s.Loc }
func (s *Fn) DeclName() string { return s.Name }

// CustomType is an algebraic data type definition.
type CustomType struct {
	Loc          token.Span
	Name         string
	Params       []string
	Public       bool
	Constructors []Constructor
	Doc          string
}

func (*CustomType) statementNode() {}
func (s *CustomType) Span() token.Span { return s.Loc }
func (s *CustomType) DeclName() string { return s.Name }

// TypeAlias names an existing type.
type TypeAlias struct {
	Loc     token.Span
	Name    string
	Params  []string
	Public  bool
	Aliased Type
}

func (*TypeAlias) statementNode() {}
func (s *TypeAlias) Span() token.Span { return s.Loc }
func (s *TypeAlias) DeclName() string { return s.Name }

// ExternalFn declares a function implemented outside the module. Module and
// Fun name the foreign implementation; there is no body to render.
type ExternalFn struct {
	Loc    token.Span
	Name   string
	Args   []Field
	Return Type
	Public bool
	Module string
	Fun    string
}

func (*ExternalFn) statementNode() {}
func (s *ExternalFn) Span() token.Span { return s.Loc }
func (s *ExternalFn) DeclName() string { return s.Name }

// ExternalType declares an opaque foreign type: only its name and arity are
// known to this module.
type ExternalType struct {
	Loc    token.Span
	Name   string
	Params []string
	Public bool
}

func (*ExternalType) statementNode() {}
func (s *ExternalType) Span() token.Span { return s.Loc }
func (s *ExternalType) DeclName() string { return s.Name }

// Import brings another module into scope, optionally renamed, optionally
// exposing a set of unqualified names.
type Import struct {
	Loc         token.Span
	Module      string
	Alias       string
	Unqualified []string
}

func (*Import) statementNode() {}
func (s *Import) Span() token.Span { return s.Loc }
func (s *Import) DeclName() string { return s.Module }

// ModuleConstant is a module-level constant binding.
type ModuleConstant struct {
	Loc       token.Span
	Name      string
	Public    bool
	Annotated Type
	Value     Expression
}

func (*ModuleConstant) statementNode() {}
func (s *ModuleConstant) Span() token.Span { return s.Loc }
func (s *ModuleConstant) DeclName() string { return s.Name }
