package ast

import (
	"github.com/schurhammer/gleam/token"
)

// Type is the checked type attached to IR nodes. It is one of TNamed, TVar,
// TFn or TTuple. The emitter never constructs types; it only reads the graph
// the type checker produced.
type Type interface {
	typeNode()
	Span() token.Span
}

// TNamed is a (possibly parameterised) type constructor application, e.g.
// Int, List(a), Result(a, e). Zero Args means a non-parametric type.
type TNamed struct {
	Loc  token.Span
	Name string
	Args []Type
}

func (*TNamed) typeNode() {}
func (t *TNamed) Span() token.Span { return t.Loc }

// TFn is the type of a function value.
type TFn struct {
	Loc  token.Span
	Args []Type
	Ret  Type
}

func (*TFn) typeNode() {}
func (t *TFn) Span() token.Span { return t.Loc }

// TTuple is the type of a tuple value.
type TTuple struct {
	Loc   token.Span
	Elems []Type
}

func (*TTuple) typeNode() {}
func (t *TTuple) Span() token.Span { return t.Loc }

// TVar is a type variable. Its Ref is the variable's state after unification:
// a Link forwarding to another type, or a Generic/Unbound identity.
//
// Link chains are produced by unification and must be dereferenced
// transitively before any rendering decision. The type checker guarantees
// the chains are acyclic; the emitter still bounds the walk so a checker
// defect surfaces as a diagnostic instead of a hang.
type TVar struct {
	Loc token.Span
	Ref TypeVarRef
}

func (*TVar) typeNode() {}
func (t *TVar) Span() token.Span { return t.Loc }

// TypeVarRef is the state of a type variable: Link, Generic or Unbound.
type TypeVarRef interface {
	typeVarRef()
}

// Link forwards to the type the variable was unified with.
type Link struct {
	To Type
}

func (Link) typeVarRef() {}

// Generic is a universally quantified variable scoped to the enclosing
// declaration. ID is stable within one module.
type Generic struct {
	ID uint64
}

func (Generic) typeVarRef() {}

// Unbound is a variable inference never constrained. The emitter treats it
// exactly like Generic: it can never trigger further inference.
type Unbound struct {
	ID uint64
}

func (Unbound) typeVarRef() {}
