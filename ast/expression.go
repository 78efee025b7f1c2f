package ast

import (
	"github.com/schurhammer/gleam/token"
)

// Expression is an executable expression node. Sub-expression order is
// semantically significant (left-to-right evaluation) and must survive
// rendering unchanged.
type Expression interface {
	expressionNode()
	Span() token.Span
}

// Int is an integer literal.
type Int struct {
	Loc   token.Span
	Value int64
}

func (*Int) expressionNode() {}
func (e *Int) Span() token.Span { return e.Loc }

// Float is a floating point literal.
type Float struct {
	Loc   token.Span
	Value float64
}

func (*Float) expressionNode() {}
func (e *Float) Span() token.Span { return e.Loc }

// String is a string literal. Value is unescaped source text.
type String struct {
	Loc   token.Span
	Value string
}

func (*String) expressionNode() {}
func (e *String) Span() token.Span { return e.Loc }

// Var is a reference to a bound name.
type Var struct {
	Loc  token.Span
	Name string
}

func (*Var) expressionNode() {}
func (e *Var) Span() token.Span { return e.Loc }

// Seq is an ordered sequence of expressions executed for effect; the last
// one is the sequence's value.
type Seq struct {
	Loc   token.Span
	Exprs []Expression
}

func (*Seq) expressionNode() {}
func (e *Seq) Span() token.Span { return e.Loc }

// CallArg is one call-site argument. Label is set when the call site used a
// labelled argument; the type checker has already placed the argument at its
// positional slot, so the label is informational by the time it reaches the
// emitter.
type CallArg struct {
	Label string
	Value Expression
}

// Call applies a callee to an ordered argument list.
type Call struct {
	Loc  token.Span
	Fn   Expression
	Args []CallArg
}

func (*Call) expressionNode() {}
func (e *Call) Span() token.Span { return e.Loc }

// BinOpKind is the operator tag of a binary operation. Tags are typed: the
// checker resolves e.g. `/` to DivInt or DivFloat, and the emitter maps each
// tag to the target operator with matching semantics.
type BinOpKind int

const (
	And BinOpKind = iota
	Or
	Eq
	NotEq
	LtInt
	LtEqInt
	LtFloat
	LtEqFloat
	GtInt
	GtEqInt
	GtFloat
	GtEqFloat
	AddInt
	AddFloat
	SubInt
	SubFloat
	MultInt
	MultFloat
	DivInt
	DivFloat
	ModuloInt
	Concat
)

// BinOp is a binary operation over two operands.
type BinOp struct {
	Loc   token.Span
	Op    BinOpKind
	Left  Expression
	Right Expression
}

func (*BinOp) expressionNode() {}
func (e *BinOp) Span() token.Span { return e.Loc }

// AnonFn is an anonymous function value.
type AnonFn struct {
	Loc  token.Span
	Args []Field
	Body Expression
}

func (*AnonFn) expressionNode() {}
func (e *AnonFn) Span() token.Span { return e.Loc }

// List is a list literal, optionally spread onto a tail list.
type List struct {
	Loc   token.Span
	Elems []Expression
	Tail  Expression // nil when the literal ends in the empty list
}

func (*List) expressionNode() {}
func (e *List) Span() token.Span { return e.Loc }

// Let binds a pattern to a value. Assert marks `let assert`, which panics
// when the pattern does not match instead of being rejected as irrefutable.
type Let struct {
	Loc     token.Span
	Pattern Pattern
	Value   Expression
	Assert  bool
}

func (*Let) expressionNode() {}
func (e *Let) Span() token.Span { return e.Loc }

// Try unwraps a Result value: on Ok the inner value is bound to Pattern and
// Then continues, on Error the enclosing function returns early.
type Try struct {
	Loc     token.Span
	Pattern Pattern
	Value   Expression
	Then    Expression
}

func (*Try) expressionNode() {}
func (e *Try) Span() token.Span { return e.Loc }

// Clause is one branch of a Case. Patterns holds one or more alternative
// pattern rows; each row has exactly one pattern per case subject.
type Clause struct {
	Patterns [][]Pattern
	Body     Expression
}

// Case matches one or more subjects against clauses in source order;
// the first matching clause wins. Exhaustiveness was verified upstream.
type Case struct {
	Loc      token.Span
	Subjects []Expression
	Clauses  []Clause
}

func (*Case) expressionNode() {}
func (e *Case) Span() token.Span { return e.Loc }

// FieldAccess reads a named field from a record value. The checker only
// admits it on single-constructor types, which lower to structs.
type FieldAccess struct {
	Loc       token.Span
	Container Expression
	Label     string
}

func (*FieldAccess) expressionNode() {}
func (e *FieldAccess) Span() token.Span { return e.Loc }

// ModuleSelect is a qualified reference into another module.
type ModuleSelect struct {
	Loc    token.Span
	Module string
	Label  string
}

func (*ModuleSelect) expressionNode() {}
func (e *ModuleSelect) Span() token.Span { return e.Loc }

// Tuple constructs a tuple value.
type Tuple struct {
	Loc   token.Span
	Elems []Expression
}

func (*Tuple) expressionNode() {}
func (e *Tuple) Span() token.Span { return e.Loc }

// TupleIndex reads element Index of a tuple value.
type TupleIndex struct {
	Loc   token.Span
	Tuple Expression
	Index int
}

func (*TupleIndex) expressionNode() {}
func (e *TupleIndex) Span() token.Span { return e.Loc }

// Todo is the placeholder marker: a hole the programmer deferred. It type
// checks at any type and traps at runtime.
type Todo struct {
	Loc   token.Span
	Label string
}

func (*Todo) expressionNode() {}
func (e *Todo) Span() token.Span { return e.Loc }

// SegmentOption is a bit-string segment modifier (size, unit, endianness...).
// The Rust renderer only supports plain byte-sized int segments; any option
// makes the segment unsupported.
type SegmentOption struct {
	Name  string
	Value Expression // nil for bare options
}

// Segment is one value of a bit-string literal.
type Segment struct {
	Value   Expression
	Options []SegmentOption
}

// BitString is a bit-string literal built from ordered segments.
type BitString struct {
	Loc      token.Span
	Segments []Segment
}

func (*BitString) expressionNode() {}
func (e *BitString) Span() token.Span { return e.Loc }

// RecordField is a labelled field value in a Construct or RecordUpdate.
type RecordField struct {
	Label string
	Value Expression
}

// RecordUpdate copies Base overriding the listed fields.
type RecordUpdate struct {
	Loc      token.Span
	TypeName string
	Base     Expression
	Fields   []RecordField
}

func (*RecordUpdate) expressionNode() {}
func (e *RecordUpdate) Span() token.Span { return e.Loc }

// Construct builds a value of an algebraic type. Name is the constructor
// reference exactly as the target should see it (the frontend qualifies it);
// Fields keep call-site order, which the emitter must not normalise to the
// constructor's declared order.
type Construct struct {
	Loc    token.Span
	Name   string
	Fields []RecordField
}

func (*Construct) expressionNode() {}
func (e *Construct) Span() token.Span { return e.Loc }

// NegateKind selects the unary negation flavour.
type NegateKind int

const (
	NegateBool NegateKind = iota
	NegateInt
)

// Negate is unary negation over a bool or int operand.
type Negate struct {
	Loc   token.Span
	Kind  NegateKind
	Value Expression
}

func (*Negate) expressionNode() {}
func (e *Negate) Span() token.Span { return e.Loc }

// Pipeline threads First through Rest left to right: each step is called
// with the previous step's value.
type Pipeline struct {
	Loc   token.Span
	First Expression
	Rest  []Expression
}

func (*Pipeline) expressionNode() {}
func (e *Pipeline) Span() token.Span { return e.Loc }
