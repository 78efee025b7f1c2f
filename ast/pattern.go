package ast

import (
	"github.com/schurhammer/gleam/token"
)

// Pattern describes a match shape over an already-constructed value.
// Patterns never own data. All pattern nodes implement this.
type Pattern interface {
	patternNode()
	Span() token.Span
}

// PDiscard matches anything and binds nothing.
type PDiscard struct {
	Loc token.Span
}

func (*PDiscard) patternNode() {}
func (p *PDiscard) Span() token.Span { return p.Loc }

// PInt matches an integer literal.
type PInt struct {
	Loc   token.Span
	Value int64
}

func (*PInt) patternNode() {}
func (p *PInt) Span() token.Span { return p.Loc }

// PFloat matches a float literal.
type PFloat struct {
	Loc   token.Span
	Value float64
}

func (*PFloat) patternNode() {}
func (p *PFloat) Span() token.Span { return p.Loc }

// PString matches a string literal.
type PString struct {
	Loc   token.Span
	Value string
}

func (*PString) patternNode() {}
func (p *PString) Span() token.Span { return p.Loc }

// PVar matches anything and binds it to Name in the branch scope.
type PVar struct {
	Loc  token.Span
	Name string
}

func (*PVar) patternNode() {}
func (p *PVar) Span() token.Span { return p.Loc }

// PField is one named sub-pattern of a constructor destructure.
type PField struct {
	Label   string
	Pattern Pattern
}

// PConstructor destructures a value of an algebraic type. Fields keep the
// order written at the match site, which need not match the constructor's
// declared field order.
type PConstructor struct {
	Loc    token.Span
	Name   string
	Fields []PField
}

func (*PConstructor) patternNode() {}
func (p *PConstructor) Span() token.Span { return p.Loc }
