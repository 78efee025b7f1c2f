package token

import (
	"fmt"
	"strconv"
)

// Pos is a byte offset into a module's source text. The frontend produces
// offsets; mapping them back to line/column is a frontend concern.
type Pos int

// Span is the half-open source region [Start, End) an IR node was checked
// against. The emitter only carries spans through to diagnostics.
type Span struct {
	Start Pos
	End   Pos
}

func (s Span) String() string {
	return strconv.Itoa(int(s.Start)) + ".." + strconv.Itoa(int(s.End))
}

// ErrKind classifies emission failures.
type ErrKind int

const (
	// ErrUnsupported marks an IR construct the emitter has no rendering
	// rule for. Emission of the enclosing module must stop.
	ErrUnsupported ErrKind = iota
	// ErrMalformedLink marks a type-variable link chain that did not
	// terminate. This signals a type-checker defect and is fatal.
	ErrMalformedLink
	// ErrIO marks driver-side failures (artifact decode, file writes).
	ErrIO
)

var errKinds = [...]string{
	ErrUnsupported:   "unsupported construct",
	ErrMalformedLink: "malformed type link",
	ErrIO:            "io",
}

func (k ErrKind) String() string {
	if 0 <= int(k) && int(k) < len(errKinds) {
		return errKinds[k]
	}
	return "error(" + strconv.Itoa(int(k)) + ")"
}

// CompileError is the structured error every stage reports. Decl names the
// enclosing declaration so a failure can be located without line info.
type CompileError struct {
	Span Span
	Kind ErrKind
	Decl string
	Msg  string
}

func (ce *CompileError) Error() string {
	if ce.Decl == "" {
		return fmt.Sprintf("%s: %s (at %s)", ce.Kind, ce.Msg, ce.Span)
	}
	return fmt.Sprintf("%s: %s in %s (at %s)", ce.Kind, ce.Msg, ce.Decl, ce.Span)
}

// Unsupported builds the error for an IR variant with no rendering rule.
func Unsupported(span Span, construct string) *CompileError {
	return &CompileError{
		Span: span,
		Kind: ErrUnsupported,
		Msg:  "no rendering rule for " + construct,
	}
}
