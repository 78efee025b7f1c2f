package rust

import (
	"strconv"

	"github.com/schurhammer/gleam/ast"
)

// genericNamer assigns the synthetic Rust names for the generic type
// variables of one declaration. The same variable identity always gets the
// same name, names are handed out in first-occurrence order, and a candidate
// already taken by a user-level identifier is skipped so a collision never
// reaches the output. A fresh namer is made at every declaration boundary.
type genericNamer struct {
	names map[uint64]string
	order []uint64
	taken map[string]bool
	next  int
}

func newGenericNamer(taken map[string]bool) *genericNamer {
	if taken == nil {
		taken = make(map[string]bool)
	}
	return &genericNamer{
		names: make(map[uint64]string),
		taken: taken,
	}
}

func (g *genericNamer) name(id uint64) string {
	if n, ok := g.names[id]; ok {
		return n
	}
	n := g.fresh()
	g.names[id] = n
	g.order = append(g.order, id)
	return n
}

func (g *genericNamer) fresh() string {
	for {
		var cand string
		if g.next < 26 {
			cand = string(rune('A' + g.next))
		} else {
			cand = "T" + strconv.Itoa(g.next)
		}
		g.next++
		if !g.taken[cand] {
			g.taken[cand] = true
			return cand
		}
	}
}

// params returns the declared parameter list in first-occurrence order.
func (g *genericNamer) params() []string {
	out := make([]string, 0, len(g.order))
	for _, id := range g.order {
		out = append(out, g.names[id])
	}
	return out
}

// collectGenerics scans the argument types of a declaration, registering
// every Generic/Unbound identity with the namer exactly once, in
// first-occurrence order. A variable shared by several arguments still
// appears once: the namer dedupes by identity.
func (e *emitter) collectGenerics(args []ast.Field) error {
	for _, arg := range args {
		if err := e.scanType(arg.Typ); err != nil {
			return err
		}
	}
	return nil
}

// scanType walks a type bottom-up registering every generic identity it
// meets, resolving links as it goes.
func (e *emitter) scanType(t ast.Type) error {
	t, cerr := resolve(t)
	if cerr != nil {
		cerr.Decl = e.decl
		return cerr
	}
	switch t := t.(type) {
	case *ast.TNamed:
		for _, a := range t.Args {
			if err := e.scanType(a); err != nil {
				return err
			}
		}
	case *ast.TVar:
		switch ref := t.Ref.(type) {
		case ast.Generic:
			e.gen.name(ref.ID)
		case ast.Unbound:
			e.gen.name(ref.ID)
		}
	case *ast.TFn:
		for _, a := range t.Args {
			if err := e.scanType(a); err != nil {
				return err
			}
		}
		return e.scanType(t.Ret)
	case *ast.TTuple:
		for _, el := range t.Elems {
			if err := e.scanType(el); err != nil {
				return err
			}
		}
	}
	return nil
}

// takenNames gathers the user-level identifiers of a declaration signature,
// so synthetic generic names cannot collide with them. Rust keywords are
// blocked too.
func takenNames(declName string, args []ast.Field, ret ast.Type) map[string]bool {
	taken := make(map[string]bool)
	for _, r := range reservedNames {
		taken[r] = true
	}
	taken[declName] = true
	for _, arg := range args {
		if arg.Name != "" {
			taken[arg.Name] = true
		}
		typeNames(arg.Typ, taken)
	}
	if ret != nil {
		typeNames(ret, taken)
	}
	return taken
}

func typeNames(t ast.Type, taken map[string]bool) {
	switch t := t.(type) {
	case *ast.TNamed:
		taken[t.Name] = true
		taken[rustTypeName(t.Name)] = true
		for _, a := range t.Args {
			typeNames(a, taken)
		}
	case *ast.TVar:
		// Follow links with the bounded resolver; a malformed chain is
		// reported later by the scan proper.
		if r, cerr := resolve(t); cerr == nil {
			if _, ok := r.(*ast.TVar); !ok {
				typeNames(r, taken)
			}
		}
	case *ast.TFn:
		for _, a := range t.Args {
			typeNames(a, taken)
		}
		typeNames(t.Ret, taken)
	case *ast.TTuple:
		for _, el := range t.Elems {
			typeNames(el, taken)
		}
	}
}
