package rust

// ScopeKind tells whether a scope belongs to a whole declaration or to a
// single match branch.
type ScopeKind int

const (
	DeclScope ScopeKind = iota
	BranchScope
)

// Scope tracks the names a declaration or match branch has introduced into
// the emitted text, so tests and the generic namer can see what a branch
// body may legally reference.
type Scope struct {
	Names map[string]struct{}
	Kind  ScopeKind
}

func NewScope(kind ScopeKind) Scope {
	return Scope{
		Names: make(map[string]struct{}),
		Kind:  kind,
	}
}

func PushScope(scopes *[]Scope, kind ScopeKind) {
	*scopes = append(*scopes, NewScope(kind))
}

func PopScope(scopes *[]Scope) {
	if len(*scopes) == 1 {
		panic("cannot pop declaration scope")
	}
	*scopes = (*scopes)[:len(*scopes)-1]
}

// Put records a binding in the innermost scope. It does not need a pointer,
// as it modifies the map within a scope, not the slice itself.
func Put(scopes []Scope, name string) {
	scopes[len(scopes)-1].Names[name] = struct{}{}
}

// Bound reports whether name is visible from the innermost scope. The search
// stops at the declaration boundary: declarations never capture each other's
// bindings.
func Bound(scopes []Scope, name string) bool {
	for i := len(scopes) - 1; i >= 0; i-- {
		if _, ok := scopes[i].Names[name]; ok {
			return true
		}
		if scopes[i].Kind == DeclScope {
			break
		}
	}
	return false
}
