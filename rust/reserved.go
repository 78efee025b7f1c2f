package rust

// Rust keywords, including ones reserved for future use. A Gleam identifier
// that lands on one of these must not be emitted verbatim.
var reservedNames = []string{
	"as", "async", "await", "break", "const", "continue", "crate", "dyn",
	"else", "enum", "extern", "false", "fn", "for", "if", "impl", "in",
	"let", "loop", "match", "mod", "move", "mut", "pub", "ref", "return",
	"self", "Self", "static", "struct", "super", "trait", "true", "type",
	"union", "unsafe", "use", "where", "while",
	"abstract", "become", "box", "do", "final", "macro", "override", "priv",
	"try", "typeof", "unsized", "virtual", "yield",
}

// Keywords the raw-identifier syntax cannot rescue.
var noRawNames = []string{"self", "Self", "super", "crate"}

var reservedSet = func() map[string]struct{} {
	m := make(map[string]struct{}, len(reservedNames))
	for _, n := range reservedNames {
		m[n] = struct{}{}
	}
	return m
}()

var noRawSet = func() map[string]struct{} {
	m := make(map[string]struct{}, len(noRawNames))
	for _, n := range noRawNames {
		m[n] = struct{}{}
	}
	return m
}()

// IsReserved reports whether name is a Rust keyword.
func IsReserved(name string) bool {
	_, ok := reservedSet[name]
	return ok
}

// escape rewrites a user identifier so Rust accepts it: keywords become raw
// identifiers (r#type), the few keywords raw syntax cannot express get an
// underscore suffix. Everything else passes through untouched.
func escape(name string) string {
	if _, ok := noRawSet[name]; ok {
		return name + "_"
	}
	if IsReserved(name) {
		return "r#" + name
	}
	return name
}
