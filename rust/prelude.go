package rust

import "strings"

// Prelude is the support code every generated crate carries: the list
// representation the expression renderer constructs, and the Rc alias its
// cells share structure through. The driver writes it once per crate as
// src/prelude.rs.
const Prelude = `pub use std::rc::Rc;

#[derive(Debug, Clone, PartialEq)]
pub enum List<T> {
	Empty,
	Cons {
		item: T,
		next: Rc<List<T>>,
	},
}
`

// CrateRoot renders the generated crate's lib.rs: crate-wide lint allows
// (generated code keeps Gleam's naming, not Rust's), the prelude, and one
// `mod` per emitted module in emission order.
func CrateRoot(modules []string) string {
	var sb strings.Builder
	sb.WriteString("#![allow(dead_code, unused_variables, non_snake_case, non_camel_case_types, non_upper_case_globals)]\n\n")
	sb.WriteString("pub mod prelude;\n")
	for _, m := range modules {
		sb.WriteString("pub mod " + strings.ReplaceAll(m, "/", "_") + ";\n")
	}
	return sb.String()
}
