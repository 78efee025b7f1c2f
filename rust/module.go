package rust

import (
	"strings"

	"github.com/schurhammer/gleam/ast"
)

// Emit renders a type-checked module as Rust source. Statements are
// rendered in declaration order and joined by a blank line; the order
// carries no compilation semantics but is a user-visible contract.
//
// The first failing declaration aborts the whole module: no text is
// returned alongside an error, so a driver can never hand partial output to
// the Rust toolchain.
func Emit(m *ast.Module) (string, error) {
	e := &emitter{module: m.Name}
	parts := make([]string, 0, len(m.Statements)+1)
	parts = append(parts, moduleHeader(m.Name))
	for _, s := range m.Statements {
		out, err := e.statement(s)
		if err != nil {
			return "", err
		}
		parts = append(parts, strings.TrimRight(out, "\n")+"\n")
	}
	return strings.Join(parts, "\n"), nil
}

func moduleHeader(name string) string {
	return "// Generated by the gleam compiler from module `" + name + "`. Do not edit.\n" +
		"use crate::prelude::*;\n"
}
