package rust

import (
	"strconv"
	"strings"

	"github.com/schurhammer/gleam/ast"
)

// pattern renders a match shape. Variable binds are registered into the
// innermost scope before the branch body is rendered, so the body renderer
// sees every name the pattern introduced.
func (e *emitter) pattern(p ast.Pattern) (string, error) {
	switch p := p.(type) {
	case *ast.PDiscard:
		return "_", nil
	case *ast.PInt:
		// Width suffix keeps literal patterns typed the same as the
		// values they match.
		return strconv.FormatInt(p.Value, 10) + "i64", nil
	case *ast.PFloat:
		return floatLiteral(p.Value) + "f64", nil
	case *ast.PString:
		return strconv.Quote(p.Value), nil
	case *ast.PVar:
		name := escape(p.Name)
		e.bind(name)
		return name, nil
	case *ast.PConstructor:
		if len(p.Fields) == 0 {
			return escape(p.Name), nil
		}
		fields := make([]string, 0, len(p.Fields))
		// Field order is the match site's, not the constructor's.
		for _, f := range p.Fields {
			sub, err := e.pattern(f.Pattern)
			if err != nil {
				return "", err
			}
			fields = append(fields, escape(f.Label)+": "+sub)
		}
		return escape(p.Name) + " { " + strings.Join(fields, ", ") + " }", nil
	default:
		return "", e.unsupported(p.Span(), "pattern")
	}
}

// floatLiteral prints a float so Rust reads it back as the same value, with
// a decimal point even for whole numbers.
func floatLiteral(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}
