package rust

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/schurhammer/gleam/ast"
)

// expression renders an executable expression. It is total over the
// Expression union: a variant without a rendering rule fails fast with an
// unsupported-construct error instead of emitting text the Rust toolchain
// cannot compile.
func (e *emitter) expression(x ast.Expression) (string, error) {
	switch x := x.(type) {
	case *ast.Int:
		return strconv.FormatInt(x.Value, 10), nil
	case *ast.Float:
		return floatLiteral(x.Value), nil
	case *ast.String:
		// Gleam strings are owned values; a borrowed &str literal
		// would leak borrow semantics into generated code.
		return "String::from(" + strconv.Quote(x.Value) + ")", nil
	case *ast.Var:
		// Always duplicate. Correct for every type that derives
		// Clone, at the cost of redundant copies; a move analysis
		// can relax this later without touching the renderer.
		return escape(x.Name) + ".clone()", nil
	case *ast.Seq:
		return e.sequence(x.Exprs)
	case *ast.Call:
		return e.call(x)
	case *ast.BinOp:
		return e.binOp(x)
	case *ast.AnonFn:
		return e.anonFn(x)
	case *ast.List:
		return e.list(x)
	case *ast.Let:
		return e.let(x)
	case *ast.Try:
		return e.try(x)
	case *ast.Case:
		return e.caseExpr(x)
	case *ast.FieldAccess:
		place, err := e.place(x)
		if err != nil {
			return "", err
		}
		return place + ".clone()", nil
	case *ast.TupleIndex:
		place, err := e.place(x)
		if err != nil {
			return "", err
		}
		return place + ".clone()", nil
	case *ast.ModuleSelect:
		return modulePath(x.Module) + "::" + escape(x.Label), nil
	case *ast.Tuple:
		elems, err := e.expressionList(x.Elems)
		if err != nil {
			return "", err
		}
		if len(x.Elems) == 1 {
			return "(" + elems[0] + ",)", nil
		}
		return "(" + strings.Join(elems, ", ") + ")", nil
	case *ast.Todo:
		if x.Label == "" {
			return "todo!()", nil
		}
		return "todo!(" + strconv.Quote(x.Label) + ")", nil
	case *ast.BitString:
		return e.bitString(x)
	case *ast.RecordUpdate:
		return e.recordUpdate(x)
	case *ast.Construct:
		return e.construct(x)
	case *ast.Negate:
		v, err := e.expression(x.Value)
		if err != nil {
			return "", err
		}
		if x.Kind == ast.NegateInt {
			return "(-" + v + ")", nil
		}
		return "(!" + v + ")", nil
	case *ast.Pipeline:
		return e.pipeline(x)
	default:
		return "", e.unsupported(x.Span(), "expression kind "+exprKind(x))
	}
}

func (e *emitter) expressionList(xs []ast.Expression) ([]string, error) {
	out := make([]string, 0, len(xs))
	for _, x := range xs {
		s, err := e.expression(x)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

// sequence joins sub-expressions with the statement separator; the last one
// sits in the value position of the enclosing block.
func (e *emitter) sequence(xs []ast.Expression) (string, error) {
	rendered, err := e.expressionList(xs)
	if err != nil {
		return "", err
	}
	return strings.Join(rendered, ";\n"), nil
}

// callee renders the function position of a call. A bare variable or
// qualified reference is named directly (cloning a function just to call it
// is never needed); anything else is parenthesised.
func (e *emitter) callee(x ast.Expression) (string, error) {
	switch x := x.(type) {
	case *ast.Var:
		return escape(x.Name), nil
	case *ast.ModuleSelect:
		return modulePath(x.Module) + "::" + escape(x.Label), nil
	default:
		s, err := e.expression(x)
		if err != nil {
			return "", err
		}
		return "(" + s + ")", nil
	}
}

func (e *emitter) call(x *ast.Call) (string, error) {
	callee, err := e.callee(x.Fn)
	if err != nil {
		return "", err
	}
	args := make([]string, 0, len(x.Args))
	// Labels are resolved to positional order: the type checker already
	// placed each labelled argument at its declared slot, and Rust has no
	// named call syntax to preserve them into.
	for _, arg := range x.Args {
		s, err := e.expression(arg.Value)
		if err != nil {
			return "", err
		}
		args = append(args, s)
	}
	return callee + "(" + strings.Join(args, ", ") + ")", nil
}

var binOps = map[ast.BinOpKind]string{
	ast.And:       "&&",
	ast.Or:        "||",
	ast.Eq:        "==",
	ast.NotEq:     "!=",
	ast.LtInt:     "<",
	ast.LtEqInt:   "<=",
	ast.LtFloat:   "<",
	ast.LtEqFloat: "<=",
	ast.GtInt:     ">",
	ast.GtEqInt:   ">=",
	ast.GtFloat:   ">",
	ast.GtEqFloat: ">=",
	ast.AddInt:    "+",
	ast.AddFloat:  "+",
	ast.SubInt:    "-",
	ast.SubFloat:  "-",
	ast.MultInt:   "*",
	ast.MultFloat: "*",
	ast.DivInt:    "/",
	ast.DivFloat:  "/",
	ast.ModuloInt: "%",
}

// binOp renders fully parenthesised so evaluation order survives any
// difference between source and target precedence tables.
func (e *emitter) binOp(x *ast.BinOp) (string, error) {
	left, err := e.expression(x.Left)
	if err != nil {
		return "", err
	}
	right, err := e.expression(x.Right)
	if err != nil {
		return "", err
	}
	if x.Op == ast.Concat {
		// String + String has no Rust infix with matching semantics:
		// `+` wants String + &str and moves its left operand.
		return "format!(\"{}{}\", " + left + ", " + right + ")", nil
	}
	op, ok := binOps[x.Op]
	if !ok {
		return "", e.unsupported(x.Span(), "binary operator")
	}
	return "(" + left + " " + op + " " + right + ")", nil
}

func (e *emitter) anonFn(x *ast.AnonFn) (string, error) {
	args := make([]string, 0, len(x.Args))
	for i, arg := range x.Args {
		name := fieldName(arg, i)
		e.bind(name)
		typ, err := e.typ(arg.Typ)
		if err != nil {
			return "", err
		}
		args = append(args, name+": "+typ)
	}
	body, err := e.expression(x.Body)
	if err != nil {
		return "", err
	}
	return "move |" + strings.Join(args, ", ") + "| { " + body + " }", nil
}

// list renders a literal right to left: each element becomes a Cons cell
// onto the rendered tail (or the empty list).
func (e *emitter) list(x *ast.List) (string, error) {
	acc := "List::Empty"
	if x.Tail != nil {
		tail, err := e.expression(x.Tail)
		if err != nil {
			return "", err
		}
		acc = tail
	}
	for i := len(x.Elems) - 1; i >= 0; i-- {
		item, err := e.expression(x.Elems[i])
		if err != nil {
			return "", err
		}
		acc = "List::Cons { item: " + item + ", next: Rc::new(" + acc + ") }"
	}
	return acc, nil
}

func (e *emitter) let(x *ast.Let) (string, error) {
	pat, err := e.pattern(x.Pattern)
	if err != nil {
		return "", err
	}
	value, err := e.expression(x.Value)
	if err != nil {
		return "", err
	}
	if x.Assert {
		// `let assert`: refutable pattern, trap on mismatch.
		return "let " + pat + " = " + value + " else { panic!(\"pattern match failed\") }", nil
	}
	return "let " + pat + " = " + value, nil
}

// try unwraps a Result: Ok flows into the bound pattern and the
// continuation, Error returns early from the enclosing function.
func (e *emitter) try(x *ast.Try) (string, error) {
	pat, err := e.pattern(x.Pattern)
	if err != nil {
		return "", err
	}
	value, err := e.expression(x.Value)
	if err != nil {
		return "", err
	}
	then, err := e.expression(x.Then)
	if err != nil {
		return "", err
	}
	return "let " + pat + " = match " + value +
		" { Ok(_ok) => _ok, Err(_err) => return Err(_err) };\n" + then, nil
}

func (e *emitter) caseExpr(x *ast.Case) (string, error) {
	subjects, err := e.expressionList(x.Subjects)
	if err != nil {
		return "", err
	}
	stringy := stringSubjects(x)
	for i, s := range subjects {
		// String literal patterns only match &str, never an owned String.
		if stringy[i] {
			subjects[i] = s + ".as_str()"
		}
	}
	subject := subjects[0]
	if len(subjects) > 1 {
		subject = "(" + strings.Join(subjects, ", ") + ")"
	}
	var sb strings.Builder
	sb.WriteString("match " + subject + " {\n")
	// Clause order is first-match-wins and must survive as written.
	for _, clause := range x.Clauses {
		PushScope(&e.scopes, BranchScope)
		rows := make([]string, 0, len(clause.Patterns))
		var rebinds []string
		seen := make(map[string]bool)
		for _, row := range clause.Patterns {
			r, err := e.clauseRow(row)
			if err != nil {
				return "", err
			}
			rows = append(rows, r)
			// A variable bound against an .as_str() subject captured a
			// &str; rebind the owned string the body expects.
			for i, p := range row {
				if i >= len(stringy) || !stringy[i] {
					continue
				}
				if v, ok := p.(*ast.PVar); ok {
					name := escape(v.Name)
					if !seen[name] {
						seen[name] = true
						rebinds = append(rebinds, "let "+name+" = "+name+".to_string();")
					}
				}
			}
		}
		body, err := e.expression(clause.Body)
		if err != nil {
			return "", err
		}
		PopScope(&e.scopes)
		if len(rebinds) > 0 {
			body = strings.Join(rebinds, "\n") + "\n" + body
		}
		sb.WriteString(indent(strings.Join(rows, " | ") + " => {\n" + indent(body) + "\n},"))
		sb.WriteString("\n")
	}
	sb.WriteString("}")
	return sb.String(), nil
}

// stringSubjects reports, per subject, whether any clause row matches it
// against a string literal; those subjects are matched as &str.
func stringSubjects(x *ast.Case) []bool {
	out := make([]bool, len(x.Subjects))
	for _, clause := range x.Clauses {
		for _, row := range clause.Patterns {
			for i, p := range row {
				if i >= len(out) {
					continue
				}
				if _, ok := p.(*ast.PString); ok {
					out[i] = true
				}
			}
		}
	}
	return out
}

// clauseRow renders one alternative pattern row; rows over several subjects
// are wrapped in a synthesised tuple pattern to mirror the subject tuple.
func (e *emitter) clauseRow(row []ast.Pattern) (string, error) {
	pats := make([]string, 0, len(row))
	for _, p := range row {
		s, err := e.pattern(p)
		if err != nil {
			return "", err
		}
		pats = append(pats, s)
	}
	if len(pats) == 1 {
		return pats[0], nil
	}
	return "(" + strings.Join(pats, ", ") + ")", nil
}

// place renders an expression as a Rust place (no trailing clone), used as
// the base of field and tuple projections.
func (e *emitter) place(x ast.Expression) (string, error) {
	switch x := x.(type) {
	case *ast.Var:
		return escape(x.Name), nil
	case *ast.FieldAccess:
		base, err := e.place(x.Container)
		if err != nil {
			return "", err
		}
		return base + "." + escape(x.Label), nil
	case *ast.TupleIndex:
		base, err := e.place(x.Tuple)
		if err != nil {
			return "", err
		}
		return base + "." + strconv.Itoa(x.Index), nil
	default:
		s, err := e.expression(x)
		if err != nil {
			return "", err
		}
		return "(" + s + ")", nil
	}
}

func (e *emitter) bitString(x *ast.BitString) (string, error) {
	bytes := make([]string, 0, len(x.Segments))
	for _, seg := range x.Segments {
		if len(seg.Options) > 0 {
			return "", e.unsupported(x.Span(), "bit string segment option "+seg.Options[0].Name)
		}
		v, err := e.expression(seg.Value)
		if err != nil {
			return "", err
		}
		bytes = append(bytes, "("+v+") as u8")
	}
	return "vec![" + strings.Join(bytes, ", ") + "]", nil
}

func (e *emitter) recordUpdate(x *ast.RecordUpdate) (string, error) {
	base, err := e.expression(x.Base)
	if err != nil {
		return "", err
	}
	fields := make([]string, 0, len(x.Fields)+1)
	for _, f := range x.Fields {
		v, err := e.expression(f.Value)
		if err != nil {
			return "", err
		}
		fields = append(fields, escape(f.Label)+": "+v)
	}
	// Functional update: overridden fields first, rest of base last.
	fields = append(fields, ".."+base)
	return escape(x.TypeName) + " { " + strings.Join(fields, ", ") + " }", nil
}

// construct keeps the call site's field order; parity with the
// constructor's declared order is the frontend's responsibility.
func (e *emitter) construct(x *ast.Construct) (string, error) {
	if len(x.Fields) == 0 {
		return escape(x.Name), nil
	}
	fields := make([]string, 0, len(x.Fields))
	for _, f := range x.Fields {
		v, err := e.expression(f.Value)
		if err != nil {
			return "", err
		}
		fields = append(fields, escape(f.Label)+": "+v)
	}
	return escape(x.Name) + " { " + strings.Join(fields, ", ") + " }", nil
}

// pipeline threads the first value through each step left to right. The
// threading name sidesteps any user binding called _pipe: a step naming that
// binding must still reach it.
func (e *emitter) pipeline(x *ast.Pipeline) (string, error) {
	first, err := e.expression(x.First)
	if err != nil {
		return "", err
	}
	pipe := "_pipe"
	for i := 1; Bound(e.scopes, pipe); i++ {
		pipe = "_pipe" + strconv.Itoa(i)
	}
	e.bind(pipe)
	parts := []string{"let " + pipe + " = " + first}
	for i, step := range x.Rest {
		callee, err := e.callee(step)
		if err != nil {
			return "", err
		}
		if i == len(x.Rest)-1 {
			parts = append(parts, callee+"("+pipe+")")
		} else {
			parts = append(parts, "let "+pipe+" = "+callee+"("+pipe+")")
		}
	}
	if len(x.Rest) == 0 {
		parts = append(parts, pipe+".clone()")
	}
	return "{ " + strings.Join(parts, "; ") + " }", nil
}

// modulePath turns a Gleam module name into the flat crate path the driver
// lays modules out under: one file per module, `/` flattened to `_`.
func modulePath(module string) string {
	return "crate::" + strings.ReplaceAll(module, "/", "_")
}

// exprKind names an expression variant for diagnostics.
func exprKind(x ast.Expression) string {
	return strings.TrimPrefix(fmt.Sprintf("%T", x), "*ast.")
}
