package ast

import (
	"encoding/json"
	"fmt"

	"github.com/schurhammer/gleam/token"
)

// The frontend hands the backend one JSON artifact per type-checked module.
// Every node is an envelope {"kind": "...", ...fields}; types, expressions
// and patterns are nested envelopes of their own. DecodeModule rejects
// unknown kinds outright: a newer frontend must not smuggle constructs past
// an older backend.

type span struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

func (s span) span() token.Span {
	return token.Span{Start: token.Pos(s.Start), End: token.Pos(s.End)}
}

type node struct {
	Kind string `json:"kind"`
	Span span   `json:"span"`

	// statement fields
	Name         string     `json:"name"`
	Public       bool       `json:"public"`
	Doc          string     `json:"doc"`
	Params       []string   `json:"params"`
	Constructors []ctorNode `json:"constructors"`
	Module       string     `json:"module"`
	Fun          string     `json:"fun"`
	Alias        string     `json:"alias"`
	Unqualified  []string   `json:"unqualified"`

	// shared fields
	Args   []fieldNode       `json:"args"`
	Typ    json.RawMessage   `json:"type"`
	Return json.RawMessage   `json:"return"`
	Value  json.RawMessage   `json:"value"`
	Body   json.RawMessage   `json:"body"`
	Elems  []json.RawMessage `json:"elems"`

	// type fields
	TypeArgs []json.RawMessage `json:"type_args"`
	Ref      json.RawMessage   `json:"ref"`
	To       json.RawMessage   `json:"to"`
	ID       uint64            `json:"id"`

	// expression fields
	Int      int64             `json:"int"`
	Float    float64           `json:"float"`
	Str      string            `json:"str"`
	Exprs    []json.RawMessage `json:"exprs"`
	Fn       json.RawMessage   `json:"fn"`
	CallArgs []callArgNode     `json:"call_args"`
	Op       string            `json:"op"`
	Left     json.RawMessage   `json:"left"`
	Right    json.RawMessage   `json:"right"`
	Tail     json.RawMessage   `json:"tail"`
	Pattern  json.RawMessage   `json:"pattern"`
	Assert   bool              `json:"assert"`
	Then     json.RawMessage   `json:"then"`
	Subjects []json.RawMessage `json:"subjects"`
	Clauses  []clauseNode      `json:"clauses"`
	Label    string            `json:"label"`
	Index    int               `json:"index"`
	Segments []segmentNode     `json:"segments"`
	Base     json.RawMessage   `json:"base"`
	TypeName string            `json:"type_name"`
	Fields   []fieldValueNode  `json:"fields"`
	Negate   string            `json:"negate"`
	First    json.RawMessage   `json:"first"`
	Rest     []json.RawMessage `json:"rest"`
}

type fieldNode struct {
	Name string          `json:"name"`
	Typ  json.RawMessage `json:"type"`
}

type ctorNode struct {
	Name   string      `json:"name"`
	Fields []fieldNode `json:"fields"`
}

type callArgNode struct {
	Label string          `json:"label"`
	Value json.RawMessage `json:"value"`
}

type clauseNode struct {
	Patterns [][]json.RawMessage `json:"patterns"`
	Body     json.RawMessage     `json:"body"`
}

type segmentNode struct {
	Value   json.RawMessage `json:"value"`
	Options []optionNode    `json:"options"`
}

type optionNode struct {
	Name  string          `json:"name"`
	Value json.RawMessage `json:"value"`
}

type fieldValueNode struct {
	Label string          `json:"label"`
	Value json.RawMessage `json:"value"`
}

var binOpNames = map[string]BinOpKind{
	"and": And, "or": Or, "eq": Eq, "not_eq": NotEq,
	"lt_int": LtInt, "lt_eq_int": LtEqInt, "lt_float": LtFloat, "lt_eq_float": LtEqFloat,
	"gt_int": GtInt, "gt_eq_int": GtEqInt, "gt_float": GtFloat, "gt_eq_float": GtEqFloat,
	"add_int": AddInt, "add_float": AddFloat, "sub_int": SubInt, "sub_float": SubFloat,
	"mult_int": MultInt, "mult_float": MultFloat, "div_int": DivInt, "div_float": DivFloat,
	"modulo_int": ModuloInt, "concat": Concat,
}

// DecodeModule parses one module artifact.
func DecodeModule(data []byte) (*Module, error) {
	var raw struct {
		Name       string            `json:"name"`
		Statements []json.RawMessage `json:"statements"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("module artifact: %w", err)
	}
	m := &Module{Name: raw.Name}
	for i, rs := range raw.Statements {
		s, err := decodeStatement(rs)
		if err != nil {
			return nil, fmt.Errorf("statement %d: %w", i, err)
		}
		m.Statements = append(m.Statements, s)
	}
	return m, nil
}

func decodeStatement(data []byte) (Statement, error) {
	var n node
	if err := json.Unmarshal(data, &n); err != nil {
		return nil, err
	}
	switch n.Kind {
	case "fn":
		args, err := decodeFields(n.Args)
		if err != nil {
			return nil, err
		}
		body, err := decodeExpression(n.Body)
		if err != nil {
			return nil, err
		}
		ret, err := decodeType(n.Return)
		if err != nil {
			return nil, err
		}
		return &Fn{Loc: n.Span.span(), Name: n.Name, Args: args, Body: body,
			Public: n.Public, Return: ret, Doc: n.Doc}, nil
	case "custom_type":
		var ctors []Constructor
		for _, c := range n.Constructors {
			fields, err := decodeFields(c.Fields)
			if err != nil {
				return nil, err
			}
			ctors = append(ctors, Constructor{Name: c.Name, Fields: fields})
		}
		return &CustomType{Loc: n.Span.span(), Name: n.Name, Params: n.Params,
			Public: n.Public, Constructors: ctors, Doc: n.Doc}, nil
	case "type_alias":
		aliased, err := decodeType(n.Typ)
		if err != nil {
			return nil, err
		}
		return &TypeAlias{Loc: n.Span.span(), Name: n.Name, Params: n.Params,
			Public: n.Public, Aliased: aliased}, nil
	case "external_fn":
		args, err := decodeFields(n.Args)
		if err != nil {
			return nil, err
		}
		ret, err := decodeType(n.Return)
		if err != nil {
			return nil, err
		}
		return &ExternalFn{Loc: n.Span.span(), Name: n.Name, Args: args, Return: ret,
			Public: n.Public, Module: n.Module, Fun: n.Fun}, nil
	case "external_type":
		return &ExternalType{Loc: n.Span.span(), Name: n.Name, Params: n.Params,
			Public: n.Public}, nil
	case "import":
		return &Import{Loc: n.Span.span(), Module: n.Module, Alias: n.Alias,
			Unqualified: n.Unqualified}, nil
	case "module_constant":
		typ, err := decodeType(n.Typ)
		if err != nil {
			return nil, err
		}
		value, err := decodeExpression(n.Value)
		if err != nil {
			return nil, err
		}
		return &ModuleConstant{Loc: n.Span.span(), Name: n.Name, Public: n.Public,
			Annotated: typ, Value: value}, nil
	default:
		return nil, fmt.Errorf("unknown statement kind %q", n.Kind)
	}
}

func decodeFields(fns []fieldNode) ([]Field, error) {
	var fields []Field
	for _, fn := range fns {
		typ, err := decodeType(fn.Typ)
		if err != nil {
			return nil, err
		}
		fields = append(fields, Field{Name: fn.Name, Typ: typ})
	}
	return fields, nil
}

func decodeType(data []byte) (Type, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("missing type")
	}
	var n node
	if err := json.Unmarshal(data, &n); err != nil {
		return nil, err
	}
	switch n.Kind {
	case "named":
		var args []Type
		for _, ra := range n.TypeArgs {
			a, err := decodeType(ra)
			if err != nil {
				return nil, err
			}
			args = append(args, a)
		}
		return &TNamed{Loc: n.Span.span(), Name: n.Name, Args: args}, nil
	case "fn":
		var args []Type
		for _, ra := range n.TypeArgs {
			a, err := decodeType(ra)
			if err != nil {
				return nil, err
			}
			args = append(args, a)
		}
		ret, err := decodeType(n.Return)
		if err != nil {
			return nil, err
		}
		return &TFn{Loc: n.Span.span(), Args: args, Ret: ret}, nil
	case "tuple":
		var elems []Type
		for _, re := range n.Elems {
			e, err := decodeType(re)
			if err != nil {
				return nil, err
			}
			elems = append(elems, e)
		}
		return &TTuple{Loc: n.Span.span(), Elems: elems}, nil
	case "var":
		ref, err := decodeTypeVarRef(n.Ref)
		if err != nil {
			return nil, err
		}
		return &TVar{Loc: n.Span.span(), Ref: ref}, nil
	default:
		return nil, fmt.Errorf("unknown type kind %q", n.Kind)
	}
}

func decodeTypeVarRef(data []byte) (TypeVarRef, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("missing type variable ref")
	}
	var n node
	if err := json.Unmarshal(data, &n); err != nil {
		return nil, err
	}
	switch n.Kind {
	case "link":
		to, err := decodeType(n.To)
		if err != nil {
			return nil, err
		}
		return Link{To: to}, nil
	case "generic":
		return Generic{ID: n.ID}, nil
	case "unbound":
		return Unbound{ID: n.ID}, nil
	default:
		return nil, fmt.Errorf("unknown type variable kind %q", n.Kind)
	}
}

func decodeExpressions(raws []json.RawMessage) ([]Expression, error) {
	var exprs []Expression
	for _, r := range raws {
		e, err := decodeExpression(r)
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, e)
	}
	return exprs, nil
}

func decodeExpression(data []byte) (Expression, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("missing expression")
	}
	var n node
	if err := json.Unmarshal(data, &n); err != nil {
		return nil, err
	}
	switch n.Kind {
	case "int":
		return &Int{Loc: n.Span.span(), Value: n.Int}, nil
	case "float":
		return &Float{Loc: n.Span.span(), Value: n.Float}, nil
	case "string":
		return &String{Loc: n.Span.span(), Value: n.Str}, nil
	case "var":
		return &Var{Loc: n.Span.span(), Name: n.Name}, nil
	case "seq":
		exprs, err := decodeExpressions(n.Exprs)
		if err != nil {
			return nil, err
		}
		return &Seq{Loc: n.Span.span(), Exprs: exprs}, nil
	case "call":
		fn, err := decodeExpression(n.Fn)
		if err != nil {
			return nil, err
		}
		var args []CallArg
		for _, a := range n.CallArgs {
			v, err := decodeExpression(a.Value)
			if err != nil {
				return nil, err
			}
			args = append(args, CallArg{Label: a.Label, Value: v})
		}
		return &Call{Loc: n.Span.span(), Fn: fn, Args: args}, nil
	case "bin_op":
		op, ok := binOpNames[n.Op]
		if !ok {
			return nil, fmt.Errorf("unknown operator %q", n.Op)
		}
		left, err := decodeExpression(n.Left)
		if err != nil {
			return nil, err
		}
		right, err := decodeExpression(n.Right)
		if err != nil {
			return nil, err
		}
		return &BinOp{Loc: n.Span.span(), Op: op, Left: left, Right: right}, nil
	case "anon_fn":
		args, err := decodeFields(n.Args)
		if err != nil {
			return nil, err
		}
		body, err := decodeExpression(n.Body)
		if err != nil {
			return nil, err
		}
		return &AnonFn{Loc: n.Span.span(), Args: args, Body: body}, nil
	case "list":
		elems, err := decodeExpressions(n.Elems)
		if err != nil {
			return nil, err
		}
		var tail Expression
		if len(n.Tail) > 0 {
			tail, err = decodeExpression(n.Tail)
			if err != nil {
				return nil, err
			}
		}
		return &List{Loc: n.Span.span(), Elems: elems, Tail: tail}, nil
	case "let":
		pat, err := decodePattern(n.Pattern)
		if err != nil {
			return nil, err
		}
		value, err := decodeExpression(n.Value)
		if err != nil {
			return nil, err
		}
		return &Let{Loc: n.Span.span(), Pattern: pat, Value: value, Assert: n.Assert}, nil
	case "try":
		pat, err := decodePattern(n.Pattern)
		if err != nil {
			return nil, err
		}
		value, err := decodeExpression(n.Value)
		if err != nil {
			return nil, err
		}
		then, err := decodeExpression(n.Then)
		if err != nil {
			return nil, err
		}
		return &Try{Loc: n.Span.span(), Pattern: pat, Value: value, Then: then}, nil
	case "case":
		subjects, err := decodeExpressions(n.Subjects)
		if err != nil {
			return nil, err
		}
		var clauses []Clause
		for _, c := range n.Clauses {
			var rows [][]Pattern
			for _, rawRow := range c.Patterns {
				var row []Pattern
				for _, rp := range rawRow {
					p, err := decodePattern(rp)
					if err != nil {
						return nil, err
					}
					row = append(row, p)
				}
				rows = append(rows, row)
			}
			body, err := decodeExpression(c.Body)
			if err != nil {
				return nil, err
			}
			clauses = append(clauses, Clause{Patterns: rows, Body: body})
		}
		return &Case{Loc: n.Span.span(), Subjects: subjects, Clauses: clauses}, nil
	case "field_access":
		container, err := decodeExpression(n.Value)
		if err != nil {
			return nil, err
		}
		return &FieldAccess{Loc: n.Span.span(), Container: container, Label: n.Label}, nil
	case "module_select":
		return &ModuleSelect{Loc: n.Span.span(), Module: n.Module, Label: n.Label}, nil
	case "tuple":
		elems, err := decodeExpressions(n.Elems)
		if err != nil {
			return nil, err
		}
		return &Tuple{Loc: n.Span.span(), Elems: elems}, nil
	case "tuple_index":
		tuple, err := decodeExpression(n.Value)
		if err != nil {
			return nil, err
		}
		return &TupleIndex{Loc: n.Span.span(), Tuple: tuple, Index: n.Index}, nil
	case "todo":
		return &Todo{Loc: n.Span.span(), Label: n.Label}, nil
	case "bit_string":
		var segs []Segment
		for _, s := range n.Segments {
			v, err := decodeExpression(s.Value)
			if err != nil {
				return nil, err
			}
			var opts []SegmentOption
			for _, o := range s.Options {
				var ov Expression
				if len(o.Value) > 0 {
					ov, err = decodeExpression(o.Value)
					if err != nil {
						return nil, err
					}
				}
				opts = append(opts, SegmentOption{Name: o.Name, Value: ov})
			}
			segs = append(segs, Segment{Value: v, Options: opts})
		}
		return &BitString{Loc: n.Span.span(), Segments: segs}, nil
	case "record_update":
		base, err := decodeExpression(n.Base)
		if err != nil {
			return nil, err
		}
		fields, err := decodeRecordFields(n.Fields)
		if err != nil {
			return nil, err
		}
		return &RecordUpdate{Loc: n.Span.span(), TypeName: n.TypeName, Base: base,
			Fields: fields}, nil
	case "construct":
		fields, err := decodeRecordFields(n.Fields)
		if err != nil {
			return nil, err
		}
		return &Construct{Loc: n.Span.span(), Name: n.Name, Fields: fields}, nil
	case "negate":
		value, err := decodeExpression(n.Value)
		if err != nil {
			return nil, err
		}
		kind := NegateBool
		if n.Negate == "int" {
			kind = NegateInt
		}
		return &Negate{Loc: n.Span.span(), Kind: kind, Value: value}, nil
	case "pipeline":
		first, err := decodeExpression(n.First)
		if err != nil {
			return nil, err
		}
		rest, err := decodeExpressions(n.Rest)
		if err != nil {
			return nil, err
		}
		return &Pipeline{Loc: n.Span.span(), First: first, Rest: rest}, nil
	default:
		return nil, fmt.Errorf("unknown expression kind %q", n.Kind)
	}
}

func decodeRecordFields(fvs []fieldValueNode) ([]RecordField, error) {
	var fields []RecordField
	for _, fv := range fvs {
		v, err := decodeExpression(fv.Value)
		if err != nil {
			return nil, err
		}
		fields = append(fields, RecordField{Label: fv.Label, Value: v})
	}
	return fields, nil
}

func decodePattern(data []byte) (Pattern, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("missing pattern")
	}
	var n struct {
		Kind   string  `json:"kind"`
		Span   span    `json:"span"`
		Int    int64   `json:"int"`
		Float  float64 `json:"float"`
		Str    string  `json:"str"`
		Name   string  `json:"name"`
		Fields []struct {
			Label   string          `json:"label"`
			Pattern json.RawMessage `json:"pattern"`
		} `json:"fields"`
	}
	if err := json.Unmarshal(data, &n); err != nil {
		return nil, err
	}
	switch n.Kind {
	case "discard":
		return &PDiscard{Loc: n.Span.span()}, nil
	case "int":
		return &PInt{Loc: n.Span.span(), Value: n.Int}, nil
	case "float":
		return &PFloat{Loc: n.Span.span(), Value: n.Float}, nil
	case "string":
		return &PString{Loc: n.Span.span(), Value: n.Str}, nil
	case "var":
		return &PVar{Loc: n.Span.span(), Name: n.Name}, nil
	case "constructor":
		var fields []PField
		for _, f := range n.Fields {
			p, err := decodePattern(f.Pattern)
			if err != nil {
				return nil, err
			}
			fields = append(fields, PField{Label: f.Label, Pattern: p})
		}
		return &PConstructor{Loc: n.Span.span(), Name: n.Name, Fields: fields}, nil
	default:
		return nil, fmt.Errorf("unknown pattern kind %q", n.Kind)
	}
}
