package odoo

// Odoo filters records with domain expressions: flat lists mixing
// (field, operator, value) triples with prefix logical operator tokens.
// An operator token combines the two expressions that follow it, so
// ["|", [a], [b]] reads OR(a, b). Terms juxtaposed without an operator
// are ANDed implicitly. We keep the expression typed until the client
// boundary and only flatten to the wire shape inside execute_kw args.

// Clause is either a Term or an Operator token.
type Clause interface {
	wire() any
}

// Term is a single (field, operator, value) filter. Field may be a
// dotted path into a related record ("stage_id.name"); it is passed
// through verbatim and a typo only shows up as an empty remote result.
type Term struct {
	Field string
	Op    string
	Value any
}

func (t Term) wire() any {
	return []any{t.Field, t.Op, t.Value}
}

// Operator is an explicit logical token in prefix position.
type Operator struct {
	Kind string
}

var (
	And = Operator{Kind: "&"}
	Or  = Operator{Kind: "|"}
)

func (o Operator) wire() any {
	return o.Kind
}

// Domain is an ordered domain expression. The zero value matches all
// records.
type Domain []Clause

// Wire flattens the expression to the alternating list Odoo expects.
// A nil domain serializes to the empty list (match all).
func (d Domain) Wire() []any {
	out := make([]any, 0, len(d))
	for _, c := range d {
		out = append(out, c.wire())
	}
	return out
}

// Equals appends an equality term unless value is empty.
func (d Domain) Equals(field, value string) Domain {
	if value == "" {
		return d
	}
	return append(d, Term{Field: field, Op: "=", Value: value})
}

// Contains appends a case-insensitive substring term unless value is
// empty.
func (d Domain) Contains(field, value string) Domain {
	if value == "" {
		return d
	}
	return append(d, Term{Field: field, Op: "ilike", Value: value})
}

// Search appends a free-text search ORed across the given fields:
// (n-1) OR tokens followed by the n ilike terms, the pairwise left-fold
// form of Odoo's n-ary OR. An empty value or empty field list appends
// nothing. Note the OR token arity: each token must be followed by
// exactly two expressions, which the emitted shape guarantees but
// nothing checks downstream — a malformed hand-built domain is
// silently misread by the server.
func (d Domain) Search(fields []string, value string) Domain {
	if value == "" || len(fields) == 0 {
		return d
	}
	for i := 0; i < len(fields)-1; i++ {
		d = append(d, Or)
	}
	for _, f := range fields {
		d = append(d, Term{Field: f, Op: "ilike", Value: value})
	}
	return d
}
