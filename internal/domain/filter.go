package domain

// Operator is a comparison operator in a single-attribute filter. The storage
// backend executes exactly one such comparison per key query; anything richer
// has to be composed client-side (see internal/query).
type Operator string

const (
	OpEq  Operator = "="
	OpNe  Operator = "!="
	OpGt  Operator = ">"
	OpGte Operator = ">="
	OpLt  Operator = "<"
	OpLte Operator = "<="
)

// IsInequality reports whether the operator is anything other than equality.
// The backend allows inequality comparisons on at most one attribute per query.
func (o Operator) IsInequality() bool {
	return o != OpEq
}

// operatorCodes maps the wire-level operator codes accepted from clients to
// operators. Unknown codes are a QueryError.
var operatorCodes = map[string]Operator{
	"EQ":   OpEq,
	"NE":   OpNe,
	"GT":   OpGt,
	"GTEQ": OpGte,
	"LT":   OpLt,
	"LTEQ": OpLte,
}

// ParseOperator resolves a client-supplied operator code (EQ, NE, GT, GTEQ,
// LT, LTEQ) to an Operator.
func ParseOperator(code string) (Operator, error) {
	op, ok := operatorCodes[code]
	if !ok {
		return "", NewQueryError("invalid operator %q", code)
	}
	return op, nil
}

// Filter is a single-attribute predicate, the only primitive query form the
// storage backend supports.
type Filter struct {
	Attribute string
	Op        Operator
	Value     any
}

// ValidateInequalityRule checks the backend's restriction that inequality
// comparisons appear on at most one attribute across the given filters.
func ValidateInequalityRule(filters []Filter) error {
	inequalityAttr := ""
	for _, f := range filters {
		if !f.Op.IsInequality() {
			continue
		}
		if inequalityAttr != "" && inequalityAttr != f.Attribute {
			return NewQueryError("inequality filter is allowed on only one attribute (have %q and %q)", inequalityAttr, f.Attribute)
		}
		inequalityAttr = f.Attribute
	}
	return nil
}
