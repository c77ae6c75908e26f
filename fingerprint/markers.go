package fingerprint

import "strconv"

// SymbolCode is either a positive, non-zero head-symbol code, or one of
// the three reserved negative markers below.
type SymbolCode int64

const (
	// AnyVar marks a position that exists in the term and holds a
	// variable.
	AnyVar SymbolCode = -1

	// BelowVar marks a position lying strictly below a variable: the
	// variable's eventual instance may or may not have a symbol there.
	BelowVar SymbolCode = -2

	// NotInTerm marks a position that does not exist in the term (the
	// argument index is out of the head symbol's arity).
	NotInTerm SymbolCode = -3
)

// IsMarker reports whether s is one of the three reserved markers,
// as opposed to a concrete symbol code.
func (s SymbolCode) IsMarker() bool {
	return s == AnyVar || s == BelowVar || s == NotInTerm
}

func (s SymbolCode) String() string {
	switch s {
	case AnyVar:
		return "ANY_VAR"
	case BelowVar:
		return "BELOW_VAR"
	case NotInTerm:
		return "NOT_IN_TERM"
	default:
		return strconv.FormatInt(int64(s), 10)
	}
}
