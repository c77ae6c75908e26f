package fingerprint

import "github.com/skolem/fpindex/term"

// Sample walks t along position (a sequence of 0-based argument
// indices) and returns the symbol found there, or the marker
// describing why no symbol was found.
//
// Grounded on TermFPSample in the original fingerprint-index source:
// walk down, bail out to BelowVar the moment a variable is hit, bail
// out to NotInTerm the moment an index exceeds the current arity,
// otherwise descend; after consuming the whole position, the sample is
// AnyVar for a variable or the head symbol code otherwise.
func Sample(t term.Term, position []int) SymbolCode {
	cur := t
	for _, idx := range position {
		if cur.IsVariable() {
			return BelowVar
		}
		if idx >= cur.Arity() {
			return NotInTerm
		}
		cur = cur.Argument(idx)
	}
	if cur.IsVariable() {
		return AnyVar
	}
	return SymbolCode(cur.HeadSymbolCode())
}
