package fingerprint

import "strings"

// Fingerprint is the sample vector produced by a Function. Two
// fingerprints produced by the same Function always have equal Len.
//
// spec.md models this as a length-prefixed array ([ℓ, s1, ..., sk]);
// here the typed slice itself carries its length, which Design Notes §9
// calls out as the preferable host-language encoding.
type Fingerprint []SymbolCode

// Len returns the element count used by the trie (sample count + 1,
// matching the self-describing length the original C fingerprint
// vectors carry at index 0 — kept here only as a derived quantity for
// compatibility with spec.md's wording, not stored separately).
func (fp Fingerprint) Len() int {
	return len(fp) + 1
}

// String renders fp the way E's IndexFPPrint does: "<s1,s2,...>".
func (fp Fingerprint) String() string {
	if len(fp) == 0 {
		return "<>"
	}
	var b strings.Builder
	b.WriteByte('<')
	for i, s := range fp {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s.String())
	}
	b.WriteByte('>')
	return b.String()
}
