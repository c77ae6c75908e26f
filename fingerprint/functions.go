package fingerprint

import "github.com/skolem/fpindex/term"

// Function computes a Fingerprint for a term. All fingerprints produced
// by a given Function share the same length.
type Function func(t term.Term) Fingerprint

// position lists, 0-based argument indexing, matching §4.2's table.
var (
	posEpsilon = []int{}
	pos0       = []int{0}
	pos1       = []int{1}
	pos2       = []int{2}
	pos3       = []int{3}
	pos00      = []int{0, 0}
	pos01      = []int{0, 1}
	pos02      = []int{0, 2}
	pos10      = []int{1, 0}
	pos11      = []int{1, 1}
	pos12      = []int{1, 2}
	pos20      = []int{2, 0}
	pos21      = []int{2, 1}
	pos22      = []int{2, 2}
	pos000     = []int{0, 0, 0}
	pos100     = []int{1, 0, 0}
)

func sampleAll(t term.Term, positions ...[]int) Fingerprint {
	fp := make(Fingerprint, len(positions))
	for i, p := range positions {
		fp[i] = Sample(t, p)
	}
	return fp
}

// FP0 is the empty fingerprint: every term collides in a single bucket.
func FP0(t term.Term) Fingerprint {
	return Fingerprint{}
}

// FPfp samples epsilon, then collapses any concrete symbol to 1
// (predicate) or 2 (function), leaving the markers untouched. It
// distinguishes only "is this term's head a predicate" from
// everything else.
func FPfp(t term.Term) Fingerprint {
	s := Sample(t, posEpsilon)
	if s > 0 {
		if t.IsPredicate() {
			s = 1
		} else {
			s = 2
		}
	}
	return Fingerprint{s}
}

// FP1 samples epsilon only: top symbol hashing.
func FP1(t term.Term) Fingerprint {
	return sampleAll(t, posEpsilon)
}

// FP2 samples epsilon, 0.
func FP2(t term.Term) Fingerprint {
	return sampleAll(t, posEpsilon, pos0)
}

// FP3D samples epsilon, 0, 0.0 (depth-biased).
func FP3D(t term.Term) Fingerprint {
	return sampleAll(t, posEpsilon, pos0, pos00)
}

// FP3W samples epsilon, 0, 1 (width-biased).
func FP3W(t term.Term) Fingerprint {
	return sampleAll(t, posEpsilon, pos0, pos1)
}

// FP4D samples epsilon, 0, 0.0, 0.0.0.
func FP4D(t term.Term) Fingerprint {
	return sampleAll(t, posEpsilon, pos0, pos00, pos000)
}

// FP4W samples epsilon, 0, 1, 2.
func FP4W(t term.Term) Fingerprint {
	return sampleAll(t, posEpsilon, pos0, pos1, pos2)
}

// FP4M samples epsilon, 0, 1, 0.0 (mixed depth/width).
func FP4M(t term.Term) Fingerprint {
	return sampleAll(t, posEpsilon, pos0, pos1, pos00)
}

// FP7 samples epsilon, 0, 1, 0.0, 0.1, 1.0, 1.1.
func FP7(t term.Term) Fingerprint {
	return sampleAll(t, posEpsilon, pos0, pos1, pos00, pos01, pos10, pos11)
}

// FP4X2_2 samples the 16 positions enumerated in §4.2.1: epsilon; the
// four direct arguments; the nine length-2 positions over {0,1,2}; and
// 0.0.0, 1.0.0. Its fingerprints therefore have Len() == 17.
func FP4X2_2(t term.Term) Fingerprint {
	return sampleAll(t,
		posEpsilon,
		pos0, pos1, pos2, pos3,
		pos00, pos01, pos02,
		pos10, pos11, pos12,
		pos20, pos21, pos22,
		pos000, pos100,
	)
}

// NoIndex is the sentinel name resolving to "no function": callers
// that look it up should interpret it as "do not build this index" and
// never invoke it.
const NoIndex = "NoIndex"

// registry is the name -> function lookup table (spec.md §4.2,
// "Function registry"), grounded on FPIndexNames/fp_index_funs in the
// original source. It is immutable once initialized (Design Notes §9,
// "No global state"); the module's other process-wide datum, the term
// package's symbol table, grows as new symbol names are seen.
var registry = map[string]Function{
	"FP0":      FP0,
	"FPfp":     FPfp,
	"FP1":      FP1,
	"FP2":      FP2,
	"FP3D":     FP3D,
	"FP3W":     FP3W,
	"FP4D":     FP4D,
	"FP4W":     FP4W,
	"FP4M":     FP4M,
	"FP7":      FP7,
	"FP4X2_2":  FP4X2_2,
	"FP3DFlex": FP3DFlex,
}

// Lookup resolves name to its fingerprint Function. It returns
// (nil, false) for NoIndex and for any name not in the table —
// callers must check the second return value and react, typically by
// declining to build that particular index (spec.md §7).
func Lookup(name string) (Function, bool) {
	fn, ok := registry[name]
	return fn, ok
}
