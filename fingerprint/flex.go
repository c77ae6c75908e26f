package fingerprint

import "github.com/skolem/fpindex/term"

// FlexSpec is a flexible fingerprint specification: an ordered list of
// positions, each itself an ordered list of 0-based argument indices.
//
// The original source encodes this as a single integer stream
// terminated by two distinct sentinels (one per position, one for the
// whole list: TermFPFlexSample/IndexFPFlexCreate). Design Notes §9
// calls that encoding equivalent to, but more error-prone than, "a
// strongly typed alternative (vector of vectors of indices)" — which is
// what FlexSpec is.
type FlexSpec [][]int

// Build returns the Function sampling exactly the positions in spec,
// in order, producing a fingerprint of len(spec) samples.
func (spec FlexSpec) Build() Function {
	positions := append([][]int(nil), spec...)
	return func(t term.Term) Fingerprint {
		return sampleAll(t, positions...)
	}
}

// FP3DFlexSpec is the flexible-variant position list equivalent to
// FP3D (epsilon, 0, 0.0), used by the original source as a test that
// the flexible encoding agrees with the fixed one.
var FP3DFlexSpec = FlexSpec{posEpsilon, pos0, pos00}

// FP3DFlex is the flexible-variant fingerprint function equivalent to
// FP3D, registered under the name "FP3DFlex".
var FP3DFlex = FP3DFlexSpec.Build()
