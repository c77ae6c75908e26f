package trie

import (
	"sort"

	"github.com/skolem/fpindex/fingerprint"
)

// LeafPrinter is called once per node with a non-empty payload during
// Walk, with the path of fingerprint.SymbolCode elements from the root.
type LeafPrinter[T any] func(path []fingerprint.SymbolCode, payload T)

// Walk visits every node in root's subtree in deterministic order
// (concrete symbol keys ascending, then BelowVar, then AnyVar) and
// invokes visit for every node carrying a payload.
//
// Grounded on fp_index_tree_print in the original source; the ascending
// order over f_alternatives mirrors IntMap's ordered iteration, which
// Design Notes §9 requires ("the print operation requires deterministic
// order (ascending key)").
func Walk[T any](root *Node[T], visit LeafPrinter[T]) {
	walk(root, nil, visit)
}

func walk[T any](n *Node[T], path []fingerprint.SymbolCode, visit LeafPrinter[T]) {
	if n == nil {
		return
	}
	if p, ok := n.Payload(); ok {
		visit(path, p)
	}

	keys := make([]fingerprint.SymbolCode, 0, len(n.alternatives))
	for k := range n.alternatives {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	for _, k := range keys {
		walk(n.alternatives[k], append(path, k), visit)
	}

	if n.belowVar != nil {
		walk(n.belowVar, append(path, fingerprint.BelowVar), visit)
	}
	if n.anyVar != nil {
		walk(n.anyVar, append(path, fingerprint.AnyVar), visit)
	}
}

// CollectSizes appends, via sizeOf, one entry per payload-carrying node
// in root's subtree, in the same order as Walk. It is the building
// block for distribution statistics (spec.md §4.5,
// "distribution_stats").
//
// Grounded on fp_index_tree_collect_distrib in the original source.
func CollectSizes[T any](root *Node[T], sizeOf func(T) int) []int {
	var sizes []int
	Walk(root, func(_ []fingerprint.SymbolCode, payload T) {
		sizes = append(sizes, sizeOf(payload))
	})
	return sizes
}
