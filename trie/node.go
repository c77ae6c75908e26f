// Package trie implements the fingerprint trie (spec.md §3 "Trie node"
// and §4.3 "Trie operations"): a node stores concrete-symbol branches in
// a sparse map plus two dedicated slots for the BelowVar and AnyVar
// markers, tracks a live-child count for pruning, and optionally carries
// a payload.
//
// Grounded on bartnode.go's bartNode[V] (sparse children plus explicit
// count/emptiness bookkeeping) and directly on the FPTreeCell struct
// (f_alternatives/below_var/any_var/count/payload) in the original
// fingerprint-index source. Unlike bart's 256-way byte stride, symbol
// codes are unbounded, so alternatives is a plain Go map rather than a
// popcount-compressed fixed-width array; Design Notes §9 allows either
// representation as long as iteration order is deterministic, which
// Node achieves by sorting keys when it needs to (see print.go).
package trie

import "github.com/skolem/fpindex/fingerprint"

// Node is one level of a fingerprint trie, keyed by fingerprint.SymbolCode
// elements, carrying a payload of type T at a subset of (usually leaf)
// nodes.
type Node[T any] struct {
	alternatives map[fingerprint.SymbolCode]*Node[T]
	belowVar     *Node[T]
	anyVar       *Node[T]
	count        int
	payload      T
	hasPayload   bool
}

// NewNode allocates an empty node, equivalent to FPTreeAlloc.
func NewNode[T any]() *Node[T] {
	return &Node[T]{}
}

// Payload returns the node's payload and whether one is set.
func (n *Node[T]) Payload() (T, bool) {
	return n.payload, n.hasPayload
}

// SetPayload installs a payload on the node. The trie never inspects
// or mutates payload contents itself (spec.md §3, "payload ownership is
// foreign").
func (n *Node[T]) SetPayload(p T) {
	n.payload = p
	n.hasPayload = true
}

// ClearPayload removes the node's payload without disposing it; the
// caller is responsible for disposal before calling this if needed.
func (n *Node[T]) ClearPayload() {
	var zero T
	n.payload = zero
	n.hasPayload = false
}

// ChildCount returns the node's live direct-child count, summed across
// all three branch categories.
func (n *Node[T]) ChildCount() int {
	return n.count
}

// isEmpty reports whether n is dead weight: no payload and no children.
func (n *Node[T]) isEmpty() bool {
	return n == nil || (!n.hasPayload && n.count == 0)
}

// child returns the existing child reached by key, or nil.
func (n *Node[T]) child(key fingerprint.SymbolCode) *Node[T] {
	if n == nil {
		return nil
	}
	switch key {
	case fingerprint.BelowVar:
		return n.belowVar
	case fingerprint.AnyVar:
		return n.anyVar
	default:
		if n.alternatives == nil {
			return nil
		}
		return n.alternatives[key]
	}
}

// childRef returns the existing child reached by key, creating it (and
// bumping count) if absent.
func (n *Node[T]) childRef(key fingerprint.SymbolCode) *Node[T] {
	switch key {
	case fingerprint.BelowVar:
		if n.belowVar == nil {
			n.belowVar = NewNode[T]()
			n.count++
		}
		return n.belowVar
	case fingerprint.AnyVar:
		if n.anyVar == nil {
			n.anyVar = NewNode[T]()
			n.count++
		}
		return n.anyVar
	default:
		if n.alternatives == nil {
			n.alternatives = make(map[fingerprint.SymbolCode]*Node[T])
		}
		if c, ok := n.alternatives[key]; ok {
			return c
		}
		c := NewNode[T]()
		n.alternatives[key] = c
		n.count++
		return c
	}
}

// extract removes and returns the child reached by key, decrementing
// count if one was present.
func (n *Node[T]) extract(key fingerprint.SymbolCode) *Node[T] {
	var res *Node[T]
	switch key {
	case fingerprint.BelowVar:
		res = n.belowVar
		n.belowVar = nil
	case fingerprint.AnyVar:
		res = n.anyVar
		n.anyVar = nil
	default:
		if n.alternatives != nil {
			res = n.alternatives[key]
			delete(n.alternatives, key)
		}
	}
	if res != nil {
		n.count--
	}
	return res
}
