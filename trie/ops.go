package trie

import "github.com/skolem/fpindex/fingerprint"

// Insert descends from root following fp, creating missing children as
// it goes, and returns the terminal node for the caller to mutate its
// payload. It never modifies an existing payload itself.
//
// Grounded on FPTreeInsert in the original source.
func Insert[T any](root *Node[T], fp fingerprint.Fingerprint) *Node[T] {
	n := root
	for _, s := range fp {
		n = n.childRef(s)
	}
	return n
}

// Find descends from root following fp without creating anything,
// returning the terminal node or nil if the path does not exist.
//
// Grounded on FPTreeFind in the original source.
func Find[T any](root *Node[T], fp fingerprint.Fingerprint) *Node[T] {
	n := root
	for _, s := range fp {
		n = n.child(s)
		if n == nil {
			return nil
		}
	}
	return n
}

// Delete removes the path to fp's terminal node if and only if that
// node carries no payload, pruning bottom-up up to (but not including)
// root, which is always preserved (spec.md §9, "keep the root").
//
// Grounded on FPTreeDelete/fpindex_rek_delete in the original source.
func Delete[T any](root *Node[T], fp fingerprint.Fingerprint) {
	deleteRec(root, fp, 0)
}

// deleteRec returns whether the node at (path, depth) should be
// detached by its parent: true iff it exists, carries no payload, and
// (after recursing) has no live children left.
func deleteRec[T any](n *Node[T], fp fingerprint.Fingerprint, depth int) bool {
	if n == nil {
		return false
	}
	if depth == len(fp) {
		return !n.hasPayload && n.count == 0
	}
	if deleteRec(n.child(fp[depth]), fp, depth+1) {
		n.extract(fp[depth])
	}
	return !n.hasPayload && n.count == 0
}
