// Package index provides the fingerprint-index facade (spec.md §4.5,
// "Index facade (C7)"): a fingerprint function paired with a trie root
// and a payload disposer, exposing term-keyed operations and
// statistics to callers that never see a raw fingerprint or trie node.
//
// Grounded on FPIndexAlloc/FPIndexFree/FPIndexInsert/FPIndexFind/
// FPIndexDelete/FPIndexFindUnifiable/FPIndexFindMatchable/
// FPIndexCollectDistrib/FPIndexDistribPrint in the original source.
package index

import (
	"fmt"
	"io"
	"math"

	"github.com/hashicorp/go-hclog"

	"github.com/skolem/fpindex/fingerprint"
	"github.com/skolem/fpindex/term"
	"github.com/skolem/fpindex/trie"
)

// Disposer is invoked exactly once per payload during Destroy.
type Disposer[T any] func(T)

// SizeOf reports how many terms a payload holds, used by
// DistributionStats.
type SizeOf[T any] func(T) int

// Index pairs a fingerprint function with a trie and a payload
// disposer. All operations are synchronous; single-threaded use is
// assumed (spec.md §5).
type Index[T any] struct {
	name    string
	fpFunc  fingerprint.Function
	root    *trie.Node[T]
	dispose Disposer[T]
	sizeOf  SizeOf[T]
	logger  hclog.Logger
}

// Option configures an Index at construction time.
type Option[T any] func(*Index[T])

// WithLogger installs a structured logger; by default the index logs
// to hclog.NewNullLogger(), matching the convention that a logger is
// never required to use a subsystem.
func WithLogger[T any](l hclog.Logger) Option[T] {
	return func(idx *Index[T]) { idx.logger = l }
}

// New constructs an empty index using fn to fingerprint terms and
// dispose/sizeOf to manage and measure payloads.
func New[T any](name string, fn fingerprint.Function, dispose Disposer[T], sizeOf SizeOf[T], opts ...Option[T]) *Index[T] {
	idx := &Index[T]{
		name:    name,
		fpFunc:  fn,
		root:    trie.NewNode[T](),
		dispose: dispose,
		sizeOf:  sizeOf,
		logger:  hclog.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(idx)
	}
	return idx
}

// InsertTerm computes t's fingerprint, inserts it, and returns the
// terminal node for the caller to mutate its payload.
func (idx *Index[T]) InsertTerm(t term.Term) *trie.Node[T] {
	fp := idx.fpFunc(t)
	n := trie.Insert(idx.root, fp)
	idx.logger.Trace("insert", "fingerprint", fp.String())
	return n
}

// FindTerm returns the node representing t's fingerprint bucket, or
// nil if the trie has no path for it.
func (idx *Index[T]) FindTerm(t term.Term) *trie.Node[T] {
	fp := idx.fpFunc(t)
	return trie.Find(idx.root, fp)
}

// DeleteTerm removes t's fingerprint path if its terminal node carries
// no payload. It is idempotent: deleting an absent or already-deleted
// term is a no-op.
func (idx *Index[T]) DeleteTerm(t term.Term) {
	fp := idx.fpFunc(t)
	trie.Delete(idx.root, fp)
	idx.logger.Trace("delete", "fingerprint", fp.String())
}

// FindUnifiable collects every payload whose fingerprint is
// unification-compatible with term's, and returns how many payloads
// were collected.
func (idx *Index[T]) FindUnifiable(t term.Term, collect func(T)) int {
	fp := idx.fpFunc(t)
	n := trie.FindUnifiable(idx.root, fp, collect)
	idx.logger.Debug("find_unifiable", "fingerprint", fp.String(), "payloads", n)
	return n
}

// FindMatchable collects every payload whose fingerprint is
// match-compatible with term's (term is the pattern), and returns how
// many payloads were collected.
func (idx *Index[T]) FindMatchable(t term.Term, collect func(T)) int {
	fp := idx.fpFunc(t)
	n := trie.FindMatchable(idx.root, fp, collect)
	idx.logger.Debug("find_matchable", "fingerprint", fp.String(), "payloads", n)
	return n
}

// Stats summarizes payload-size distribution across leaves (spec.md
// §4.5, "distribution_stats").
type Stats struct {
	Leaves  int
	Entries int
	Mean    float64
	StdDev  float64
}

// DistributionStats computes the leaf count, mean, and (population)
// standard deviation of payload size across all leaves.
//
// Grounded on FPIndexCollectDistrib in the original source.
func (idx *Index[T]) DistributionStats() Stats {
	sizes := trie.CollectSizes(idx.root, idx.sizeOf)
	if len(sizes) == 0 {
		return Stats{}
	}

	var sum int
	for _, s := range sizes {
		sum += s
	}
	mean := float64(sum) / float64(len(sizes))

	var sqDiff float64
	for _, s := range sizes {
		d := float64(s) - mean
		sqDiff += d * d
	}
	stddev := math.Sqrt(sqDiff / float64(len(sizes)))

	return Stats{Leaves: len(sizes), Entries: sum, Mean: mean, StdDev: stddev}
}

// Print walks the trie in deterministic order and writes one line per
// non-empty leaf, followed by a summary line, matching the format in
// spec.md §6 ("Printed format").
//
// Grounded on FPIndexDistribPrint/fp_index_leaf_prt_size in the
// original source.
func (idx *Index[T]) Print(w io.Writer) {
	var entries int
	var leaves int

	trie.Walk(idx.root, func(path []fingerprint.SymbolCode, payload T) {
		leaves++
		n := idx.sizeOf(payload)
		entries += n
		fmt.Fprintf(w, "# %s:%d terms\n", pathString(path), n)
	})

	avg := 0.0
	if leaves > 0 {
		avg = float64(entries) / float64(leaves)
	}
	fmt.Fprintf(w, "# %d entries, %d leaves, %f entries/leaf\n", entries, leaves, avg)
}

func pathString(path []fingerprint.SymbolCode) string {
	s := ""
	for i, c := range path {
		if i > 0 {
			s += "."
		}
		s += c.String()
	}
	return s
}

// Destroy walks the trie, disposing every payload via the registered
// disposer exactly once, then releases the index.
func (idx *Index[T]) Destroy() {
	trie.Walk(idx.root, func(_ []fingerprint.SymbolCode, payload T) {
		idx.dispose(payload)
	})
	idx.root = nil
	idx.logger.Debug("destroyed", "index", idx.name)
}

// Name returns the index's configured label, used by callers managing
// several named indices side by side.
func (idx *Index[T]) Name() string {
	return idx.name
}
