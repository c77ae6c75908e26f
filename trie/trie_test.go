package trie_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skolem/fpindex/fingerprint"
	"github.com/skolem/fpindex/term"
	"github.com/skolem/fpindex/trie"
)

func TestInsertFindRoundtrip(t *testing.T) {
	root := trie.NewNode[string]()
	fp := fingerprint.Fingerprint{5, fingerprint.AnyVar, fingerprint.NotInTerm}

	n := trie.Insert(root, fp)
	n.SetPayload("f(a)")

	found := trie.Find(root, fp)
	require.NotNil(t, found)
	payload, ok := found.Payload()
	require.True(t, ok)
	assert.Equal(t, "f(a)", payload)
}

func TestFindMissingPathReturnsNil(t *testing.T) {
	root := trie.NewNode[string]()
	trie.Insert(root, fingerprint.Fingerprint{1})

	assert.Nil(t, trie.Find(root, fingerprint.Fingerprint{2}))
}

func TestDeletePrunesPathWithoutPayload(t *testing.T) {
	root := trie.NewNode[string]()
	fp := fingerprint.Fingerprint{1, 2}

	trie.Insert(root, fp)
	assert.Equal(t, 1, root.ChildCount())

	trie.Delete(root, fp)
	assert.Equal(t, 0, root.ChildCount())
}

func TestDeleteIdempotence(t *testing.T) {
	root := trie.NewNode[string]()
	fp := fingerprint.Fingerprint{1, 2}
	trie.Insert(root, fp)

	trie.Delete(root, fp)
	after1 := root.ChildCount()
	trie.Delete(root, fp)
	after2 := root.ChildCount()

	assert.Equal(t, after1, after2)
}

func TestDeleteKeepsPathWithPayload(t *testing.T) {
	root := trie.NewNode[string]()
	fp := fingerprint.Fingerprint{1, 2}
	n := trie.Insert(root, fp)
	n.SetPayload("kept")

	trie.Delete(root, fp)

	found := trie.Find(root, fp)
	require.NotNil(t, found)
	p, ok := found.Payload()
	require.True(t, ok)
	assert.Equal(t, "kept", p)
}

func TestDeletePrunesToInitialChildCount(t *testing.T) {
	// S6 from spec.md §8: insert f(a) then delete it; node count returns
	// to what it was before the insert.
	root := trie.NewNode[string]()
	before := root.ChildCount()

	fp := fingerprint.Fingerprint{4, 10, fingerprint.NotInTerm}
	trie.Insert(root, fp) // no payload set, so Delete can fully prune
	trie.Delete(root, fp)

	assert.Equal(t, before, root.ChildCount())
}

func TestFingerprintEqualityImpliesSameNode(t *testing.T) {
	// Property 5: F(t1) == F(t2) implies find_term(t1) and find_term(t2)
	// return the same node.
	root := trie.NewNode[string]()
	fp := fingerprint.FP1(term.Func("a"))

	n1 := trie.Insert(root, fp)
	n1.SetPayload("shared")

	n2 := trie.Find(root, fingerprint.FP1(term.Func("a")))
	assert.Same(t, n1, n2)
}

func collectInto(dst *[]string) trie.Collector[string] {
	return func(p string) { *dst = append(*dst, p) }
}

func TestFindUnifiableScenarioS3(t *testing.T) {
	// S3: insert f(a) and f(b) (FP3D); query find_unifiable(f(X)) must
	// yield both.
	root := trie.NewNode[string]()
	fa, fb := term.Func("f", term.Func("a")), term.Func("f", term.Func("b"))

	trie.Insert(root, fingerprint.FP3D(fa)).SetPayload("f(a)")
	trie.Insert(root, fingerprint.FP3D(fb)).SetPayload("f(b)")

	query := fingerprint.FP3D(term.Func("f", term.Var("X")))

	var got []string
	n := trie.FindUnifiable(root, query, collectInto(&got))

	assert.Equal(t, 2, n)
	assert.ElementsMatch(t, []string{"f(a)", "f(b)"}, got)
}

func TestFindUnifiableExcludesDifferentConcreteSymbolScenarioS5(t *testing.T) {
	// S5: insert a (constant); find_unifiable(f(X)) must not yield a.
	root := trie.NewNode[string]()
	trie.Insert(root, fingerprint.FP3D(term.Func("a"))).SetPayload("a")

	query := fingerprint.FP3D(term.Func("f", term.Var("X")))

	var got []string
	n := trie.FindUnifiable(root, query, collectInto(&got))

	assert.Zero(t, n)
	assert.Empty(t, got)
}

func TestFindMatchableScenarioS4(t *testing.T) {
	// S4: insert g(a,a); find_matchable(g(X,Y)) must yield it (the
	// variable pattern matches the concrete instance).
	root := trie.NewNode[string]()
	a := term.Func("a")
	g := term.Func("g", a, a)

	trie.Insert(root, fingerprint.FP3D(g)).SetPayload("g(a,a)")

	query := fingerprint.FP3D(term.Func("g", term.Var("X"), term.Var("Y")))

	var got []string
	n := trie.FindMatchable(root, query, collectInto(&got))

	assert.Equal(t, 1, n)
	assert.Equal(t, []string{"g(a,a)"}, got)
}

func TestFindMatchableRejectsConcreteQueryAgainstVariableInstance(t *testing.T) {
	// Matching is asymmetric: a concrete query position cannot match a
	// stored term that has a variable there.
	root := trie.NewNode[string]()
	trie.Insert(root, fingerprint.FP3D(term.Func("f", term.Var("X")))).SetPayload("f(X)")

	query := fingerprint.FP3D(term.Func("f", term.Func("a")))

	var got []string
	n := trie.FindMatchable(root, query, collectInto(&got))

	assert.Zero(t, n)
	assert.Empty(t, got)
}

func TestEmptyFingerprintYieldsRootPayload(t *testing.T) {
	// spec.md §4.4 "Failure handling": an empty fingerprint (FP0) yields
	// the root payload (all inserted terms).
	root := trie.NewNode[string]()
	root.SetPayload("everything")

	var got []string
	n := trie.FindUnifiable(root, fingerprint.Fingerprint{}, collectInto(&got))
	assert.Equal(t, 1, n)
	assert.Equal(t, []string{"everything"}, got)
}

func TestMarkerCalculusSpotChecks(t *testing.T) {
	// spec.md §8, property 7.
	cases := []struct {
		name           string
		query          fingerprint.SymbolCode
		stored         fingerprint.SymbolCode
		unifyCompat    bool
		matchCompat    bool
	}{
		{"f vs NOT_IN_TERM", 7, fingerprint.NotInTerm, false, false},
		{"ANY_VAR vs NOT_IN_TERM", fingerprint.AnyVar, fingerprint.NotInTerm, false, false},
		{"BELOW_VAR vs NOT_IN_TERM", fingerprint.BelowVar, fingerprint.NotInTerm, true, true},
		{"f vs g", 7, 9, false, false},
		{"f vs ANY_VAR", 7, fingerprint.AnyVar, true, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			root := trie.NewNode[string]()
			n := trie.Insert(root, fingerprint.Fingerprint{tc.stored})
			n.SetPayload("stored")

			query := fingerprint.Fingerprint{tc.query}

			var unifyGot []string
			trie.FindUnifiable(root, query, collectInto(&unifyGot))
			assert.Equal(t, tc.unifyCompat, len(unifyGot) == 1, "unify compatibility")

			var matchGot []string
			trie.FindMatchable(root, query, collectInto(&matchGot))
			assert.Equal(t, tc.matchCompat, len(matchGot) == 1, "match compatibility")
		})
	}
}

func TestWalkDeterministicOrder(t *testing.T) {
	root := trie.NewNode[string]()
	trie.Insert(root, fingerprint.Fingerprint{3}).SetPayload("three")
	trie.Insert(root, fingerprint.Fingerprint{1}).SetPayload("one")
	trie.Insert(root, fingerprint.Fingerprint{2}).SetPayload("two")
	trie.Insert(root, fingerprint.Fingerprint{fingerprint.BelowVar}).SetPayload("below")
	trie.Insert(root, fingerprint.Fingerprint{fingerprint.AnyVar}).SetPayload("any")

	var order []string
	trie.Walk(root, func(_ []fingerprint.SymbolCode, payload string) {
		order = append(order, payload)
	})

	assert.Equal(t, []string{"one", "two", "three", "below", "any"}, order)
}

func TestCollectSizes(t *testing.T) {
	root := trie.NewNode[string]()
	trie.Insert(root, fingerprint.Fingerprint{1}).SetPayload("ab")
	trie.Insert(root, fingerprint.Fingerprint{2}).SetPayload("abcde")

	sizes := trie.CollectSizes(root, func(s string) int { return len(s) })
	assert.ElementsMatch(t, []int{2, 5}, sizes)
}
