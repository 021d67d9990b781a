package trie

import (
	"testing"

	"github.com/cognicore/mwe/pkg/mwe/dict"
	"github.com/cognicore/mwe/pkg/mwe/lemma"
)

func walk(t *testing.T, root *Node, tokens ...string) *Node {
	t.Helper()
	node := root
	for _, tok := range tokens {
		node = node.Child(tok)
		if node == nil {
			t.Fatalf("path %v broke at %q", tokens, tok)
		}
	}
	return node
}

func TestBuildExpandedAndLiteralPaths(t *testing.T) {
	d := dict.FromMap(map[string]dict.Entry{
		"café da manhã": {Lemma: "café da manhã", POS: "NOUN", Type: dict.TypeFixed},
	})

	root, collisions := Build(d, "portuguese", nil)
	if len(collisions) != 0 {
		t.Fatalf("unexpected collisions: %v", collisions)
	}

	// Expanded path: the contraction "da" splits into "de" "a".
	expanded := walk(t, root, "café", "de", "a", "manhã")
	rec := expanded.Record()
	if rec == nil {
		t.Fatal("expanded path has no terminal record")
	}
	if rec.Length != 4 || rec.Lemma != "café da manhã" || rec.POS != "NOUN" {
		t.Errorf("expanded record = %+v", rec)
	}

	// Literal path: the contraction kept whole, for tokenizers that do
	// not split it.
	literal := walk(t, root, "café", "da", "manhã")
	rec = literal.Record()
	if rec == nil {
		t.Fatal("literal path has no terminal record")
	}
	if rec.Length != 3 {
		t.Errorf("literal record length = %d, want 3", rec.Length)
	}

	// Internal nodes are not terminals.
	if walk(t, root, "café").Record() != nil {
		t.Error("internal node carries a record")
	}
}

func TestBuildNormalizesWithOverrides(t *testing.T) {
	d := dict.FromMap(map[string]dict.Entry{
		"dar certo": {Lemma: "dar certo", POS: "VERB"},
	})
	overrides := lemma.Overrides{"certos": "certo"}

	root, _ := Build(d, "portuguese", overrides)
	if walk(t, root, "dar", "certo").Record() == nil {
		t.Fatal("expected terminal at dar→certo")
	}
}

func TestBuildCollisionPolicy(t *testing.T) {
	// "flores" and "flor" both normalize to the single lemma "flor";
	// the longer surface form must win regardless of insertion order.
	d := dict.FromMap(map[string]dict.Entry{
		"flor":   {Lemma: "flor", POS: "NOUN"},
		"flores": {Lemma: "flores", POS: "NOUN"},
	})

	root, collisions := Build(d, "portuguese", nil)

	rec := walk(t, root, "flor").Record()
	if rec == nil || rec.Surface != "flores" {
		t.Fatalf("collision winner = %+v, want surface %q", rec, "flores")
	}

	if len(collisions) != 1 {
		t.Fatalf("collisions = %v, want exactly one", collisions)
	}
	if collisions[0].Kept != "flores" || collisions[0].Dropped != "flor" {
		t.Errorf("collision = %+v", collisions[0])
	}
}

func TestBuildEmptyDictionary(t *testing.T) {
	root, collisions := Build(dict.Dictionary{}, "portuguese", nil)
	if root == nil {
		t.Fatal("root must never be nil")
	}
	if root.Child("anything") != nil {
		t.Error("empty trie has children")
	}
	if len(collisions) != 0 {
		t.Errorf("collisions = %v", collisions)
	}
}

func TestBuildUnknownLanguage(t *testing.T) {
	// No contraction table and no rules: words are only lowercased.
	d := dict.FromMap(map[string]dict.Entry{
		"New York": {Lemma: "New York", POS: "PROPN", Type: dict.TypeFlat},
	})

	root, _ := Build(d, "english", nil)
	if walk(t, root, "new", "york").Record() == nil {
		t.Fatal("expected terminal at new→york")
	}
}
