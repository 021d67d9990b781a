// Package trie builds the prefix tree the span matcher walks.
//
// Each node maps a normalized lemma token to a child node; terminal nodes
// additionally carry the matched expression's metadata. Every root-to-
// terminal path corresponds to exactly one expression's normalized token
// sequence.
package trie

import (
	"sort"
	"strings"

	"github.com/cognicore/mwe/pkg/mwe/dict"
	"github.com/cognicore/mwe/pkg/mwe/lemma"
)

// Record is the expression metadata stored at a terminal node.
type Record struct {
	// Surface is the original dictionary surface form.
	Surface string
	Lemma   string
	POS     string
	Type    string
	// Length is the number of tokens on this record's trie path. An
	// expression containing contractions is reachable over two paths of
	// different lengths, so the length belongs to the path, not the
	// surface form.
	Length int
}

// Node is one trie node. The children map is only ever created on
// insert, so read paths never allocate.
type Node struct {
	children map[string]*Node
	record   *Record
}

// Child returns the child node for a normalized lemma token, or nil.
func (n *Node) Child(token string) *Node {
	return n.children[token]
}

// Record returns the terminal record, or nil if the node is internal.
func (n *Node) Record() *Record {
	return n.record
}

// Collision reports two surface forms whose normalized lemma sequences
// were identical. Kept is the entry that stayed in the trie.
type Collision struct {
	Kept    string
	Dropped string
}

// Build constructs a trie from the dictionary. Each surface form is split
// on whitespace and normalized word by word with the same override
// dictionary the matcher will use.
//
// Surface forms containing contractions are inserted twice: once with
// every contraction expanded into the tokens an upstream multi-word-token
// expander would produce, and once with the contraction kept as a single
// token. Live text then matches whether or not the upstream tokenizer
// split the contraction.
//
// When two surface forms normalize to the same sequence, the longer
// surface form wins; equal lengths keep the lexicographically smaller
// one. The policy is independent of map iteration order, so the built
// trie is deterministic. Losing entries are reported as collisions,
// sorted for stable logging.
func Build(d dict.Dictionary, language string, overrides lemma.Overrides) (*Node, []Collision) {
	root := &Node{}
	var collisions []Collision

	for surface, e := range d {
		words := strings.Fields(surface)

		var expanded []string
		for _, w := range words {
			expanded = append(expanded, lemma.ExpandContractions(w, language)...)
		}

		expandedSeq := normalizeAll(expanded, language, overrides)
		collisions = append(collisions, root.insert(surface, e, expandedSeq)...)

		if len(expanded) != len(words) {
			literalSeq := normalizeAll(words, language, overrides)
			collisions = append(collisions, root.insert(surface, e, literalSeq)...)
		}
	}

	sort.Slice(collisions, func(i, j int) bool {
		if collisions[i].Kept != collisions[j].Kept {
			return collisions[i].Kept < collisions[j].Kept
		}
		return collisions[i].Dropped < collisions[j].Dropped
	})

	return root, collisions
}

func normalizeAll(words []string, language string, overrides lemma.Overrides) []string {
	lemmas := make([]string, len(words))
	for i, w := range words {
		lemmas[i] = lemma.Normalize(w, language, overrides)
	}
	return lemmas
}

// insert walks/extends the trie along lemmas and stores a terminal record
// for the surface form, applying the collision policy against any record
// already present.
func (n *Node) insert(surface string, e dict.Entry, lemmas []string) []Collision {
	node := n
	for _, l := range lemmas {
		if node.children == nil {
			node.children = make(map[string]*Node)
		}
		child := node.children[l]
		if child == nil {
			child = &Node{}
			node.children[l] = child
		}
		node = child
	}

	rec := &Record{
		Surface: surface,
		Lemma:   e.Lemma,
		POS:     e.POS,
		Type:    e.Type,
		Length:  len(lemmas),
	}

	switch {
	case node.record == nil:
		node.record = rec
		return nil
	case node.record.Surface == surface:
		// Second path of the same expression landed on the same node
		// (contraction expansion was a no-op for the colliding words).
		return nil
	case wins(rec.Surface, node.record.Surface):
		dropped := node.record.Surface
		node.record = rec
		return []Collision{{Kept: surface, Dropped: dropped}}
	default:
		return []Collision{{Kept: node.record.Surface, Dropped: surface}}
	}
}

// wins reports whether surface a beats b under the collision policy.
func wins(a, b string) bool {
	if len(a) != len(b) {
		return len(a) > len(b)
	}
	return a < b
}
