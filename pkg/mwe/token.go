package mwe

import "github.com/cognicore/mwe/pkg/mwe/trie"

// Token is the unit of input and output. Only Text is required; Lemma is
// an externally supplied lemma the matcher prefers over its own fallback.
// Expanded carries the sub-token sequence an upstream multi-word-token
// expander may have attached.
//
// Annotation is set only on tokens inside a matched span; everything else
// about the token is carried through untouched.
type Token struct {
	Text     string  `json:"text"`
	Lemma    string  `json:"lemma,omitempty"`
	Expanded []Token `json:"expanded,omitempty"`

	MWE *Annotation `json:"mwe,omitempty"`
}

// Annotation is the match metadata attached to each token of a matched
// span. Start/End are sentence-level token indices (half-open); Head is
// always the span start and Position the 0-based offset from it.
type Annotation struct {
	Start    int    `json:"start"`
	End      int    `json:"end"`
	Lemma    string `json:"lemma"`
	POS      string `json:"pos"`
	Type     string `json:"type"`
	Head     int    `json:"head"`
	Position int    `json:"position"`
}

// Span is one matched expression: a half-open token index range plus the
// terminal record it matched.
type Span struct {
	Start int
	End   int
	Info  *trie.Record
}
