package mwe

import (
	"strings"

	"github.com/cognicore/mwe/pkg/mwe/lemma"
	"github.com/cognicore/mwe/pkg/mwe/trie"
)

// matchSpans finds all expression spans in a token sequence with a single
// greedy left-to-right pass. At each unconsumed position it walks the trie
// token by token, up to maxLength tokens, and keeps only the longest
// terminal found along the walk; a shorter terminal passed on the way down
// never wins. Matched positions are consumed, so returned spans never
// overlap and arrive in non-decreasing start order.
func matchSpans(tokens []Token, root *trie.Node, language string, maxLength int, overrides lemma.Overrides) []Span {
	if len(tokens) == 0 || root == nil {
		return nil
	}

	var spans []Span
	consumed := make(map[int]bool)

	i := 0
	for i < len(tokens) {
		if consumed[i] {
			i++
			continue
		}

		var longest *trie.Record
		length := 0

		node := root
		limit := i + maxLength
		if limit > len(tokens) {
			limit = len(tokens)
		}
		for j := i; j < limit; j++ {
			// Never extend a walk across an already matched token.
			if consumed[j] {
				break
			}

			node = node.Child(tokenLemma(tokens[j], language, overrides))
			if node == nil {
				break
			}

			if rec := node.Record(); rec != nil {
				longest = rec
				length = j - i + 1
			}
		}

		if longest == nil {
			i++
			continue
		}

		end := i + length
		spans = append(spans, Span{Start: i, End: end, Info: longest})
		for k := i; k < end; k++ {
			consumed[k] = true
		}
		i = end
	}

	return spans
}

// tokenLemma resolves the lemma used to walk the trie: the token's own
// pre-computed lemma when present, case-folded, otherwise the rule-based
// fallback with the same overrides the trie was built with.
func tokenLemma(t Token, language string, overrides lemma.Overrides) string {
	if t.Lemma != "" {
		return strings.ToLower(t.Lemma)
	}
	return lemma.Normalize(t.Text, language, overrides)
}
