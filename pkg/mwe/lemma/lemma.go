// Package lemma maps surface wordforms to canonical lemmas.
//
// Normalization prefers an explicit override dictionary and falls back to
// language-specific morphological rules. Both the override dictionary and
// the rules operate on lowercased input, so matching is case-insensitive
// throughout.
package lemma

import "strings"

// Overrides maps lowercased wordforms to lowercased canonical lemmas.
// An absent entry means "use the rule-based fallback"; the table never
// maps a form to itself implicitly.
type Overrides map[string]string

// Lookup returns the override lemma for word, if one exists.
// The word is lowercased before the lookup.
func (o Overrides) Lookup(word string) (string, bool) {
	if o == nil {
		return "", false
	}
	l, ok := o[strings.ToLower(word)]
	return l, ok
}

// Normalize returns the canonical lemma for a surface wordform.
//
// Priority:
//  1. the override dictionary, if it contains the lowercased word
//  2. language-specific morphological rules
//
// Languages without rules get the lowercased word back unchanged.
// The empty string normalizes to itself.
func Normalize(word, language string, overrides Overrides) string {
	if word == "" {
		return word
	}

	lower := strings.ToLower(word)

	if l, ok := overrides.Lookup(lower); ok {
		return l
	}

	if isPortuguese(language) {
		return lemmatizePortuguese(lower)
	}

	return lower
}

// ExpandContractions expands a single surface token into the token sequence
// it morphologically represents (e.g. Portuguese "da" → ["de", "a"]).
// Lookup is case-insensitive; unrecognized words and languages without a
// contraction table expand to the word itself.
//
// Expansion is applied only when building a trie from dictionary surface
// forms, so dictionary entries line up with text whose contractions an
// upstream tokenizer already split.
func ExpandContractions(word, language string) []string {
	if isPortuguese(language) {
		if exp, ok := portugueseContractions[strings.ToLower(word)]; ok {
			return exp
		}
	}
	return []string{word}
}

func isPortuguese(language string) bool {
	return language == "portuguese" || language == "pt"
}
