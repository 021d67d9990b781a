package lemma

import "strings"

// portugueseVowels are the characters that select the -eis→-l branch
// over -eis→-il: the rune right before the suffix decides.
const portugueseVowels = "aeiouáéíóú"

// lemmatizePortuguese applies ordered suffix-rewrite rules covering the
// common plural and gerund patterns. The word must already be lowercased.
//
// The rules overlap (-es is a substring of -res), so the first match wins
// and the order below is load-bearing.
func lemmatizePortuguese(word string) string {
	switch {
	case strings.HasSuffix(word, "ões"):
		return strings.TrimSuffix(word, "ões") + "ão" // limões → limão
	case strings.HasSuffix(word, "ães"):
		return strings.TrimSuffix(word, "ães") + "ão" // pães → pão
	case strings.HasSuffix(word, "ãos"):
		return strings.TrimSuffix(word, "ãos") + "ão" // mãos → mão
	case strings.HasSuffix(word, "eis"):
		runes := []rune(word)
		if len(runes) > 4 && strings.ContainsRune(portugueseVowels, runes[len(runes)-4]) {
			return strings.TrimSuffix(word, "eis") + "l"
		}
		return strings.TrimSuffix(word, "eis") + "il"
	case strings.HasSuffix(word, "óis"):
		return strings.TrimSuffix(word, "óis") + "ol" // sóis → sol
	case strings.HasSuffix(word, "res"):
		return strings.TrimSuffix(word, "es") // flores → flor
	case strings.HasSuffix(word, "ses"):
		return strings.TrimSuffix(word, "es") // meses → mes
	case strings.HasSuffix(word, "zes"):
		return strings.TrimSuffix(word, "es") // luzes → luz
	case strings.HasSuffix(word, "ns"):
		return strings.TrimSuffix(word, "ns") + "m" // jardins → jardim
	case strings.HasSuffix(word, "s") && len([]rune(word)) > 2:
		return strings.TrimSuffix(word, "s") // cafés → café
	case strings.HasSuffix(word, "ando"):
		return strings.TrimSuffix(word, "ando") + "ar" // falando → falar
	case strings.HasSuffix(word, "endo"):
		return strings.TrimSuffix(word, "endo") + "er" // comendo → comer
	case strings.HasSuffix(word, "indo"):
		return strings.TrimSuffix(word, "indo") + "er"
	}
	return word
}

// portugueseContractions maps preposition+article fusions to the token
// sequence an upstream multi-word-token expander would produce.
var portugueseContractions = map[string][]string{
	"da":    {"de", "a"},
	"do":    {"de", "o"},
	"das":   {"de", "as"},
	"dos":   {"de", "os"},
	"na":    {"em", "a"},
	"no":    {"em", "o"},
	"nas":   {"em", "as"},
	"nos":   {"em", "os"},
	"ao":    {"a", "o"},
	"aos":   {"a", "os"},
	"à":     {"a", "a"},
	"às":    {"a", "as"},
	"pela":  {"por", "a"},
	"pelo":  {"por", "o"},
	"pelas": {"por", "as"},
	"pelos": {"por", "os"},
	"dum":   {"de", "um"},
	"duma":  {"de", "uma"},
	"duns":  {"de", "uns"},
	"dumas": {"de", "umas"},
	"num":   {"em", "um"},
	"numa":  {"em", "uma"},
	"nuns":  {"em", "uns"},
	"numas": {"em", "umas"},
}
