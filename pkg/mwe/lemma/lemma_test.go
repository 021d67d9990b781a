package lemma

import (
	"reflect"
	"testing"
)

func TestNormalizePortugueseSuffixRules(t *testing.T) {
	cases := []struct {
		word, want string
	}{
		{"limões", "limão"},
		{"pães", "pão"},
		{"mãos", "mão"},
		{"ágeis", "ágil"},
		{"sóis", "sol"},
		{"flores", "flor"},
		{"meses", "mes"},
		{"luzes", "luz"},
		{"jardins", "jardim"},
		{"cafés", "café"},
		{"manhãs", "manhã"},
		{"falando", "falar"},
		{"comendo", "comer"},
		{"uma", "uma"}, // no rule applies
		{"da", "da"},   // contractions are not the normalizer's business
		{"ás", "ás"},   // generic -s drop guarded by length > 2
	}

	for _, c := range cases {
		if got := Normalize(c.word, "portuguese", nil); got != c.want {
			t.Errorf("Normalize(%q) = %q, want %q", c.word, got, c.want)
		}
	}
}

func TestNormalizeEisVowelBranch(t *testing.T) {
	// The -eis rules branch on the character before the suffix.
	if got := Normalize("saeis", "pt", nil); got != "sal" {
		t.Errorf("vowel branch: got %q, want %q", got, "sal")
	}
	if got := Normalize("ágeis", "pt", nil); got != "ágil" {
		t.Errorf("consonant branch: got %q, want %q", got, "ágil")
	}
}

func TestNormalizeCaseFolding(t *testing.T) {
	if got := Normalize("Cafés", "portuguese", nil); got != "café" {
		t.Errorf("got %q, want %q", got, "café")
	}
	if got := Normalize("FLORES", "pt", nil); got != "flor" {
		t.Errorf("got %q, want %q", got, "flor")
	}
}

func TestNormalizeOverridePriority(t *testing.T) {
	overrides := Overrides{
		"cafés":  "café",   // agrees with the rule fallback
		"flores": "floral", // disagrees on purpose
		"foram":  "ser",    // irregular, rules cannot reach it
	}

	cases := map[string]string{
		"cafés":  "café",
		"Flores": "floral",
		"foram":  "ser",
		"meses":  "mes", // not in overrides, falls back to rules
	}

	for word, want := range cases {
		if got := Normalize(word, "portuguese", overrides); got != want {
			t.Errorf("Normalize(%q) = %q, want %q", word, got, want)
		}
	}
}

func TestNormalizeIdempotentOnLemmas(t *testing.T) {
	// Already-normalized lemmas with no applicable rule stay fixed.
	for _, w := range []string{"café", "limão", "jardim", "flor", "falar"} {
		once := Normalize(w, "portuguese", nil)
		twice := Normalize(once, "portuguese", nil)
		if once != twice {
			t.Errorf("Normalize not idempotent on %q: %q then %q", w, once, twice)
		}
	}
}

func TestNormalizeDegenerate(t *testing.T) {
	if got := Normalize("", "portuguese", nil); got != "" {
		t.Errorf("empty word: got %q", got)
	}
	if got := Normalize("Flores", "english", nil); got != "flores" {
		t.Errorf("unknown language should only lowercase: got %q", got)
	}
}

func TestExpandContractions(t *testing.T) {
	cases := []struct {
		word string
		want []string
	}{
		{"da", []string{"de", "a"}},
		{"Num", []string{"em", "um"}}, // case-insensitive lookup
		{"pelos", []string{"por", "os"}},
		{"às", []string{"a", "as"}},
		{"casa", []string{"casa"}}, // not a contraction
	}

	for _, c := range cases {
		if got := ExpandContractions(c.word, "portuguese"); !reflect.DeepEqual(got, c.want) {
			t.Errorf("ExpandContractions(%q) = %v, want %v", c.word, got, c.want)
		}
	}

	if got := ExpandContractions("da", "english"); !reflect.DeepEqual(got, []string{"da"}) {
		t.Errorf("language without contraction table: got %v", got)
	}
}

func TestOverridesLookup(t *testing.T) {
	var nilOverrides Overrides
	if _, ok := nilOverrides.Lookup("cafés"); ok {
		t.Error("nil overrides must miss")
	}

	o := Overrides{"cafés": "café"}
	if l, ok := o.Lookup("CAFÉS"); !ok || l != "café" {
		t.Errorf("Lookup should lowercase: got %q, %v", l, ok)
	}
}
