// Package dict holds the multiword-expression dictionary: surface forms
// keyed to their canonical lemma, part-of-speech tag and expression type.
//
// Dictionaries come from one of two closed loader variants, an in-memory
// mapping or a JSON file, and both produce the same normalized mapping.
// Load failures never escape as errors; the loaders log a warning and
// return an empty dictionary so the caller can keep running with the
// feature disabled.
package dict

import "strings"

// Expression types. Anything else is carried through as given.
const (
	TypeFixed    = "fixed"
	TypeFlat     = "flat"
	TypeCompound = "compound"
	TypeOther    = "other"
)

// Entry is the metadata stored for one surface form.
type Entry struct {
	Lemma string `json:"lemma"`
	POS   string `json:"pos"`
	Type  string `json:"type"`
}

// Dictionary maps a surface form (ordered whitespace-delimited words) to
// its entry. Surface forms keep their original case; matching lowercases
// on the way into the trie instead.
type Dictionary map[string]Entry

// normalized fills entry defaults: the lemma defaults to the surface form,
// the POS tag to "X" and the type to fixed.
func normalized(surface string, e Entry) Entry {
	if e.Lemma == "" {
		e.Lemma = surface
	}
	if e.POS == "" {
		e.POS = "X"
	}
	if e.Type == "" {
		e.Type = TypeFixed
	}
	return e
}

// FromMap builds a dictionary from an in-memory mapping, filling entry
// defaults. The input map is not retained.
func FromMap(m map[string]Entry) Dictionary {
	d := make(Dictionary, len(m))
	for surface, e := range m {
		if surface == "" {
			continue
		}
		d[surface] = normalized(surface, e)
	}
	return d
}

// Clone returns a shallow copy of the dictionary. Mutation paths copy
// before writing so readers holding the old map never observe the change.
func (d Dictionary) Clone() Dictionary {
	out := make(Dictionary, len(d)+1)
	for surface, e := range d {
		out[surface] = e
	}
	return out
}

// TokenLength reports the number of whitespace-delimited words in a
// surface form, before any contraction expansion.
func TokenLength(surface string) int {
	return len(strings.Fields(surface))
}
