// Package mwe recognizes multiword expressions in tokenized sentences.
//
// A Recognizer holds one language's expression dictionary and the trie
// derived from it. Recognition is a pure, bounded computation over a
// token slice; the only mutable state is the dictionary/trie pair, which
// Add and Remove replace copy-on-write so concurrent readers always
// observe either the pre- or post-mutation trie, never a partially
// rebuilt one.
package mwe

import (
	"fmt"
	"log"
	"sync"
	"sync/atomic"

	"github.com/cognicore/mwe/pkg/mwe/dict"
	"github.com/cognicore/mwe/pkg/mwe/internalerr"
	"github.com/cognicore/mwe/pkg/mwe/lemma"
	"github.com/cognicore/mwe/pkg/mwe/trie"
)

// DefaultMaxLength bounds how many tokens one expression may span.
const DefaultMaxLength = 10

// Options configures a Recognizer.
//
// The dictionary and the override dictionary each come from one of two
// loader variants: an in-memory mapping or a JSON file path. When both
// are set the in-memory mapping wins. Load failures are non-fatal: the
// recognizer starts with an empty mapping, logs a warning and reports
// Enabled() == false.
type Options struct {
	Language string

	Dictionary     map[string]dict.Entry
	DictionaryPath string

	Overrides     map[string]string
	OverridesPath string

	// MaxLength bounds expression length in tokens; 0 means DefaultMaxLength.
	MaxLength int

	Logger *log.Logger
}

// Recognizer recognizes expressions for a single language.
type Recognizer struct {
	language  string
	maxLength int
	logger    *log.Logger
	overrides lemma.Overrides

	mu   sync.Mutex // serializes Add/Remove and guards dictionary
	dict dict.Dictionary

	root    atomic.Pointer[trie.Node]
	enabled atomic.Bool
}

// New builds a Recognizer: it loads the dictionaries, constructs the trie
// and enables recognition if the dictionary is non-empty. Construction
// never fails; empty or unloadable dictionaries just disable recognition.
func New(opts Options) *Recognizer {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	maxLength := opts.MaxLength
	if maxLength <= 0 {
		maxLength = DefaultMaxLength
	}

	r := &Recognizer{
		language:  opts.Language,
		maxLength: maxLength,
		logger:    logger,
	}

	switch {
	case opts.Dictionary != nil:
		r.dict = dict.FromMap(opts.Dictionary)
	case opts.DictionaryPath != "":
		r.dict = dict.FromFile(opts.DictionaryPath, logger)
	default:
		r.dict = dict.Dictionary{}
	}

	switch {
	case opts.Overrides != nil:
		r.overrides = dict.OverridesFromMap(opts.Overrides)
	case opts.OverridesPath != "":
		r.overrides = dict.OverridesFromFile(opts.OverridesPath, logger)
	default:
		r.overrides = lemma.Overrides{}
	}

	r.rebuild()

	if r.enabled.Load() {
		logger.Printf("loaded expression recognizer for %s: %d expressions, %d override mappings",
			r.language, len(r.dict), len(r.overrides))
	}

	return r
}

// rebuild reconstructs the trie from the live dictionary and swaps it in.
// Callers other than New must hold r.mu.
func (r *Recognizer) rebuild() {
	root, collisions := trie.Build(r.dict, r.language, r.overrides)
	for _, c := range collisions {
		r.logger.Printf("warning: %s: %q and %q normalize to the same lemma sequence; keeping %q",
			r.language, c.Kept, c.Dropped, c.Kept)
	}
	r.root.Store(root)
	r.enabled.Store(len(r.dict) > 0)
}

// Language returns the recognizer's language code.
func (r *Recognizer) Language() string { return r.language }

// Enabled reports whether the dictionary is non-empty.
func (r *Recognizer) Enabled() bool { return r.enabled.Load() }

// OverrideCount returns the number of wordform→lemma override mappings.
func (r *Recognizer) OverrideCount() int { return len(r.overrides) }

// Recognize annotates one sentence's tokens. Disabled recognizers and
// empty inputs return the input unchanged; otherwise the result is a new
// slice of the same length with matched tokens annotated.
func (r *Recognizer) Recognize(tokens []Token) []Token {
	if !r.enabled.Load() || len(tokens) == 0 {
		return tokens
	}

	spans := matchSpans(tokens, r.root.Load(), r.language, r.maxLength, r.overrides)
	if len(spans) == 0 {
		return tokens
	}
	return annotate(tokens, spans)
}

// RecognizeDocument applies Recognize independently to each sentence.
// Tokens carrying a nested Expanded sub-token sequence have that sequence
// recognized independently as well; top-level and nested annotations do
// not interact, and expressions crossing a sub-token boundary are not
// matched.
func (r *Recognizer) RecognizeDocument(sentences [][]Token) [][]Token {
	if !r.enabled.Load() || len(sentences) == 0 {
		return sentences
	}

	out := make([][]Token, len(sentences))
	for si, sentence := range sentences {
		processed := make([]Token, len(sentence))
		copy(processed, sentence)

		for ti, t := range processed {
			if len(t.Expanded) > 0 {
				processed[ti].Expanded = r.Recognize(t.Expanded)
			}
		}

		out[si] = r.Recognize(processed)
	}
	return out
}

// Add inserts or replaces an expression in the live dictionary and
// rebuilds the trie. An empty lemma defaults to the surface form.
func (r *Recognizer) Add(surface, lemmaForm, pos, typ string) error {
	if surface == "" {
		return fmt.Errorf("add expression: %w: empty surface form", internalerr.ErrInvalidInput)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	next := r.dict.Clone()
	next[surface] = dict.Entry{Lemma: lemmaForm, POS: pos, Type: typ}
	r.dict = dict.FromMap(next)
	r.rebuild()
	return nil
}

// Remove deletes an expression by surface form and rebuilds the trie.
// Removing the last entry disables the recognizer. Unknown surface forms
// return internalerr.ErrNotFound.
func (r *Recognizer) Remove(surface string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.dict[surface]; !ok {
		return fmt.Errorf("remove expression %q: %w", surface, internalerr.ErrNotFound)
	}

	next := r.dict.Clone()
	delete(next, surface)
	r.dict = next
	r.rebuild()
	return nil
}

// Statistics computes aggregate counts over the live dictionary.
func (r *Recognizer) Statistics() dict.Statistics {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.dict.Stats()
}
