// Package lexdb extracts the expression and override dictionaries from a
// lexicon database.
//
// The database exposes two views: view_lemma (canonical lemmas with a
// Universal Dependencies POS tag) and view_lexicon (inflected wordforms
// joined to their lemma). Multi-word lemma names become expression
// entries; single-word lemmas with their wordforms become the
// wordform→lemma override dictionary.
package lexdb

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/cognicore/mwe/pkg/mwe/dict"
)

// Extractor reads dictionaries from a lexicon database.
type Extractor struct {
	db *sql.DB
}

// Open opens the lexicon database at path using the pure-Go SQLite driver.
func Open(ctx context.Context, path string) (*Extractor, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("open lexicon db %s: %w", path, err)
	}
	return &Extractor{db: db}, nil
}

// Close closes the underlying database.
func (e *Extractor) Close() error {
	return e.db.Close()
}

// Expressions extracts the expression dictionary: every lemma whose name
// contains a space becomes a fixed expression keyed by that name, with
// the name itself as canonical lemma. Rows with NULL name or POS are
// skipped.
func (e *Extractor) Expressions(ctx context.Context) (map[string]dict.Entry, error) {
	rows, err := e.db.QueryContext(ctx,
		`SELECT name, udPOS FROM view_lemma WHERE name LIKE '% %'`)
	if err != nil {
		return nil, fmt.Errorf("query view_lemma: %w", err)
	}
	defer rows.Close()

	out := make(map[string]dict.Entry)
	for rows.Next() {
		var name, pos sql.NullString
		if err := rows.Scan(&name, &pos); err != nil {
			return nil, err
		}
		if !name.Valid || name.String == "" || !pos.Valid || pos.String == "" {
			continue
		}
		out[name.String] = dict.Entry{
			Lemma: name.String,
			POS:   pos.String,
			Type:  dict.TypeFixed,
		}
	}
	return out, rows.Err()
}

// Overrides extracts the wordform→lemma override dictionary from the
// wordform/lemma join, restricted to single-word lemmas. Both sides are
// lowercased. Identity mappings are dropped (absence already means "form
// equals lemma"), contraction forms are dropped (an upstream tokenizer
// splits those before the engine sees them), and when one form maps to
// several lemmas the shorter lemma is kept.
func (e *Extractor) Overrides(ctx context.Context) (map[string]string, error) {
	rows, err := e.db.QueryContext(ctx,
		`SELECT lx.form, lm.name
		 FROM view_lexicon lx
		 JOIN view_lemma lm ON (lx.idLemma = lm.idLemma)
		 WHERE lm.name NOT LIKE '% %'`)
	if err != nil {
		return nil, fmt.Errorf("query view_lexicon: %w", err)
	}
	defer rows.Close()

	out := make(map[string]string)
	for rows.Next() {
		var form, lemma sql.NullString
		if err := rows.Scan(&form, &lemma); err != nil {
			return nil, err
		}
		if !form.Valid || form.String == "" || !lemma.Valid || lemma.String == "" {
			continue
		}

		f := strings.ToLower(form.String)
		l := strings.ToLower(lemma.String)

		if f == l {
			continue
		}
		if _, isContraction := portugueseContractionForms[f]; isContraction {
			continue
		}

		if existing, ok := out[f]; ok {
			if len(l) < len(existing) {
				out[f] = l
			}
			continue
		}
		out[f] = l
	}
	return out, rows.Err()
}

// portugueseContractionForms lists surface forms handled by the upstream
// multi-word-token expander. They must stay out of the override
// dictionary or they would shadow the expander's split.
var portugueseContractionForms = map[string]struct{}{
	"da": {}, "do": {}, "das": {}, "dos": {},
	"na": {}, "no": {}, "nas": {}, "nos": {},
	"ao": {}, "aos": {}, "à": {}, "às": {},
	"pela": {}, "pelo": {}, "pelas": {}, "pelos": {},
	"dum": {}, "duma": {}, "duns": {}, "dumas": {},
	"num": {}, "numa": {}, "nuns": {}, "numas": {},
	"dele": {}, "dela": {}, "deles": {}, "delas": {},
	"nele": {}, "nela": {}, "neles": {}, "nelas": {},
	"deste": {}, "desta": {}, "destes": {}, "destas": {},
	"neste": {}, "nesta": {}, "nestes": {}, "nestas": {},
	"desse": {}, "dessa": {}, "desses": {}, "dessas": {},
	"nesse": {}, "nessa": {}, "nesses": {}, "nessas": {},
	"daquele": {}, "daquela": {}, "daqueles": {}, "daquelas": {},
	"naquele": {}, "naquela": {}, "naqueles": {}, "naquelas": {},
	"disto": {}, "disso": {}, "daquilo": {},
	"nisto": {}, "nisso": {}, "naquilo": {},
}
