package dict

import (
	"encoding/json"
	"log"
	"os"
	"strings"

	"github.com/cognicore/mwe/pkg/mwe/lemma"
)

// FromFile loads a dictionary from a JSON document shaped as an object of
// objects: {"café da manhã": {"lemma": "...", "pos": "NOUN", "type": "fixed"}}.
// A missing or malformed file yields an empty dictionary and a warning on
// logger; it never returns an error. A nil logger uses the default logger.
func FromFile(path string, logger *log.Logger) Dictionary {
	if logger == nil {
		logger = log.Default()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		logger.Printf("warning: expression dictionary not found: %s", path)
		return Dictionary{}
	}

	var raw map[string]Entry
	if err := json.Unmarshal(data, &raw); err != nil {
		logger.Printf("warning: invalid JSON in expression dictionary %s: %v", path, err)
		return Dictionary{}
	}

	return FromMap(raw)
}

// OverridesFromMap builds an override dictionary from an in-memory
// mapping, lowercasing keys and values for case-insensitive matching.
func OverridesFromMap(m map[string]string) lemma.Overrides {
	o := make(lemma.Overrides, len(m))
	for form, l := range m {
		if form == "" {
			continue
		}
		o[strings.ToLower(form)] = strings.ToLower(l)
	}
	return o
}

// OverridesFromFile loads a wordform→lemma override dictionary from a
// JSON document of shape {"cafés": "café", ...}. Keys and values are
// lowercased on load. Failures warn and yield an empty mapping, matching
// FromFile.
func OverridesFromFile(path string, logger *log.Logger) lemma.Overrides {
	if logger == nil {
		logger = log.Default()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		logger.Printf("warning: override dictionary not found: %s", path)
		return lemma.Overrides{}
	}

	var raw map[string]string
	if err := json.Unmarshal(data, &raw); err != nil {
		logger.Printf("warning: invalid JSON in override dictionary %s: %v", path, err)
		return lemma.Overrides{}
	}

	return OverridesFromMap(raw)
}
