// Command extract-dict builds the expression and override dictionaries
// from a lexicon database and writes them as JSON files consumable by
// the recognizer.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"
	"path/filepath"

	"github.com/cognicore/mwe/internal/lexdb"
)

func main() {
	var (
		dbPath = flag.String("db", "", "Path to lexicon database (required)")
		outDir = flag.String("out", "data/portuguese", "Output directory for JSON files")
	)
	flag.Parse()

	if *dbPath == "" {
		log.Fatal("--db required")
	}

	ctx := context.Background()

	ex, err := lexdb.Open(ctx, *dbPath)
	if err != nil {
		log.Fatal("Failed to open lexicon database: ", err)
	}
	defer ex.Close()

	expressions, err := ex.Expressions(ctx)
	if err != nil {
		log.Fatal("Failed to extract expressions: ", err)
	}
	log.Printf("extracted %d expressions", len(expressions))

	overrides, err := ex.Overrides(ctx)
	if err != nil {
		log.Fatal("Failed to extract override mappings: ", err)
	}
	log.Printf("extracted %d wordform mappings", len(overrides))

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Fatal("Failed to create output directory: ", err)
	}

	writeJSON(filepath.Join(*outDir, "mwe_database.json"), expressions)
	writeJSON(filepath.Join(*outDir, "lemma_dict.json"), overrides)
}

// writeJSON marshals v with indentation; map keys come out sorted, so
// the files diff cleanly between extractions.
func writeJSON(path string, v any) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		log.Fatal("Failed to marshal ", path, ": ", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		log.Fatal("Failed to write ", path, ": ", err)
	}
	log.Printf("wrote %s", path)
}
