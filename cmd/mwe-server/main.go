// Command mwe-server serves the multiword-expression recognizer as a
// JSON REST API.
package main

import (
	"flag"
	"log"
	"net/http"

	"github.com/cognicore/mwe/internal/httpapi"
	"github.com/cognicore/mwe/pkg/mwe"
	"github.com/cognicore/mwe/pkg/mwe/config"
)

func main() {
	var (
		configPath = flag.String("config", "", "Path to YAML configuration file (optional)")
		addr       = flag.String("addr", "", "Listen address (overrides configuration)")
	)
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal("Failed to load configuration: ", err)
	}
	if *addr != "" {
		cfg.ListenAddr = *addr
	}

	registry := mwe.NewRegistry()
	for _, lang := range cfg.Languages {
		registry.Register(mwe.New(mwe.Options{
			Language:       lang.Code,
			DictionaryPath: lang.Dictionary,
			OverridesPath:  lang.Overrides,
			MaxLength:      cfg.MaxExpressionLength,
		}))
	}
	if len(cfg.Languages) == 0 {
		// No dictionaries configured: register a disabled default so the
		// API answers with a clear state instead of 404s everywhere.
		registry.Register(mwe.New(mwe.Options{
			Language:  cfg.DefaultLanguage,
			MaxLength: cfg.MaxExpressionLength,
		}))
	}

	server := httpapi.New(registry, cfg.APIPrefix, nil)

	log.Printf("listening on %s (languages: %v)", cfg.ListenAddr, registry.Languages())
	if err := http.ListenAndServe(cfg.ListenAddr, server.Handler(cfg.CORSOrigins)); err != nil {
		log.Fatal("server error: ", err)
	}
}
