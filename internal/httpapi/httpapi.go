// Package httpapi exposes the expression recognizer registry as a JSON
// REST API.
//
// Endpoints (under the configured prefix, default /api/v1):
//
//	GET    /health              service status and per-language sizes
//	POST   /recognize           annotate one sentence's tokens
//	POST   /recognize_document  annotate a list of sentences
//	POST   /expressions         add an expression at runtime
//	DELETE /expressions         remove an expression (query parameters)
//	GET    /statistics          dictionary distributions for a language
package httpapi

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/cognicore/mwe/pkg/mwe"
	"github.com/cognicore/mwe/pkg/mwe/dict"
	"github.com/cognicore/mwe/pkg/mwe/internalerr"

	"github.com/rs/cors"
)

// Server routes API requests to a recognizer registry.
type Server struct {
	registry *mwe.Registry
	prefix   string
	logger   *log.Logger
}

// New creates a Server. A nil logger uses the default logger.
func New(registry *mwe.Registry, prefix string, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	return &Server{registry: registry, prefix: prefix, logger: logger}
}

// Handler builds the full handler chain: mux, request-ID/access logging,
// then CORS for the given origins.
func (s *Server) Handler(corsOrigins []string) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc(s.prefix+"/health", s.handleHealth)
	mux.HandleFunc(s.prefix+"/recognize", s.handleRecognize)
	mux.HandleFunc(s.prefix+"/recognize_document", s.handleRecognizeDocument)
	mux.HandleFunc(s.prefix+"/expressions", s.handleExpressions)
	mux.HandleFunc(s.prefix+"/statistics", s.handleStatistics)

	c := cors.New(cors.Options{
		AllowedOrigins:   corsOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodDelete},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	return c.Handler(s.withRequestID(mux))
}

// ---- JSON types ---------------------------------------------------------

type errorResponse struct {
	Error string `json:"error"`
}

type languageHealth struct {
	Code             string `json:"code"`
	Enabled          bool   `json:"enabled"`
	Expressions      int    `json:"expressions"`
	OverrideMappings int    `json:"override_mappings"`
}

type healthResponse struct {
	Status    string           `json:"status"`
	Languages []languageHealth `json:"languages"`
}

type recognizeRequest struct {
	Language string      `json:"language"`
	Tokens   []mwe.Token `json:"tokens"`
}

// expressionJSON summarizes one matched expression, deduplicated per span.
type expressionJSON struct {
	Span   [2]int   `json:"span"`
	Text   string   `json:"text"`
	Lemma  string   `json:"lemma"`
	POS    string   `json:"pos"`
	Type   string   `json:"type"`
	Tokens []string `json:"tokens"`
}

type recognizeResponse struct {
	Language string           `json:"language"`
	Tokens   []mwe.Token      `json:"tokens"`
	Count    int              `json:"mwe_count"`
	MWEs     []expressionJSON `json:"mwes"`
}

type documentRequest struct {
	Language  string        `json:"language"`
	Sentences [][]mwe.Token `json:"sentences"`
}

type documentResponse struct {
	Language  string        `json:"language"`
	Sentences [][]mwe.Token `json:"sentences"`
	Count     int           `json:"mwe_count"`
}

type addExpressionRequest struct {
	Language string `json:"language"`
	Surface  string `json:"surface"`
	Lemma    string `json:"lemma,omitempty"`
	POS      string `json:"pos,omitempty"`
	Type     string `json:"type,omitempty"`
}

type statisticsResponse struct {
	Language   string          `json:"language"`
	Statistics dict.Statistics `json:"statistics"`
}

// ---- helpers ------------------------------------------------------------

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode error: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// recognizer resolves the language from a request, writing the error
// response itself when the language is unknown.
func (s *Server) recognizer(w http.ResponseWriter, language string) (*mwe.Recognizer, bool) {
	rec, err := s.registry.Get(language)
	if err != nil {
		if errors.Is(err, internalerr.ErrNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
		} else {
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return nil, false
	}
	return rec, true
}

// summarize collects one entry per matched span from annotated tokens.
// Spans never overlap, so the first token of each span is enough to key
// the deduplication.
func summarize(tokens []mwe.Token) []expressionJSON {
	var out []expressionJSON

	for _, t := range tokens {
		ann := t.MWE
		if ann == nil || ann.Position != 0 {
			continue
		}

		texts := make([]string, 0, ann.End-ann.Start)
		for j := ann.Start; j < ann.End && j < len(tokens); j++ {
			texts = append(texts, tokens[j].Text)
		}

		out = append(out, expressionJSON{
			Span:   [2]int{ann.Start, ann.End},
			Text:   strings.Join(texts, " "),
			Lemma:  ann.Lemma,
			POS:    ann.POS,
			Type:   ann.Type,
			Tokens: texts,
		})
	}

	return out
}

// ---- handlers -----------------------------------------------------------

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "GET required")
		return
	}

	resp := healthResponse{Status: "healthy"}
	for _, code := range s.registry.Languages() {
		rec, err := s.registry.Get(code)
		if err != nil {
			continue
		}
		resp.Languages = append(resp.Languages, languageHealth{
			Code:             code,
			Enabled:          rec.Enabled(),
			Expressions:      rec.Statistics().TotalExpressions,
			OverrideMappings: rec.OverrideCount(),
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleRecognize(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "POST required")
		return
	}

	var req recognizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Language == "" {
		writeError(w, http.StatusBadRequest, "body must be JSON with 'language' and 'tokens' fields")
		return
	}

	rec, ok := s.recognizer(w, req.Language)
	if !ok {
		return
	}

	annotated := rec.Recognize(req.Tokens)
	mwes := summarize(annotated)
	writeJSON(w, http.StatusOK, recognizeResponse{
		Language: req.Language,
		Tokens:   annotated,
		Count:    len(mwes),
		MWEs:     mwes,
	})
}

func (s *Server) handleRecognizeDocument(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "POST required")
		return
	}

	var req documentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Language == "" {
		writeError(w, http.StatusBadRequest, "body must be JSON with 'language' and 'sentences' fields")
		return
	}

	rec, ok := s.recognizer(w, req.Language)
	if !ok {
		return
	}

	sentences := rec.RecognizeDocument(req.Sentences)
	count := 0
	for _, sentence := range sentences {
		count += len(summarize(sentence))
	}
	writeJSON(w, http.StatusOK, documentResponse{
		Language:  req.Language,
		Sentences: sentences,
		Count:     count,
	})
}

func (s *Server) handleExpressions(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		var req addExpressionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Language == "" || req.Surface == "" {
			writeError(w, http.StatusBadRequest, "body must be JSON with 'language' and 'surface' fields")
			return
		}
		rec, ok := s.recognizer(w, req.Language)
		if !ok {
			return
		}
		if err := rec.Add(req.Surface, req.Lemma, req.POS, req.Type); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeJSON(w, http.StatusCreated, map[string]string{"status": "added", "surface": req.Surface})

	case http.MethodDelete:
		language := r.URL.Query().Get("language")
		surface := r.URL.Query().Get("surface")
		if language == "" || surface == "" {
			writeError(w, http.StatusBadRequest, "missing 'language' or 'surface' query parameter")
			return
		}
		rec, ok := s.recognizer(w, language)
		if !ok {
			return
		}
		if err := rec.Remove(surface); err != nil {
			if errors.Is(err, internalerr.ErrNotFound) {
				writeError(w, http.StatusNotFound, err.Error())
			} else {
				writeError(w, http.StatusBadRequest, err.Error())
			}
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "removed", "surface": surface})

	default:
		writeError(w, http.StatusMethodNotAllowed, "POST or DELETE required")
	}
}

func (s *Server) handleStatistics(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "GET required")
		return
	}

	language := r.URL.Query().Get("language")
	if language == "" {
		writeError(w, http.StatusBadRequest, "missing 'language' query parameter")
		return
	}

	rec, ok := s.recognizer(w, language)
	if !ok {
		return
	}

	writeJSON(w, http.StatusOK, statisticsResponse{
		Language:   language,
		Statistics: rec.Statistics(),
	})
}
