package mwe

import (
	"fmt"
	"sort"
	"sync"

	"github.com/cognicore/mwe/pkg/mwe/internalerr"
)

// Registry maps language codes to recognizers. It is owned by whoever
// assembles the service and passed by reference into request handling;
// there is no package-level instance.
type Registry struct {
	mu          sync.RWMutex
	recognizers map[string]*Recognizer
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{recognizers: make(map[string]*Recognizer)}
}

// Register adds or replaces the recognizer for its language.
func (g *Registry) Register(r *Recognizer) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.recognizers[r.Language()] = r
}

// Get returns the recognizer for a language, or internalerr.ErrNotFound.
func (g *Registry) Get(language string) (*Recognizer, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	r, ok := g.recognizers[language]
	if !ok {
		return nil, fmt.Errorf("language %q: %w", language, internalerr.ErrNotFound)
	}
	return r, nil
}

// Languages returns the registered language codes, sorted.
func (g *Registry) Languages() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]string, 0, len(g.recognizers))
	for code := range g.recognizers {
		out = append(out, code)
	}
	sort.Strings(out)
	return out
}
