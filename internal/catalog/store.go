// internal/catalog/store.go
package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	stderrors "interview-backend/internal/common/errors"
	"interview-backend/internal/common/logger"
)

// Store holds the question catalog, loaded once and read-only afterwards.
// Safe for concurrent use by handlers.
type Store struct {
	byDomain map[string][]Question
	all      []Question
	logger   logger.Logger
}

// Load reads the catalog document at path. Two shapes are accepted: a flat
// JSON array of question records, or an object keyed by interview domain
// with a list per domain. A missing or unparseable file is an error; callers
// that want degraded behavior use Empty instead.
func Load(path string, log logger.Logger) (*Store, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, stderrors.NewCatalogLoadFailedError(err)
	}

	s := &Store{
		byDomain: make(map[string][]Question),
		logger:   log.WithFields(map[string]interface{}{"component": "catalog"}),
	}

	// Flat list first, then the domain-keyed object.
	if err := validateQuestionList(raw); err == nil {
		var list []Question
		if uerr := json.Unmarshal(raw, &list); uerr == nil {
			s.byDomain["general"] = list
			s.all = list
			s.logger.Info("catalog loaded", map[string]interface{}{
				"path":      path,
				"questions": len(list),
			})
			return s, nil
		}
	}

	var domains map[string]json.RawMessage
	if err := json.Unmarshal(raw, &domains); err != nil {
		return nil, stderrors.NewCatalogLoadFailedError(fmt.Errorf("catalog is neither a question list nor a domain map: %w", err))
	}

	for domain, rawList := range domains {
		if err := validateQuestionList(rawList); err != nil {
			return nil, stderrors.NewCatalogLoadFailedError(fmt.Errorf("domain %q: %w", domain, err))
		}
		var list []Question
		if err := json.Unmarshal(rawList, &list); err != nil {
			return nil, stderrors.NewCatalogLoadFailedError(fmt.Errorf("domain %q: %w", domain, err))
		}
		s.byDomain[domain] = list
		s.all = append(s.all, list...)
	}

	s.logger.Info("catalog loaded", map[string]interface{}{
		"path":      path,
		"domains":   len(s.byDomain),
		"questions": len(s.all),
	})
	return s, nil
}

// Empty returns a store with no questions. Every fallback evaluation against
// it yields the default result; the service stays up.
func Empty(log logger.Logger) *Store {
	return &Store{
		byDomain: make(map[string][]Question),
		logger:   log.WithFields(map[string]interface{}{"component": "catalog"}),
	}
}

// All returns every question across domains.
func (s *Store) All() []Question {
	return s.all
}

// ByDomain returns the questions for a domain, falling back to "general"
// when the domain is unknown.
func (s *Store) ByDomain(domain string) []Question {
	if list, ok := s.byDomain[domain]; ok {
		return list
	}
	if list, ok := s.byDomain["general"]; ok {
		return list
	}
	return nil
}

// Size returns the total number of questions loaded.
func (s *Store) Size() int {
	return len(s.all)
}
