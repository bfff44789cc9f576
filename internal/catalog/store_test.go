// internal/catalog/store_test.go
package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	stderrors "interview-backend/internal/common/errors"
	"interview-backend/internal/common/logger"
)

func writeCatalog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "questions.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// ==========================
// Loading Tests
// ==========================

func TestLoad_FlatList(t *testing.T) {
	path := writeCatalog(t, `[
		{"question": "What is a pointer?", "ideal_answer_outline": "An address of a value.", "hexagon_impact": {"technical_expertise": 7, "problem_solving": 5, "communication": 3}},
		{"question": "What is a slice?", "ideal_answer_outline": "A view over an array.", "hexagon_impact": {"technical_expertise": 6, "problem_solving": 4, "communication": 3}}
	]`)

	store, err := Load(path, logger.Noop())
	require.NoError(t, err)

	assert.Equal(t, 2, store.Size())
	assert.Len(t, store.ByDomain("general"), 2)
	assert.Equal(t, "What is a pointer?", store.All()[0].Question)
	assert.Equal(t, 7, store.All()[0].HexagonImpact.TechnicalExpertise)
}

func TestLoad_DomainMap(t *testing.T) {
	path := writeCatalog(t, `{
		"backend": [{"question": "Explain indexing.", "ideal_answer_outline": "B-trees.", "hexagon_impact": {"technical_expertise": 8, "problem_solving": 6, "communication": 4}}],
		"general": [{"question": "Tell me about yourself.", "ideal_answer_outline": "Background summary.", "hexagon_impact": {"technical_expertise": 2, "problem_solving": 3, "communication": 9}}]
	}`)

	store, err := Load(path, logger.Noop())
	require.NoError(t, err)

	assert.Equal(t, 2, store.Size())
	assert.Len(t, store.ByDomain("backend"), 1)
	assert.Equal(t, "Explain indexing.", store.ByDomain("backend")[0].Question)
}

func TestLoad_UnknownDomainFallsBackToGeneral(t *testing.T) {
	path := writeCatalog(t, `{
		"general": [{"question": "Tell me about yourself.", "ideal_answer_outline": "Background.", "hexagon_impact": {"technical_expertise": 2, "problem_solving": 3, "communication": 9}}]
	}`)

	store, err := Load(path, logger.Noop())
	require.NoError(t, err)

	assert.Len(t, store.ByDomain("frontend"), 1)
}

// ==========================
// Failure Tests
// ==========================

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"), logger.Noop())
	require.Error(t, err)
	assert.Equal(t, stderrors.ErrCodeCatalogLoadFailed, stderrors.AsStandardError(err).Code)
}

func TestLoad_InvalidDocument(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"not json", "hello"},
		{"entry missing question", `[{"ideal_answer_outline": "something"}]`},
		{"hexagon value out of range", `[{"question": "q", "hexagon_impact": {"technical_expertise": 99}}]`},
		{"domain list invalid", `{"backend": [{"no_question": true}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeCatalog(t, tt.content), logger.Noop())
			require.Error(t, err)
			assert.Equal(t, stderrors.ErrCodeCatalogLoadFailed, stderrors.AsStandardError(err).Code)
		})
	}
}

func TestEmpty(t *testing.T) {
	store := Empty(logger.Noop())

	assert.Equal(t, 0, store.Size())
	assert.Empty(t, store.All())
	assert.Nil(t, store.ByDomain("general"))
}
