// internal/evaluation/fallback.go
package evaluation

import (
	"strings"

	"github.com/xrash/smetrics"

	"interview-backend/internal/catalog"
	"interview-backend/internal/common/logger"
)

const (
	// fallbackMatchThreshold is the minimum question similarity for a
	// catalog entry to be considered the question being answered.
	fallbackMatchThreshold = 0.7

	defaultFallbackScore = 50
	defaultFallbackAxis  = 5
)

// FallbackScorer produces a deterministic local evaluation when the remote
// model is unavailable or its reply cannot be used. It matches the incoming
// question against the catalog by fuzzy text similarity and scores the
// answer against the matched entry's ideal answer outline.
type FallbackScorer struct {
	store  *catalog.Store
	logger logger.Logger
}

func NewFallbackScorer(store *catalog.Store, log logger.Logger) *FallbackScorer {
	return &FallbackScorer{
		store:  store,
		logger: log.WithFields(map[string]interface{}{"component": "fallback-scorer"}),
	}
}

// Score evaluates an answer locally. When no catalog entry is similar enough
// to the question, the neutral default result is returned.
func (f *FallbackScorer) Score(question, answer string) *Result {
	matched, ok := f.match(question)
	if !ok {
		f.logger.Debug("no catalog match for question, using default result", map[string]interface{}{
			"catalogSize": f.store.Size(),
		})
		return &Result{
			Status: StatusSuccess,
			Score:  defaultFallbackScore,
			HexagonUpdates: HexagonUpdates{
				TechnicalExpertise: defaultFallbackAxis,
				ProblemSolving:     defaultFallbackAxis,
				Communication:      defaultFallbackAxis,
			},
			Reasoning:    "Answer evaluated with default criteria (question not in catalog)",
			UsedFallback: true,
		}
	}

	sim := similarity(matched.IdealAnswerOutline, answer)
	score := int(sim * 100)

	return &Result{
		Status: StatusSuccess,
		Score:  score,
		HexagonUpdates: HexagonUpdates{
			TechnicalExpertise: axisFromImpact(matched.HexagonImpact.TechnicalExpertise, score),
			ProblemSolving:     axisFromImpact(matched.HexagonImpact.ProblemSolving, score),
			Communication:      axisFromImpact(matched.HexagonImpact.Communication, score),
		},
		Reasoning:    "Answer evaluated by similarity to the ideal answer outline",
		UsedFallback: true,
	}
}

// match finds the catalog question most similar to q, requiring at least the
// match threshold.
func (f *FallbackScorer) match(q string) (catalog.Question, bool) {
	var (
		best    catalog.Question
		bestSim float64
	)
	for _, entry := range f.store.All() {
		sim := similarity(entry.Question, q)
		if sim > bestSim {
			bestSim = sim
			best = entry
		}
	}
	if bestSim < fallbackMatchThreshold {
		return catalog.Question{}, false
	}
	return best, true
}

// axisFromImpact scales a configured per-question impact by the achieved
// score and clamps the contribution to [1,10].
func axisFromImpact(impact, score int) int {
	return clampInt(impact*score/100, 1, 10)
}

// similarity is a case-insensitive Jaro-Winkler ratio in [0,1].
func similarity(a, b string) float64 {
	return smetrics.JaroWinkler(strings.ToLower(a), strings.ToLower(b), 0.7, 4)
}
