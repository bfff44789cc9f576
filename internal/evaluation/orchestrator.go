// internal/evaluation/orchestrator.go
package evaluation

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"interview-backend/internal/common/logger"
	"interview-backend/internal/common/metrics"
)

// shortAnswerThreshold is the minimum trimmed answer length for an answer to
// be scored at face value. Anything shorter is penalized regardless of which
// scoring path produced the numbers.
const shortAnswerThreshold = 10

// Evaluator scores answers. The remote model is preferred; any failure along
// that path degrades to the local scorer. AssessAnswer never returns an
// error: a result always comes back.
type Evaluator struct {
	client   *Client
	fallback *FallbackScorer
	cache    *ResultCache
	logger   logger.Logger
}

// NewEvaluator builds the evaluation pipeline. client may be nil when remote
// inference is disabled; every evaluation then takes the fallback path.
func NewEvaluator(client *Client, fallback *FallbackScorer, cache *ResultCache, log logger.Logger) *Evaluator {
	return &Evaluator{
		client:   client,
		fallback: fallback,
		cache:    cache,
		logger:   log.WithFields(map[string]interface{}{"component": "evaluator"}),
	}
}

// AssessAnswer evaluates an answer to a question and returns a complete
// result. Remote failures, malformed replies and out-of-range payloads all
// degrade to the local scorer; the caller cannot observe an error.
func (e *Evaluator) AssessAnswer(ctx context.Context, question, answer string) *Result {
	evalID := uuid.New().String()
	log := e.logger.WithFields(map[string]interface{}{"evaluationId": evalID})
	start := time.Now()

	if cached := e.cache.Get(ctx, question, answer); cached != nil {
		log.Debug("returning cached evaluation", nil)
		return cached
	}

	result, path := e.assess(ctx, question, answer, log)
	applyShortAnswerPenalty(result, answer)

	metrics.EvaluationsTotal.WithLabelValues(path).Inc()
	metrics.EvaluationDuration.WithLabelValues(path).Observe(time.Since(start).Seconds())

	log.Info("answer evaluated", map[string]interface{}{
		"path":         path,
		"score":        result.Score,
		"usedFallback": result.UsedFallback,
		"durationMs":   time.Since(start).Milliseconds(),
	})

	e.cache.Put(ctx, question, answer, result)
	return result
}

func (e *Evaluator) assess(ctx context.Context, question, answer string, log logger.Logger) (*Result, string) {
	if e.client == nil {
		metrics.EvaluationFallbacks.WithLabelValues("remote_disabled").Inc()
		return e.fallback.Score(question, answer), "fallback"
	}

	text, err := e.client.Analyze(ctx, buildPrompt(question, answer))
	if err != nil {
		log.Warn("remote evaluation failed, using local scorer", map[string]interface{}{
			"error": err.Error(),
		})
		metrics.EvaluationFallbacks.WithLabelValues("remote_error").Inc()
		return e.fallback.Score(question, answer), "fallback"
	}

	result, err := parseAssessment(text)
	if err != nil {
		log.Warn("model reply unusable, using local scorer", map[string]interface{}{
			"error": err.Error(),
		})
		metrics.EvaluationFallbacks.WithLabelValues("malformed_reply").Inc()
		return e.fallback.Score(question, answer), "fallback"
	}

	return result, "remote"
}

// applyShortAnswerPenalty caps the score and halves the skill contributions
// for answers too short to carry real content. Applied after either scoring
// path so remote and local results are penalized the same way.
func applyShortAnswerPenalty(r *Result, answer string) {
	if len(strings.TrimSpace(answer)) >= shortAnswerThreshold {
		return
	}
	if r.Score > 30 {
		r.Score = 30
	}
	r.HexagonUpdates.TechnicalExpertise = clampInt(r.HexagonUpdates.TechnicalExpertise/2, 1, 10)
	r.HexagonUpdates.ProblemSolving = clampInt(r.HexagonUpdates.ProblemSolving/2, 1, 10)
	r.HexagonUpdates.Communication = clampInt(r.HexagonUpdates.Communication/2, 1, 10)
}

// buildPrompt renders the evaluation instruction sent to the model. The
// model is asked for a bare JSON object so the reply parser has something to
// anchor on.
func buildPrompt(question, answer string) string {
	lines := []string{
		"You are an expert technical interviewer evaluating a candidate's answer.",
		"",
		"Question: " + question,
		"",
		"Candidate's answer: " + answer,
		"",
		"Evaluate the answer and respond with only a JSON object in this exact format:",
		`{"score": <0-100>, "hexagon_updates": {"technical_expertise": <0-10>, "problem_solving": <0-10>, "communication": <0-10>}, "reasoning": "<one or two sentences>"}`,
		"",
		"Score the technical accuracy and completeness of the answer.",
	}
	return strings.Join(lines, "\n")
}
