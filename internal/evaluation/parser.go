// internal/evaluation/parser.go
package evaluation

import (
	"encoding/json"
	"fmt"
	"strings"
)

// extractJSONObject returns the substring between the first '{' and the
// last '}' in s. The match is deliberately greedy: model replies sometimes
// nest objects, and the outermost braces are the intended payload.
func extractJSONObject(s string) (string, bool) {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start == -1 || end == -1 || end < start {
		return "", false
	}
	return s[start : end+1], true
}

// parseAssessment pulls the assessment object out of free-form model text,
// validates the numeric fields and clamps them to their ranges. A missing or
// non-numeric score or skill value fails the parse; a missing reasoning is
// defaulted.
func parseAssessment(text string) (*Result, error) {
	js, ok := extractJSONObject(text)
	if !ok {
		return nil, fmt.Errorf("no JSON found in model response")
	}

	var a assessment
	if err := json.Unmarshal([]byte(js), &a); err != nil {
		return nil, fmt.Errorf("parse model response: %w", err)
	}

	if a.Score == nil {
		return nil, fmt.Errorf("model response missing score")
	}
	if a.HexagonUpdates.TechnicalExpertise == nil ||
		a.HexagonUpdates.ProblemSolving == nil ||
		a.HexagonUpdates.Communication == nil {
		return nil, fmt.Errorf("model response missing hexagon updates")
	}

	reasoning := a.Reasoning
	if reasoning == "" {
		reasoning = "No reasoning provided"
	}

	return &Result{
		Status: StatusSuccess,
		Score:  clampInt(int(*a.Score), 0, 100),
		HexagonUpdates: HexagonUpdates{
			TechnicalExpertise: clampInt(int(*a.HexagonUpdates.TechnicalExpertise), 0, 10),
			ProblemSolving:     clampInt(int(*a.HexagonUpdates.ProblemSolving), 0, 10),
			Communication:      clampInt(int(*a.HexagonUpdates.Communication), 0, 10),
		},
		Reasoning:    reasoning,
		UsedFallback: false,
	}, nil
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
