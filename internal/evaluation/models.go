// internal/evaluation/models.go
package evaluation

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// HexagonUpdates is one answer's contribution to the three-axis skill
// profile, each value in [0,10].
type HexagonUpdates struct {
	TechnicalExpertise int `json:"technical_expertise"`
	ProblemSolving     int `json:"problem_solving"`
	Communication      int `json:"communication"`
}

// Result is a complete evaluation of one answer. Produced fresh per call,
// never persisted. UsedFallback signals whether the local scorer produced
// the numbers instead of the remote model.
type Result struct {
	Status         string         `json:"status"`
	Score          int            `json:"score"`
	HexagonUpdates HexagonUpdates `json:"hexagon_updates"`
	Reasoning      string         `json:"reasoning"`
	UsedFallback   bool           `json:"used_fallback"`
}

// assessment is the JSON object the model is asked to emit.
type assessment struct {
	Score          *float64 `json:"score"`
	HexagonUpdates struct {
		TechnicalExpertise *float64 `json:"technical_expertise"`
		ProblemSolving     *float64 `json:"problem_solving"`
		Communication      *float64 `json:"communication"`
	} `json:"hexagon_updates"`
	Reasoning string `json:"reasoning"`
}
