// internal/catalog/models.go
package catalog

// HexagonImpact is the configured per-question contribution to the three
// skill axes, each in [0,10].
type HexagonImpact struct {
	TechnicalExpertise int `json:"technical_expertise"`
	ProblemSolving     int `json:"problem_solving"`
	Communication      int `json:"communication"`
}

// Question is a single catalog entry. Records are immutable once loaded;
// there is no numeric ID, entries are keyed by question text.
type Question struct {
	Question           string        `json:"question"`
	IdealAnswerOutline string        `json:"ideal_answer_outline"`
	HexagonImpact      HexagonImpact `json:"hexagon_impact"`
}
