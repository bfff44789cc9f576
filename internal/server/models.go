// internal/server/models.go
package server

// EvaluateRequest is the body for POST /api/v1/evaluate.
type EvaluateRequest struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// SalaryCalculateRequest is the body for POST /api/v1/salary/calculate.
type SalaryCalculateRequest struct {
	BaseSalary float64            `json:"base_salary"`
	Country    string             `json:"country"`
	Bonuses    map[string]float64 `json:"bonuses,omitempty"`
	Deductions map[string]float64 `json:"deductions,omitempty"`
	Benefits   map[string]float64 `json:"benefits,omitempty"`
}

// StartInterviewRequest is the body for POST /start_interview.
type StartInterviewRequest struct {
	Domain string `json:"domain"`
}

// SubmitAnswerRequest is the body for POST /submit_answer.
type SubmitAnswerRequest struct {
	Answer string `json:"answer"`
}

// RealTimeFeedbackRequest is the body for POST /api/v1/real_time_feedback.
type RealTimeFeedbackRequest struct {
	Answer string `json:"answer"`
}

// ChatRequest is the body for POST /api/v1/chat.
type ChatRequest struct {
	Message string              `json:"message"`
	History []map[string]string `json:"history,omitempty"`
}

// HexagonInsightRequest is the body for POST /api/v1/users/{username}/insights/hexagon.
type HexagonInsightRequest struct {
	UserData map[string]interface{} `json:"user_data"`
}

// AnalysisRequest is the body for POST /api/v1/analysis/progress.
type AnalysisRequest struct {
	History []map[string]interface{} `json:"history"`
}

type errorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
