// internal/evaluation/client.go
package evaluation

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	stderrors "interview-backend/internal/common/errors"
	"interview-backend/internal/common/logger"
)

// Client talks to a Hugging Face-style text-generation inference endpoint.
// Every failure is converted to a *StandardError; nothing escapes the
// Analyze boundary as a panic or a raw transport error.
type Client struct {
	config *Config
	client *http.Client
	logger logger.Logger
}

func NewClient(config *Config, log logger.Logger) *Client {
	return &Client{
		config: config,
		client: &http.Client{
			// No client-level timeout; the per-request context carries it.
		},
		logger: log.WithFields(map[string]interface{}{"component": "remote-evaluator"}),
	}
}

// generationRequest is the inference API payload.
type generationRequest struct {
	Inputs     string               `json:"inputs"`
	Parameters generationParameters `json:"parameters"`
}

type generationParameters struct {
	MaxLength      int     `json:"max_length"`
	DoSample       bool    `json:"do_sample"`
	Temperature    float64 `json:"temperature"`
	TopP           float64 `json:"top_p"`
	ReturnFullText bool    `json:"return_full_text"`
}

// Analyze sends the prompt to the inference endpoint and returns the
// generated text. Single attempt: a timeout or failure degrades immediately,
// there is no retry policy beyond the context deadline.
func (c *Client) Analyze(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.config.Timeout)
	defer cancel()

	payload := generationRequest{
		Inputs: prompt,
		Parameters: generationParameters{
			MaxLength:      c.config.MaxLength,
			DoSample:       true,
			Temperature:    c.config.Temperature,
			TopP:           c.config.TopP,
			ReturnFullText: false,
		},
	}

	body, _ := json.Marshal(payload)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.ModelURL, bytes.NewBuffer(body))
	if err != nil {
		return "", stderrors.NewRemoteUnavailableError(err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.config.APIKey)

	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Warn("inference request failed", map[string]interface{}{"error": err.Error()})
		return "", stderrors.NewRemoteUnavailableError(err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", stderrors.NewRemoteUnavailableError(err)
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("inference endpoint returned error status", map[string]interface{}{
			"statusCode": resp.StatusCode,
		})
		return "", stderrors.NewRemoteStatusError(resp.StatusCode, string(raw))
	}

	// The reply is a non-empty array whose first element carries the
	// generated text. Anything else is a malformed reply; the raw body is
	// attached for diagnostics.
	var reply []struct {
		GeneratedText string `json:"generated_text"`
	}
	if err := json.Unmarshal(raw, &reply); err != nil {
		return "", stderrors.NewMalformedModelReplyError(fmt.Sprintf("decode reply: %v", err), string(raw))
	}
	if len(reply) == 0 || reply[0].GeneratedText == "" {
		return "", stderrors.NewMalformedModelReplyError("reply missing generated_text", string(raw))
	}

	return reply[0].GeneratedText, nil
}
