// internal/catalog/schema.go
package catalog

import (
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

// questionListSchema validates the flat-list catalog shape. The domain-keyed
// shape is validated per domain against the same list schema.
const questionListSchema = `{
  "type": "array",
  "items": {
    "type": "object",
    "required": ["question"],
    "properties": {
      "question": {"type": "string", "minLength": 1},
      "ideal_answer_outline": {"type": "string"},
      "hexagon_impact": {
        "type": "object",
        "properties": {
          "technical_expertise": {"type": "integer", "minimum": 0, "maximum": 10},
          "problem_solving": {"type": "integer", "minimum": 0, "maximum": 10},
          "communication": {"type": "integer", "minimum": 0, "maximum": 10}
        }
      }
    }
  }
}`

// validateQuestionList checks a raw JSON list of question records against
// the catalog schema.
func validateQuestionList(raw []byte) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(questionListSchema),
		gojsonschema.NewBytesLoader(raw),
	)
	if err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	if !result.Valid() {
		first := result.Errors()[0]
		return fmt.Errorf("catalog entry invalid: %s: %s", first.Field(), first.Description())
	}
	return nil
}
