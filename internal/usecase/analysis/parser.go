package analysis

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/jayantelango/ai-driven-meeting-summarizer/internal/domain/entities"
)

// ErrNoJSON indicates the model response contained no JSON object
var ErrNoJSON = errors.New("no JSON object found in response")

// ExtractJSON pulls the JSON object out of a model response. Responses
// often arrive wrapped in markdown fences or surrounded by prose, so it
// takes the span from the first '{' to the last '}'.
func ExtractJSON(text string) (string, error) {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end == -1 || end < start {
		return "", ErrNoJSON
	}
	return text[start : end+1], nil
}

// Parse decodes a model response into an AnalysisResult. The result is
// normalized so mandatory fields are always present and bounded.
func Parse(text string) (*entities.AnalysisResult, error) {
	jsonText, err := ExtractJSON(text)
	if err != nil {
		return nil, err
	}

	var result entities.AnalysisResult
	if err := json.Unmarshal([]byte(jsonText), &result); err != nil {
		return nil, err
	}
	result.Normalize()
	return &result, nil
}
