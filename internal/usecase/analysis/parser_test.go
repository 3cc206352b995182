package analysis

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jayantelango/ai-driven-meeting-summarizer/internal/domain/entities"
)

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain object", `{"summary": "ok"}`, `{"summary": "ok"}`},
		{"fenced", "```json\n{\"summary\": \"ok\"}\n```", `{"summary": "ok"}`},
		{"surrounded by prose", `Here is the result: {"summary": "ok"} hope it helps`, `{"summary": "ok"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractJSON(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractJSONNoObject(t *testing.T) {
	_, err := ExtractJSON("the model refused to answer")
	assert.ErrorIs(t, err, ErrNoJSON)
}

func TestParseBackfillsMandatoryFields(t *testing.T) {
	result, err := Parse(`{"mood": {"overall": "Positive", "justification": "went well"}}`)
	require.NoError(t, err)

	assert.Equal(t, "No summary available.", result.Summary)
	assert.NotNil(t, result.ActionItems)
	assert.NotNil(t, result.KeyDecisions)
	assert.NotNil(t, result.NextSteps)
	assert.NotNil(t, result.Participants)
}

func TestParseConfidenceEncodings(t *testing.T) {
	response := `{
		"summary": "s",
		"action_items": [{"task": "a", "assignee": "Sarah", "confidence": 0.85}],
		"tasks": [{"task": "b", "assignee": "Mike", "confidence": "High"}]
	}`

	result, err := Parse(response)
	require.NoError(t, err)
	assert.Equal(t, entities.Confidence("0.85"), result.ActionItems[0].Confidence)
	assert.Equal(t, entities.Confidence("High"), result.Tasks[0].Confidence)
}

func TestParseCapsListLengths(t *testing.T) {
	var items []string
	for i := 0; i < 15; i++ {
		items = append(items, fmt.Sprintf(`{"task": "task %d", "assignee": "Sarah"}`, i))
	}
	response := fmt.Sprintf(`{"summary": "s", "action_items": [%s], "key_decisions": ["a","b","c","d","e","f","g"], "next_steps": ["a","b","c","d","e","f"]}`,
		strings.Join(items, ","))

	result, err := Parse(response)
	require.NoError(t, err)
	assert.Len(t, result.ActionItems, entities.MaxActionItems)
	assert.Len(t, result.KeyDecisions, entities.MaxKeyDecisions)
	assert.Len(t, result.NextSteps, entities.MaxNextSteps)
}

func TestParseMalformedJSON(t *testing.T) {
	_, err := Parse(`{"summary": "unterminated`)
	assert.Error(t, err)
}
