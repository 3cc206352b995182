package analysis

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubGenerator struct {
	response string
	err      error
	prompts  []string
}

func (s *stubGenerator) Generate(_ context.Context, prompt string) (string, error) {
	s.prompts = append(s.prompts, prompt)
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

func TestAnalyzeModelPath(t *testing.T) {
	gen := &stubGenerator{response: `{
		"summary": "Team aligned on the Q3 launch.",
		"mood": {"overall": "Positive", "justification": "productive"},
		"action_items": [{"task": "Draft launch plan", "assignee": "Sarah", "priority": "High", "confidence": 0.9}],
		"participants": ["Sarah", "Mike"],
		"key_decisions": ["Launch moves to July"],
		"next_steps": ["Review plan next week"]
	}`}
	engine := NewEngine(gen, nil)

	result := engine.Analyze(context.Background(), AnalyzeInput{Transcript: "Sarah: let's plan the launch."})

	require.NotNil(t, result)
	assert.False(t, result.UsedFallback)
	assert.Equal(t, "Team aligned on the Q3 launch.", result.Summary)
	require.Len(t, result.ActionItems, 1)
	assert.Equal(t, "Sarah", result.ActionItems[0].Assignee)
	assert.Len(t, gen.prompts, 1)
}

func TestAnalyzePromptCarriesContext(t *testing.T) {
	gen := &stubGenerator{response: `{"summary": "s"}`}
	engine := NewEngine(gen, nil)

	engine.Analyze(context.Background(), AnalyzeInput{
		Transcript:      "Sarah: hello.",
		ClientName:      "Acme Corp",
		ProjectName:     "Website Redesign",
		TemplateContext: "Focus on sales objectives",
	})

	require.Len(t, gen.prompts, 1)
	prompt := gen.prompts[0]
	assert.Contains(t, prompt, "Acme Corp")
	assert.Contains(t, prompt, "Website Redesign")
	assert.Contains(t, prompt, "Focus on sales objectives")
	assert.Contains(t, prompt, "Sarah: hello.")
}

// On a transport failure the result must be exactly what the heuristic
// extractor produces for the transcript.
func TestAnalyzeModelErrorFallsBack(t *testing.T) {
	gen := &stubGenerator{err: errors.New("connection refused")}
	engine := NewEngine(gen, nil)

	got := engine.Analyze(context.Background(), AnalyzeInput{Transcript: sampleTranscript})
	want := Fallback(sampleTranscript)

	gotJSON, err := json.Marshal(got)
	require.NoError(t, err)
	wantJSON, err := json.Marshal(want)
	require.NoError(t, err)
	assert.Equal(t, wantJSON, gotJSON)
	assert.True(t, got.UsedFallback)
}

// When the model answers in prose the extractor runs over the answer
// text, not the transcript.
func TestAnalyzeNonJSONResponseFallsBackOnRawText(t *testing.T) {
	raw := "Sure! The team agreed the rollout is approved and Dave will prepare the release notes."
	gen := &stubGenerator{response: raw}
	engine := NewEngine(gen, nil)

	got := engine.Analyze(context.Background(), AnalyzeInput{Transcript: sampleTranscript})
	want := Fallback(raw)

	assert.True(t, got.UsedFallback)
	assert.Equal(t, want.Summary, got.Summary)
	assert.Equal(t, want.KeyDecisions, got.KeyDecisions)
}

func TestAnalyzeWithoutModel(t *testing.T) {
	engine := NewEngine(nil, nil)

	result := engine.Analyze(context.Background(), AnalyzeInput{Transcript: sampleTranscript})

	require.NotNil(t, result)
	assert.True(t, result.UsedFallback)
	assert.False(t, engine.ModelAvailable())
}

func TestAnalyzeFencedResponse(t *testing.T) {
	gen := &stubGenerator{response: "```json\n{\"summary\": \"fenced but fine\"}\n```"}
	engine := NewEngine(gen, nil)

	result := engine.Analyze(context.Background(), AnalyzeInput{Transcript: "Sarah: hi."})

	assert.False(t, result.UsedFallback)
	assert.Equal(t, "fenced but fine", result.Summary)
}
