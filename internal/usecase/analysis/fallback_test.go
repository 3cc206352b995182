package analysis

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jayantelango/ai-driven-meeting-summarizer/internal/domain/entities"
)

const sampleTranscript = `Sarah: We must finish the quarterly report by Friday, this is urgent.
Mike: I think we should improve the deployment process soon.
Sarah: Agreed, let's schedule a review meeting next week.`

func TestFallbackExtractsSpeakersAndActions(t *testing.T) {
	result := Fallback(sampleTranscript)

	require.NotNil(t, result)
	assert.True(t, result.UsedFallback)
	assert.Equal(t, []string{"Sarah", "Mike"}, result.Participants)

	require.NotEmpty(t, result.ActionItems)
	first := result.ActionItems[0]
	assert.Equal(t, "Sarah", first.Assignee)
	assert.Equal(t, string(entities.TaskPriorityHigh), first.Priority)
	assert.Equal(t, "Friday", first.Deadline)
	assert.Contains(t, first.Task, "quarterly report")

	var mikeItem *entities.ExtractedAction
	for i := range result.ActionItems {
		if result.ActionItems[i].Assignee == "Mike" {
			mikeItem = &result.ActionItems[i]
			break
		}
	}
	require.NotNil(t, mikeItem)
	assert.Equal(t, string(entities.TaskPriorityMedium), mikeItem.Priority)
}

func TestFallbackMood(t *testing.T) {
	tests := []struct {
		name       string
		transcript string
		want       string
	}{
		{"positive", "Great progress everyone, the release is complete and ready.", entities.MoodPositive},
		{"negative", "We have a serious problem, the deploy failed and there is a delay.", entities.MoodNegative},
		{"balanced", "We met to talk about the schedule.", entities.MoodNeutral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Fallback(tt.transcript)
			assert.Equal(t, tt.want, result.Mood.Overall)
			assert.NotEmpty(t, result.Mood.Justification)
		})
	}
}

func TestFallbackEmptyTranscript(t *testing.T) {
	result := Fallback("")

	require.NotNil(t, result)
	assert.True(t, result.UsedFallback)
	assert.NotEmpty(t, result.Summary)
	assert.Equal(t, entities.MoodNeutral, result.Mood.Overall)
	assert.Empty(t, result.ActionItems)
	assert.NotNil(t, result.ActionItems)
	assert.NotEmpty(t, result.KeyDecisions)
	assert.NotEmpty(t, result.NextSteps)
}

func TestFallbackDeterministic(t *testing.T) {
	first, err := json.Marshal(Fallback(sampleTranscript))
	require.NoError(t, err)
	second, err := json.Marshal(Fallback(sampleTranscript))
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestFallbackBoundedOutput(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 50; i++ {
		b.WriteString("Sarah: We must urgently complete the migration work for the critical release.\n")
		b.WriteString("Sarah: It was decided that the final plan is approved for the next phase rollout.\n")
	}
	result := Fallback(b.String())

	assert.LessOrEqual(t, len(result.ActionItems), entities.MaxActionItems)
	assert.LessOrEqual(t, len(result.KeyDecisions), entities.MaxKeyDecisions)
	assert.LessOrEqual(t, len(result.NextSteps), entities.MaxNextSteps)
}

func TestFallbackRemarkDirection(t *testing.T) {
	transcript := `Alice: Good work on the design @Bob, the layout is excellent.
Bob: Thanks, I think the color scheme could still improve.`

	result := Fallback(transcript)

	require.NotEmpty(t, result.Remarks)
	assert.Equal(t, "Alice", result.Remarks[0].Person)
	assert.Equal(t, "Bob", result.Remarks[0].GivenTo)
}

func TestFallbackSpeakerlessActionAssignee(t *testing.T) {
	result := Fallback("We need to finish the migration work before the deadline arrives")

	require.NotEmpty(t, result.ActionItems)
	assert.Equal(t, entities.AssigneeUnassigned, result.ActionItems[0].Assignee)
	assert.Equal(t, entities.AssignedBySystem, result.ActionItems[0].AssignedBy)
}

func TestTruncateKeepsValidUTF8(t *testing.T) {
	long := strings.Repeat("é", 60)

	got := truncate(long, 50)

	assert.True(t, strings.HasSuffix(got, "..."))
	assert.Equal(t, strings.Repeat("é", 50)+"...", got)
	assert.Equal(t, "héllo", truncate("héllo", 50))
}

func TestFallbackDefaultRemark(t *testing.T) {
	result := Fallback("A short meeting without any named speakers took place today.")

	require.Len(t, result.Remarks, 1)
	assert.Equal(t, entities.AssignedBySystem, result.Remarks[0].Person)
	assert.Equal(t, entities.AssigneeGeneral, result.Remarks[0].GivenTo)
}
