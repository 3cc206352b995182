package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jayantelango/ai-driven-meeting-summarizer/internal/domain/entities"
)

func TestClassifyPriority(t *testing.T) {
	tests := []struct {
		name    string
		task    string
		context string
		want    entities.TaskPriority
	}{
		{"must is high", "We must ship the fix", "", entities.TaskPriorityHigh},
		{"asap is high", "Send the invoice ASAP", "", entities.TaskPriorityHigh},
		{"deadline is high", "There is a hard deadline on this", "", entities.TaskPriorityHigh},
		{"required by is high", "Report required by Monday", "", entities.TaskPriorityHigh},
		{"should is medium", "We should refactor the importer", "", entities.TaskPriorityMedium},
		{"important is medium", "This is important for the demo", "", entities.TaskPriorityMedium},
		{"plain is low", "Clean up the wiki pages", "", entities.TaskPriorityLow},
		{"context escalates", "Update the slides", "this is urgent for the board", entities.TaskPriorityHigh},
		{"empty input is low", "", "", entities.TaskPriorityLow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyPriority(tt.task, tt.context))
		})
	}
}

// A task matching both tables classifies high: the high table is
// checked first.
func TestClassifyPriorityHighWinsOverMedium(t *testing.T) {
	got := ClassifyPriority("We must do this important task", "")
	assert.Equal(t, entities.TaskPriorityHigh, got)

	for _, kw := range HighPriorityKeywords {
		assert.Equal(t, entities.TaskPriorityHigh, ClassifyPriority(kw+" something important", ""), "keyword %q", kw)
	}
}

func TestNormalizePriority(t *testing.T) {
	assert.Equal(t, entities.TaskPriorityHigh, NormalizePriority("Critical"))
	assert.Equal(t, entities.TaskPriorityHigh, NormalizePriority("HIGH"))
	assert.Equal(t, entities.TaskPriorityMedium, NormalizePriority("Normal"))
	assert.Equal(t, entities.TaskPriorityLow, NormalizePriority("low"))
	assert.Equal(t, entities.TaskPriorityMedium, NormalizePriority("whatever"))
}
