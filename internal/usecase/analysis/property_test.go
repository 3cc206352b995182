package analysis

import (
	"encoding/json"
	"testing"

	"pgregory.net/rapid"

	"github.com/jayantelango/ai-driven-meeting-summarizer/internal/domain/entities"
)

// The extractor must accept any string without panicking and always
// produce a complete, bounded, deterministic result.
func TestFallbackTotalAndBounded(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		transcript := rapid.String().Draw(t, "transcript")

		result := Fallback(transcript)

		if result == nil {
			t.Fatalf("nil result for %q", transcript)
		}
		if result.Summary == "" {
			t.Fatalf("empty summary for %q", transcript)
		}
		if !result.UsedFallback {
			t.Fatalf("UsedFallback not set for %q", transcript)
		}
		if len(result.ActionItems) > entities.MaxActionItems {
			t.Fatalf("too many action items: %d", len(result.ActionItems))
		}
		if len(result.KeyDecisions) > entities.MaxKeyDecisions {
			t.Fatalf("too many key decisions: %d", len(result.KeyDecisions))
		}
		if len(result.NextSteps) > entities.MaxNextSteps {
			t.Fatalf("too many next steps: %d", len(result.NextSteps))
		}

		first, err := json.Marshal(result)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		second, err := json.Marshal(Fallback(transcript))
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		if string(first) != string(second) {
			t.Fatalf("non-deterministic result for %q", transcript)
		}
	})
}

// Priority classification is total and never skips the high table
func TestClassifyPriorityTotal(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		task := rapid.String().Draw(t, "task")
		context := rapid.String().Draw(t, "context")

		got := ClassifyPriority(task, context)
		if !got.IsValid() {
			t.Fatalf("invalid priority %q", got)
		}

		escalated := ClassifyPriority(task+" this is urgent and critical", context)
		if escalated != entities.TaskPriorityHigh {
			t.Fatalf("high keyword did not classify high, got %q", escalated)
		}
	})
}
