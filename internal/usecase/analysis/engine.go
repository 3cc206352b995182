package analysis

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/jayantelango/ai-driven-meeting-summarizer/internal/domain/entities"
)

// TextGenerator produces a raw text completion for a prompt. A nil
// generator means no model is configured and analysis runs on the
// heuristic extractor only.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Engine turns a transcript into a structured analysis result. It makes
// at most one model call per transcript and degrades to the heuristic
// extractor on any failure, so Analyze is total.
type Engine struct {
	model  TextGenerator
	logger *zap.Logger
}

// NewEngine creates an analysis engine. model may be nil.
func NewEngine(model TextGenerator, logger *zap.Logger) *Engine {
	return &Engine{
		model:  model,
		logger: logger,
	}
}

// ModelAvailable reports whether a generative model is configured
func (e *Engine) ModelAvailable() bool {
	return e.model != nil
}

// Analyze processes a transcript. It never returns an error: every
// failure path lands in the heuristic extractor instead.
func (e *Engine) Analyze(ctx context.Context, input AnalyzeInput) *entities.AnalysisResult {
	transcript := strings.TrimSpace(input.Transcript)
	input.Transcript = transcript

	if e.model == nil {
		if e.logger != nil {
			e.logger.Warn("⚠️ No model configured, using heuristic analysis")
		}
		return Fallback(transcript)
	}

	prompt := BuildPrompt(input)
	raw, err := e.model.Generate(ctx, prompt)
	if err != nil {
		if e.logger != nil {
			e.logger.Error("❌ Model call failed, using heuristic analysis", zap.Error(err))
		}
		return Fallback(transcript)
	}

	result, err := Parse(raw)
	if err != nil {
		// The model answered but not in JSON. Run the extractor over
		// its text rather than the transcript, since the answer may
		// still carry the analysis in prose form.
		if e.logger != nil {
			e.logger.Warn("⚠️ Model response was not valid JSON, extracting from raw text", zap.Error(err))
		}
		return Fallback(raw)
	}

	result.UsedFallback = false
	if e.logger != nil {
		e.logger.Info("✅ Transcript analyzed",
			zap.Int("action_items", len(result.ActionItems)),
			zap.Int("key_decisions", len(result.KeyDecisions)),
			zap.Int("next_steps", len(result.NextSteps)))
	}
	return result
}
