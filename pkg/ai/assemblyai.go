package ai

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	aai "github.com/AssemblyAI/assemblyai-go-sdk"
	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"github.com/jayantelango/ai-driven-meeting-summarizer/pkg/config"
)

// Transcriber converts uploaded audio recordings into transcript text
// using AssemblyAI.
type Transcriber struct {
	client *aai.Client
	logger *zap.Logger
}

// NewTranscriber creates a transcriber, or nil when no API key is
// configured. Audio uploads are then rejected instead of transcribed.
func NewTranscriber(cfg *config.AssemblyAIConfig, logger *zap.Logger) *Transcriber {
	if cfg == nil || cfg.APIKey == "" {
		return nil
	}
	return &Transcriber{
		client: aai.NewClient(cfg.APIKey),
		logger: logger,
	}
}

// Transcribe uploads the audio data and waits for the finished
// transcript. Submission is retried with exponential backoff since the
// upload endpoint fails transiently under load.
func (t *Transcriber) Transcribe(ctx context.Context, audio []byte) (string, error) {
	params := &aai.TranscriptOptionalParams{
		SpeakerLabels:     aai.Bool(true),
		LanguageDetection: aai.Bool(true),
	}

	var transcript aai.Transcript
	submitFn := func() error {
		uploadURL, err := t.client.Upload(ctx, bytes.NewReader(audio))
		if err != nil {
			return fmt.Errorf("failed to upload to AssemblyAI: %w", err)
		}

		if t.logger != nil {
			t.logger.Info("📤 Audio uploaded to AssemblyAI",
				zap.Int("size_bytes", len(audio)),
			)
		}

		transcript, err = t.client.Transcripts.TranscribeFromURL(ctx, uploadURL, params)
		return err
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 2 * time.Second
	bo.MaxInterval = 10 * time.Second
	bo.MaxElapsedTime = 5 * time.Minute

	if err := backoff.Retry(submitFn, backoff.WithContext(bo, ctx)); err != nil {
		if t.logger != nil {
			t.logger.Error("❌ AssemblyAI transcription failed", zap.Error(err))
		}
		return "", err
	}

	if transcript.Status == aai.TranscriptStatusError {
		msg := "AssemblyAI transcription failed"
		if transcript.Error != nil {
			msg = *transcript.Error
		}
		return "", errors.New(msg)
	}
	if transcript.Text == nil || *transcript.Text == "" {
		return "", errors.New("AssemblyAI returned an empty transcript")
	}

	if t.logger != nil {
		t.logger.Info("✅ Audio transcribed",
			zap.Int("transcript_length", len(*transcript.Text)),
		)
	}
	return *transcript.Text, nil
}
