package transcription

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
	"go.uber.org/zap"

	"github.com/jayantelango/ai-driven-meeting-summarizer/errors"
	"github.com/jayantelango/ai-driven-meeting-summarizer/pkg/ai"
)

// Service turns uploaded files into plain transcript text. Text and
// document formats are parsed locally, audio goes through the speech
// transcriber when one is configured.
type Service struct {
	transcriber *ai.Transcriber
	logger      *zap.Logger
}

// NewService creates a new transcription service. transcriber may be
// nil, audio uploads are then rejected.
func NewService(transcriber *ai.Transcriber, logger *zap.Logger) *Service {
	return &Service{
		transcriber: transcriber,
		logger:      logger,
	}
}

// SupportedExtensions lists the upload formats the service accepts
var SupportedExtensions = []string{".txt", ".md", ".pdf", ".docx", ".mp3", ".wav", ".m4a"}

// ExtractText extracts transcript text from an uploaded file based on
// its extension.
func (s *Service) ExtractText(ctx context.Context, filename string, data []byte) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))

	switch ext {
	case ".txt", ".md":
		return string(data), nil
	case ".pdf":
		return s.extractPDF(data)
	case ".docx":
		return s.extractDOCX(data)
	case ".mp3", ".wav", ".m4a":
		return s.transcribeAudio(ctx, data)
	default:
		return "", errors.ErrUnsupportedFile(ext)
	}
}

func (s *Service) extractPDF(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", errors.ErrTranscriptionFailed(fmt.Errorf("failed to open PDF: %w", err))
	}

	var b strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			if s.logger != nil {
				s.logger.Warn("⚠️ Skipping unreadable PDF page",
					zap.Int("page", i),
					zap.Error(err))
			}
			continue
		}
		b.WriteString(text)
		b.WriteString("\n")
	}

	result := strings.TrimSpace(b.String())
	if result == "" {
		return "", errors.ErrTranscriptionFailed(fmt.Errorf("no extractable text in PDF"))
	}
	return result, nil
}

// docx paragraph structure, only text runs matter here
type docxDocument struct {
	Body struct {
		Paragraphs []struct {
			Runs []struct {
				Text string `xml:"t"`
			} `xml:"r"`
		} `xml:"p"`
	} `xml:"body"`
}

func (s *Service) extractDOCX(data []byte) (string, error) {
	archive, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", errors.ErrTranscriptionFailed(fmt.Errorf("failed to open DOCX: %w", err))
	}

	for _, file := range archive.File {
		if file.Name != "word/document.xml" {
			continue
		}
		rc, err := file.Open()
		if err != nil {
			return "", errors.ErrTranscriptionFailed(err)
		}
		content, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return "", errors.ErrTranscriptionFailed(err)
		}

		var doc docxDocument
		if err := xml.Unmarshal(content, &doc); err != nil {
			return "", errors.ErrTranscriptionFailed(fmt.Errorf("failed to parse DOCX: %w", err))
		}

		var b strings.Builder
		for _, p := range doc.Body.Paragraphs {
			for _, r := range p.Runs {
				b.WriteString(r.Text)
			}
			b.WriteString("\n")
		}

		result := strings.TrimSpace(b.String())
		if result == "" {
			return "", errors.ErrTranscriptionFailed(fmt.Errorf("no extractable text in DOCX"))
		}
		return result, nil
	}

	return "", errors.ErrTranscriptionFailed(fmt.Errorf("DOCX is missing word/document.xml"))
}

func (s *Service) transcribeAudio(ctx context.Context, data []byte) (string, error) {
	if s.transcriber == nil {
		return "", errors.ErrInvalidArgument("audio transcription is not configured")
	}

	text, err := s.transcriber.Transcribe(ctx, data)
	if err != nil {
		return "", errors.ErrTranscriptionFailed(err)
	}
	return text, nil
}
