package transcription

import (
	"archive/zip"
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractText_PlainText(t *testing.T) {
	svc := NewService(nil, nil)

	out, err := svc.ExtractText(context.Background(), "notes.txt", []byte("Sarah: hello"))
	require.NoError(t, err)
	assert.Equal(t, "Sarah: hello", out)

	out, err = svc.ExtractText(context.Background(), "NOTES.MD", []byte("# agenda"))
	require.NoError(t, err)
	assert.Equal(t, "# agenda", out)
}

func TestExtractText_DOCX(t *testing.T) {
	svc := NewService(nil, nil)

	doc := buildDOCX(t, `<?xml version="1.0"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>Sarah: we must ship the report.</w:t></w:r></w:p>
    <w:p><w:r><w:t>Mike: </w:t></w:r><w:r><w:t>understood.</w:t></w:r></w:p>
  </w:body>
</w:document>`)

	out, err := svc.ExtractText(context.Background(), "minutes.docx", doc)
	require.NoError(t, err)
	assert.Contains(t, out, "Sarah: we must ship the report.")
	assert.Contains(t, out, "Mike: understood.")
}

func TestExtractText_DOCXWithoutDocument(t *testing.T) {
	svc := NewService(nil, nil)

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/other.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte("<x/>"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	_, err = svc.ExtractText(context.Background(), "broken.docx", buf.Bytes())
	require.Error(t, err)
}

func TestExtractText_UnsupportedExtension(t *testing.T) {
	svc := NewService(nil, nil)

	_, err := svc.ExtractText(context.Background(), "slides.pptx", []byte("x"))
	require.Error(t, err)
}

func TestExtractText_AudioWithoutTranscriber(t *testing.T) {
	svc := NewService(nil, nil)

	_, err := svc.ExtractText(context.Background(), "call.mp3", []byte{0xFF, 0xFB})
	require.Error(t, err)
}

func buildDOCX(t *testing.T, documentXML string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte(documentXML))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}
