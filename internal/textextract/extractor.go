package textextract

import (
	"context"
	"fmt"
	"strings"

	"github.com/gen2brain/go-fitz" // Lightweight PDF renderer

	"github.com/skovr/talentmatch/matching/profile"
)

// Extractor converts stored documents into best-effort plain text. Scanned or
// image-only PDFs yield empty text, which the profile builder rejects.
type Extractor struct{}

// NewExtractor creates a new document text extractor
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractText returns the plain text of a document. Supported file types are
// "pdf" and "txt".
func (e *Extractor) ExtractText(_ context.Context, data []byte, fileType string) (string, error) {
	switch strings.ToLower(fileType) {
	case "pdf":
		return extractPDFText(data)
	case "txt", "text":
		return string(data), nil
	default:
		return "", profile.ErrUnsupportedFileType().WithDetail("file_type", fileType)
	}
}

func extractPDFText(data []byte) (string, error) {
	doc, err := fitz.NewFromMemory(data)
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}
	defer doc.Close()

	var sb strings.Builder
	pageCount := doc.NumPage()
	for i := 0; i < pageCount; i++ {
		text, err := doc.Text(i)
		if err != nil {
			return "", fmt.Errorf("failed to extract page %d: %w", i, err)
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	}

	return sb.String(), nil
}
