// Package extract turns uploaded resume files into plain text.
package extract

import (
	"fmt"
	"log/slog"
	"mime"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/gabriel-vasile/mimetype"
	"golang.org/x/text/encoding/htmlindex"

	"github.com/amishk599/resumatch/internal/model"
)

const (
	mimePDF  = "application/pdf"
	mimeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	mimeText = "text/plain"
)

// Ensure Extractor implements model.Extractor.
var _ model.Extractor = (*Extractor)(nil)

// Extractor sniffs the content type of a resume and extracts its text.
// PDF, DOCX and plain text are supported.
type Extractor struct {
	logger *slog.Logger
}

// NewExtractor returns an Extractor that logs at debug level to logger.
func NewExtractor(logger *slog.Logger) *Extractor {
	return &Extractor{logger: logger}
}

// Extract returns the text of the named file. Every failure is a
// *model.DocumentReadError. An empty result is returned as-is.
func (e *Extractor) Extract(name string, data []byte) (string, error) {
	kind, charset := detect(name, data)

	var (
		text  string
		pages int
		err   error
	)
	switch kind {
	case mimePDF:
		text, pages, err = pdfText(data)
	case mimeDOCX:
		text, err = docxText(data)
	case mimeText:
		text, err = plainText(data, charset)
	default:
		err = fmt.Errorf("unsupported file type %s", kind)
	}
	if err != nil {
		return "", &model.DocumentReadError{Name: name, Err: err}
	}

	e.logger.Debug("extracted document",
		"name", name,
		"type", kind,
		"charset", charset,
		"bytes", len(data),
		"pages_with_text", pages,
		"chars", len(text),
	)
	return text, nil
}

// detect maps data to one of the supported MIME types, plus the sniffed
// charset for plain text. A .pdf or .docx extension wins over sniffing so a
// damaged file reaches its parser and fails there with the real cause.
func detect(name string, data []byte) (kind, charset string) {
	m := mimetype.Detect(data)
	ext := strings.ToLower(filepath.Ext(name))

	switch {
	case m.Is(mimePDF), ext == ".pdf":
		return mimePDF, ""
	case m.Is(mimeDOCX), ext == ".docx":
		return mimeDOCX, ""
	case m.Is(mimeText):
		_, params, _ := mime.ParseMediaType(m.String())
		return mimeText, params["charset"]
	}
	return m.String(), ""
}

// plainText decodes data from charset into UTF-8. Without a charset, valid
// UTF-8 is kept and anything else is read as windows-1252, the superset of
// latin-1 that word processors export.
func plainText(data []byte, charset string) (string, error) {
	if charset == "" {
		charset = "utf-8"
		if !utf8.Valid(data) {
			charset = "windows-1252"
		}
	}
	enc, err := htmlindex.Get(charset)
	if err != nil {
		return "", fmt.Errorf("unsupported charset %q: %w", charset, err)
	}
	decoded, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return "", fmt.Errorf("decode %s text: %w", charset, err)
	}
	return string(decoded), nil
}
