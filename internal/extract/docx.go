package extract

import (
	"bytes"
	"fmt"
	"html"
	"regexp"
	"strings"

	"github.com/nguyenthenguyen/docx"
)

var (
	xmlTag     = regexp.MustCompile(`<[^>]+>`)
	lineBreak  = regexp.MustCompile(`<w:(?:br|cr)\b[^>]*/?>`)
	blankLines = regexp.MustCompile(`\n{3,}`)
)

func docxText(data []byte) (string, error) {
	r, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("open docx: %w", err)
	}
	defer r.Close()

	return stripWordXML(r.Editable().GetContent()), nil
}

// stripWordXML turns WordprocessingML into plain text: paragraphs become
// lines, tabs and breaks (line, page, column, carriage return) are kept,
// every other tag is dropped.
func stripWordXML(content string) string {
	content = strings.ReplaceAll(content, "</w:p>", "\n")
	content = strings.ReplaceAll(content, "<w:tab/>", "\t")
	content = lineBreak.ReplaceAllString(content, "\n")
	content = xmlTag.ReplaceAllString(content, "")
	content = html.UnescapeString(content)
	content = blankLines.ReplaceAllString(content, "\n\n")
	return strings.TrimSpace(content)
}
