package extract

import (
	"bytes"
	"fmt"
	"math"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/amishk599/resumatch/internal/model"
)

// PDF returns the text of every page of the document in page order. Pages
// without extractable text contribute nothing. An empty string means the
// document has no text layer (e.g. a scanned resume); that is not an error.
// An unreadable document fails with *model.DocumentReadError.
func PDF(data []byte) (string, error) {
	text, _, err := pdfText(data)
	if err != nil {
		return "", &model.DocumentReadError{Err: err}
	}
	return text, nil
}

// pdfText also reports how many pages produced text. Pages are separated by
// a newline.
func pdfText(data []byte) (text string, pagesWithText int, err error) {
	// The parser panics on some malformed inputs.
	defer func() {
		if r := recover(); r != nil {
			text, pagesWithText = "", 0
			err = fmt.Errorf("malformed pdf: %v", r)
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", 0, fmt.Errorf("open pdf: %w", err)
	}

	var b strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := pageLines(page)
		if err != nil || strings.TrimSpace(pageText) == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(pageText)
		pagesWithText++
	}
	return b.String(), pagesWithText, nil
}

// pageLines rebuilds the page text from positioned glyphs. A baseline change
// starts a new line and a horizontal gap wider than wordGap em between two
// glyphs on one line becomes a space, so line moves inside one text object
// (Td, TD, T*) never fuse the words on either side.
func pageLines(page pdf.Page) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = fmt.Errorf("malformed page: %v", r)
		}
	}()

	const wordGap = 0.15

	var (
		b       strings.Builder
		prev    pdf.Text
		started bool
	)
	for _, g := range page.Content().Text {
		if g.S == "" {
			continue
		}
		if started && !isBlank(prev.S) && !isBlank(g.S) {
			size := math.Max(math.Abs(prev.FontSize), 1)
			switch {
			case math.Abs(g.Y-prev.Y) > size/2:
				b.WriteByte('\n')
			case g.X-(prev.X+prev.W) > wordGap*size:
				b.WriteByte(' ')
			}
		}
		b.WriteString(g.S)
		prev, started = g, true
	}
	return b.String(), nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
