// Package extract is the DOM fallback extraction engine: given a parsed
// snapshot of an arbitrary page it produces a compact summary of the page's
// affordances (clickable controls, form fields) and a minimal CSS selector
// for each one, usable later to replay a click or fill against the same page.
//
// The package is a pure, synchronous function of the document it is handed.
// It never mutates the tree, holds no state between calls and is total:
// missing data degrades to empty strings and empty slices, never an error.
// Because the document is a parsed snapshot rather than a live tree, the
// collector and the selector synthesizer are guaranteed to observe the same
// structure for the whole pass.
package extract

import (
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"

	"page-extract/internal/entity"
)

const (
	maxInteractive = 30
	maxFormFields  = 20
	maxTextRunes   = 100
)

// Options tune selector synthesis. The zero value reproduces the historical
// behavior, where a #id selector is trusted without checking the document
// for duplicate ids.
type Options struct {
	// StrictIDs re-queries the document for every id shortcut and falls
	// through to the class and positional strategies when the id is not
	// unique.
	StrictIDs bool
}

// Extract builds a PageSummary from a parsed document using default options.
func Extract(doc *goquery.Document) entity.PageSummary {
	return ExtractWithOptions(doc, Options{})
}

// ExtractWithOptions builds a PageSummary from a parsed document.
//
// Interactive elements whose trimmed text is empty or 100+ characters are
// excluded entirely. At most 30 interactive elements and 20 form fields are
// kept, first in document order.
func ExtractWithOptions(doc *goquery.Document, opts Options) entity.PageSummary {
	summary := entity.PageSummary{
		Title:       strings.TrimSpace(doc.Find("title").First().Text()),
		Description: metaDescription(doc),
	}

	for _, s := range collectClickable(doc) {
		if len(summary.InteractiveElements) >= maxInteractive {
			break
		}

		text := strings.TrimSpace(s.Text())
		if text == "" || utf8.RuneCountInString(text) >= maxTextRunes {
			continue
		}

		el := entity.InteractiveElement{
			Tag:      goquery.NodeName(s),
			Text:     text,
			Selector: synthesize(doc, s, opts),
		}
		summary.InteractiveElements = append(summary.InteractiveElements, el.String())
	}

	for _, s := range collectFields(doc) {
		if len(summary.FormFields) >= maxFormFields {
			break
		}

		field := entity.FormField{
			Type:     fieldType(s),
			Label:    resolveLabel(doc, s),
			Selector: synthesize(doc, s, opts),
		}
		summary.FormFields = append(summary.FormFields, field.String())
	}

	return summary
}

func metaDescription(doc *goquery.Document) string {
	content, _ := doc.Find(`meta[name="description"]`).First().Attr("content")

	return strings.TrimSpace(content)
}

// fieldType reports the field's explicit type attribute, defaulting to
// "text" (textarea and select carry no type attribute).
func fieldType(s *goquery.Selection) string {
	if t, ok := s.Attr("type"); ok && t != "" {
		return t
	}

	return "text"
}
