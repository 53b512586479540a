package extract

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// labelUnknown is the sentinel returned when no label source yields a value,
// keeping resolveLabel total.
const labelUnknown = "unknown"

// labelAttrs are the fallback attribute sources, weakest last. aria-label is
// authoritative author intent and is used verbatim; placeholder and name are
// common heuristics; type at least differentiates fields.
var labelAttrs = []string{"aria-label", "placeholder", "name", "type"}

// resolveLabel derives the best available human-readable label for a form
// field. An associated <label for=...> with non-empty trimmed text wins over
// everything else.
func resolveLabel(doc *goquery.Document, field *goquery.Selection) string {
	if id, ok := field.Attr("id"); ok && id != "" {
		text := strings.TrimSpace(doc.Find(fmt.Sprintf(`label[for=%q]`, id)).First().Text())
		if text != "" {
			return text
		}
	}

	for _, attr := range labelAttrs {
		if v, ok := field.Attr(attr); ok && v != "" {
			return v
		}
	}

	return labelUnknown
}
