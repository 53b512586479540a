package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// capability is one member of the closed set of element kinds the collector
// recognizes. Match is a CSS selector; Accept, when set, is an additional
// attribute predicate applied to each match.
type capability struct {
	Name   string
	Match  string
	Accept func(*goquery.Selection) bool
}

var clickableCapabilities = []capability{
	{Name: "button", Match: "button"},
	{Name: "link", Match: "a[href]"},
	{Name: "button_role", Match: `[role="button"]`},
	{Name: "submit", Match: `input[type="submit"]`},
}

var fieldCapabilities = []capability{
	{Name: "input", Match: "input", Accept: func(s *goquery.Selection) bool {
		t, _ := s.Attr("type")

		return t != "hidden"
	}},
	{Name: "textarea", Match: "textarea"},
	{Name: "select", Match: "select"},
}

// collectClickable enumerates the page's clickable controls in document
// order.
func collectClickable(doc *goquery.Document) []*goquery.Selection {
	return collect(doc, clickableCapabilities)
}

// collectFields enumerates the page's form fields in document order.
func collectFields(doc *goquery.Document) []*goquery.Selection {
	return collect(doc, fieldCapabilities)
}

// collect runs all capabilities as one combined query so matches come back
// in document order, then dispatches each node to the capability it
// satisfies. A node matching several capabilities is naturally kept once:
// the combined selection holds unique nodes.
func collect(doc *goquery.Document, kinds []capability) []*goquery.Selection {
	queries := make([]string, len(kinds))
	for i, k := range kinds {
		queries[i] = k.Match
	}

	var out []*goquery.Selection

	doc.Find(strings.Join(queries, ", ")).Each(func(_ int, s *goquery.Selection) {
		for _, k := range kinds {
			if !s.Is(k.Match) {
				continue
			}

			if k.Accept == nil || k.Accept(s) {
				out = append(out, s)
			}

			return
		}
	})

	return out
}
