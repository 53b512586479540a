package extract

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

const (
	// Up to this many class names are combined into a tag.class selector.
	maxSelectorClasses = 2

	// Class names containing an underscore at or past this length look like
	// CSS-module/hashed names and are skipped; short utility classes with
	// underscores are kept. The threshold is load-bearing for selector
	// stability across builds of the target page.
	hashedClassLen = 30
)

// synthesize returns a selector intended to resolve to exactly the target
// element among the document's nodes.
//
// At each level of the tree, a non-empty id wins outright (#id, unverified
// unless Options.StrictIDs); otherwise the tag plus up to two stable class
// names is used when it matches exactly one node in the whole document;
// otherwise a tag:nth-child segment is recorded and the walk ascends to the
// parent. An element with no parent yields its bare tag name.
//
// The ascent is an explicit loop accumulating segments child-first, reversed
// before joining, so pathologically deep trees cannot exhaust the stack.
func synthesize(doc *goquery.Document, target *goquery.Selection, opts Options) string {
	var segments []string

	for current := target; ; {
		tag := goquery.NodeName(current)

		if id, ok := current.Attr("id"); ok && cssSafeID(id) {
			idSel := "#" + id
			if !opts.StrictIDs || doc.Find(idSel).Length() == 1 {
				segments = append(segments, idSel)

				break
			}
		}

		if classSel := classSelector(current, tag); classSel != "" && doc.Find(classSel).Length() == 1 {
			segments = append(segments, classSel)

			break
		}

		parent := current.Parent()
		if parent.Length() == 0 || parent.Get(0).Type != html.ElementNode {
			segments = append(segments, tag)

			break
		}

		segments = append(segments, fmt.Sprintf("%s:nth-child(%d)", tag, current.Index()+1))
		current = parent
	}

	for i, j := 0, len(segments)-1; i < j; i, j = i+1, j-1 {
		segments[i], segments[j] = segments[j], segments[i]
	}

	return strings.Join(segments, " > ")
}

// classSelector builds tag.class1.class2 from the element's stable class
// names, or "" when none survive the filter.
func classSelector(s *goquery.Selection, tag string) string {
	raw, ok := s.Attr("class")
	if !ok {
		return ""
	}

	var picked []string

	for _, c := range strings.Fields(raw) {
		if strings.Contains(c, "_") && len(c) >= hashedClassLen {
			continue
		}

		if !cssSafeName(c) {
			continue
		}

		picked = append(picked, c)
		if len(picked) == maxSelectorClasses {
			break
		}
	}

	if len(picked) == 0 {
		return ""
	}

	return tag + "." + strings.Join(picked, ".")
}

// cssSafeID reports whether an id can be embedded in a #id selector without
// escaping. Duplicated or exotic ids are common in the wild; anything that
// would not parse as a plain identifier falls through to the other
// strategies.
func cssSafeID(id string) bool {
	if id == "" {
		return false
	}

	first := []rune(id)[0]
	if !unicode.IsLetter(first) {
		return false
	}

	return cssSafeName(id)
}

func cssSafeName(name string) bool {
	if name == "" {
		return false
	}

	if unicode.IsDigit([]rune(name)[0]) {
		return false
	}

	for _, r := range name {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '-' && r != '_' {
			return false
		}
	}

	return true
}
