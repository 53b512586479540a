package extract

import (
	"fmt"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, markup string) *goquery.Document {
	t.Helper()

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	require.NoError(t, err)

	return doc
}

func TestExtractSimplePage(t *testing.T) {
	doc := parse(t, `<html><head><title>Acme</title>`+
		`<meta name="description" content="Buy now"></head>`+
		`<body><button id="cta">Buy</button></body></html>`)

	summary := Extract(doc)

	assert.Equal(t, "Acme", summary.Title)
	assert.Equal(t, "Buy now", summary.Description)
	assert.Equal(t, []string{`[button] "Buy" → #cta`}, summary.InteractiveElements)
	assert.Empty(t, summary.FormFields)
}

func TestExtractEmptyDocument(t *testing.T) {
	doc := parse(t, `<html><head></head><body></body></html>`)

	summary := Extract(doc)

	assert.Empty(t, summary.Title)
	assert.Empty(t, summary.Description)
	assert.Empty(t, summary.InteractiveElements)
	assert.Empty(t, summary.FormFields)
}

func TestExtractInteractiveCap(t *testing.T) {
	var sb strings.Builder
	sb.WriteString(`<html><body>`)
	for i := 1; i <= 45; i++ {
		sb.WriteString(fmt.Sprintf(`<button>B%d</button>`, i))
	}
	sb.WriteString(`</body></html>`)

	summary := Extract(parse(t, sb.String()))

	require.Len(t, summary.InteractiveElements, 30)
	assert.Contains(t, summary.InteractiveElements[0], `"B1"`)
	assert.Contains(t, summary.InteractiveElements[29], `"B30"`)
	for _, el := range summary.InteractiveElements {
		assert.NotContains(t, el, `"B31"`)
	}
}

func TestExtractFormFieldCap(t *testing.T) {
	var sb strings.Builder
	sb.WriteString(`<html><body>`)
	for i := 1; i <= 25; i++ {
		sb.WriteString(fmt.Sprintf(`<input name="f%d">`, i))
	}
	sb.WriteString(`</body></html>`)

	summary := Extract(parse(t, sb.String()))

	require.Len(t, summary.FormFields, 20)
	assert.Contains(t, summary.FormFields[0], `"f1"`)
	assert.Contains(t, summary.FormFields[19], `"f20"`)
}

func TestExtractTextFilter(t *testing.T) {
	long := strings.Repeat("x", 100)
	almostLong := strings.Repeat("y", 99)

	doc := parse(t, `<html><body>`+
		`<button></button>`+
		`<button>   </button>`+
		`<button>`+long+`</button>`+
		`<button>`+almostLong+`</button>`+
		`<button>ok</button>`+
		`</body></html>`)

	summary := Extract(doc)

	require.Len(t, summary.InteractiveElements, 2)
	assert.Contains(t, summary.InteractiveElements[0], almostLong)
	assert.Contains(t, summary.InteractiveElements[1], `"ok"`)
}

func TestExtractTrimsText(t *testing.T) {
	summary := Extract(parse(t, `<html><body><button>
		Buy now
	</button></body></html>`))

	require.Len(t, summary.InteractiveElements, 1)
	assert.Contains(t, summary.InteractiveElements[0], `"Buy now"`)
}

func TestExtractFieldTypeDefault(t *testing.T) {
	doc := parse(t, `<html><body>`+
		`<textarea name="bio"></textarea>`+
		`<input type="email" name="mail">`+
		`</body></html>`)

	summary := Extract(doc)

	require.Len(t, summary.FormFields, 2)
	assert.True(t, strings.HasPrefix(summary.FormFields[0], `[text] `))
	assert.True(t, strings.HasPrefix(summary.FormFields[1], `[email] `))
}

// Every returned selector must re-resolve to at least one node of the
// snapshot it was synthesized from.
func TestExtractSelectorsResolve(t *testing.T) {
	doc := parse(t, `<html><head><title>t</title></head><body>`+
		`<div class="nav"><a href="/a">Alpha</a><a href="/b">Beta</a></div>`+
		`<div><button class="btn">Go</button><button>Stop</button></div>`+
		`<form><label for="em">Email</label><input id="em" type="email">`+
		`<input name="q" placeholder="Search"><select name="country"></select>`+
		`<textarea name="bio"></textarea></form>`+
		`<div role="button">Custom</div>`+
		`</body></html>`)

	summary := Extract(doc)

	var descriptors []string
	descriptors = append(descriptors, summary.InteractiveElements...)
	descriptors = append(descriptors, summary.FormFields...)
	require.NotEmpty(t, descriptors)

	for _, d := range descriptors {
		parts := strings.SplitN(d, " → ", 2)
		require.Len(t, parts, 2, "descriptor %q has no selector", d)

		selector := parts[1]
		assert.GreaterOrEqual(t, doc.Find(selector).Length(), 1,
			"selector %q from %q resolves to nothing", selector, d)
	}
}

func TestExtractDescriptionMeta(t *testing.T) {
	doc := parse(t, `<html><head>`+
		`<meta name="keywords" content="nope">`+
		`<meta name="description" content="  padded  ">`+
		`</head><body></body></html>`)

	assert.Equal(t, "padded", Extract(doc).Description)
}
