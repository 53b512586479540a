package extract

import (
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func names(selections []*goquery.Selection) []string {
	out := make([]string, len(selections))
	for i, s := range selections {
		out[i] = goquery.NodeName(s)
	}

	return out
}

func TestCollectClickableKinds(t *testing.T) {
	doc := parse(t, `<html><body>`+
		`<a href="/x">Link</a>`+
		`<a>anchor without href</a>`+
		`<button>B</button>`+
		`<div role="button">Custom</div>`+
		`<div>plain div</div>`+
		`<input type="submit" value="Go">`+
		`<input type="text">`+
		`</body></html>`)

	got := collectClickable(doc)

	assert.Equal(t, []string{"a", "button", "div", "input"}, names(got))
}

func TestCollectClickableDocumentOrder(t *testing.T) {
	// The anchor precedes the button in the document even though the button
	// capability is listed first.
	doc := parse(t, `<html><body>`+
		`<a href="/x">Link</a>`+
		`<button>B</button>`+
		`</body></html>`)

	got := collectClickable(doc)

	assert.Equal(t, []string{"a", "button"}, names(got))
}

func TestCollectClickableOverlapKeptOnce(t *testing.T) {
	doc := parse(t, `<html><body>`+
		`<button role="button">Both</button>`+
		`</body></html>`)

	assert.Len(t, collectClickable(doc), 1)
}

func TestCollectFieldsExcludesHidden(t *testing.T) {
	doc := parse(t, `<html><body><form>`+
		`<input type="hidden" name="csrf">`+
		`<input type="text" name="q">`+
		`<textarea name="bio"></textarea>`+
		`<select name="country"></select>`+
		`</form></body></html>`)

	got := collectFields(doc)

	require.Len(t, got, 3)
	assert.Equal(t, []string{"input", "textarea", "select"}, names(got))

	name, _ := got[0].Attr("name")
	assert.Equal(t, "q", name)
}

func TestCollectEmptyDocument(t *testing.T) {
	doc := parse(t, `<html><body></body></html>`)

	assert.Empty(t, collectClickable(doc))
	assert.Empty(t, collectFields(doc))
}

func TestCollectNeverMutates(t *testing.T) {
	markup := `<html><head></head><body><button id="b">x</button><input name="n"></body></html>`
	doc := parse(t, markup)

	before, err := doc.Html()
	require.NoError(t, err)

	collectClickable(doc)
	collectFields(doc)
	Extract(doc)

	after, err := doc.Html()
	require.NoError(t, err)
	assert.Equal(t, before, after)
}
