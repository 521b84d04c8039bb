package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

func newResultsNode() *html.Node {
	return &html.Node{Type: html.ElementNode, DataAtom: atom.Div, Data: "div"}
}

func TestHTMLContainer_CardStructure(t *testing.T) {
	// Given: an HTML container
	c := NewHTMLContainer(newResultsNode())

	// When: rendering both songs
	Render(c, songs())

	// Then: every card has heading, meta, lyrics and one chip per tag
	doc := goquery.NewDocumentFromNode(c.Node())
	cards := doc.Find("div.card")
	require.Equal(t, 2, cards.Length())

	second := cards.Eq(1)
	assert.Equal(t, "Bergruf", second.Find("h3").Text())
	assert.Equal(t, "Kärnten · ernst", second.Find("p").Eq(0).Text())
	assert.Equal(t, "Ruf vom Berg", second.Find("p").Eq(1).Text())

	var tags []string
	second.Find("div.tags span.tag").Each(func(_ int, s *goquery.Selection) {
		tags = append(tags, s.Text())
	})
	assert.Equal(t, []string{"alt", "bergisch"}, tags)
}

func TestHTMLContainer_ClearDiscardsPreviousCards(t *testing.T) {
	c := NewHTMLContainer(newResultsNode())
	Render(c, songs())
	Render(c, songs()[1:])

	doc := goquery.NewDocumentFromNode(c.Node())
	assert.Equal(t, 1, doc.Find("div.card").Length())
	assert.Equal(t, "Bergruf", doc.Find("h3").Text())
}

func TestPage_EscapesCardText(t *testing.T) {
	p := NewPage("Gstanzln")
	p.Results().Append(Card{Title: "<script>alert(1)</script>"})

	var buf bytes.Buffer
	require.NoError(t, p.Render(&buf))
	assert.NotContains(t, buf.String(), "<script>")
	assert.Contains(t, buf.String(), "&lt;script&gt;")
}

func TestPage_RendersInputAndResults(t *testing.T) {
	// Given: a page with a query and rendered results
	p := NewPage("Gstanzln")
	p.SetQuery("Berg")
	Render(p.Results(), songs()[1:])

	// When: writing the document
	var buf bytes.Buffer
	require.NoError(t, p.Render(&buf))

	// Then: it parses back with both attachment points present
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(buf.String()))
	require.NoError(t, err)

	assert.Equal(t, "Gstanzln", doc.Find("title").Text())
	val, ok := doc.Find("#" + SearchInputID).Attr("value")
	require.True(t, ok)
	assert.Equal(t, "Berg", val)
	assert.Equal(t, 1, doc.Find("#"+ResultsID+" div.card").Length())
	assert.True(t, strings.HasPrefix(buf.String(), "<!DOCTYPE html>"))
}
