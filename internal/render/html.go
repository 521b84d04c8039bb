package render

import (
	"fmt"
	"io"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Class names used in the generated markup.
const (
	ClassCard = "card"
	ClassTags = "tags"
	ClassTag  = "tag"
)

// HTMLContainer repopulates an HTML element with card markup:
//
//	<div class="card"><h3/><p/><p/><div class="tags"><span class="tag"/>...</div></div>
type HTMLContainer struct {
	root *html.Node
}

// Ensure HTMLContainer implements Container.
var _ Container = (*HTMLContainer)(nil)

// NewHTMLContainer wraps an existing element node.
func NewHTMLContainer(root *html.Node) *HTMLContainer {
	return &HTMLContainer{root: root}
}

// Node returns the element the container writes into.
func (c *HTMLContainer) Node() *html.Node {
	return c.root
}

// Clear implements Container.
func (c *HTMLContainer) Clear() {
	for child := c.root.FirstChild; child != nil; {
		next := child.NextSibling
		c.root.RemoveChild(child)
		child = next
	}
}

// Append implements Container.
func (c *HTMLContainer) Append(card Card) {
	div := element(atom.Div, ClassCard)
	div.AppendChild(textElement(atom.H3, card.Title))
	div.AppendChild(textElement(atom.P, card.Meta))
	div.AppendChild(textElement(atom.P, card.Lyrics))

	tags := element(atom.Div, ClassTags)
	for _, tag := range card.Tags {
		span := element(atom.Span, ClassTag)
		span.AppendChild(&html.Node{Type: html.TextNode, Data: tag})
		tags.AppendChild(span)
	}
	div.AppendChild(tags)

	c.root.AppendChild(div)
}

func element(a atom.Atom, class string) *html.Node {
	n := &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String()}
	if class != "" {
		n.Attr = []html.Attribute{{Key: "class", Val: class}}
	}
	return n
}

func textElement(a atom.Atom, text string) *html.Node {
	n := element(a, "")
	n.AppendChild(&html.Node{Type: html.TextNode, Data: text})
	return n
}

// Page is a standalone HTML document holding the search input and the
// results container, as the interactive browser presents them.
type Page struct {
	doc     *html.Node
	input   *html.Node
	results *HTMLContainer
}

// IDs of the page's two attachment points.
const (
	SearchInputID = "searchInput"
	ResultsID     = "results"
)

// NewPage builds an empty page titled title.
func NewPage(title string) *Page {
	doc := &html.Node{Type: html.DocumentNode}
	doc.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})

	htmlEl := element(atom.Html, "")
	head := element(atom.Head, "")
	meta := element(atom.Meta, "")
	meta.Attr = []html.Attribute{{Key: "charset", Val: "utf-8"}}
	head.AppendChild(meta)
	head.AppendChild(textElement(atom.Title, title))
	htmlEl.AppendChild(head)

	body := element(atom.Body, "")
	input := element(atom.Input, "")
	input.Attr = []html.Attribute{
		{Key: "id", Val: SearchInputID},
		{Key: "type", Val: "search"},
		{Key: "value", Val: ""},
	}
	body.AppendChild(input)

	results := element(atom.Div, "")
	results.Attr = []html.Attribute{{Key: "id", Val: ResultsID}}
	body.AppendChild(results)

	htmlEl.AppendChild(body)
	doc.AppendChild(htmlEl)

	return &Page{doc: doc, input: input, results: NewHTMLContainer(results)}
}

// Results returns the container cards are rendered into.
func (p *Page) Results() *HTMLContainer {
	return p.results
}

// SetQuery records the query shown in the search input.
func (p *Page) SetQuery(q string) {
	for i, a := range p.input.Attr {
		if a.Key == "value" {
			p.input.Attr[i].Val = q
			return
		}
	}
}

// Render writes the full document.
func (p *Page) Render(w io.Writer) error {
	if err := html.Render(w, p.doc); err != nil {
		return fmt.Errorf("failed to render page: %w", err)
	}
	return nil
}
