package render

import (
	"fmt"
	"io"
	"strings"
)

// TextContainer holds cards as plain text, for pipes and non-TTY output.
type TextContainer struct {
	cards []string
}

// Ensure TextContainer implements Container.
var _ Container = (*TextContainer)(nil)

// NewTextContainer creates an empty text container.
func NewTextContainer() *TextContainer {
	return &TextContainer{}
}

// Clear implements Container.
func (c *TextContainer) Clear() {
	c.cards = c.cards[:0]
}

// Append implements Container.
func (c *TextContainer) Append(card Card) {
	c.cards = append(c.cards, FormatText(card))
}

// Len returns the number of cards held.
func (c *TextContainer) Len() int {
	return len(c.cards)
}

// String returns all cards separated by blank lines.
func (c *TextContainer) String() string {
	return strings.Join(c.cards, "\n")
}

// WriteTo writes the cards to w.
func (c *TextContainer) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, c.String())
	return int64(n), err
}

// FormatText renders one card as plain lines:
//
//	Title
//	Region · Mood
//	lyrics joined by spaces
//	[tag] [tag]
func FormatText(card Card) string {
	var sb strings.Builder
	sb.WriteString(card.Title)
	sb.WriteString("\n")
	sb.WriteString(card.Meta)
	sb.WriteString("\n")
	sb.WriteString(card.Lyrics)
	sb.WriteString("\n")

	chips := make([]string, len(card.Tags))
	for i, tag := range card.Tags {
		chips[i] = fmt.Sprintf("[%s]", tag)
	}
	sb.WriteString(strings.Join(chips, " "))
	sb.WriteString("\n")
	return sb.String()
}
