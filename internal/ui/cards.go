package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/gstanzl/gstanzl/internal/render"
)

// CardList is a render.Container that lays cards out as styled text for the
// results viewport.
type CardList struct {
	cards  []render.Card
	styles Styles
	width  int
}

// NewCardList creates an empty card list drawn with styles.
func NewCardList(styles Styles) *CardList {
	return &CardList{styles: styles}
}

// Clear implements render.Container.
func (l *CardList) Clear() {
	l.cards = l.cards[:0]
}

// Append implements render.Container.
func (l *CardList) Append(card render.Card) {
	l.cards = append(l.cards, card)
}

// Len returns the number of cards shown.
func (l *CardList) Len() int {
	return len(l.cards)
}

// Titles returns the card titles in display order.
func (l *CardList) Titles() []string {
	titles := make([]string, len(l.cards))
	for i, c := range l.cards {
		titles[i] = c.Title
	}
	return titles
}

// SetWidth sets the outer width cards are wrapped to. Zero means unbounded.
func (l *CardList) SetWidth(width int) {
	l.width = width
}

// View renders every card, one below the other.
func (l *CardList) View() string {
	if len(l.cards) == 0 {
		return ""
	}

	rendered := make([]string, len(l.cards))
	for i, c := range l.cards {
		rendered[i] = l.renderCard(c)
	}
	return lipgloss.JoinVertical(lipgloss.Left, rendered...)
}

func (l *CardList) renderCard(c render.Card) string {
	lines := []string{
		l.styles.Title.Render(c.Title),
		l.styles.Meta.Render(c.Meta),
		l.styles.Lyrics.Render(c.Lyrics),
	}

	if len(c.Tags) > 0 {
		chips := make([]string, len(c.Tags))
		for i, tag := range c.Tags {
			chips[i] = l.styles.Tag.Render(tag)
		}
		lines = append(lines, strings.Join(chips, " "))
	}

	style := l.styles.Card
	// Border takes two columns.
	if l.width > 2 {
		style = style.Width(l.width - 2)
	}
	return style.Render(strings.Join(lines, "\n"))
}

var _ render.Container = (*CardList)(nil)
