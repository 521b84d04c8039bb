package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultStyles_RenderText(t *testing.T) {
	// Given: default styles
	styles := DefaultStyles()

	// When/Then: each style keeps its text
	assert.Contains(t, styles.Header.Render("gstanzl"), "gstanzl")
	assert.Contains(t, styles.Title.Render("Alpenlied"), "Alpenlied")
	assert.Contains(t, styles.Meta.Render("Tirol · heiter"), "Tirol · heiter")
	assert.Contains(t, styles.Tag.Render("trad"), "trad")
	assert.Contains(t, styles.Card.Render("body"), "body")
}

func TestGetStyles_WithNoColor(t *testing.T) {
	// When: getting styles with noColor=true
	styles := GetStyles(true)

	// Then: returns no-color styles (plain rendering)
	assert.Equal(t, "trad", styles.Tag.Render("trad"))
	assert.Equal(t, "Alpenlied", styles.Title.Render("Alpenlied"))
}

func TestGetStyles_WithColor(t *testing.T) {
	// When: getting styles with noColor=false
	styles := GetStyles(false)

	// Then: text is present, exact ANSI codes depend on the terminal
	assert.Contains(t, styles.Title.Render("test"), "test")
}
