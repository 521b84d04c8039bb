package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWriter_Status_PrintsIconAndMessage(t *testing.T) {
	// Given: a writer with a buffer
	buf := &bytes.Buffer{}
	w := New(buf)

	// When: printing a status message
	w.Status("→", "Loading catalog...")

	// Then: output contains icon and message
	assert.Equal(t, "→ Loading catalog...\n", buf.String())
}

func TestWriter_Status_EmptyIconIndents(t *testing.T) {
	buf := &bytes.Buffer{}
	w := New(buf)

	w.Statusf("", "%d records", 2)

	assert.Equal(t, "  2 records\n", buf.String())
}

func TestWriter_Icons(t *testing.T) {
	tests := []struct {
		name  string
		print func(w *Writer)
		want  string
	}{
		{"success", func(w *Writer) { w.Successf("wrote %s", "config.yaml") }, "✓ wrote config.yaml\n"},
		{"warning", func(w *Writer) { w.Warningf("%s exists", "config.yaml") }, "! config.yaml exists\n"},
		{"error", func(w *Writer) { w.Errorf("failed: %v", "boom") }, "✗ failed: boom\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			tt.print(New(buf))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestWriter_ColorKeepsText(t *testing.T) {
	buf := &bytes.Buffer{}
	w := NewColor(buf, true)

	w.Success("done")

	assert.Contains(t, buf.String(), "✓")
	assert.Contains(t, buf.String(), "done")
}

func TestWriter_Code_IndentsLines(t *testing.T) {
	buf := &bytes.Buffer{}
	w := New(buf)

	w.Code("catalog:\n  location: songs.json\n")

	assert.Equal(t, "\n  catalog:\n    location: songs.json\n\n", buf.String())
}

func TestWriter_Newline(t *testing.T) {
	buf := &bytes.Buffer{}
	New(buf).Newline()

	assert.Equal(t, "\n", buf.String())
}
