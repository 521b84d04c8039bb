// Package logging is the diagnostic channel: structured JSON logs written
// to a size-rotated file under ~/.gstanzl/logs/, plus the viewer behind
// `gstanzl logs`.
//
// Nothing here writes to stdout. Stderr mirroring is opt-in and is kept off
// while the terminal UI owns the screen.
package logging
