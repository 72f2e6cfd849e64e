package ui

import (
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/tubeflow/internal/logging"
)

// newConsoleView creates the read-only multi-line entry that shows log lines
func newConsoleView(rows int) *widget.Entry {
	e := widget.NewMultiLineEntry()
	e.Wrapping = fyne.TextWrapWord
	e.TextStyle = fyne.TextStyle{Monospace: true}
	e.SetMinRowsVisible(rows)
	e.Disable()
	return e
}

// appendConsoleLine adds a line, drops the oldest past the console limit and
// keeps the cursor on the last line so the view follows the tail
func appendConsoleLine(e *widget.Entry, line string) {
	text := e.Text
	if text != "" && !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	text += line

	lines := strings.Split(text, "\n")
	if over := len(lines) - logging.DefaultConsoleLines; over > 0 {
		lines = lines[over:]
		text = strings.Join(lines, "\n")
	}

	e.SetText(text)
	e.CursorRow = len(lines) - 1
	e.Refresh()
}
