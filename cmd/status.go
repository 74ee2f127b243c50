package cmd

import (
	"fmt"
	"runtime"

	"github.com/fatih/color"
)

// statusLineWidth returns the width to which status lines are truncated and
// padded. Windows consoles require content to be narrower than the console
// for carriage return wipes to work, so one column is left empty there.
func statusLineWidth() int {
	if runtime.GOOS == "windows" {
		return 79
	}
	return 80
}

// StatusLinePrinter provides printing facilities for dynamically updating
// status lines on standard error. If standard error isn't a terminal, then
// printing is a no-op.
type StatusLinePrinter struct {
	// nonEmpty indicates whether or not the printer has printed any non-empty
	// content to the status line.
	nonEmpty bool
}

// Print prints a message to the status line, overwriting any existing content.
// Messages are truncated or padded to a fixed width.
func (p *StatusLinePrinter) Print(message string) {
	if !StandardErrorIsTerminal() {
		return
	}
	width := statusLineWidth()
	fmt.Fprintf(color.Error, "\r%-*.*s", width, width, message)
	p.nonEmpty = true
}

// Clear clears any content on the status line and moves the cursor back to the
// beginning of the line.
func (p *StatusLinePrinter) Clear() {
	if !p.nonEmpty {
		return
	}
	p.Print("")
	fmt.Fprint(color.Error, "\r")
	p.nonEmpty = false
}
