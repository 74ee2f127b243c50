package cmd

import (
	"os"

	isatty "github.com/mattn/go-isatty"
)

// isTerminal determines whether or not a file is attached to a terminal,
// including Cygwin/MSYS2 pseudo-terminals.
func isTerminal(file *os.File) bool {
	descriptor := file.Fd()
	return isatty.IsTerminal(descriptor) || isatty.IsCygwinTerminal(descriptor)
}

// StandardInputIsTerminal determines whether or not standard input is attached
// to a terminal.
func StandardInputIsTerminal() bool {
	return isTerminal(os.Stdin)
}

// StandardErrorIsTerminal determines whether or not standard error is attached
// to a terminal.
func StandardErrorIsTerminal() bool {
	return isTerminal(os.Stderr)
}
