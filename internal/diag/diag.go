// Package diag formats scanner failures so every user-visible
// error carries file:line:column context where the scanner can supply
// it, printed with a caret under the offending column.
package diag

import (
	"fmt"
	"strings"

	"github.com/cwbudde/langcore/internal/token"
)

// SourceError pairs a message with the position and source text it
// occurred in, so Format can render a caret-annotated diagnostic.
type SourceError struct {
	Pos     token.Position
	Message string
	Source  string
}

// New constructs a SourceError.
func New(pos token.Position, message, source string) *SourceError {
	return &SourceError{Pos: pos, Message: message, Source: source}
}

// Error implements the error interface with an uncolored rendering.
func (e *SourceError) Error() string {
	return e.Format(false)
}

// Format renders the error with a source line and a caret pointing at the
// failing column. When color is true, ANSI codes highlight the caret.
func (e *SourceError) Format(color bool) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "%s\n", e.Pos)

	if line := sourceLine(e.Source, e.Pos.Line); line != "" {
		prefix := fmt.Sprintf("%4d | ", e.Pos.Line)
		sb.WriteString(prefix)
		sb.WriteString(line)
		sb.WriteString("\n")

		sb.WriteString(strings.Repeat(" ", len(prefix)+max0(e.Pos.Column-1)))
		if color {
			sb.WriteString("\033[1;31m")
		}
		sb.WriteString("^")
		if color {
			sb.WriteString("\033[0m")
		}
		sb.WriteString("\n")
	}

	if color {
		sb.WriteString("\033[1m")
	}
	sb.WriteString(e.Message)
	if color {
		sb.WriteString("\033[0m")
	}

	return sb.String()
}

func sourceLine(source string, line int) string {
	if source == "" || line < 1 {
		return ""
	}
	lines := strings.Split(source, "\n")
	if line > len(lines) {
		return ""
	}
	return lines[line-1]
}

func max0(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
