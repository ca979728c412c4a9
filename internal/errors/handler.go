package errors

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

// Handler reports a failed command to the user and returns its exit code.
type Handler struct {
	logger *log.Logger
	out    io.Writer
	style  lipgloss.Style
	hint   lipgloss.Style
}

// NewHandler creates a handler writing diagnostics to out. style renders the
// "Error:" prefix and hint renders the optional follow-up line. The message
// itself is written unstyled so quoted operands appear exactly as given.
func NewHandler(logger *log.Logger, out io.Writer, style, hint lipgloss.Style) *Handler {
	return &Handler{logger: logger, out: out, style: style, hint: hint}
}

// Handle writes the diagnostic for err, if any, and returns the exit code.
func (h *Handler) Handle(err error) int {
	if err == nil {
		return 0
	}

	category := CategoryOf(err)
	if h.logger != nil {
		h.logger.Debug("command failed", "category", category, "err", err)
	}

	fmt.Fprintf(h.out, "%s %s\n", h.style.Render("Error:"), err.Error())
	if hint := HintOf(err); hint != "" {
		fmt.Fprintln(h.out, h.hint.Render(hint))
	}
	return ExitCode(err)
}
