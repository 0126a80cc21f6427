// # Naming Conventions
//
//   - Display* functions write formatted output to an [io.Writer].
//     Examples: [DisplayResult], [DisplayDetails], [DisplayError].
//
//   - Format* functions return a formatted string without performing I/O.
//     Examples: [FormatDetails].

package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/tryfib/internal/fibonacci"
	"github.com/agbru/tryfib/internal/format"
	"github.com/agbru/tryfib/internal/orchestration"
	"github.com/agbru/tryfib/internal/ui"
)

// Details describes a completed run for the --details view.
type Details struct {
	// Input is the value that was resolved.
	Input fibonacci.Value
	// Index is the resolved index.
	Index int
	// Results holds one entry per calculator, best first.
	Results []orchestration.CalculationResult
}

// DisplayResult writes the result as a single decimal line. This is the
// only output of a default run.
func DisplayResult(out io.Writer, result int) {
	fmt.Fprintln(out, result)
}

// DisplayError writes a one-line error message.
func DisplayError(out io.Writer, err error) {
	style := lipgloss.NewStyle().Foreground(ui.GetCurrentTheme().Error)
	fmt.Fprintln(out, style.Render("Error: "+err.Error()))
}

// DisplayDetails writes the boxed summary produced by FormatDetails.
func DisplayDetails(out io.Writer, d Details) {
	fmt.Fprintln(out, FormatDetails(d))
}

// FormatDetails renders the input, index and per-algorithm outcome in a
// bordered box.
func FormatDetails(d Details) string {
	theme := ui.GetCurrentTheme()
	label := lipgloss.NewStyle().Foreground(theme.Label).Width(11)
	value := lipgloss.NewStyle().Foreground(theme.Value)
	title := lipgloss.NewStyle().Bold(true).Foreground(theme.Accent)
	ok := lipgloss.NewStyle().Foreground(theme.Success)
	failed := lipgloss.NewStyle().Foreground(theme.Error)

	row := func(k, v string) string {
		return label.Render(k) + value.Render(v)
	}

	lines := []string{
		title.Render(fmt.Sprintf("F(%d)", d.Index)),
		row("Input", describeInput(d.Input)),
		row("Index", fmt.Sprintf("%d", d.Index)),
	}
	for _, res := range d.Results {
		if res.Err != nil {
			lines = append(lines, row(res.Name, failed.Render("failed: "+res.Err.Error())))
			continue
		}
		outcome := fmt.Sprintf("(%d, %d) in %s", res.Pair.Current, res.Pair.Previous,
			format.FormatExecutionDuration(res.Duration))
		lines = append(lines, row(res.Name, ok.Render(outcome)))
	}
	if d.Index >= fibonacci.OverflowIndex {
		lines = append(lines, failed.Render("value exceeds 64-bit range and has wrapped"))
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1)
	return box.Render(strings.Join(lines, "\n"))
}

func describeInput(v fibonacci.Value) string {
	switch v := v.(type) {
	case fibonacci.StringValue:
		return fmt.Sprintf("%q (string)", string(v))
	case fibonacci.IntegerValue:
		return fmt.Sprintf("%d (integer)", int(v))
	default:
		return "<unsupported>"
	}
}
