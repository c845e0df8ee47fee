package viz

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#41b6c4"))

	Subtle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#666688"))

	MetricValue = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00ccff")).
			Bold(true)

	MetricLabel = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888899"))

	StatusOK = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00ff88"))

	StatusError = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ff4444"))

	GridPanel = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#253494")).
			Foreground(lipgloss.Color("#ffffd9"))

	BarDone = lipgloss.NewStyle().Foreground(lipgloss.Color("#225ea8"))
	BarTodo = lipgloss.NewStyle().Foreground(lipgloss.Color("#444466"))
)

const (
	barFill  = "█"
	barEmpty = "-"
)

// ProgressBar returns "|####------| 40.000%" for iteration out of total.
func ProgressBar(iteration, total, width, decimals int) string {
	filled, percent := barState(iteration, total, width)
	return fmt.Sprintf("|%s%s| %.*f%%",
		strings.Repeat(barFill, filled), strings.Repeat(barEmpty, width-filled), decimals, percent)
}

// StyledProgressBar is ProgressBar with lipgloss colours.
func StyledProgressBar(iteration, total, width, decimals int) string {
	filled, percent := barState(iteration, total, width)
	return fmt.Sprintf("|%s%s| %s",
		BarDone.Render(strings.Repeat(barFill, filled)),
		BarTodo.Render(strings.Repeat(barEmpty, width-filled)),
		MetricValue.Render(fmt.Sprintf("%.*f%%", decimals, percent)))
}

func barState(iteration, total, width int) (int, float64) {
	if total <= 0 {
		return width, 100
	}
	iteration = max(0, min(iteration, total))
	return width * iteration / total, 100 * float64(iteration) / float64(total)
}

// TextProgress returns a callback that redraws the bar in place on w and
// ends the line once done reaches total.
func TextProgress(w io.Writer, prefix string, width, decimals int) func(done, total int) {
	return func(done, total int) {
		fmt.Fprintf(w, "\r%s %s ", prefix, ProgressBar(done, total, width, decimals))
		if done >= total {
			fmt.Fprintln(w)
		}
	}
}

// SparklineChart renders a one-line sparkline of values sampled to width.
func SparklineChart(values []float64, width int) string {
	if len(values) == 0 || width <= 0 {
		return strings.Repeat("─", max(0, width))
	}

	chars := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	lo, hi := values[0], values[0]
	for _, v := range values {
		lo = min(lo, v)
		hi = max(hi, v)
	}
	span := hi - lo
	if span == 0 {
		span = 1
	}

	step := max(1, len(values)/width)

	var result strings.Builder
	for i := 0; i < width && i*step < len(values); i++ {
		norm := (values[i*step] - lo) / span
		idx := max(0, min(int(norm*float64(len(chars)-1)), len(chars)-1))
		result.WriteRune(chars[idx])
	}
	return result.String()
}
