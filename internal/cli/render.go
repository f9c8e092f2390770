package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"challenge-tracker/internal/config"
	"challenge-tracker/internal/domain"
	"challenge-tracker/internal/services"
	"challenge-tracker/internal/view"
)

const (
	emptyMark = "·"
	notesMark = "*"
)

// Renderer draws projected views as terminal text
type Renderer struct {
	display config.DisplayConfig

	titleStyle     lipgloss.Style
	headerStyle    lipgloss.Style
	completedStyle lipgloss.Style
	partialStyle   lipgloss.Style
	emptyStyle     lipgloss.Style
	labelStyle     lipgloss.Style
}

// NewRenderer creates a renderer for the given display settings
func NewRenderer(display config.DisplayConfig) *Renderer {
	if display.CellWidth < 2 {
		display.CellWidth = 2
	}
	if display.CompletedMark == "" {
		display.CompletedMark = "✓"
	}
	return &Renderer{
		display:        display,
		titleStyle:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63")),
		headerStyle:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		completedStyle: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42")),
		partialStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		emptyStyle:     lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		labelStyle:     lipgloss.NewStyle().Bold(true),
	}
}

func (r *Renderer) paint(style lipgloss.Style, s string) string {
	if !r.display.Colors {
		return s
	}
	return style.Render(s)
}

func padLeft(s string, width int) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Left, s)
}

func padRight(s string, width int) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Right, s)
}

// cellLabel fits a cell state into width columns
func (r *Renderer) cellLabel(state domain.CellState, width int) (string, lipgloss.Style) {
	switch state.Kind {
	case domain.CellCompleted:
		return r.display.CompletedMark, r.completedStyle
	case domain.CellPartial:
		return shortHours(state.Hours, width), r.partialStyle
	default:
		return emptyMark, r.emptyStyle
	}
}

// shortHours renders hours in at most width columns, falling back to one
// decimal and then to a bare "+"
func shortHours(hours float64, width int) string {
	s := domain.FormatHours(hours)
	if lipgloss.Width(s) <= width {
		return s
	}
	s = strconv.FormatFloat(hours, 'f', 1, 64)
	if lipgloss.Width(s) <= width {
		return s
	}
	s = strconv.FormatFloat(hours, 'f', 0, 64)
	if lipgloss.Width(s) <= width {
		return s
	}
	return "+"
}

// Grid renders the activities × days matrix
func (r *Renderer) Grid(grid view.Grid) string {
	var b strings.Builder
	b.WriteString(r.paint(r.titleStyle, grid.Title))
	b.WriteString("\n")

	if len(grid.Rows) == 0 {
		b.WriteString("No activities yet. Add one with: ct add <name>\n")
		return b.String()
	}

	nameWidth := lipgloss.Width("Activity")
	for _, row := range grid.Rows {
		if w := lipgloss.Width(row.Activity); w > nameWidth {
			nameWidth = w
		}
	}
	cellWidth := r.display.CellWidth

	var header strings.Builder
	header.WriteString(padLeft("Activity", nameWidth))
	for _, day := range grid.Days {
		header.WriteString(padRight(strconv.Itoa(day), cellWidth))
	}
	b.WriteString(r.paint(r.headerStyle, header.String()))
	b.WriteString("\n")

	for _, row := range grid.Rows {
		b.WriteString(r.paint(r.labelStyle, padLeft(row.Activity, nameWidth)))
		for _, cell := range row.Cells {
			label, style := r.cellLabel(cell.State, cellWidth-1)
			b.WriteString(r.paint(style, padRight(label, cellWidth)))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// Calendar renders a single activity's month, seven days to a line
func (r *Renderer) Calendar(cal view.Calendar) string {
	var b strings.Builder
	b.WriteString(r.paint(r.titleStyle, cal.Activity+" · "+cal.Title))
	b.WriteString("\n")

	width := r.display.CellWidth
	for i, day := range cal.Days {
		label, style := r.cellLabel(day.State, width)
		if day.State.Kind == domain.CellEmpty && day.HasData {
			label, style = notesMark, r.partialStyle
		}
		b.WriteString(r.paint(r.headerStyle, padRight(strconv.Itoa(day.Day), 3)))
		b.WriteString(" ")
		b.WriteString(r.paint(style, padLeft(label, width)))

		if (i+1)%7 == 0 || i == len(cal.Days)-1 {
			b.WriteString("\n")
		}
	}
	b.WriteString(r.paint(r.emptyStyle, fmt.Sprintf("%s completed  %s notes only  n hours logged",
		r.display.CompletedMark, notesMark)))
	b.WriteString("\n")
	return b.String()
}

// Editor renders the pre-filled form of one cell
func (r *Renderer) Editor(editor view.Editor) string {
	var b strings.Builder
	b.WriteString(r.paint(r.titleStyle, editor.Activity+" on "+editor.DateKey))
	b.WriteString("\n")

	status := "No entry"
	if editor.Exists {
		status = domain.LogEntry{Completed: editor.Completed}.Status()
	}
	line := func(label, value string) {
		b.WriteString("  ")
		b.WriteString(r.paint(r.labelStyle, padLeft(label+":", 10)))
		b.WriteString(value)
		b.WriteString("\n")
	}
	line("Status", status)
	line("Duration", domain.FormatHours(editor.Amount)+" "+string(editor.Unit))
	if editor.Notes != "" {
		line("Notes", editor.Notes)
	}
	return b.String()
}

// Summary renders the per-activity figures of a month
func (r *Renderer) Summary(summary *services.MonthSummary, formatHours func(float64) string) string {
	var b strings.Builder
	b.WriteString(r.paint(r.titleStyle, "Summary for "+summary.Title))
	b.WriteString("\n")

	if len(summary.Activities) == 0 {
		b.WriteString("No activities yet. Add one with: ct add <name>\n")
		return b.String()
	}

	nameWidth := lipgloss.Width("Activity")
	for _, a := range summary.Activities {
		if w := lipgloss.Width(a.Activity); w > nameWidth {
			nameWidth = w
		}
	}

	columns := []string{"Done", "Logged", "Rate", "Hours", "Streak", "Best"}
	widths := []int{6, 8, 7, 10, 8, 6}

	var header strings.Builder
	header.WriteString(padLeft("Activity", nameWidth))
	for i, col := range columns {
		header.WriteString(padRight(col, widths[i]))
	}
	b.WriteString(r.paint(r.headerStyle, header.String()))
	b.WriteString("\n")

	for _, a := range summary.Activities {
		values := []string{
			fmt.Sprintf("%d/%d", a.CompletedDays, a.ElapsedDays),
			strconv.Itoa(a.LoggedDays),
			fmt.Sprintf("%.0f%%", a.CompletionRate*100),
			formatHours(a.TotalHours),
			strconv.Itoa(a.CurrentStreak),
			strconv.Itoa(a.LongestStreak),
		}
		b.WriteString(r.paint(r.labelStyle, padLeft(a.Activity, nameWidth)))
		for i, v := range values {
			b.WriteString(padRight(v, widths[i]))
		}
		b.WriteString("\n")
	}

	b.WriteString(fmt.Sprintf("Total: %s\n", formatHours(summary.TotalHours())))
	return b.String()
}
