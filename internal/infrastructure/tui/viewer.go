// Package tui provides an interactive terminal viewer for the S-curve.
package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/elmaestro544/sgroadmap-sub001/internal/domain/curve"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			MarginBottom(1)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1)

	tableBorderStyle = lipgloss.NewStyle().
				BorderStyle(lipgloss.NormalBorder()).
				BorderForeground(lipgloss.Color("240"))
)

// Model is the bubbletea model for the curve viewer. Keys d/w/m/q switch
// the resampling scale; esc quits.
type Model struct {
	series curve.Series
	scale  curve.Scale
	table  table.Model
}

// New creates a viewer showing the series at daily scale.
func New(series curve.Series) Model {
	m := Model{series: series, scale: curve.ScaleDays}
	m.table = newTable(rowsFor(series, m.scale))
	return m
}

// Scale returns the currently selected resampling scale.
func (m Model) Scale() curve.Scale {
	return m.scale
}

func newTable(rows []table.Row) table.Model {
	columns := []table.Column{
		{Title: "Period", Width: 12},
		{Title: "Planned %", Width: 10},
		{Title: "Actual %", Width: 10},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(16),
	)

	styles := table.DefaultStyles()
	styles.Header = styles.Header.Bold(true).BorderBottom(true)
	styles.Selected = styles.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57"))
	t.SetStyles(styles)

	return t
}

func rowsFor(series curve.Series, scale curve.Scale) []table.Row {
	points := curve.Resample(series, scale)
	rows := make([]table.Row, 0, len(points))
	for _, p := range points {
		rows = append(rows, table.Row{
			p.Label,
			fmt.Sprintf("%.2f", p.Planned),
			fmt.Sprintf("%.2f", p.Actual),
		})
	}
	return rows
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc", "ctrl+c":
			return m, tea.Quit
		case "d":
			return m.withScale(curve.ScaleDays), nil
		case "w":
			return m.withScale(curve.ScaleWeeks), nil
		case "m":
			return m.withScale(curve.ScaleMonths), nil
		case "q":
			return m.withScale(curve.ScaleQuarters), nil
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m Model) withScale(scale curve.Scale) Model {
	m.scale = scale
	m.table.SetRows(rowsFor(m.series, scale))
	m.table.SetCursor(0)
	return m
}

func (m Model) View() string {
	title := titleStyle.Render(fmt.Sprintf("S-Curve — %d days, scale: %s", m.series.TotalDays, m.scale))
	help := helpStyle.Render("d days · w weeks · m months · q quarters · esc quit")
	return title + "\n" + tableBorderStyle.Render(m.table.View()) + "\n" + help
}

// Run starts the interactive viewer and blocks until the user quits.
func Run(series curve.Series) error {
	_, err := tea.NewProgram(New(series)).Run()
	return err
}
