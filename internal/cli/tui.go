package cli

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/rangeviz/rangeviz/pkg/chart"
	"github.com/rangeviz/rangeviz/pkg/errors"
)

// List styles
var (
	listDimStyle = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// TypePickerModel - Interactive chart-type selection
// =============================================================================

// TypePickerModel is the bubbletea model for interactive chart-type
// selection when --type is omitted on a terminal.
type TypePickerModel struct {
	Defs     []*chart.Def
	Cursor   int
	Selected *chart.Def
	Height   int
	Offset   int
}

// NewTypePickerModel creates a picker over the full catalog.
func NewTypePickerModel() TypePickerModel {
	return TypePickerModel{
		Defs:   chart.Types(),
		Height: 15,
	}
}

func (m TypePickerModel) Init() tea.Cmd {
	return nil
}

func (m TypePickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Defs)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "enter":
			m.Selected = m.Defs[m.Cursor]
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 6
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m TypePickerModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Chart Type"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	end := m.Offset + m.Height
	if end > len(m.Defs) {
		end = len(m.Defs)
	}

	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		d := m.Defs[i]

		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}

		rows = append(rows, []string{
			cursor,
			string(d.Type),
			fmt.Sprintf("%d+", d.MinColumns),
			string(d.Dialect),
			d.Summary,
		})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Type", "Cols", "Dialect", "Summary").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if m.Offset+row == m.Cursor {
				if col == 4 {
					return lipgloss.NewStyle().Foreground(colorGray).Bold(true)
				}
				return lipgloss.NewStyle().Foreground(colorGreen).Bold(true)
			}
			if col == 4 {
				return lipgloss.NewStyle().Foreground(colorDim)
			}
			return lipgloss.NewStyle().Foreground(colorWhite)
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Defs))))

	return b.String()
}

// pickChartType runs the interactive picker and returns the chosen
// type name. Off a terminal it fails with a pointer to --type.
func pickChartType() (string, error) {
	if !isTerminal(os.Stdin) || !isTerminal(os.Stdout) {
		return "", errors.New(errors.ErrCodeInvalidChartType,
			"chart type is required (--type; run 'rangeviz types' for the catalog)")
	}

	final, err := tea.NewProgram(NewTypePickerModel()).Run()
	if err != nil {
		return "", err
	}
	m, ok := final.(TypePickerModel)
	if !ok || m.Selected == nil {
		return "", errors.New(errors.ErrCodeInvalidChartType, "no chart type selected")
	}
	return string(m.Selected.Type), nil
}
