package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/rangeviz/rangeviz/pkg/chart"
)

// typesCommand creates the types command listing the chart catalog.
func (c *CLI) typesCommand() *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:   "types",
		Short: "List the chart-type catalog",
		Long: `List every supported chart type with its minimum column
requirement and grammar dialect. The "Cols" column is the smallest
header width the type accepts; ranges narrower than that are rejected
before rendering.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if plain {
				for _, name := range chart.Names() {
					fmt.Println(name)
				}
				return nil
			}
			fmt.Println(renderTypeTable())
			return nil
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "print bare type names, one per line")
	return cmd
}

// renderTypeTable renders the catalog as a lipgloss table.
func renderTypeTable() string {
	rows := [][]string{}
	for _, d := range chart.Types() {
		dialect := string(d.Dialect)
		if d.Hierarchical {
			dialect += " (tree)"
		}
		rows = append(rows, []string{
			string(d.Type),
			fmt.Sprintf("%d+", d.MinColumns),
			dialect,
			d.Summary,
		})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Type", "Cols", "Dialect", "Summary").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if col == 0 {
				return StyleHighlight
			}
			if col == 3 {
				return StyleDim
			}
			return StyleValue
		}).
		Render()
}
