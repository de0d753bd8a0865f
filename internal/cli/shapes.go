package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/genart-dev/plugin-shapes/pkg/property"
	"github.com/genart-dev/plugin-shapes/pkg/shape"
)

// shapesCommand creates the shapes command that prints the shape catalog.
func (c *CLI) shapesCommand() *cobra.Command {
	var long bool

	cmd := &cobra.Command{
		Use:   "shapes",
		Short: "Print the registered shape catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			reg := shape.Default()

			fmt.Println(StyleTitle.Render("Shape catalog"))
			fmt.Println(renderCatalogTable(reg))

			if long {
				for _, id := range reg.List() {
					printShapeDetail(reg.Get(id))
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&long, "long", "l", false, "include the full property schema per shape")

	return cmd
}

func renderCatalogTable(reg *shape.Registry) string {
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	rows := [][]string{}
	for _, id := range reg.List() {
		lt := reg.Get(id)
		keys := property.Keys(lt.Properties())
		rows = append(rows, []string{id, lt.DisplayName(), lt.Icon(), strings.Join(keys, ", ")})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Type", "Name", "Icon", "Properties").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if col == 0 {
				return lipgloss.NewStyle().Foreground(colorCyan)
			}
			if col == 3 {
				return StyleDim
			}
			return StyleValue
		})

	return t.Render()
}

func printShapeDetail(lt shape.LayerType) {
	fmt.Println()
	fmt.Println(StyleTitle.Render(lt.DisplayName()) + " " + StyleDim.Render(lt.TypeID()))
	for _, s := range lt.Properties() {
		line := fmt.Sprintf("%-15s %-8s default=%v", s.Key, s.Type, s.Default)
		if s.Min != nil && s.Max != nil {
			line += fmt.Sprintf("  range=[%v, %v]", *s.Min, *s.Max)
		}
		if len(s.Options) > 0 {
			opts := make([]string, len(s.Options))
			for i, o := range s.Options {
				opts[i] = o.Value
			}
			line += "  options=" + strings.Join(opts, "|")
		}
		fmt.Println("  " + StyleDim.Render(line))
	}
}
