package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/genart-dev/plugin-shapes/internal/config"
	"github.com/genart-dev/plugin-shapes/pkg/layer"
)

// stackCommand creates the stack command, an interactive browser over the
// configured layer store.
func (c *CLI) stackCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stack",
		Short: "Browse the layer stack interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(c.configPath)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			store, err := config.OpenStore(ctx, cfg.Store)
			if err != nil {
				return err
			}
			defer store.Close()

			layers, err := store.List(ctx)
			if err != nil {
				return err
			}
			if len(layers) == 0 {
				printInfo("layer stack is empty")
				return nil
			}

			model := NewStackModel(layers)
			final, err := tea.NewProgram(model).Run()
			if err != nil {
				return err
			}

			if m, ok := final.(StackModel); ok && m.Selected != nil {
				data, err := json.MarshalIndent(m.Selected, "", "  ")
				if err != nil {
					return err
				}
				fmt.Println(string(data))
			}
			return nil
		},
	}

	return cmd
}

// List styles
var (
	listDimStyle = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// StackModel - Interactive layer stack browser
// =============================================================================

// StackModel is the bubbletea model for browsing the layer stack.
type StackModel struct {
	Layers   []*layer.Layer
	Cursor   int
	Selected *layer.Layer
	Height   int
	Offset   int
}

// NewStackModel creates a stack browser over the given layers.
func NewStackModel(layers []*layer.Layer) StackModel {
	return StackModel{
		Layers: layers,
		Cursor: 0,
		Height: 15,
		Offset: 0,
	}
}

func (m StackModel) Init() tea.Cmd {
	return nil
}

func (m StackModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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
			if m.Cursor < len(m.Layers)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "enter":
			m.Selected = m.Layers[m.Cursor]
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

func (m StackModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Layer stack"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ inspect  q quit"))
	b.WriteString("\n\n")

	end := m.Offset + m.Height
	if end > len(m.Layers) {
		end = len(m.Layers)
	}

	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		l := m.Layers[i]

		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}

		visible := "✓"
		if !l.Visible {
			visible = ""
		}

		bounds := fmt.Sprintf("%.0f,%.0f %.0fx%.0f", l.Bounds.X, l.Bounds.Y, l.Bounds.Width, l.Bounds.Height)
		rows = append(rows, []string{cursor, l.Name, l.Type, visible, bounds, l.ID})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Layer", "Type", "Visible", "Bounds", "ID").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}

			actualIdx := m.Offset + row
			if actualIdx >= len(m.Layers) {
				return lipgloss.NewStyle()
			}
			l := m.Layers[actualIdx]
			isCurrent := actualIdx == m.Cursor

			base := lipgloss.NewStyle()
			if !l.Visible {
				base = base.Foreground(colorDim)
			}
			if isCurrent {
				return base.Foreground(colorGreen).Bold(true)
			}
			if col == 4 || col == 5 {
				return base.Foreground(colorDim)
			}
			return base
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Layers))))

	return b.String()
}
