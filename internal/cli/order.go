package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	flowio "github.com/mwendler/ribbons/pkg/io"
	"github.com/mwendler/ribbons/pkg/pipeline"
)

// orderCommand creates the order command for interactive label reordering.
func (c *CLI) orderCommand() *cobra.Command {
	var (
		output     string
		formatsStr string
	)
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "order [dataset]",
		Short: "Interactively reorder label stacks, then render",
		Long: `Interactively reorder label stacks, then render.

The order command opens an interactive picker showing the left and right
label stacks (bottom first). Grab a label with space and move it with the
arrow keys, then confirm with enter to render the diagram with the chosen
stacking order. For a scripted equivalent use 'render' with --left-order
and --right-order.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := prepareOptions(&opts, formatsStr, "", "", Config{}); err != nil {
				return err
			}
			return c.runOrder(cmd, args[0], opts, output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png, json, dot, nodelink (comma-separated)")

	return cmd
}

// runOrder opens the picker and renders with the confirmed ordering.
func (c *CLI) runOrder(cmd *cobra.Command, input string, opts pipeline.Options, output string) error {
	dataset, err := flowio.ReadFile(input)
	if err != nil {
		return fmt.Errorf("load dataset %s: %w", input, err)
	}

	m := NewOrderModel(dataset.LeftLabels(), dataset.RightLabels())
	finalModel, err := tea.NewProgram(m).Run()
	if err != nil {
		return err
	}

	fm, ok := finalModel.(OrderModel)
	if !ok || !fm.Accepted {
		printWarning("Cancelled")
		return nil
	}

	opts.LeftLabels = fm.Labels(sideLeft)
	opts.RightLabels = fm.Labels(sideRight)
	printInfo("Left order: %s", StyleHighlight.Render(strings.Join(opts.LeftLabels, ", ")))
	printInfo("Right order: %s", StyleHighlight.Render(strings.Join(opts.RightLabels, ", ")))

	return c.runRender(cmd.Context(), input, opts, output)
}

// Column indexes into OrderModel.Sides.
const (
	sideLeft  = 0
	sideRight = 1
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listGrabbedStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorYellow)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// OrderModel is the bubbletea model for interactive stack reordering.
// Each side holds its labels bottom-first, matching the stacking order
// used by the layout.
type OrderModel struct {
	Sides    [2][]string
	Side     int // active column
	Cursor   int
	Grabbed  bool // cursor movement drags the label under it
	Accepted bool
}

// NewOrderModel creates an order model from the current label orders.
func NewOrderModel(left, right []string) OrderModel {
	sides := [2][]string{
		append([]string(nil), left...),
		append([]string(nil), right...),
	}
	return OrderModel{Sides: sides}
}

// Labels returns the current ordering of one side.
func (m OrderModel) Labels(side int) []string {
	return m.Sides[side]
}

func (m OrderModel) Init() tea.Cmd {
	return nil
}

func (m OrderModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "tab", "left", "right", "h", "l":
			m.Side = 1 - m.Side
			m.Grabbed = false
			if m.Cursor >= len(m.Sides[m.Side]) {
				m.Cursor = len(m.Sides[m.Side]) - 1
			}
		case "up", "k":
			if m.Cursor > 0 {
				if m.Grabbed {
					labels := m.Sides[m.Side]
					labels[m.Cursor], labels[m.Cursor-1] = labels[m.Cursor-1], labels[m.Cursor]
				}
				m.Cursor--
			}
		case "down", "j":
			if m.Cursor < len(m.Sides[m.Side])-1 {
				if m.Grabbed {
					labels := m.Sides[m.Side]
					labels[m.Cursor], labels[m.Cursor+1] = labels[m.Cursor+1], labels[m.Cursor]
				}
				m.Cursor++
			}
		case " ":
			m.Grabbed = !m.Grabbed
		case "enter":
			m.Accepted = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m OrderModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Reorder Label Stacks"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ move  ⇥ switch side  ␣ grab/drop  ⏎ render  q quit"))
	b.WriteString("\n\n")

	columns := make([]string, 2)
	titles := [2]string{"Left", "Right"}
	for side := range m.Sides {
		var col strings.Builder
		col.WriteString(listDimStyle.Render(titles[side]))
		col.WriteString("\n")

		// Stacks draw bottom-up, so show the top of the stack first.
		labels := m.Sides[side]
		for i := len(labels) - 1; i >= 0; i-- {
			cursor := "  "
			style := listNormalStyle
			if side == m.Side && i == m.Cursor {
				cursor = "▸ "
				style = listSelectedStyle
				if m.Grabbed {
					style = listGrabbedStyle
				}
			}
			col.WriteString(cursor + style.Render(labels[i]))
			col.WriteString("\n")
		}
		columns[side] = lipgloss.NewStyle().MarginRight(4).Render(col.String())
	}

	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, columns...))
	return b.String()
}
