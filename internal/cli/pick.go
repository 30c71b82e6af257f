package cli

import (
	"context"
	"fmt"
	"io"
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/wristscale/pkg/catalog"
	"github.com/matzehuels/wristscale/pkg/layout"
	"github.com/matzehuels/wristscale/pkg/pipeline"
	"github.com/matzehuels/wristscale/pkg/prefs"
	"github.com/matzehuels/wristscale/pkg/render/styles"
)

// Pick styles
var (
	pickSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	pickNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	pickDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
	pickLeftBar       = lipgloss.NewStyle().Foreground(colorCyan)
	pickRightBar      = lipgloss.NewStyle().Foreground(colorYellow)
)

// pickField is the focused row of the picker.
type pickField int

const (
	fieldLeft pickField = iota
	fieldRight
	fieldMode
	fieldCount
)

// previewColumns is the terminal width spanned by the preview canvas.
const previewColumns = 60

// =============================================================================
// PickModel - Interactive pair and mode selection
// =============================================================================

// PickModel is the bubbletea model for choosing a comparison.
type PickModel struct {
	Records []catalog.Record
	Left    int
	Right   int
	Mode    layout.Mode
	Theme   string
	Focus   pickField

	// Canvas used for the scale readout and preview.
	Width      float64
	Height     float64
	ViewportMm float64

	Confirmed bool
	preview   layout.Geometry
}

// NewPickModel creates a picker over recs with the given initial selection.
// Unknown IDs select the first and second record.
func NewPickModel(recs []catalog.Record, leftID, rightID string, mode layout.Mode, theme string, opts pipeline.Options) PickModel {
	ds := catalog.NewDataset("", recs)
	left, right, _ := ds.Pair(leftID, rightID)
	m := PickModel{
		Records:    recs,
		Left:       max(ds.Index(left.ID), 0),
		Right:      max(ds.Index(right.ID), 0),
		Mode:       mode,
		Theme:      theme,
		Width:      opts.Width,
		Height:     opts.Height,
		ViewportMm: opts.ViewportMm,
	}
	if !m.Mode.Valid() {
		m.Mode = layout.SideBySide
	}
	m.recompute()
	return m
}

func (m PickModel) Init() tea.Cmd {
	return nil
}

func (m PickModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "enter":
		m.Confirmed = true
		return m, tea.Quit
	case "tab", "down", "j":
		m.Focus = (m.Focus + 1) % fieldCount
	case "shift+tab", "up", "k":
		m.Focus = (m.Focus + fieldCount - 1) % fieldCount
	case "right", "l":
		m.step(1)
	case "left", "h":
		m.step(-1)
	case "s":
		m.Left, m.Right = m.Right, m.Left
	case "m":
		m.Mode = m.Mode.Next()
	case "t":
		m.Theme = styles.Toggle(m.Theme)
	default:
		return m, nil
	}
	m.recompute()
	return m, nil
}

// step moves the focused field by delta, wrapping around.
func (m *PickModel) step(delta int) {
	n := len(m.Records)
	switch m.Focus {
	case fieldLeft:
		m.Left = (m.Left + delta + n) % n
	case fieldRight:
		m.Right = (m.Right + delta + n) % n
	case fieldMode:
		i := 0
		for j, mode := range layout.Modes {
			if mode == m.Mode {
				i = j
			}
		}
		m.Mode = layout.Modes[(i+delta+len(layout.Modes))%len(layout.Modes)]
	}
}

func (m *PickModel) recompute() {
	if len(m.Records) == 0 {
		return
	}
	m.preview = layout.Compute(m.Records[m.Left], m.Records[m.Right], m.Mode, m.Width, m.Height, m.ViewportMm)
}

// Selection returns the chosen left and right IDs.
func (m PickModel) Selection() (left, right string) {
	return m.Records[m.Left].ID, m.Records[m.Right].ID
}

func (m PickModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Compare Watches"))
	b.WriteString("\n")
	b.WriteString(pickDimStyle.Render("↑/↓ field  ←/→ change  s swap  m mode  t theme  ⏎ render  q quit"))
	b.WriteString("\n\n")

	rows := []struct {
		field pickField
		label string
		value string
	}{
		{fieldLeft, "Left", m.Records[m.Left].Label()},
		{fieldRight, "Right", m.Records[m.Right].Label()},
		{fieldMode, "Mode", string(m.Mode)},
	}
	for _, r := range rows {
		cursor := "  "
		style := pickNormalStyle
		if r.field == m.Focus {
			cursor = "▸ "
			style = pickSelectedStyle
		}
		b.WriteString(style.Render(fmt.Sprintf("%s%-6s ‹ %s ›", cursor, r.label, r.value)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(pickDimStyle.Render(fmt.Sprintf("  theme %s · scale %.2f px/mm", m.Theme, m.preview.PxPerMm)))
	b.WriteString("\n\n")
	b.WriteString(m.previewBars())
	return b.String()
}

// previewBars draws each box as a bar whose length and offset follow the
// computed geometry, so the relative case widths are visible in the terminal.
func (m PickModel) previewBars() string {
	if m.preview.CanvasWidth <= 0 {
		return ""
	}
	perCol := m.preview.CanvasWidth / previewColumns

	var b strings.Builder
	for _, it := range m.preview.Items() {
		style := pickLeftBar
		if it.Side == layout.SideRight {
			style = pickRightBar
		}
		start := int(math.Round(it.Left() / perCol))
		width := max(int(math.Round(it.BoxSize/perCol)), 1)
		rec := m.Records[m.Left]
		if it.Side == layout.SideRight {
			rec = m.Records[m.Right]
		}

		b.WriteString("  ")
		b.WriteString(strings.Repeat(" ", max(start, 0)))
		b.WriteString(style.Render(strings.Repeat("█", width)))
		b.WriteString(pickDimStyle.Render(fmt.Sprintf("  %s", layout.SpecLine(rec))))
		b.WriteString("\n")
	}
	return b.String()
}

// =============================================================================
// pick command
// =============================================================================

// pickCommand creates the pick command, an interactive front end to compare.
func (c *CLI) pickCommand() *cobra.Command {
	var (
		output     string
		formatsStr string
	)
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "pick",
		Short: "Choose a pair and mode interactively, then render",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Formats = parseFormats(formatsStr)
			return c.runPick(cmd.Context(), opts, output, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (single format) or base path (several)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png, json (comma-separated)")
	cmd.Flags().Float64Var(&opts.Width, "width", 0, "canvas width in pixels")
	cmd.Flags().Float64Var(&opts.Height, "height", 0, "canvas height in pixels")
	cmd.Flags().Float64Var(&opts.ViewportMm, "viewport", 0, "physical width in mm spanned by the canvas")

	return cmd
}

func (c *CLI) runPick(ctx context.Context, opts pipeline.Options, output string, stdout io.Writer) error {
	c.layoutDefaults(&opts)
	opts.Theme = c.storedTheme(ctx)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return err
	}

	set, _, err := c.loadWorkingSet(ctx)
	if err != nil {
		return err
	}

	model := NewPickModel(set.Load().Records(), "", "", opts.Mode, opts.Theme, opts)
	final, err := tea.NewProgram(model, tea.WithContext(ctx)).Run()
	if err != nil {
		return fmt.Errorf("run picker: %w", err)
	}
	picked := final.(PickModel)
	if !picked.Confirmed {
		printInfo("Cancelled")
		return nil
	}

	if picked.Theme != opts.Theme {
		c.saveTheme(ctx, picked.Theme)
	}

	opts.Left, opts.Right = picked.Selection()
	opts.Mode = picked.Mode
	opts.Theme = picked.Theme
	result, err := c.newRunner(set).Execute(ctx, opts)
	if err != nil {
		return err
	}
	if err := writeArtifacts(result, opts.Formats, output, stdout); err != nil {
		return err
	}
	printComparison(result)
	printNewline()
	printNextStep("Render again", fmt.Sprintf("%s compare %s %s --mode %s", appName, result.Left.ID, result.Right.ID, result.Geometry.Mode))
	return nil
}

// saveTheme persists a theme chosen in the picker. Failures are logged only.
func (c *CLI) saveTheme(ctx context.Context, name string) {
	store, err := c.openPrefs(ctx)
	if err != nil {
		c.Logger.Warn("preferences unavailable", "err", err)
		return
	}
	defer store.Close()
	if _, err := prefs.SetTheme(ctx, store, name); err != nil {
		c.Logger.Warn("save theme preference", "err", err)
	}
}
