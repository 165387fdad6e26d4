package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/rshade/vport/internal/config"
	"github.com/rshade/vport/internal/engine"
	listview "github.com/rshade/vport/internal/tui/list"
)

// Default dimensions used before the first WindowSizeMsg arrives.
const (
	demoDefaultWidth  = 80
	demoDefaultHeight = 24
)

// chromeRows is the screen estate taken by header, status bar and footer.
const chromeRows = 3

// jumpCharLimit bounds the jump-to-index input length.
const jumpCharLimit = 10

// DemoModel is the Bubble Tea model for the windowing demo: a virtual list
// over a synthetic variable-height dataset, with a jump-to-index prompt
// that drives the engine's scroll targeting.
type DemoModel struct {
	// list is the virtual list over the demo dataset.
	list *listview.Model[Item]

	// input captures the jump-to-index target.
	input textinput.Model

	// jumping is true while the jump prompt is focused.
	jumping bool

	// alignment applied when jumping to an index.
	alignment engine.Alignment

	// Display dimensions.
	width  int
	height int

	// quitting suppresses the final render on exit.
	quitting bool

	logger zerolog.Logger
}

// NewDemoModel creates the demo model over the given dataset.
func NewDemoModel(items []Item, cfg *config.Config, logger zerolog.Logger) *DemoModel {
	engineLogger := logger.With().Str("component", "engine").Logger()
	opts := engine.Options{
		DefaultEstimate: cfg.Engine.DefaultEstimate,
		Logger:          &engineLogger,
	}

	list := listview.New(items, demoDefaultHeight-chromeRows, demoDefaultWidth, RenderItem, opts)
	list.SetOverscan(engine.Overscan{
		Rows:   cfg.Engine.OverscanRows,
		Pixels: cfg.Engine.OverscanPixels,
	})

	input := textinput.New()
	input.Prompt = "jump to index: "
	input.Placeholder = "0"
	input.CharLimit = jumpCharLimit

	return &DemoModel{
		list:      list,
		input:     input,
		alignment: engine.ParseAlignment(cfg.Engine.ScrollAlignment),
		width:     demoDefaultWidth,
		height:    demoDefaultHeight,
		logger:    logger,
	}
}

// RenderItem renders one dataset item; selection gets the accent marker.
// The rendered line count is the item's measured height.
func RenderItem(it Item, _ int, selected bool) string {
	title := "  " + it.Title
	if selected {
		title = selectedStyle.Render("> " + it.Title)
	}
	if len(it.Details) == 0 {
		return title
	}

	var b strings.Builder
	b.WriteString(title)
	for _, d := range it.Details {
		b.WriteString("\n    ")
		b.WriteString(detailStyle.Render(d))
	}
	return b.String()
}

// Init implements tea.Model.
func (m *DemoModel) Init() tea.Cmd {
	return nil
}

// Update handles keyboard and resize messages.
func (m *DemoModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		listHeight := msg.Height - chromeRows
		if listHeight < 1 {
			listHeight = 1
		}
		_, _ = m.list.Update(tea.WindowSizeMsg{Width: msg.Width, Height: listHeight})
		return m, nil

	case tea.KeyMsg:
		if m.jumping {
			return m.updateJump(msg)
		}
		return m.updateBrowse(msg)
	}

	return m, nil
}

// updateBrowse handles input while navigating the list.
func (m *DemoModel) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyCtrlC:
		m.quitting = true
		return m, tea.Quit
	case msg.Type == tea.KeyRunes && len(msg.Runes) > 0 && msg.Runes[0] == 'q':
		m.quitting = true
		return m, tea.Quit
	case msg.Type == tea.KeyRunes && len(msg.Runes) > 0 && msg.Runes[0] == ':':
		m.jumping = true
		m.input.SetValue("")
		m.input.Focus()
		return m, textinput.Blink
	}

	_, _ = m.list.Update(msg)
	return m, nil
}

// updateJump handles input while the jump prompt is open.
func (m *DemoModel) updateJump(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEscape:
		m.jumping = false
		m.input.Blur()
		return m, nil

	case tea.KeyEnter:
		m.jumping = false
		m.input.Blur()
		index, err := strconv.Atoi(strings.TrimSpace(m.input.Value()))
		if err != nil {
			m.logger.Debug().Str("input", m.input.Value()).Msg("ignoring non-numeric jump target")
			return m, nil
		}
		m.list.SetSelected(index)
		m.list.ScrollToIndex(m.list.Selected(), m.alignment)
		m.logger.Debug().
			Int("index", m.list.Selected()).
			Str("alignment", m.alignment.String()).
			Float64("offset", m.list.ScrollOffset()).
			Msg("jumped to index")
		return m, nil
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
}

// View renders header, list window, status bar and footer.
func (m *DemoModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render("vport · windowed list demo"))
	b.WriteString("\n")
	b.WriteString(m.list.View())
	b.WriteString("\n")
	b.WriteString(statusStyle.Render(m.statusLine()))
	b.WriteString("\n")
	if m.jumping {
		b.WriteString(promptStyle.Render(m.input.View()))
	} else {
		b.WriteString(statusStyle.Render("↑/↓ move · pgup/pgdn page · g/G ends · : jump · q quit"))
	}
	return b.String()
}

// statusLine summarizes position, extent and scroll progress.
func (m *DemoModel) statusLine() string {
	count := m.list.ItemCount()
	if count == 0 {
		return "empty list"
	}

	total := m.list.TotalRows()
	offset := m.list.ScrollOffset()
	viewport := float64(m.list.Height())

	percent := 100.0
	if total > viewport {
		percent = offset / (total - viewport) * 100
	}

	return fmt.Sprintf("item %s of %s · row %s of %s · %.0f%%",
		FormatCount(m.list.Selected()+1),
		FormatCount(count),
		FormatRows(offset),
		FormatRows(total),
		percent,
	)
}

// List exposes the underlying list model, used by the plain renderer and
// tests.
func (m *DemoModel) List() *listview.Model[Item] {
	return m.list
}
