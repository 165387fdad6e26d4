package listview

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rshade/vport/internal/engine"
)

// defaultOverscanRows is the number of extra items rendered above/below the
// viewport for smooth scrolling when no overscan is configured.
const defaultOverscanRows = 5

// measurePasses bounds the render/measure iterations per frame. A
// correction from measuring overscan items above the viewport can expose
// new items once, so two passes always converge.
const measurePasses = 2

// RenderFunc renders the item at a given index. The selected parameter
// indicates whether this item is currently selected. The returned string
// may span multiple lines; its line count is the item's measured height.
type RenderFunc[T any] func(item T, index int, selected bool) string

// Model implements virtual scrolling for large lists with variable item
// heights. Only the window the engine reports is rendered, so lists with
// 100,000+ items stay responsive. Item heights start at the engine's
// estimate and are measured from the rendered output as items scroll into
// view.
type Model[T any] struct {
	// items contains all list items.
	items []T

	// renderFunc renders a single item.
	renderFunc RenderFunc[T]

	// eng maps scroll offsets to index windows and absorbs measurements.
	eng *engine.Engine

	// opts rebuilds the engine when the item set is replaced.
	opts engine.Options

	// selected is the currently selected item index (0-based).
	selected int

	// scrollOffset is the viewport top edge in terminal rows.
	scrollOffset float64

	// height and width are the viewport dimensions.
	height int
	width  int

	// overscan widens the rendered window beyond the viewport.
	overscan engine.Overscan
}

// New creates a virtual list model over items.
// height and width are the viewport dimensions in terminal cells.
func New[T any](items []T, height, width int, renderFunc RenderFunc[T], opts engine.Options) *Model[T] {
	m := &Model[T]{
		items:      items,
		renderFunc: renderFunc,
		eng:        engine.New(len(items), opts),
		opts:       opts,
		height:     height,
		width:      width,
		overscan:   engine.Overscan{Rows: defaultOverscanRows},
	}
	return m
}

// SetOverscan replaces the default overscan.
func (m *Model[T]) SetOverscan(o engine.Overscan) {
	m.overscan = o
}

// Init implements tea.Model.
func (m *Model[T]) Init() tea.Cmd {
	return nil
}

// Update handles keyboard and resize messages.
func (m *Model[T]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.height = msg.Height
		m.width = msg.Width
		m.clampScroll()
	}
	return m, nil
}

// handleKey processes navigation input.
func (m *Model[T]) handleKey(msg tea.KeyMsg) {
	if len(m.items) == 0 {
		return
	}

	switch msg.Type {
	case tea.KeyUp:
		m.SetSelected(m.selected - 1)
	case tea.KeyDown:
		m.SetSelected(m.selected + 1)
	case tea.KeyPgUp:
		m.pageBy(-1)
	case tea.KeyPgDown:
		m.pageBy(1)
	case tea.KeyHome:
		m.SetSelected(0)
	case tea.KeyEnd:
		m.SetSelected(len(m.items) - 1)
	case tea.KeyRunes:
		if len(msg.Runes) == 0 {
			return
		}
		switch msg.Runes[0] {
		case 'j':
			m.SetSelected(m.selected + 1)
		case 'k':
			m.SetSelected(m.selected - 1)
		case 'g':
			m.SetSelected(0)
		case 'G':
			m.SetSelected(len(m.items) - 1)
		}
	default:
		// Other keys belong to the embedding model.
	}
}

// pageBy scrolls by one viewport in the given direction and moves the
// selection to the new topmost visible item.
func (m *Model[T]) pageBy(direction int) {
	m.scrollOffset += float64(direction * m.height)
	m.clampScroll()
	if top := m.eng.IndexAt(m.scrollOffset); top >= 0 {
		m.selected = top
	}
}

// clampScroll keeps the tracked offset inside the scrollable range.
func (m *Model[T]) clampScroll() {
	maxOffset := m.eng.TotalSize() - float64(m.height)
	if maxOffset < 0 {
		maxOffset = 0
	}
	if m.scrollOffset > maxOffset {
		m.scrollOffset = maxOffset
	}
	if m.scrollOffset < 0 {
		m.scrollOffset = 0
	}
}

// SetSelected moves the selection, clamped to valid bounds, and scrolls
// the minimum distance needed to reveal it.
func (m *Model[T]) SetSelected(index int) {
	if len(m.items) == 0 {
		m.selected = 0
		return
	}

	switch {
	case index < 0:
		m.selected = 0
	case index >= len(m.items):
		m.selected = len(m.items) - 1
	default:
		m.selected = index
	}

	m.ScrollToIndex(m.selected, engine.AlignAuto)
}

// ScrollToIndex computes and applies the scroll offset that brings index
// into view with the given alignment. Out-of-range indices are ignored.
func (m *Model[T]) ScrollToIndex(index int, alignment engine.Alignment) {
	target, err := m.eng.TargetOffset(index, alignment, m.scrollOffset, float64(m.height))
	if err != nil {
		return
	}
	m.scrollOffset = target
}

// SetItems replaces the item list wholesale. All measurements are
// discarded: item indices are not stable identities across a replacement,
// so every slot restarts estimated.
func (m *Model[T]) SetItems(items []T) {
	m.items = items
	m.eng = engine.New(len(items), m.opts)
	if m.selected >= len(items) {
		m.selected = len(items) - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
	m.clampScroll()
}

// InsertItemAt inserts item before index, shifting subsequent items up.
func (m *Model[T]) InsertItemAt(index int, item T) {
	if index < 0 || index > len(m.items) {
		return
	}
	m.items = append(m.items, item)
	copy(m.items[index+1:], m.items[index:])
	m.items[index] = item
	_ = m.eng.InsertAt(index)
}

// RemoveItemAt removes the item at index, shifting subsequent items down.
func (m *Model[T]) RemoveItemAt(index int) {
	if index < 0 || index >= len(m.items) {
		return
	}
	m.items = append(m.items[:index], m.items[index+1:]...)
	_ = m.eng.RemoveAt(index)
	if m.selected >= len(m.items) && m.selected > 0 {
		m.selected = len(m.items) - 1
	}
	m.clampScroll()
}

// View renders the visible window. Rendering doubles as the measurement
// source: each rendered item's line count is reported to the engine, and
// any resulting scroll correction is applied before the final assembly so
// measurements above the viewport never shift visible content.
func (m *Model[T]) View() string {
	if len(m.items) == 0 || m.height <= 0 {
		return ""
	}

	w := m.eng.Window(m.scrollOffset, float64(m.height), m.overscan)
	if w.IsEmpty() {
		return ""
	}

	rendered := make(map[int][]string, w.Len())
	for pass := 0; pass < measurePasses; pass++ {
		for i := w.Start; i <= w.End; i++ {
			if _, ok := rendered[i]; ok {
				continue
			}
			lines := strings.Split(m.renderFunc(m.items[i], i, i == m.selected), "\n")
			rendered[i] = lines

			anchor := m.eng.IndexAt(m.scrollOffset)
			m.scrollOffset += m.eng.Measure(i, float64(len(lines)), anchor, m.scrollOffset)
		}

		next := m.eng.Window(m.scrollOffset, float64(m.height), m.overscan)
		if next == w {
			break
		}
		w = next
	}

	// Assemble the window's lines and cut the viewport slice out of them.
	all := make([]string, 0, w.Len())
	for i := w.Start; i <= w.End; i++ {
		all = append(all, rendered[i]...)
	}

	windowTop, err := m.eng.OffsetOf(w.Start)
	if err != nil {
		return ""
	}
	skip := int(m.scrollOffset) - int(windowTop)
	if skip < 0 {
		skip = 0
	}
	if skip > len(all) {
		skip = len(all)
	}
	end := skip + m.height
	if end > len(all) {
		end = len(all)
	}
	return strings.Join(all[skip:end], "\n")
}

// ItemCount returns the total number of items.
func (m *Model[T]) ItemCount() int {
	return len(m.items)
}

// Selected returns the currently selected item index.
func (m *Model[T]) Selected() int {
	return m.selected
}

// SelectedItem returns the currently selected item, or nil if the list is
// empty.
func (m *Model[T]) SelectedItem() *T {
	if len(m.items) == 0 || m.selected < 0 || m.selected >= len(m.items) {
		return nil
	}
	return &m.items[m.selected]
}

// ScrollOffset returns the viewport top edge in rows.
func (m *Model[T]) ScrollOffset() float64 {
	return m.scrollOffset
}

// Window returns the index range the engine currently reports for the
// viewport, without overscan.
func (m *Model[T]) Window() engine.Window {
	return m.eng.Window(m.scrollOffset, float64(m.height), engine.Overscan{})
}

// TotalRows returns the engine's current scrollable extent in rows.
func (m *Model[T]) TotalRows() float64 {
	return m.eng.TotalSize()
}

// Height returns the viewport height.
func (m *Model[T]) Height() int {
	return m.height
}

// Width returns the viewport width.
func (m *Model[T]) Width() int {
	return m.width
}
