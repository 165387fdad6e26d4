package listview_test

import (
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/vport/internal/engine"
	listview "github.com/rshade/vport/internal/tui/list"
)

// plainRender renders one line per item.
func plainRender(item string, _ int, selected bool) string {
	if selected {
		return "> " + item
	}
	return "  " + item
}

func newTestModel(n, height int) *listview.Model[string] {
	items := make([]string, n)
	for i := range items {
		items[i] = fmt.Sprintf("item-%04d", i)
	}
	return listview.New(items, height, 80, plainRender, engine.Options{DefaultEstimate: 1})
}

// TestModel_New tests initialization.
func TestModel_New(t *testing.T) {
	m := newTestModel(5, 20)

	assert.Equal(t, 5, m.ItemCount())
	assert.Equal(t, 20, m.Height())
	assert.Equal(t, 80, m.Width())
	assert.Equal(t, 0, m.Selected())
	assert.Zero(t, m.ScrollOffset())
	require.NotNil(t, m.SelectedItem())
	assert.Equal(t, "item-0000", *m.SelectedItem())
}

// TestModel_ViewRendersOnlyViewport tests that View emits exactly the
// viewport rows, not the whole list.
func TestModel_ViewRendersOnlyViewport(t *testing.T) {
	m := newTestModel(10_000, 10)

	view := m.View()
	lines := strings.Split(view, "\n")
	assert.Len(t, lines, 10)
	assert.Contains(t, lines[0], "item-0000")
	assert.Contains(t, lines[0], ">", "first item starts selected")
	assert.Contains(t, lines[9], "item-0009")
}

// TestModel_KeyboardNavigation tests selection movement and scroll
// follow-through.
func TestModel_KeyboardNavigation(t *testing.T) {
	m := newTestModel(100, 10)

	press := func(k tea.KeyMsg) {
		updated, _ := m.Update(k)
		m = updated.(*listview.Model[string])
	}

	press(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, m.Selected())
	assert.Zero(t, m.ScrollOffset(), "no scroll while selection is visible")

	// Vim keys.
	press(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	assert.Equal(t, 2, m.Selected())
	press(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}})
	assert.Equal(t, 1, m.Selected())

	// End jumps to the last item and scrolls it into view.
	press(tea.KeyMsg{Type: tea.KeyEnd})
	assert.Equal(t, 99, m.Selected())
	assert.InDelta(t, 90, m.ScrollOffset(), 1e-9, "last viewport page")

	press(tea.KeyMsg{Type: tea.KeyHome})
	assert.Equal(t, 0, m.Selected())
	assert.Zero(t, m.ScrollOffset())

	// Selection stops at the edges.
	press(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, m.Selected())
}

// TestModel_PageNavigation tests pgup/pgdn viewport paging.
func TestModel_PageNavigation(t *testing.T) {
	m := newTestModel(100, 10)

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyPgDown})
	m = updated.(*listview.Model[string])
	assert.InDelta(t, 10, m.ScrollOffset(), 1e-9)
	assert.Equal(t, 10, m.Selected(), "selection follows to the new top")

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyPgUp})
	m = updated.(*listview.Model[string])
	assert.Zero(t, m.ScrollOffset())
	assert.Equal(t, 0, m.Selected())
}

// TestModel_VariableHeights tests that multi-line items are measured at
// render time and the viewport slice stays exact.
func TestModel_VariableHeights(t *testing.T) {
	render := func(item string, index int, _ bool) string {
		if index%3 == 0 {
			return item + "\n  detail line"
		}
		return item
	}
	items := make([]string, 50)
	for i := range items {
		items[i] = fmt.Sprintf("row-%02d", i)
	}
	m := listview.New(items, 8, 80, render, engine.Options{DefaultEstimate: 1})

	view := m.View()
	lines := strings.Split(view, "\n")
	require.Len(t, lines, 8)
	assert.Equal(t, "row-00", lines[0])
	assert.Equal(t, "  detail line", lines[1])
	assert.Equal(t, "row-01", lines[2])

	// After the measurement pass the engine knows the real extent:
	// ceil(50/3) = 17 two-line items in a 50-item list... only windowed
	// items are measured, so the total grows as the user scrolls.
	assert.Greater(t, m.TotalRows(), 50.0)
}

// TestModel_NoJumpOnOverscanMeasurement tests anchor preservation end to
// end: scrolling into a region whose overscan items above measure taller
// must not change the rendered content.
func TestModel_NoJumpOnOverscanMeasurement(t *testing.T) {
	render := func(item string, index int, _ bool) string {
		if index < 20 {
			return item + "\nsecond\nthird"
		}
		return item
	}
	items := make([]string, 200)
	for i := range items {
		items[i] = fmt.Sprintf("row-%03d", i)
	}
	m := listview.New(items, 10, 80, render, engine.Options{DefaultEstimate: 1})

	// Jump to row 15 before anything is measured: the overscan rows above
	// it (10..14) are all three lines tall but still estimated at one.
	m.ScrollToIndex(15, engine.AlignStart)
	require.InDelta(t, 15, m.ScrollOffset(), 1e-9)

	first := m.View()
	topBefore := strings.Split(first, "\n")[0]
	assert.Contains(t, topBefore, "row-015")

	// Measuring rows 10..14 grew each by two lines; the offset must have
	// been corrected by the accumulated delta so row 15 stayed on top.
	assert.InDelta(t, 25, m.ScrollOffset(), 1e-9)

	second := m.View()
	topAfter := strings.Split(second, "\n")[0]
	assert.Equal(t, topBefore, topAfter, "view content must not jump")
}

// TestModel_SetItems tests wholesale replacement resets measurements and
// clamps selection.
func TestModel_SetItems(t *testing.T) {
	m := newTestModel(100, 10)
	m.SetSelected(99)

	m.SetItems([]string{"a", "b", "c"})
	assert.Equal(t, 3, m.ItemCount())
	assert.Equal(t, 2, m.Selected())
	assert.InDelta(t, 3, m.TotalRows(), 1e-9, "measurements discarded")
	assert.Zero(t, m.ScrollOffset())

	m.SetItems(nil)
	assert.Zero(t, m.ItemCount())
	assert.Empty(t, m.View())
	assert.Nil(t, m.SelectedItem())
}

// TestModel_InsertRemove tests structural changes through the list.
func TestModel_InsertRemove(t *testing.T) {
	m := newTestModel(5, 10)

	m.InsertItemAt(2, "inserted")
	assert.Equal(t, 6, m.ItemCount())
	view := m.View()
	assert.Contains(t, view, "inserted")
	assert.Contains(t, view, "item-0002")

	m.RemoveItemAt(2)
	assert.Equal(t, 5, m.ItemCount())
	assert.NotContains(t, m.View(), "inserted")
}

// TestModel_WindowSizeMsg tests viewport resizing.
func TestModel_WindowSizeMsg(t *testing.T) {
	m := newTestModel(100, 10)
	m.ScrollToIndex(99, engine.AlignEnd)
	require.InDelta(t, 90, m.ScrollOffset(), 1e-9)

	// Growing the viewport clamps the offset back.
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 60, Height: 50})
	m = updated.(*listview.Model[string])
	assert.Equal(t, 50, m.Height())
	assert.Equal(t, 60, m.Width())
	assert.InDelta(t, 50, m.ScrollOffset(), 1e-9)
	assert.Len(t, strings.Split(m.View(), "\n"), 50)
}
