package app

import (
	"image"
	"testing"

	"github.com/stretchr/testify/require"

	"sprite-grid/internal/grid"
	"sprite-grid/internal/sheet"
)

func newTestSheet(w, h int) *sheet.Sheet {
	return &sheet.Sheet{Path: "test.png", Image: image.NewRGBA(image.Rect(0, 0, w, h))}
}

func TestSetGridClampsToOne(t *testing.T) {
	s := NewState()
	s.SetGrid(grid.Config{Mode: grid.ModeSize, X: 0, Y: -5})

	cfg := s.Grid()
	require.Equal(t, 1, cfg.X)
	require.Equal(t, 1, cfg.Y)
}

// TestSelectionSurvivesGridChange selects a tile in a 16-column layout and
// then coarsens the grid. The stored selection keeps its original index and
// row/col untouched.
func TestSelectionSurvivesGridChange(t *testing.T) {
	s := NewState()
	s.SetSheet(newTestSheet(256, 256))
	s.SetGrid(grid.Config{Mode: grid.ModeCount, X: 16, Y: 16})

	s.SelectTile(grid.Tile{Index: 1, Row: 0, Col: 1})
	s.SetGrid(grid.Config{Mode: grid.ModeSize, X: 32, Y: 32})

	sel := s.Selected()
	require.NotNil(t, sel)
	require.Equal(t, grid.Tile{Index: 1, Row: 0, Col: 1}, *sel)
}

func TestSetSheetClearsSelection(t *testing.T) {
	s := NewState()
	s.SetSheet(newTestSheet(64, 64))
	s.SelectTile(grid.Tile{Index: 3, Row: 1, Col: 1})
	require.NotNil(t, s.Selected())

	s.SetSheet(newTestSheet(128, 128))
	require.Nil(t, s.Selected())
}

func TestGeometryFollowsSheetAndGrid(t *testing.T) {
	s := NewState()
	s.SetSheet(newTestSheet(256, 256))
	s.SetGrid(grid.Config{Mode: grid.ModeCount, X: 16, Y: 16})

	g := s.Geometry()
	require.Equal(t, 16, g.Cols)
	require.Equal(t, 16, g.Rows)
	require.Equal(t, 16.0, g.CellWidth)
	require.Equal(t, 256, g.Tiles())
}

func TestEventsFire(t *testing.T) {
	s := NewState()

	var events []EventType
	for _, e := range []EventType{EventSheetLoaded, EventGridChanged, EventSelectionChanged, EventLabelsToggled} {
		event := e
		s.On(event, func(interface{}) { events = append(events, event) })
	}

	s.SetSheet(newTestSheet(32, 32))
	s.SetGrid(grid.Config{Mode: grid.ModeSize, X: 8, Y: 8})
	s.SelectTile(grid.Tile{Index: 0})
	s.ClearSelection()
	s.SetShowLabels(true)

	require.Equal(t, []EventType{
		EventSheetLoaded,
		EventGridChanged,
		EventSelectionChanged,
		EventSelectionChanged,
		EventLabelsToggled,
	}, events)
}

// Selected returns a copy; mutating it must not leak back into state.
func TestSelectedReturnsCopy(t *testing.T) {
	s := NewState()
	s.SelectTile(grid.Tile{Index: 5, Row: 1, Col: 1})

	first := s.Selected()
	first.Index = 99

	second := s.Selected()
	require.Equal(t, 5, second.Index)
}
