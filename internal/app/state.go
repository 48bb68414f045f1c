// Package app provides application state, events, and development helpers.
package app

import (
	"sync"

	"sprite-grid/internal/grid"
	"sprite-grid/internal/sheet"
)

// EventType identifies application events.
type EventType int

const (
	EventSheetLoaded EventType = iota
	EventGridChanged
	EventSelectionChanged
	EventLabelsToggled
)

// EventListener is called when an event occurs.
type EventListener func(data interface{})

// State holds the loaded sheet, the grid configuration, and the current
// tile selection. The canvas reads the selection for rendering but never
// writes it; selection changes arrive here via SelectTile.
type State struct {
	mu sync.RWMutex

	sheet      *sheet.Sheet
	gridCfg    grid.Config
	showLabels bool
	selected   *grid.Tile

	listeners map[EventType][]EventListener
}

// NewState creates application state with default grid settings.
func NewState() *State {
	return &State{
		gridCfg:   grid.Config{Mode: grid.ModeSize, X: 32, Y: 32},
		listeners: make(map[EventType][]EventListener),
	}
}

// On registers an event listener for the specified event type.
func (s *State) On(event EventType, listener EventListener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners[event] = append(s.listeners[event], listener)
}

// Emit triggers all listeners for the specified event type.
func (s *State) Emit(event EventType, data interface{}) {
	s.mu.RLock()
	listeners := s.listeners[event]
	s.mu.RUnlock()

	for _, listener := range listeners {
		listener(data)
	}
}

// SetSheet replaces the loaded sheet. The selection is cleared because tile
// references from the previous sheet are meaningless against the new one.
func (s *State) SetSheet(sh *sheet.Sheet) {
	s.mu.Lock()
	s.sheet = sh
	s.selected = nil
	s.mu.Unlock()
	s.Emit(EventSheetLoaded, sh)
}

// Sheet returns the loaded sheet, or nil.
func (s *State) Sheet() *sheet.Sheet {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sheet
}

// SetGrid applies a new grid configuration. Values are clamped to >= 1 here
// so degenerate sizes and counts never reach the geometry computation.
// The selection is left untouched even if it falls outside the new layout.
func (s *State) SetGrid(cfg grid.Config) {
	if cfg.X < 1 {
		cfg.X = 1
	}
	if cfg.Y < 1 {
		cfg.Y = 1
	}
	s.mu.Lock()
	s.gridCfg = cfg
	s.mu.Unlock()
	s.Emit(EventGridChanged, cfg)
}

// Grid returns the current grid configuration.
func (s *State) Grid() grid.Config {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.gridCfg
}

// Geometry returns the tile layout for the current sheet and configuration.
func (s *State) Geometry() grid.Geometry {
	s.mu.RLock()
	sh := s.sheet
	cfg := s.gridCfg
	s.mu.RUnlock()
	return grid.Compute(sh.Width(), sh.Height(), cfg)
}

// SetShowLabels toggles the index label overlay.
func (s *State) SetShowLabels(show bool) {
	s.mu.Lock()
	s.showLabels = show
	s.mu.Unlock()
	s.Emit(EventLabelsToggled, show)
}

// ShowLabels reports whether index labels are enabled.
func (s *State) ShowLabels() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.showLabels
}

// SelectTile records a tile selection and notifies listeners.
func (s *State) SelectTile(t grid.Tile) {
	s.mu.Lock()
	s.selected = &t
	s.mu.Unlock()
	s.Emit(EventSelectionChanged, t)
}

// ClearSelection removes the current selection.
func (s *State) ClearSelection() {
	s.mu.Lock()
	s.selected = nil
	s.mu.Unlock()
	s.Emit(EventSelectionChanged, nil)
}

// Selected returns a copy of the selected tile, or nil.
func (s *State) Selected() *grid.Tile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.selected == nil {
		return nil
	}
	t := *s.selected
	return &t
}
