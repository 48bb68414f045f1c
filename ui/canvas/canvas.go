// Package canvas provides the sprite sheet viewing widget: pan, zoom,
// grid overlay, and tile picking.
package canvas

import (
	"image"

	"fyne.io/fyne/v2"
	fynecanvas "fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"sprite-grid/internal/grid"
	"sprite-grid/internal/sheet"
	"sprite-grid/internal/viewport"
)

// Zoom steps and reset margin. Wheel ticks use a smaller step than the
// toolbar buttons; the button pair is asymmetric on purpose.
const (
	WheelZoomIn  = 1.1
	WheelZoomOut = 0.9

	ButtonZoomIn  = 1.25
	ButtonZoomOut = 0.8

	FitPadding = 32.0
)

// GridCanvas displays a sprite sheet with a grid overlay and translates
// pointer input into viewport changes and tile selections.
//
// Gestures: wheel zooms at the pointer, secondary button (or primary with
// Ctrl) drags pan, a plain primary click picks the tile under the pointer.
type GridCanvas struct {
	widget.BaseWidget

	sheet *sheet.Sheet
	cfg   grid.Config
	geom  grid.Geometry
	view  viewport.Transform

	hovered    *grid.Tile
	selected   *grid.Tile
	showLabels bool

	// Pan gesture state
	panning     bool
	lastPan     fyne.Position
	suppressTap bool

	pendingFit bool

	raster *fynecanvas.Raster
	// Raster pixel size from the last draw; used to map event positions
	// (points) to surface pixels on high-DPI displays.
	pixelW, pixelH int

	onTileSelected func(grid.Tile)
	onViewChanged  func()
	onHoverChanged func(*grid.Tile)
}

var (
	_ fyne.Tappable     = (*GridCanvas)(nil)
	_ fyne.Scrollable   = (*GridCanvas)(nil)
	_ desktop.Mouseable = (*GridCanvas)(nil)
	_ desktop.Hoverable = (*GridCanvas)(nil)
)

// NewGridCanvas creates an empty sheet canvas.
func NewGridCanvas() *GridCanvas {
	gc := &GridCanvas{
		cfg:  grid.Config{Mode: grid.ModeSize, X: 32, Y: 32},
		view: viewport.New(),
	}

	gc.raster = fynecanvas.NewRaster(gc.draw)
	gc.raster.ScaleMode = fynecanvas.ImageScalePixels
	gc.raster.SetMinSize(fyne.NewSize(320, 240))

	gc.ExtendBaseWidget(gc)
	return gc
}

// CreateRenderer implements fyne.Widget.
func (gc *GridCanvas) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(gc.raster)
}

// SetSheet replaces the displayed sheet and resets the view. Hover state is
// cleared; the selection is owned by the caller and only read back via
// SetSelected.
func (gc *GridCanvas) SetSheet(sh *sheet.Sheet) {
	gc.sheet = sh
	gc.hovered = nil
	gc.panning = false
	gc.geom = grid.Compute(sh.Width(), sh.Height(), gc.cfg)
	gc.pendingFit = true
	gc.Refresh()
}

// Sheet returns the displayed sheet, or nil.
func (gc *GridCanvas) Sheet() *sheet.Sheet {
	return gc.sheet
}

// SetGridConfig re-derives the tile layout. The viewport persists across
// grid changes.
func (gc *GridCanvas) SetGridConfig(cfg grid.Config) {
	gc.cfg = cfg
	gc.geom = grid.Compute(gc.sheet.Width(), gc.sheet.Height(), cfg)
	gc.Refresh()
}

// Geometry returns the current tile layout.
func (gc *GridCanvas) Geometry() grid.Geometry {
	return gc.geom
}

// SetSelected sets the externally-owned selection shown by the render pass.
// Pass nil to clear.
func (gc *GridCanvas) SetSelected(t *grid.Tile) {
	if t == nil {
		gc.selected = nil
	} else {
		tile := *t
		gc.selected = &tile
	}
	gc.Refresh()
}

// SetShowLabels toggles the per-cell index labels.
func (gc *GridCanvas) SetShowLabels(show bool) {
	gc.showLabels = show
	gc.Refresh()
}

// Hovered returns the tile currently under the pointer, or nil.
func (gc *GridCanvas) Hovered() *grid.Tile {
	return gc.hovered
}

// Zoom returns the current scale factor.
func (gc *GridCanvas) Zoom() float64 {
	return gc.view.Scale
}

// View returns a copy of the current viewport transform.
func (gc *GridCanvas) View() viewport.Transform {
	return gc.view
}

// ZoomIn zooms by the button step, anchored at the surface center.
func (gc *GridCanvas) ZoomIn() {
	gc.zoomAtCenter(ButtonZoomIn)
}

// ZoomOut zooms out by the button step, anchored at the surface center.
func (gc *GridCanvas) ZoomOut() {
	gc.zoomAtCenter(ButtonZoomOut)
}

// ResetView refits the sheet to the surface (the canonical reset).
func (gc *GridCanvas) ResetView() {
	gc.pendingFit = true
	gc.Refresh()
	gc.notifyViewChanged()
}

// ActualSize shows the sheet at 100%, centered.
func (gc *GridCanvas) ActualSize() {
	gc.view.Scale = 1
	gc.view.OffsetX = (float64(gc.pixelW) - float64(gc.sheet.Width())) / 2
	gc.view.OffsetY = (float64(gc.pixelH) - float64(gc.sheet.Height())) / 2
	gc.Refresh()
	gc.notifyViewChanged()
}

// OnTileSelected sets the callback fired when a primary click lands on a
// tile. Misses fire nothing.
func (gc *GridCanvas) OnTileSelected(callback func(grid.Tile)) {
	gc.onTileSelected = callback
}

// OnViewChanged sets the callback fired after zoom or reset operations.
func (gc *GridCanvas) OnViewChanged(callback func()) {
	gc.onViewChanged = callback
}

// OnHoverChanged sets the callback fired when the hovered tile changes.
func (gc *GridCanvas) OnHoverChanged(callback func(*grid.Tile)) {
	gc.onHoverChanged = callback
}

// Refresh redraws the canvas.
func (gc *GridCanvas) Refresh() {
	gc.raster.Refresh()
	gc.BaseWidget.Refresh()
}

// Scrolled zooms at the pointer position, one fixed step per wheel tick.
func (gc *GridCanvas) Scrolled(ev *fyne.ScrollEvent) {
	factor := WheelZoomOut
	if ev.Scrolled.DY > 0 {
		factor = WheelZoomIn
	}
	sx, sy := gc.screenPos(ev.Position)
	gc.view.ZoomAt(sx, sy, factor)
	gc.Refresh()
	gc.notifyViewChanged()
}

// MouseDown starts a pan on the secondary button, or on the primary button
// with Ctrl held.
func (gc *GridCanvas) MouseDown(ev *desktop.MouseEvent) {
	if ev.Button == desktop.MouseButtonSecondary ||
		(ev.Button == desktop.MouseButtonPrimary && ev.Modifier&fyne.KeyModifierControl != 0) {
		gc.panning = true
		gc.lastPan = ev.Position
		gc.Refresh()
	}
}

// MouseUp ends a pan gesture. A release with no movement in between is
// still a pan termination, never a click; the Tapped that follows a
// primary-button pan release is swallowed.
func (gc *GridCanvas) MouseUp(ev *desktop.MouseEvent) {
	if !gc.panning {
		return
	}
	gc.panning = false
	if ev.Button == desktop.MouseButtonPrimary {
		gc.suppressTap = true
	}
	gc.Refresh()
}

// MouseIn implements desktop.Hoverable.
func (gc *GridCanvas) MouseIn(ev *desktop.MouseEvent) {
	gc.updateHover(ev.Position)
}

// MouseMoved pans while a pan gesture is active, otherwise tracks hover.
// Hover is not updated during a pan.
func (gc *GridCanvas) MouseMoved(ev *desktop.MouseEvent) {
	if gc.panning {
		f := gc.pixelRatio()
		gc.view.PanBy(float64(ev.Position.X-gc.lastPan.X)*f, float64(ev.Position.Y-gc.lastPan.Y)*f)
		gc.lastPan = ev.Position
		gc.Refresh()
		return
	}
	gc.updateHover(ev.Position)
}

// MouseOut cancels any pan in progress and clears hover.
func (gc *GridCanvas) MouseOut() {
	gc.panning = false
	if gc.hovered != nil {
		gc.hovered = nil
		gc.Refresh()
		gc.notifyHoverChanged()
	}
}

// Tapped hit-tests a primary click and reports the tile, if any.
func (gc *GridCanvas) Tapped(ev *fyne.PointEvent) {
	if gc.suppressTap {
		gc.suppressTap = false
		return
	}
	if gc.panning || gc.sheet == nil {
		return
	}

	sx, sy := gc.screenPos(ev.Position)
	if t, ok := grid.Locate(sx, sy, gc.view, gc.geom, gc.sheet.Width(), gc.sheet.Height()); ok {
		if gc.onTileSelected != nil {
			gc.onTileSelected(t)
		}
	}
}

// draw is the raster drawing function. It runs on every refresh and fully
// repaints from current state.
func (gc *GridCanvas) draw(w, h int) image.Image {
	gc.pixelW, gc.pixelH = w, h

	if gc.pendingFit && w > 0 && h > 0 && gc.sheet != nil {
		gc.pendingFit = false
		gc.view.FitTo(float64(w), float64(h),
			float64(gc.sheet.Width()), float64(gc.sheet.Height()), FitPadding)
		gc.notifyViewChanged()
	}

	frame := Frame{
		View:       gc.view,
		Grid:       gc.geom,
		Hovered:    gc.hovered,
		Selected:   gc.selected,
		Panning:    gc.panning,
		ShowLabels: gc.showLabels,
	}
	if gc.sheet != nil {
		frame.Image = gc.sheet.Image
	}
	return frame.Render(w, h)
}

func (gc *GridCanvas) updateHover(pos fyne.Position) {
	if gc.sheet == nil {
		return
	}
	sx, sy := gc.screenPos(pos)
	t, ok := grid.Locate(sx, sy, gc.view, gc.geom, gc.sheet.Width(), gc.sheet.Height())

	switch {
	case !ok && gc.hovered == nil:
		return
	case ok && gc.hovered != nil && gc.hovered.Index == t.Index:
		return
	}

	if ok {
		gc.hovered = &t
	} else {
		gc.hovered = nil
	}
	gc.Refresh()
	gc.notifyHoverChanged()
}

func (gc *GridCanvas) zoomAtCenter(factor float64) {
	gc.view.ZoomAtCenter(float64(gc.pixelW), float64(gc.pixelH), factor)
	gc.Refresh()
	gc.notifyViewChanged()
}

// pixelRatio maps widget points to raster pixels. The two differ on
// high-DPI displays.
func (gc *GridCanvas) pixelRatio() float64 {
	size := gc.Size()
	if gc.pixelW > 0 && size.Width > 0 {
		return float64(gc.pixelW) / float64(size.Width)
	}
	return 1
}

func (gc *GridCanvas) screenPos(pos fyne.Position) (float64, float64) {
	f := gc.pixelRatio()
	return float64(pos.X) * f, float64(pos.Y) * f
}

func (gc *GridCanvas) notifyViewChanged() {
	if gc.onViewChanged != nil {
		gc.onViewChanged()
	}
}

func (gc *GridCanvas) notifyHoverChanged() {
	if gc.onHoverChanged != nil {
		gc.onHoverChanged(gc.hovered)
	}
}
