package canvas

import (
	"bytes"
	"image"
	"image/color"
	"testing"

	"sprite-grid/internal/grid"
	"sprite-grid/internal/viewport"
	"sprite-grid/pkg/colorutil"
)

func testSheetImage(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, color.RGBA{R: uint8(x * 4), G: uint8(y * 4), B: 128, A: 255})
		}
	}
	return img
}

func testFrame() Frame {
	return Frame{
		Image: testSheetImage(64, 64),
		View:  viewport.New(),
		Grid:  grid.Compute(64, 64, grid.Config{Mode: grid.ModeSize, X: 32, Y: 32}),
	}
}

// TestRenderIsIdempotent renders the same frame twice and compares pixels
// byte for byte.
func TestRenderIsIdempotent(t *testing.T) {
	f := testFrame()
	f.Selected = &grid.Tile{Index: 3, Row: 1, Col: 1}
	f.Hovered = &grid.Tile{Index: 0, Row: 0, Col: 0}
	f.ShowLabels = true

	first := f.Render(200, 200)
	second := f.Render(200, 200)
	if !bytes.Equal(first.Pix, second.Pix) {
		t.Error("two renders of the same frame differ")
	}
}

func TestRenderNilImageIsBackgroundOnly(t *testing.T) {
	f := Frame{View: viewport.New()}
	out := f.Render(50, 40)

	for _, p := range []image.Point{{0, 0}, {25, 20}, {49, 39}} {
		if got := out.RGBAAt(p.X, p.Y); got != colorutil.Background {
			t.Errorf("pixel %v = %v, want background", p, got)
		}
	}
}

// TestRenderStaleSelection draws a selection that lies beyond the current
// layout. It must render its rectangle without panicking.
func TestRenderStaleSelection(t *testing.T) {
	f := testFrame()
	f.Selected = &grid.Tile{Index: 99, Row: 9, Col: 9}
	f.ShowLabels = true

	out := f.Render(200, 200)
	if out == nil {
		t.Fatal("Render returned nil")
	}
}

// TestRenderHoverSuppressedWhilePanning checks that a hovered tile produces
// no highlight during a pan gesture.
func TestRenderHoverSuppressedWhilePanning(t *testing.T) {
	hover := &grid.Tile{Index: 0, Row: 0, Col: 0}

	base := testFrame()
	base.Panning = true

	withHover := base
	withHover.Hovered = hover

	if !bytes.Equal(base.Render(100, 100).Pix, withHover.Render(100, 100).Pix) {
		t.Error("hover highlight drawn while panning")
	}

	withHover.Panning = false
	base.Panning = false
	if bytes.Equal(base.Render(100, 100).Pix, withHover.Render(100, 100).Pix) {
		t.Error("hover highlight missing when not panning")
	}
}

func TestRenderLabelsChangePixels(t *testing.T) {
	plain := testFrame()
	labeled := testFrame()
	labeled.ShowLabels = true

	if bytes.Equal(plain.Render(200, 200).Pix, labeled.Render(200, 200).Pix) {
		t.Error("enabling labels did not change the output")
	}
}

// TestRenderSelectionOutline checks the selection border color at a corner
// of the selected cell. The outline is drawn after the grid lines, so it
// wins where they overlap.
func TestRenderSelectionOutline(t *testing.T) {
	f := testFrame()
	f.Selected = &grid.Tile{Index: 0, Row: 0, Col: 0}

	out := f.Render(100, 100)
	if got := out.RGBAAt(0, 0); got != colorutil.SelectOutline {
		t.Errorf("outline corner = %v, want %v", got, colorutil.SelectOutline)
	}
	if got := out.RGBAAt(31, 0); got != colorutil.SelectOutline {
		t.Errorf("outline top edge = %v, want %v", got, colorutil.SelectOutline)
	}
}

// TestRenderBackgroundOutsideFootprint verifies the area the sheet does not
// cover keeps the background color.
func TestRenderBackgroundOutsideFootprint(t *testing.T) {
	f := testFrame()
	f.View = viewport.Transform{Scale: 1, OffsetX: 10, OffsetY: 10}

	out := f.Render(100, 100)
	if got := out.RGBAAt(0, 0); got != colorutil.Background {
		t.Errorf("corner = %v, want background", got)
	}
	if got := out.RGBAAt(99, 99); got != colorutil.Background {
		t.Errorf("far corner = %v, want background", got)
	}
}
