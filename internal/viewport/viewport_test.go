package viewport

import (
	"testing"

	"gonum.org/v1/gonum/floats/scalar"

	"sprite-grid/pkg/geometry"
)

const tol = 1e-9

// TestRoundTrip verifies ToScreen is the exact inverse of ToImage across a
// spread of transforms and points.
func TestRoundTrip(t *testing.T) {
	transforms := []Transform{
		New(),
		{Scale: 2.5, OffsetX: 100, OffsetY: -40},
		{Scale: 0.1, OffsetX: -3.25, OffsetY: 7.5},
		{Scale: 10, OffsetX: 0.001, OffsetY: 99999},
	}
	points := [][2]float64{{0, 0}, {1, 1}, {-50, 300}, {123.456, -789.01}}

	for _, tr := range transforms {
		for _, p := range points {
			ix, iy := tr.ToImage(p[0], p[1])
			sx, sy := tr.ToScreen(ix, iy)
			if !scalar.EqualWithinAbs(sx, p[0], tol) || !scalar.EqualWithinAbs(sy, p[1], tol) {
				t.Errorf("round trip %+v through %+v = (%v, %v)", p, tr, sx, sy)
			}
		}
	}
}

// TestZoomAtAnchorsPointer checks the pointer-anchor property: the image
// point under the pointer before a zoom is still under it afterwards,
// including when the scale clamps at a bound.
func TestZoomAtAnchorsPointer(t *testing.T) {
	tests := []struct {
		name      string
		start     Transform
		px, py    float64
		factor    float64
		wantScale float64
	}{
		{"zoom in", Transform{Scale: 1, OffsetX: 20, OffsetY: 30}, 400, 300, 1.25, 1.25},
		{"zoom out", Transform{Scale: 2, OffsetX: -100, OffsetY: 50}, 10, 10, 0.8, 1.6},
		{"clamped at max", Transform{Scale: 8, OffsetX: 5, OffsetY: 5}, 200, 100, 2, 10},
		{"clamped at min", Transform{Scale: 0.12, OffsetX: 0, OffsetY: 0}, 640, 480, 0.5, 0.1},
		{"pinned at max", Transform{Scale: 10, OffsetX: 33, OffsetY: -7}, 100, 100, 1.5, 10},
		{"pinned at min", Transform{Scale: 0.1, OffsetX: 1, OffsetY: 2}, 50, 60, 0.5, 0.1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			anchorX, anchorY := tt.start.ToImage(tt.px, tt.py)

			tr := tt.start
			tr.ZoomAt(tt.px, tt.py, tt.factor)

			if !scalar.EqualWithinAbs(tr.Scale, tt.wantScale, tol) {
				t.Fatalf("scale = %v, want %v", tr.Scale, tt.wantScale)
			}

			sx, sy := tr.ToScreen(anchorX, anchorY)
			if !scalar.EqualWithinAbs(sx, tt.px, tol) || !scalar.EqualWithinAbs(sy, tt.py, tol) {
				t.Errorf("anchor moved to (%v, %v), want (%v, %v)", sx, sy, tt.px, tt.py)
			}
		})
	}
}

// TestZoomAtBoundIsNoOp verifies that a zoom request past an already-pinned
// bound leaves the offsets untouched, not just the scale.
func TestZoomAtBoundIsNoOp(t *testing.T) {
	tr := Transform{Scale: MaxScale, OffsetX: 123.5, OffsetY: -44.25}
	tr.ZoomAt(300, 200, 3)

	if tr.Scale != MaxScale {
		t.Fatalf("scale = %v, want %v", tr.Scale, MaxScale)
	}
	if !scalar.EqualWithinAbs(tr.OffsetX, 123.5, tol) || !scalar.EqualWithinAbs(tr.OffsetY, -44.25, tol) {
		t.Errorf("offsets = (%v, %v), want (123.5, -44.25)", tr.OffsetX, tr.OffsetY)
	}
}

// TestZoomAtCenter reproduces the discrete zoom-in button: 800x600 surface
// from scale 1 anchors at (400, 300).
func TestZoomAtCenter(t *testing.T) {
	tr := New()
	tr.ZoomAtCenter(800, 600, 1.25)

	if !scalar.EqualWithinAbs(tr.Scale, 1.25, tol) {
		t.Fatalf("scale = %v, want 1.25", tr.Scale)
	}
	if !scalar.EqualWithinAbs(tr.OffsetX, -100, tol) || !scalar.EqualWithinAbs(tr.OffsetY, -75, tol) {
		t.Errorf("offsets = (%v, %v), want (-100, -75)", tr.OffsetX, tr.OffsetY)
	}
}

func TestPanByIsUnbounded(t *testing.T) {
	tr := New()
	tr.PanBy(-100000, 50000)
	tr.PanBy(-0.5, 0.25)

	if !scalar.EqualWithinAbs(tr.OffsetX, -100000.5, tol) || !scalar.EqualWithinAbs(tr.OffsetY, 50000.25, tol) {
		t.Errorf("offsets = (%v, %v)", tr.OffsetX, tr.OffsetY)
	}
}

// TestFitTo covers the reset: fit within padding, center, never upscale.
func TestFitTo(t *testing.T) {
	tests := []struct {
		name             string
		cw, ch, iw, ih   float64
		padding          float64
		wantScale        float64
		wantOffX, wantOffY float64
	}{
		{
			name: "small image stays at 100%",
			cw:   800, ch: 600, iw: 256, ih: 256, padding: 32,
			wantScale: 1, wantOffX: 272, wantOffY: 172,
		},
		{
			name: "large image scales down to fit",
			cw:   800, ch: 600, iw: 2000, ih: 1000, padding: 32,
			wantScale: 768.0 / 2000.0,
			wantOffX:  (800 - 2000*768.0/2000.0) / 2,
			wantOffY:  (600 - 1000*768.0/2000.0) / 2,
		},
		{
			name: "height constrained",
			cw:   800, ch: 400, iw: 500, ih: 1000, padding: 0,
			wantScale: 0.4, wantOffX: (800 - 500*0.4) / 2, wantOffY: 0,
		},
		{
			name: "zero image resets to identity",
			cw:   800, ch: 600, iw: 0, ih: 0, padding: 32,
			wantScale: 1, wantOffX: 0, wantOffY: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := Transform{Scale: 5, OffsetX: -999, OffsetY: 999}
			tr.FitTo(tt.cw, tt.ch, tt.iw, tt.ih, tt.padding)

			if !scalar.EqualWithinAbs(tr.Scale, tt.wantScale, tol) {
				t.Fatalf("scale = %v, want %v", tr.Scale, tt.wantScale)
			}
			if !scalar.EqualWithinAbs(tr.OffsetX, tt.wantOffX, tol) ||
				!scalar.EqualWithinAbs(tr.OffsetY, tt.wantOffY, tol) {
				t.Errorf("offsets = (%v, %v), want (%v, %v)", tr.OffsetX, tr.OffsetY, tt.wantOffX, tt.wantOffY)
			}
		})
	}
}

// TestMatrixMatchesToScreen verifies the affine form agrees with the
// coordinate methods.
func TestMatrixMatchesToScreen(t *testing.T) {
	tr := Transform{Scale: 1.5, OffsetX: 10, OffsetY: -20}
	m := tr.Matrix()

	for _, p := range [][2]float64{{0, 0}, {16, 16}, {-3, 42.5}} {
		sx, sy := tr.ToScreen(p[0], p[1])
		got := m.Apply(geometry.Point2D{X: p[0], Y: p[1]})
		if !scalar.EqualWithinAbs(got.X, sx, tol) || !scalar.EqualWithinAbs(got.Y, sy, tol) {
			t.Errorf("Matrix().Apply(%v) = %+v, want (%v, %v)", p, got, sx, sy)
		}
	}
}
