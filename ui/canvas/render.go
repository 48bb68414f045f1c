package canvas

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/math/f64"

	"sprite-grid/internal/grid"
	"sprite-grid/internal/viewport"
	"sprite-grid/pkg/colorutil"
	"sprite-grid/pkg/geometry"
)

const (
	// checkerSize is the checkerboard cell size in image pixels.
	checkerSize = 8.0

	gridLineWidth      = 1
	hoverOpacity       = 0.25
	selectOpacity      = 0.4
	selectOutlineWidth = 2

	minLabelScale = 1
	maxLabelScale = 8
)

// Frame captures everything one render pass needs. Rendering the same Frame
// twice produces identical pixels; each pass fully repaints the surface.
type Frame struct {
	Image    image.Image
	View     viewport.Transform
	Grid     grid.Geometry
	Hovered  *grid.Tile
	Selected *grid.Tile
	Panning  bool

	ShowLabels bool
}

// Render paints the frame into a fresh w x h RGBA surface.
//
// Layer order: background, checkerboard, sheet image, grid lines, hover
// highlight, selection highlight, index labels.
func (f Frame) Render(w, h int) *image.RGBA {
	output := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(output, output.Bounds(), image.NewUniform(colorutil.Background), image.Point{}, draw.Src)

	if f.Image == nil || w <= 0 || h <= 0 {
		return output
	}

	imgW := f.Image.Bounds().Dx()
	imgH := f.Image.Bounds().Dy()
	if imgW <= 0 || imgH <= 0 {
		return output
	}

	f.drawCheckerboard(output, imgW, imgH)
	f.drawImage(output)
	f.drawGridLines(output)

	if f.Hovered != nil && !f.Panning {
		f.blendCell(output, f.Hovered.Row, f.Hovered.Col, hoverOpacity, colorutil.HoverFill)
	}
	if f.Selected != nil {
		// Drawn after hover so it dominates when the two coincide. A stale
		// selection beyond the current layout still draws geometrically.
		f.blendCell(output, f.Selected.Row, f.Selected.Col, selectOpacity, colorutil.SelectFill)
		f.outlineCell(output, f.Selected.Row, f.Selected.Col)
	}

	if f.ShowLabels {
		f.drawLabels(output, w, h)
	}

	return output
}

// drawCheckerboard fills the image's on-screen footprint with the
// transparency checker pattern. The cell size is fixed in image space so the
// pattern zooms with the sheet.
func (f Frame) drawCheckerboard(output *image.RGBA, imgW, imgH int) {
	left, top, right, bottom := f.screenFootprint(output, float64(imgW), float64(imgH))

	for y := top; y < bottom; y++ {
		for x := left; x < right; x++ {
			ix, iy := f.View.ToImage(float64(x)+0.5, float64(y)+0.5)
			if ix < 0 || iy < 0 || ix >= float64(imgW) || iy >= float64(imgH) {
				continue
			}
			cell := int(ix/checkerSize) + int(iy/checkerSize)
			if cell%2 == 0 {
				output.SetRGBA(x, y, colorutil.CheckerLight)
			} else {
				output.SetRGBA(x, y, colorutil.CheckerDark)
			}
		}
	}
}

// drawImage draws the sheet with nearest-neighbor sampling so pixel edges
// stay crisp at high zoom. Transparent sprite pixels leave the checkerboard
// visible underneath.
func (f Frame) drawImage(output *image.RGBA) {
	b := f.Image.Bounds()
	m := f.View.Matrix().Compose(geometry.Translation(float64(-b.Min.X), float64(-b.Min.Y)))
	xdraw.NearestNeighbor.Transform(output,
		f64.Aff3{m.A, m.B, m.TX, m.C, m.D, m.TY},
		f.Image, b, xdraw.Over, nil)
}

// drawGridLines strokes every column and row boundary at constant on-screen
// width, clipped to the covered grid extent. In size mode that extent can
// stop short of the image edge; the remainder strip gets no lines.
func (f Frame) drawGridLines(output *image.RGBA) {
	g := f.Grid
	if g.Cols < 1 || g.Rows < 1 || g.CellWidth <= 0 || g.CellHeight <= 0 {
		return
	}

	gx0, gy0 := f.View.ToScreen(0, 0)
	gx1, gy1 := f.View.ToScreen(float64(g.Cols)*g.CellWidth, float64(g.Rows)*g.CellHeight)
	top := int(math.Round(gy0))
	bottom := int(math.Round(gy1))
	left := int(math.Round(gx0))
	right := int(math.Round(gx1))

	for i := 0; i <= g.Cols; i++ {
		sx, _ := f.View.ToScreen(float64(i)*g.CellWidth, 0)
		x := int(math.Round(sx))
		fillRect(output, x, top, x+gridLineWidth, bottom+gridLineWidth, colorutil.GridLine)
	}
	for j := 0; j <= g.Rows; j++ {
		_, sy := f.View.ToScreen(0, float64(j)*g.CellHeight)
		y := int(math.Round(sy))
		fillRect(output, left, y, right+gridLineWidth, y+gridLineWidth, colorutil.GridLine)
	}
}

// drawLabels writes the zero-based index into every visible cell. The font
// scale follows the smaller on-screen cell dimension, clamped to a readable
// range; the selected tile's label is brighter than the rest.
func (f Frame) drawLabels(output *image.RGBA, w, h int) {
	g := f.Grid
	if g.Cols < 1 || g.Rows < 1 || g.CellWidth <= 0 || g.CellHeight <= 0 {
		return
	}

	minCell := g.CellWidth
	if g.CellHeight < minCell {
		minCell = g.CellHeight
	}
	scale := int(minCell * f.View.Scale / 12)
	if scale < minLabelScale {
		scale = minLabelScale
	}
	if scale > maxLabelScale {
		scale = maxLabelScale
	}

	// Walk only the cells whose rectangles can intersect the surface.
	ix0, iy0 := f.View.ToImage(0, 0)
	ix1, iy1 := f.View.ToImage(float64(w), float64(h))
	colMin := clampInt(int(math.Floor(ix0/g.CellWidth)), 0, g.Cols-1)
	colMax := clampInt(int(math.Floor(ix1/g.CellWidth)), 0, g.Cols-1)
	rowMin := clampInt(int(math.Floor(iy0/g.CellHeight)), 0, g.Rows-1)
	rowMax := clampInt(int(math.Floor(iy1/g.CellHeight)), 0, g.Rows-1)

	for row := rowMin; row <= rowMax; row++ {
		for col := colMin; col <= colMax; col++ {
			index := grid.RowColToIndex(row, col, g.Cols)
			center := g.CellRect(row, col).Center()
			cx, cy := f.View.ToScreen(center.X, center.Y)

			fill := colorutil.White
			if f.Selected != nil && f.Selected.Index == index {
				fill = colorutil.Yellow
			}
			drawIndexLabel(output, index, int(math.Round(cx)), int(math.Round(cy)), scale, fill)
		}
	}
}

// blendCell lays a translucent fill over a cell's on-screen rectangle.
func (f Frame) blendCell(output *image.RGBA, row, col int, opacity float64, fill color.RGBA) {
	x0, y0, x1, y1 := f.cellScreenRect(row, col)
	bounds := output.Bounds()
	x0 = clampInt(x0, bounds.Min.X, bounds.Max.X)
	y0 = clampInt(y0, bounds.Min.Y, bounds.Max.Y)
	x1 = clampInt(x1, bounds.Min.X, bounds.Max.X)
	y1 = clampInt(y1, bounds.Min.Y, bounds.Max.Y)

	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			output.SetRGBA(x, y, colorutil.Blend(output.RGBAAt(x, y), fill, opacity))
		}
	}
}

// outlineCell strokes a solid border around a cell's on-screen rectangle.
func (f Frame) outlineCell(output *image.RGBA, row, col int) {
	x0, y0, x1, y1 := f.cellScreenRect(row, col)
	t := selectOutlineWidth
	fillRect(output, x0, y0, x1, y0+t, colorutil.SelectOutline)
	fillRect(output, x0, y1-t, x1, y1, colorutil.SelectOutline)
	fillRect(output, x0, y0, x0+t, y1, colorutil.SelectOutline)
	fillRect(output, x1-t, y0, x1, y1, colorutil.SelectOutline)
}

// cellScreenRect returns a cell's rectangle in rounded screen coordinates.
func (f Frame) cellScreenRect(row, col int) (x0, y0, x1, y1 int) {
	r := f.Grid.CellRect(row, col)
	sx0, sy0 := f.View.ToScreen(r.X, r.Y)
	sx1, sy1 := f.View.ToScreen(r.X+r.Width, r.Y+r.Height)
	return int(math.Round(sx0)), int(math.Round(sy0)), int(math.Round(sx1)), int(math.Round(sy1))
}

// screenFootprint returns the image's on-screen bounding rectangle clipped
// to the output surface.
func (f Frame) screenFootprint(output *image.RGBA, imgW, imgH float64) (left, top, right, bottom int) {
	x0, y0 := f.View.ToScreen(0, 0)
	x1, y1 := f.View.ToScreen(imgW, imgH)
	bounds := output.Bounds()
	left = clampInt(int(math.Floor(x0)), bounds.Min.X, bounds.Max.X)
	top = clampInt(int(math.Floor(y0)), bounds.Min.Y, bounds.Max.Y)
	right = clampInt(int(math.Ceil(x1)), bounds.Min.X, bounds.Max.X)
	bottom = clampInt(int(math.Ceil(y1)), bounds.Min.Y, bounds.Max.Y)
	return left, top, right, bottom
}

// fillRect fills [x0,x1) x [y0,y1) clipped to the output bounds.
func fillRect(output *image.RGBA, x0, y0, x1, y1 int, col color.RGBA) {
	bounds := output.Bounds()
	x0 = clampInt(x0, bounds.Min.X, bounds.Max.X)
	y0 = clampInt(y0, bounds.Min.Y, bounds.Max.Y)
	x1 = clampInt(x1, bounds.Min.X, bounds.Max.X)
	y1 = clampInt(y1, bounds.Min.Y, bounds.Max.Y)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			output.SetRGBA(x, y, col)
		}
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
