package grid

import (
	"sprite-grid/internal/viewport"
)

// Locate resolves a screen position to the tile under it. It returns false
// when the point is outside the image, or inside the image but beyond the
// last full cell (the size-mode remainder strip).
//
// Locate is pure: identical inputs give identical results.
func Locate(screenX, screenY float64, view viewport.Transform, geom Geometry, imageW, imageH int) (Tile, bool) {
	x, y := view.ToImage(screenX, screenY)
	if x < 0 || y < 0 || x >= float64(imageW) || y >= float64(imageH) {
		return Tile{}, false
	}
	if geom.CellWidth <= 0 || geom.CellHeight <= 0 {
		return Tile{}, false
	}

	col := cellIndex(x, geom.CellWidth)
	row := cellIndex(y, geom.CellHeight)
	if col >= geom.Cols || row >= geom.Rows {
		return Tile{}, false
	}

	return Tile{Index: RowColToIndex(row, col, geom.Cols), Row: row, Col: col}, true
}
