// Package grid computes the tile layout over a sprite sheet and resolves
// screen positions to tiles.
package grid

import (
	"math"

	"sprite-grid/pkg/geometry"
)

// Mode selects how the grid configuration is interpreted.
type Mode int

const (
	// ModeSize: X/Y are the cell width/height in image pixels.
	ModeSize Mode = iota
	// ModeCount: X/Y are the column/row counts.
	ModeCount
)

func (m Mode) String() string {
	if m == ModeCount {
		return "count"
	}
	return "size"
}

// Config is the grid configuration supplied by the UI. Values must already
// be clamped to >= 1 by the caller; Compute does not re-validate.
type Config struct {
	Mode Mode `json:"mode"`
	X    int  `json:"x"`
	Y    int  `json:"y"`
}

// Geometry is the derived tile layout for one image and configuration.
type Geometry struct {
	CellWidth  float64
	CellHeight float64
	Cols       int
	Rows       int
}

// Tile addresses one grid cell. Index is row-major and zero-based:
// Index = Row*Cols + Col.
type Tile struct {
	Index int `json:"index"`
	Row   int `json:"row"`
	Col   int `json:"col"`
}

// Compute derives the tile layout from the image dimensions and config.
// In size mode the remainder strip beyond the last full column/row is not
// covered by any cell.
func Compute(imageW, imageH int, cfg Config) Geometry {
	switch cfg.Mode {
	case ModeCount:
		return Geometry{
			CellWidth:  float64(imageW) / float64(cfg.X),
			CellHeight: float64(imageH) / float64(cfg.Y),
			Cols:       cfg.X,
			Rows:       cfg.Y,
		}
	default:
		cols := imageW / cfg.X
		if cols < 1 {
			cols = 1
		}
		rows := imageH / cfg.Y
		if rows < 1 {
			rows = 1
		}
		return Geometry{
			CellWidth:  float64(cfg.X),
			CellHeight: float64(cfg.Y),
			Cols:       cols,
			Rows:       rows,
		}
	}
}

// Tiles returns the total number of addressable cells.
func (g Geometry) Tiles() int {
	return g.Cols * g.Rows
}

// CellRect returns the image-space rectangle of a cell. It is purely
// geometric: row/col outside the current layout still yield a rectangle,
// which lets a stale selection draw without re-validation.
func (g Geometry) CellRect(row, col int) geometry.Rect {
	return geometry.Rect{
		X:      float64(col) * g.CellWidth,
		Y:      float64(row) * g.CellHeight,
		Width:  g.CellWidth,
		Height: g.CellHeight,
	}
}

// TileAt returns the tile for a row/column pair.
func (g Geometry) TileAt(row, col int) Tile {
	return Tile{Index: RowColToIndex(row, col, g.Cols), Row: row, Col: col}
}

// IndexToRowCol converts a row-major index to its row/column pair.
// The index must be within [0, cols*rows); bounds are the caller's concern.
func IndexToRowCol(index, cols int) (row, col int) {
	return index / cols, index % cols
}

// RowColToIndex converts a row/column pair to its row-major index.
func RowColToIndex(row, col, cols int) int {
	return row*cols + col
}

// cellIndex floor-divides an image coordinate by a cell size.
func cellIndex(coord, cellSize float64) int {
	return int(math.Floor(coord / cellSize))
}
