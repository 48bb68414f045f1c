package canvas

import (
	"image"
	"image/color"
	"strconv"

	"sprite-grid/pkg/colorutil"
)

// digitPatterns contains 3x5 pixel patterns for digits 0-9.
// Each digit is represented as 5 rows of 3 bits.
var digitPatterns = [10][5]uint8{
	{0b111, 0b101, 0b101, 0b101, 0b111}, // 0
	{0b010, 0b110, 0b010, 0b010, 0b111}, // 1
	{0b111, 0b001, 0b111, 0b100, 0b111}, // 2
	{0b111, 0b001, 0b111, 0b001, 0b111}, // 3
	{0b101, 0b101, 0b111, 0b001, 0b001}, // 4
	{0b111, 0b100, 0b111, 0b001, 0b111}, // 5
	{0b111, 0b100, 0b111, 0b101, 0b111}, // 6
	{0b111, 0b001, 0b001, 0b001, 0b001}, // 7
	{0b111, 0b101, 0b111, 0b101, 0b111}, // 8
	{0b111, 0b101, 0b111, 0b001, 0b111}, // 9
}

const (
	digitCols = 3
	digitRows = 5
)

// drawIndexLabel draws a tile index centered at the given screen position.
// A dark pass offset in eight directions goes down first so the light digits
// stay legible over any sprite content.
func drawIndexLabel(output *image.RGBA, index, centerX, centerY, scale int, fill color.RGBA) {
	text := strconv.Itoa(index)
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			drawDigits(output, text, centerX+dx, centerY+dy, scale, colorutil.Black)
		}
	}
	drawDigits(output, text, centerX, centerY, scale, fill)
}

// drawDigits draws a run of decimal digits centered at the given position,
// scale pixels per font pixel. Non-digit characters are skipped.
func drawDigits(output *image.RGBA, text string, centerX, centerY, scale int, col color.RGBA) {
	if scale < 1 {
		scale = 1
	}

	charWidth := digitCols * scale
	charHeight := digitRows * scale
	spacing := scale
	labelWidth := len(text)*charWidth + (len(text)-1)*spacing

	startX := centerX - labelWidth/2
	startY := centerY - charHeight/2

	bounds := output.Bounds()

	for i, ch := range text {
		if ch < '0' || ch > '9' {
			continue
		}
		pattern := digitPatterns[ch-'0']
		charX := startX + i*(charWidth+spacing)

		for row := 0; row < digitRows; row++ {
			for c := 0; c < digitCols; c++ {
				if pattern[row]&(1<<(digitCols-1-c)) == 0 {
					continue
				}
				for dy := 0; dy < scale; dy++ {
					for dx := 0; dx < scale; dx++ {
						px := charX + c*scale + dx
						py := startY + row*scale + dy
						if px >= bounds.Min.X && px < bounds.Max.X &&
							py >= bounds.Min.Y && py < bounds.Max.Y {
							output.SetRGBA(px, py, col)
						}
					}
				}
			}
		}
	}
}
