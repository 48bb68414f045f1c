// Package panels provides the side panel with grid configuration controls.
package panels

import (
	"fmt"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"sprite-grid/internal/app"
	"sprite-grid/internal/grid"
)

const (
	modeSizeOption  = "Cell size (px)"
	modeCountOption = "Columns / rows"
)

// GridPanel exposes the grid configuration and shows details of the
// current sheet and selection.
type GridPanel struct {
	state *app.State

	modeRadio   *widget.RadioGroup
	xEntry      *widget.Entry
	yEntry      *widget.Entry
	labelsCheck *widget.Check

	infoLabel      *widget.Label
	selectionLabel *widget.Label
	snippetEntry   *widget.Entry

	content fyne.CanvasObject
}

// NewGridPanel creates the panel and subscribes it to state events.
func NewGridPanel(state *app.State) *GridPanel {
	p := &GridPanel{state: state}

	p.xEntry = widget.NewEntry()
	p.yEntry = widget.NewEntry()
	p.xEntry.OnSubmitted = func(string) { p.apply() }
	p.yEntry.OnSubmitted = func(string) { p.apply() }

	p.modeRadio = widget.NewRadioGroup([]string{modeSizeOption, modeCountOption}, func(string) {
		p.apply()
	})

	p.labelsCheck = widget.NewCheck("Show tile indexes", func(on bool) {
		state.SetShowLabels(on)
	})

	p.infoLabel = widget.NewLabel("No image loaded")
	p.selectionLabel = widget.NewLabel("Nothing selected")
	p.snippetEntry = widget.NewEntry()

	p.showConfig(state.Grid())
	p.labelsCheck.SetChecked(state.ShowLabels())

	p.content = container.NewVBox(
		widget.NewLabelWithStyle("Grid", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		p.modeRadio,
		container.NewGridWithColumns(2,
			container.NewVBox(widget.NewLabel("X"), p.xEntry),
			container.NewVBox(widget.NewLabel("Y"), p.yEntry),
		),
		p.labelsCheck,
		widget.NewSeparator(),
		widget.NewLabelWithStyle("Sheet", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		p.infoLabel,
		widget.NewSeparator(),
		widget.NewLabelWithStyle("Selection", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		p.selectionLabel,
		p.snippetEntry,
	)

	state.On(app.EventSheetLoaded, func(interface{}) { p.refreshInfo() })
	state.On(app.EventGridChanged, func(interface{}) { p.refreshInfo() })
	state.On(app.EventSelectionChanged, func(interface{}) { p.refreshSelection() })

	return p
}

// Container returns the panel's root object for embedding in layouts.
func (p *GridPanel) Container() fyne.CanvasObject {
	return p.content
}

// apply pushes the edited configuration into the application state.
// Values are parsed leniently; anything below 1 is clamped upstream of the
// geometry computation.
func (p *GridPanel) apply() {
	mode := grid.ModeSize
	if p.modeRadio.Selected == modeCountOption {
		mode = grid.ModeCount
	}

	x, _ := strconv.Atoi(p.xEntry.Text)
	y, _ := strconv.Atoi(p.yEntry.Text)
	p.state.SetGrid(grid.Config{Mode: mode, X: x, Y: y})

	// Echo back the clamped values.
	p.showConfig(p.state.Grid())
}

// showConfig reflects a configuration into the controls without firing the
// change callbacks back into apply.
func (p *GridPanel) showConfig(cfg grid.Config) {
	onChanged := p.modeRadio.OnChanged
	p.modeRadio.OnChanged = nil
	if cfg.Mode == grid.ModeCount {
		p.modeRadio.SetSelected(modeCountOption)
	} else {
		p.modeRadio.SetSelected(modeSizeOption)
	}
	p.modeRadio.OnChanged = onChanged

	p.xEntry.SetText(strconv.Itoa(cfg.X))
	p.yEntry.SetText(strconv.Itoa(cfg.Y))
}

func (p *GridPanel) refreshInfo() {
	sh := p.state.Sheet()
	if sh == nil {
		p.infoLabel.SetText("No image loaded")
		return
	}

	g := p.state.Geometry()
	p.infoLabel.SetText(fmt.Sprintf("Image: %d x %d px\nCell: %s x %s px\nTiles: %d (%d x %d)",
		sh.Width(), sh.Height(),
		formatCell(g.CellWidth), formatCell(g.CellHeight),
		g.Tiles(), g.Cols, g.Rows))
}

func (p *GridPanel) refreshSelection() {
	t := p.state.Selected()
	if t == nil {
		p.selectionLabel.SetText("Nothing selected")
		p.snippetEntry.SetText("")
		return
	}

	p.selectionLabel.SetText(fmt.Sprintf("Index %d (row %d, col %d)", t.Index, t.Row, t.Col))
	p.snippetEntry.SetText(fmt.Sprintf("frame := sheet.Frame(%d) // row %d, col %d", t.Index, t.Row, t.Col))
}

// formatCell prints a cell dimension without trailing noise: whole numbers
// stay whole, count-mode fractions get one decimal.
func formatCell(v float64) string {
	if v == float64(int(v)) {
		return strconv.Itoa(int(v))
	}
	return strconv.FormatFloat(v, 'f', 1, 64)
}
