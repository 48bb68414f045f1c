// Package mainwindow provides the main application window.
package mainwindow

import (
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"sprite-grid/internal/app"
	"sprite-grid/internal/grid"
	"sprite-grid/internal/sheet"
	"sprite-grid/ui/canvas"
	"sprite-grid/ui/panels"
	"sprite-grid/ui/prefs"
)

const (
	prefKeyLastDir    = "lastDirectory"
	prefKeyLastImage  = "lastImage"
	prefKeyGridMode   = "gridMode"
	prefKeyGridX      = "gridX"
	prefKeyGridY      = "gridY"
	prefKeyShowLabels = "showLabels"
)

// MainWindow is the primary application window.
type MainWindow struct {
	fyne.Window
	app   fyne.App
	state *app.State
	prefs *prefs.Prefs

	canvas    *canvas.GridCanvas
	sidePanel *panels.GridPanel
	statusBar *widget.Label
}

// New creates the main window, wires state events, and restores the last
// session's image and grid settings from preferences.
func New(fyneApp fyne.App, state *app.State, p *prefs.Prefs) *MainWindow {
	win := fyneApp.NewWindow("Sprite Grid")

	mw := &MainWindow{
		Window: win,
		app:    fyneApp,
		state:  state,
		prefs:  p,
	}

	mw.setupUI()
	mw.setupMenus()
	mw.setupEventHandlers()
	mw.restorePreferences()

	return mw
}

func (mw *MainWindow) setupUI() {
	mw.canvas = canvas.NewGridCanvas()
	mw.sidePanel = panels.NewGridPanel(mw.state)
	mw.statusBar = widget.NewLabel("Ready")

	canvasArea := container.NewBorder(
		mw.createToolbar(), // top
		nil, nil, nil,
		mw.canvas,
	)

	split := container.NewHSplit(mw.sidePanel.Container(), canvasArea)
	split.SetOffset(0.25)

	content := container.NewBorder(
		nil,
		container.NewPadded(mw.statusBar), // bottom
		nil, nil,
		split,
	)

	mw.SetContent(content)

	mw.SetOnDropped(func(_ fyne.Position, uris []fyne.URI) {
		if len(uris) == 0 {
			return
		}
		path := uris[0].Path()
		if !supportedImage(path) {
			mw.statusBar.SetText(fmt.Sprintf("Unsupported file: %s", filepath.Base(path)))
			return
		}
		mw.OpenPath(path)
	})
}

func (mw *MainWindow) createToolbar() fyne.CanvasObject {
	zoomOutBtn := widget.NewButton("-", mw.canvas.ZoomOut)
	zoomInBtn := widget.NewButton("+", mw.canvas.ZoomIn)
	fitBtn := widget.NewButton("Fit", mw.canvas.ResetView)
	actualBtn := widget.NewButton("1:1", mw.canvas.ActualSize)

	return container.NewHBox(
		widget.NewLabel("Zoom:"),
		zoomOutBtn,
		zoomInBtn,
		fitBtn,
		actualBtn,
	)
}

func (mw *MainWindow) setupMenus() {
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Open Image...", mw.onOpenImage),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() { mw.app.Quit() }),
	)

	viewMenu := fyne.NewMenu("View",
		fyne.NewMenuItem("Zoom In", mw.canvas.ZoomIn),
		fyne.NewMenuItem("Zoom Out", mw.canvas.ZoomOut),
		fyne.NewMenuItem("Fit to Window", mw.canvas.ResetView),
		fyne.NewMenuItem("Actual Size", mw.canvas.ActualSize),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Toggle Tile Indexes", func() {
			mw.state.SetShowLabels(!mw.state.ShowLabels())
		}),
	)

	mw.SetMainMenu(fyne.NewMainMenu(fileMenu, viewMenu))
}

// setupEventHandlers connects state events to the canvas and the canvas's
// outgoing events back to state.
func (mw *MainWindow) setupEventHandlers() {
	mw.canvas.OnTileSelected(func(t grid.Tile) {
		mw.state.SelectTile(t)
	})
	mw.canvas.OnViewChanged(mw.updateStatus)
	mw.canvas.OnHoverChanged(func(*grid.Tile) { mw.updateStatus() })

	mw.state.On(app.EventSheetLoaded, func(interface{}) {
		mw.canvas.SetSheet(mw.state.Sheet())
		mw.canvas.SetSelected(nil)
		mw.updateStatus()
	})
	mw.state.On(app.EventGridChanged, func(interface{}) {
		mw.canvas.SetGridConfig(mw.state.Grid())
		mw.savePreferences()
		mw.updateStatus()
	})
	mw.state.On(app.EventSelectionChanged, func(interface{}) {
		mw.canvas.SetSelected(mw.state.Selected())
		mw.updateStatus()
	})
	mw.state.On(app.EventLabelsToggled, func(interface{}) {
		mw.canvas.SetShowLabels(mw.state.ShowLabels())
		mw.savePreferences()
	})
}

func (mw *MainWindow) onOpenImage() {
	fd := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		path := reader.URI().Path()
		_ = reader.Close()
		mw.OpenPath(path)
	}, mw.Window)

	fd.SetFilter(storage.NewExtensionFileFilter(sheet.Extensions))
	if dir := mw.prefs.String(prefKeyLastDir); dir != "" {
		if lister, err := storage.ListerForURI(storage.NewFileURI(dir)); err == nil {
			fd.SetLocation(lister)
		}
	}
	fd.Show()
}

// OpenPath decodes the image at path on a worker goroutine and installs it
// into the application state on success. Decode failures are reported and
// leave the current state untouched.
func (mw *MainWindow) OpenPath(path string) {
	mw.statusBar.SetText(fmt.Sprintf("Loading %s...", filepath.Base(path)))
	go func() {
		sh, err := sheet.Load(path)
		if err != nil {
			log.Printf("Failed to load %s: %v", path, err)
			dialog.ShowError(err, mw.Window)
			mw.statusBar.SetText("Ready")
			return
		}

		log.Printf("Loaded %s (%dx%d)", path, sh.Width(), sh.Height())
		mw.state.SetSheet(sh)

		mw.prefs.SetString(prefKeyLastDir, filepath.Dir(path))
		mw.prefs.SetString(prefKeyLastImage, path)
		mw.savePreferences()
	}()
}

// restorePreferences applies the stored grid settings and reloads the last
// image. View state (zoom/offset) is deliberately not persisted.
func (mw *MainWindow) restorePreferences() {
	cfg := mw.state.Grid()
	if mode := mw.prefs.String(prefKeyGridMode); mode == grid.ModeCount.String() {
		cfg.Mode = grid.ModeCount
	}
	cfg.X = mw.prefs.Int(prefKeyGridX, cfg.X)
	cfg.Y = mw.prefs.Int(prefKeyGridY, cfg.Y)
	mw.state.SetGrid(cfg)
	mw.state.SetShowLabels(mw.prefs.Bool(prefKeyShowLabels, false))

	if path := mw.prefs.String(prefKeyLastImage); path != "" {
		mw.OpenPath(path)
	}
}

func (mw *MainWindow) savePreferences() {
	cfg := mw.state.Grid()
	mw.prefs.SetString(prefKeyGridMode, cfg.Mode.String())
	mw.prefs.SetInt(prefKeyGridX, cfg.X)
	mw.prefs.SetInt(prefKeyGridY, cfg.Y)
	mw.prefs.SetBool(prefKeyShowLabels, mw.state.ShowLabels())
	if err := mw.prefs.Save(); err != nil {
		log.Printf("Failed to save preferences: %v", err)
	}
}

// updateStatus rebuilds the status line: zoom, image and cell dimensions,
// tile count, hover and selection.
func (mw *MainWindow) updateStatus() {
	sh := mw.state.Sheet()
	if sh == nil {
		mw.statusBar.SetText("Ready")
		return
	}

	g := mw.state.Geometry()
	var b strings.Builder
	fmt.Fprintf(&b, "Zoom: %d%%  |  Image: %dx%d  |  Cell: %.4gx%.4g  |  Tiles: %d",
		zoomPercent(mw.canvas.Zoom()), sh.Width(), sh.Height(),
		g.CellWidth, g.CellHeight, g.Tiles())

	if t := mw.canvas.Hovered(); t != nil {
		fmt.Fprintf(&b, "  |  Hover: %d", t.Index)
	}
	if t := mw.state.Selected(); t != nil {
		fmt.Fprintf(&b, "  |  Selected: %d (row %d, col %d)", t.Index, t.Row, t.Col)
	}
	mw.statusBar.SetText(b.String())
}

func zoomPercent(scale float64) int {
	return int(scale*100 + 0.5)
}

func supportedImage(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range sheet.Extensions {
		if ext == e {
			return true
		}
	}
	return false
}
