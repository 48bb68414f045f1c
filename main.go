// Package main provides the entry point for the Sprite Grid application.
package main

import (
	"log"
	"os"
	"time"

	fyneapp "fyne.io/fyne/v2/app"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"

	"sprite-grid/internal/app"
	"sprite-grid/internal/version"
	"sprite-grid/ui/mainwindow"
	"sprite-grid/ui/prefs"
)

const appTitle = "Sprite Grid"

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Printf("Starting %s v%s (%s)", appTitle, version.Version, version.GitCommit)

	fyneApp := fyneapp.NewWithID("dev.spritegrid.viewer")

	state := app.NewState()
	appPrefs := prefs.Load()

	win := mainwindow.New(fyneApp, state, appPrefs)
	win.SetTitle(appTitle)
	win.Resize(fyne.NewSize(1100, 720))

	// A path on the command line overrides the restored session image.
	if len(os.Args) > 1 {
		win.OpenPath(os.Args[1])
	}

	setupHotReload(win)

	win.ShowAndRun()

	if err := appPrefs.Save(); err != nil {
		log.Printf("Failed to save preferences: %v", err)
	}
}

// setupHotReload configures automatic restart detection when the binary is
// recompiled.
func setupHotReload(win *mainwindow.MainWindow) {
	reloader := app.NewHotReloader(2 * time.Second)
	if reloader == nil {
		log.Println("Hot reload: unable to determine executable path")
		return
	}

	log.Printf("Hot reload: watching %s", reloader.ExecPath())

	reloader.OnNewBinary(func() {
		log.Println("Hot reload: newer binary detected")
		dialog.ShowConfirm("New Version Available",
			"The application binary has been updated.\nRestart now?",
			func(restart bool) {
				if !restart {
					reloader.ResetBaseline()
					reloader.Start()
					return
				}
				log.Println("Hot reload: restarting...")
				if err := reloader.Restart(); err != nil {
					log.Printf("Hot reload: restart failed: %v", err)
				}
			}, win.Window)
	})

	reloader.Start()
}
