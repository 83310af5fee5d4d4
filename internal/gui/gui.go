// Package gui provides the graphical user interface for triptych.
package gui

import (
	"fmt"
	"os"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"

	"github.com/triptychview/triptych/internal/browser"
	"github.com/triptychview/triptych/internal/config"
	"github.com/triptychview/triptych/internal/logging"
	"github.com/triptychview/triptych/internal/scan"
	"github.com/triptychview/triptych/internal/texture"
	"github.com/triptychview/triptych/internal/version"
)

// guiLogger is the package-level logger for GUI mode
var guiLogger *logging.Logger

// Launch opens the main window and runs the event loop until the
// window closes.
func Launch(cfg config.Config) error {
	guiLogger = logging.NewLogger("gui")

	dataDir := cfg.DataDir
	if dataDir == "" {
		dataDir = config.DataDir()
	}
	guiLogger.Info().Str("data_dir", dataDir).Msg("resolved data directory")

	myApp := app.NewWithID("com.triptychview.triptych")
	myApp.Settings().SetTheme(&triptychTheme{})

	windowTitle := fmt.Sprintf("%s %s", cfg.Window.Title, version.Version)
	mainWindow := myApp.NewWindow(windowTitle)
	mainWindow.SetMaster()

	setWindowIcon(mainWindow, dataDir)
	mainWindow.SetMainMenu(mainMenu(myApp))

	// One state per widget identity, owned here and passed into the
	// panel; nothing browser-related lives in package state.
	state := browser.New("(Image Folder Navigator)", scan.DirScanner{}, texture.FileLoader{}, guiLogger)
	browserPanel := NewBrowserPanel(state, cfg.Browser)
	browserPanel.Bind(dataDir)

	content := container.NewGridWithColumns(3,
		Panel{
			Title:   "Panel 1",
			Content: browserPanel.Build(),
			Height:  Fill(),
		}.Build(),
		Panel{Title: "Panel 2", Height: Fill()}.Build(),
		Panel{Title: "Panel 3", Height: Fill()}.Build(),
	)

	mainWindow.SetContent(content)
	mainWindow.Resize(fyne.NewSize(float32(cfg.Window.Width), float32(cfg.Window.Height)))
	mainWindow.CenterOnScreen()

	mainWindow.SetOnClosed(func() {
		state.Release()
	})

	mainWindow.ShowAndRun()
	return nil
}

// mainMenu builds the File/Edit/Exit menu bar. File and Edit are stubs.
func mainMenu(a fyne.App) *fyne.MainMenu {
	return fyne.NewMainMenu(
		fyne.NewMenu("File"),
		fyne.NewMenu("Edit"),
		fyne.NewMenu("Exit",
			fyne.NewMenuItem("Quit", func() { a.Quit() }),
		),
	)
}

// setWindowIcon loads logo_viewport.png from the data directory if it
// exists. Failure is only logged.
func setWindowIcon(w fyne.Window, dataDir string) {
	logoPath := filepath.Join(dataDir, "logo_viewport.png")
	data, err := os.ReadFile(logoPath)
	if err != nil {
		guiLogger.Warn().Err(err).Str("path", logoPath).Msg("window icon not loaded")
		return
	}
	w.SetIcon(fyne.NewStaticResource("logo_viewport.png", data))
}
