package main

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/bookget/bookdesk/internal/api"
	"github.com/bookget/bookdesk/internal/config"
	"github.com/bookget/bookdesk/internal/logger"
	"github.com/bookget/bookdesk/internal/session"
	"github.com/bookget/bookdesk/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.bookget.bookdesk"
	AppName = "Book Catalog"

	WindowWidth  = 960
	WindowHeight = 640
)

func main() {
	config.LoadEnv()
	log := logger.Get()
	log.Info().Str("version", version).Msg("bookdesk starting")

	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	// Apply compact theme
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	// Initialize services
	settings := config.NewSettings(myApp)

	sess := session.NewManager(myApp.Preferences())
	sess.Restore()

	gateway := api.NewClient(settings.GetServerURL(), sess.Token)

	// Create and setup UI, then load the initial view
	root := ui.NewRootUI(myWindow, myApp, gateway, sess, settings)
	root.ShowBooks()

	// Show and run
	myWindow.ShowAndRun()
}
