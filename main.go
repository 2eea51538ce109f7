package main

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/sirupsen/logrus"

	"github.com/elrs-tools/netpack-flasher/internal/config"
	"github.com/elrs-tools/netpack-flasher/internal/firmware"
	"github.com/elrs-tools/netpack-flasher/internal/flash"
	"github.com/elrs-tools/netpack-flasher/internal/platform"
	"github.com/elrs-tools/netpack-flasher/internal/release"
	"github.com/elrs-tools/netpack-flasher/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.elrs-tools.netpack-flasher"
	AppName = "Netpack Flasher"

	WindowWidth  = 420
	WindowHeight = 480
)

func main() {
	logrus.Infof("%s v%s starting...", AppName, version)

	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	// Initialize services
	settings := config.NewSettings(myApp)

	firmwareDir := platform.FirmwareDir(myApp.Storage().RootURI().Path())
	if err := platform.CreateDirectoryIfNotExists(firmwareDir); err != nil {
		logrus.Errorf("Failed to ensure firmware dir: %v", err)
	}

	lister := release.NewService(release.DefaultFeedURL)
	fetcher := firmware.NewFetcher(firmwareDir)
	coordinator := flash.NewCoordinator(settings, fetcher, flash.NewEsptool(), firmwareDir)

	// A version change invalidates the download cache so the next flash
	// fetches the newly selected firmware
	settings.OnOptionChanged(config.KeyVersion, func(string) {
		coordinator.InvalidateCache()
	})

	// Create and setup UI
	ui.NewRootUI(myWindow, settings, lister, coordinator)

	// Show and run
	myWindow.ShowAndRun()
}
