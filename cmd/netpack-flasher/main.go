package main

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/elrs-tools/netpack-flasher/internal/config"
	"github.com/elrs-tools/netpack-flasher/internal/firmware"
	"github.com/elrs-tools/netpack-flasher/internal/flash"
	"github.com/elrs-tools/netpack-flasher/internal/platform"
	"github.com/elrs-tools/netpack-flasher/internal/release"
	"github.com/elrs-tools/netpack-flasher/internal/ui"
)

func main() {
	// Create new Fyne app
	myApp := app.NewWithID("com.elrs-tools.netpack-flasher")
	myWindow := myApp.NewWindow("Netpack Flasher")
	myWindow.Resize(fyne.NewSize(420, 480))

	settings := config.NewSettings(myApp)
	firmwareDir := platform.FirmwareDir(myApp.Storage().RootURI().Path())
	platform.CreateDirectoryIfNotExists(firmwareDir)

	coordinator := flash.NewCoordinator(settings, firmware.NewFetcher(firmwareDir), flash.NewEsptool(), firmwareDir)
	settings.OnOptionChanged(config.KeyVersion, func(string) {
		coordinator.InvalidateCache()
	})

	// Create and setup UI
	ui.NewRootUI(myWindow, settings, release.NewService(release.DefaultFeedURL), coordinator)

	// Show and run
	myWindow.ShowAndRun()
}
