package ui

import (
	"context"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/elrs-tools/netpack-flasher/internal/config"
	"github.com/elrs-tools/netpack-flasher/internal/flash"
	"github.com/elrs-tools/netpack-flasher/internal/model"
	"github.com/elrs-tools/netpack-flasher/internal/platform"
	"github.com/elrs-tools/netpack-flasher/internal/release"
)

// Panel labels
const (
	PanelTitle        = "ELRS Netpack Firmware"
	LabelPort         = "Netpack Serial Port:"
	LabelVersion      = "Firmware Version:"
	LabelBeta         = "Include beta releases"
	LabelRefreshPorts = "Refresh Ports"
	LabelFlash        = "Flash Netpack Firmware"
)

// RootUI represents the main UI structure
type RootUI struct {
	window      fyne.Window
	settings    *config.Settings
	lister      *release.Service
	coordinator *flash.Coordinator

	portSelect        *widget.Select
	versionSelect     *widget.Select
	betaCheck         *widget.Check
	refreshPortsBtn   *widget.Button
	flashBtn          *widget.Button
	notificationLabel *widget.Label
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, settings *config.Settings, lister *release.Service, coordinator *flash.Coordinator) *RootUI {
	ui := &RootUI{
		window:      window,
		settings:    settings,
		lister:      lister,
		coordinator: coordinator,
	}

	ui.createUI()

	// Surface coordinator messages in the notification area
	coordinator.SetNotifyCallback(ui.showNotification)
	coordinator.SetUpdateCallback(ui.onJobUpdate)

	ui.refreshPorts()
	ui.refreshVersions()

	window.SetContent(ui.buildLayout())
	return ui
}

// createUI creates the panel widgets
func (ui *RootUI) createUI() {
	ui.portSelect = widget.NewSelect(nil, func(port string) {
		ui.settings.SetPort(port)
	})
	ui.portSelect.PlaceHolder = "Select port"

	ui.versionSelect = widget.NewSelect(nil, func(tag string) {
		ui.settings.SetVersion(tag)
	})
	ui.versionSelect.PlaceHolder = "Select version"

	ui.betaCheck = widget.NewCheck(LabelBeta, func(include bool) {
		ui.settings.SetIncludeBeta(include)
		ui.refreshVersions()
	})
	ui.betaCheck.SetChecked(ui.settings.IncludeBeta())

	ui.refreshPortsBtn = widget.NewButton(LabelRefreshPorts, ui.refreshPorts)
	ui.flashBtn = widget.NewButton(LabelFlash, ui.onFlash)

	ui.notificationLabel = widget.NewLabel("")
	ui.notificationLabel.Wrapping = fyne.TextWrapWord
}

// buildLayout assembles the settings panel
func (ui *RootUI) buildLayout() fyne.CanvasObject {
	return container.NewVBox(
		widget.NewLabel(PanelTitle),
		widget.NewSeparator(),

		widget.NewLabel(LabelPort),
		ui.portSelect,
		ui.refreshPortsBtn,

		widget.NewLabel(LabelVersion),
		ui.versionSelect,
		ui.betaCheck,

		widget.NewSeparator(),
		ui.flashBtn,
		ui.notificationLabel,
	)
}

// refreshPorts repopulates the serial port selection
func (ui *RootUI) refreshPorts() {
	ports := platform.ListSerialPorts()

	fyne.Do(func() {
		ui.portSelect.Options = ports
		ui.portSelect.Refresh()

		// Keep the persisted selection when the port is still present
		current := ui.settings.Port()
		for _, port := range ports {
			if port == current {
				ui.portSelect.SetSelected(current)
				return
			}
		}
	})
}

// refreshVersions repopulates the firmware version selection from the
// release feed on a background goroutine
func (ui *RootUI) refreshVersions() {
	go func() {
		releases := ui.lister.List(context.Background(), ui.settings.IncludeBeta())
		ui.coordinator.SetReleases(releases)

		fyne.Do(func() {
			ui.versionSelect.Options = model.ReleaseTags(releases)
			ui.versionSelect.Refresh()

			current := ui.settings.Version()
			for _, release := range releases {
				if release.TagName == current {
					ui.versionSelect.SetSelected(current)
					return
				}
			}
		})
	}()
}

// onFlash runs a flash sequence off the UI goroutine; outcomes arrive
// through the notification and job callbacks
func (ui *RootUI) onFlash() {
	go ui.coordinator.Flash()
}

// onJobUpdate reflects job progress in the flash button state
func (ui *RootUI) onJobUpdate(job *model.FlashJob) {
	// Rejected jobs belong to a flash that is still running elsewhere;
	// the button state is owned by that flash
	if job.Status == model.JobStatusRejected {
		return
	}

	fyne.Do(func() {
		if job.Status.IsActive() {
			ui.flashBtn.Disable()
		} else {
			ui.flashBtn.Enable()
		}
	})
}

// showNotification displays a message in the notification area
func (ui *RootUI) showNotification(message string) {
	fyne.Do(func() {
		ui.notificationLabel.SetText(message)
	})
}
