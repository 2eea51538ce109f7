package flash

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/elrs-tools/netpack-flasher/internal/firmware"
	"github.com/elrs-tools/netpack-flasher/internal/model"
)

// User-facing notification messages
const (
	MsgFlashInProgress    = "Flashing already in progress"
	MsgPortNotSelected    = "Port not selected"
	MsgVersionNotSelected = "Firmware version not selected"
	MsgDownloadFailed     = "Firmware download failed"
	MsgFlashing           = "Flashing firmware"
	MsgFlashFailed        = "Netpack flashing failed"
	MsgFlashCompleted     = "Netpack flashing completed"
	MsgDownloadingVersion = "Downloading firmware version %s"
)

// Coordinator serializes flash requests: at most one download+flash
// sequence runs at a time, and concurrent requests are rejected rather
// than queued. It also caches the downloaded state per selected version
// within the process lifetime.
type Coordinator struct {
	options     OptionSource
	fetcher     Fetcher
	runner      Runner
	firmwareDir string

	// gate is the single-flight guard around download+flash
	gate sync.Mutex

	stateMutex sync.Mutex
	downloaded bool
	releases   []model.Release

	notify   func(message string)      // messaging sink
	onUpdate func(job *model.FlashJob) // job lifecycle callback for the UI
}

// NewCoordinator creates a flash coordinator reading images from firmwareDir
func NewCoordinator(options OptionSource, fetcher Fetcher, runner Runner, firmwareDir string) *Coordinator {
	return &Coordinator{
		options:     options,
		fetcher:     fetcher,
		runner:      runner,
		firmwareDir: firmwareDir,
	}
}

// SetNotifyCallback sets the sink for user-facing messages
func (c *Coordinator) SetNotifyCallback(callback func(message string)) {
	c.notify = callback
}

// SetUpdateCallback sets the callback function for job updates
func (c *Coordinator) SetUpdateCallback(callback func(job *model.FlashJob)) {
	c.onUpdate = callback
}

// SetReleases replaces the release snapshot used to resolve the selected
// version tag to its asset URL
func (c *Coordinator) SetReleases(releases []model.Release) {
	c.stateMutex.Lock()
	defer c.stateMutex.Unlock()
	c.releases = releases
}

// InvalidateCache forces the next flash to re-download the firmware.
// Wired to the version option's change observer.
func (c *Coordinator) InvalidateCache() {
	c.stateMutex.Lock()
	defer c.stateMutex.Unlock()
	c.downloaded = false
}

// Flash runs one download+flash sequence. If another flash is already in
// progress it returns ErrFlashInProgress immediately and does no work.
// Every other exit path releases the gate.
func (c *Coordinator) Flash() error {
	job := model.NewFlashJob()

	if !c.gate.TryLock() {
		c.notifyUser(MsgFlashInProgress)
		c.finishJob(job, model.JobStatusRejected, ErrFlashInProgress)
		return ErrFlashInProgress
	}
	defer c.gate.Unlock()

	// The download runs before the port check, matching the behavior this
	// tool has always had; the cache flag bounds the cost to one download.
	if !c.isDownloaded() {
		if err := c.download(job); err != nil {
			return err
		}
	}

	port := c.options.Port()
	if port == "" {
		c.notifyUser(MsgPortNotSelected)
		c.finishJob(job, model.JobStatusError, ErrPortNotSelected)
		return ErrPortNotSelected
	}
	job.Port = port

	c.setJobStatus(job, model.JobStatusFlashing)
	c.notifyUser(MsgFlashing)

	output, err := c.runner.WriteFlash(port, firmware.Images(c.firmwareDir))
	job.Output = string(output)
	if err != nil {
		c.notifyUser(MsgFlashFailed)
		var flashErr *FlashError
		if errors.As(err, &flashErr) {
			logrus.Errorf("Flashing subprocess output: %s", flashErr.Output)
		}
		c.finishJob(job, model.JobStatusError, err)
		return err
	}

	c.notifyUser(MsgFlashCompleted)
	c.finishJob(job, model.JobStatusCompleted, nil)
	return nil
}

// download resolves the selected version and fetches its archive
func (c *Coordinator) download(job *model.FlashJob) error {
	tag, url := c.resolveSelection()
	job.FirmwareURL = url

	c.setJobStatus(job, model.JobStatusDownloading)
	if tag != "" {
		c.notifyUser(fmt.Sprintf(MsgDownloadingVersion, tag))
	}

	if err := c.fetcher.Fetch(url); err != nil {
		if errors.Is(err, firmware.ErrNoVersionSelected) {
			c.notifyUser(MsgVersionNotSelected)
		} else {
			c.notifyUser(MsgDownloadFailed)
		}
		c.finishJob(job, model.JobStatusError, err)
		return err
	}

	c.stateMutex.Lock()
	c.downloaded = true
	c.stateMutex.Unlock()

	return nil
}

// resolveSelection maps the persisted version tag to its asset URL using
// the release snapshot. An unknown or empty tag resolves to an empty URL,
// which the fetcher reports as the distinct no-version error.
func (c *Coordinator) resolveSelection() (tag, url string) {
	tag = c.options.Version()
	if tag == "" {
		return "", ""
	}

	c.stateMutex.Lock()
	defer c.stateMutex.Unlock()
	for _, release := range c.releases {
		if release.TagName == tag {
			return tag, release.DownloadURL
		}
	}
	return tag, ""
}

// isDownloaded reports whether the selected firmware was already fetched
// in this process lifetime
func (c *Coordinator) isDownloaded() bool {
	c.stateMutex.Lock()
	defer c.stateMutex.Unlock()
	return c.downloaded
}

// setJobStatus transitions the job and notifies the update callback
func (c *Coordinator) setJobStatus(job *model.FlashJob, status model.JobStatus) {
	job.Status = status
	if c.onUpdate != nil {
		c.onUpdate(job)
	}
}

// finishJob moves the job to a terminal state
func (c *Coordinator) finishJob(job *model.FlashJob, status model.JobStatus, err error) {
	job.Status = status
	if err != nil {
		job.LastError = err.Error()
	}
	job.FinishedAt = time.Now()
	if c.onUpdate != nil {
		c.onUpdate(job)
	}
}

// notifyUser sends a message to the messaging sink if one is set
func (c *Coordinator) notifyUser(message string) {
	logrus.Info(message)
	if c.notify != nil {
		c.notify(message)
	}
}
