package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// JobIDPrefix is prepended to generated flash job IDs
const JobIDPrefix = "flash-"

// FlashJob represents a single flash request from start to finish.
// Jobs are transient; they are not persisted anywhere.
type FlashJob struct {
	ID          string
	Port        string // serial port the firmware is written through
	FirmwareURL string // asset URL the firmware was resolved from
	Status      JobStatus
	Output      string // captured subprocess output, set on flash failure
	LastError   string // last error message if any
	StartedAt   time.Time
	FinishedAt  time.Time
}

// NewFlashJob creates a pending flash job with a fresh ID
func NewFlashJob() *FlashJob {
	return &FlashJob{
		ID:        generateJobID(),
		Status:    JobStatusPending,
		StartedAt: time.Now(),
	}
}

// generateJobID generates a unique job ID using UUID v7 for better uniqueness and time ordering
func generateJobID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to timestamp if UUID generation fails
		return fmt.Sprintf(JobIDPrefix+"%d", time.Now().UnixNano())
	}
	return JobIDPrefix + id.String()
}
