package model

// JobStatus represents the status of a flash job
type JobStatus string

const (
	// JobStatusPending means the job was accepted but work has not started yet
	JobStatusPending JobStatus = "Pending"

	// JobStatusDownloading means the firmware archive is being fetched
	JobStatusDownloading JobStatus = "Downloading"

	// JobStatusFlashing means the flashing subprocess is running
	JobStatusFlashing JobStatus = "Flashing"

	// JobStatusCompleted means the job finished successfully
	JobStatusCompleted JobStatus = "Completed"

	// JobStatusError means the job failed with an error
	JobStatusError JobStatus = "Error"

	// JobStatusRejected means the job was turned away because another flash
	// was already in progress; a rejected job never held the gate
	JobStatusRejected JobStatus = "Rejected"
)

// String returns the string representation of JobStatus
func (js JobStatus) String() string {
	return string(js)
}

// IsActive returns true if the job is in an active state
func (js JobStatus) IsActive() bool {
	return js == JobStatusPending || js == JobStatusDownloading || js == JobStatusFlashing
}

// IsFinished returns true if the job is in a terminal state
func (js JobStatus) IsFinished() bool {
	return js == JobStatusCompleted || js == JobStatusError || js == JobStatusRejected
}
