package model

// TaskStatus represents the status of a job item
type TaskStatus string

const (
	// TaskStatusPending means the item is queued but not started
	TaskStatusPending TaskStatus = "Pending"

	// TaskStatusDownloading means the requested operations are running
	TaskStatusDownloading TaskStatus = "Downloading"

	// TaskStatusCompleted means every requested operation finished successfully
	TaskStatusCompleted TaskStatus = "Completed"

	// TaskStatusError means an operation failed and the run was aborted
	TaskStatusError TaskStatus = "Error"
)

// String returns the string representation of TaskStatus
func (ts TaskStatus) String() string {
	return string(ts)
}

// IsFinished returns true if the item is in a finished state (completed or error)
func (ts TaskStatus) IsFinished() bool {
	return ts == TaskStatusCompleted || ts == TaskStatusError
}
