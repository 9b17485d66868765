package schedule

import (
	"errors"

	"clinic-app-server/internal/models"
)

// ErrInvalidTransition is returned when an appointment status change is
// not allowed by the workflow.
var ErrInvalidTransition = errors.New("invalid status transition")

// CanTransition reports whether an appointment may move from one status
// to another. The workflow is one-directional: a Scheduled appointment
// may be Completed or Cancelled, and neither terminal state can be left
// again. Re-applying the current status is permitted so retried
// requests stay idempotent.
func CanTransition(from, to models.AppointmentStatus) bool {
	if from == to {
		return true
	}
	if from != models.StatusScheduled {
		return false
	}
	return to == models.StatusCompleted || to == models.StatusCancelled
}

// ValidStatus reports whether s is one of the three appointment states.
func ValidStatus(s models.AppointmentStatus) bool {
	switch s {
	case models.StatusScheduled, models.StatusCompleted, models.StatusCancelled:
		return true
	}
	return false
}
