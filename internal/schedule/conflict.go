package schedule

import (
	"clinic-app-server/internal/models"
)

// Candidate is a booking request before it becomes an appointment.
type Candidate struct {
	PatientName string
	DoctorName  string
	Date        string
	StartTime   string
	EndTime     string
	Notes       string
}

// FindConflict returns the first existing Scheduled appointment for the
// same doctor and date whose [StartTime, EndTime) interval strictly
// overlaps the candidate's, or nil when the slot is free. Intervals are
// half-open: an appointment ending at 09:00 does not collide with one
// starting at 09:00. Cancelled and Completed appointments never block a
// slot.
//
// A candidate with an empty doctor or date is vacuously conflict-free,
// so a partially filled booking form can validate progressively. The
// scan is linear; a doctor has tens of appointments per day at most.
func FindConflict(c Candidate, existing []models.Appointment) *models.Appointment {
	if c.DoctorName == "" || c.Date == "" {
		return nil
	}
	start, err := ToMinutes(c.StartTime)
	if err != nil {
		return nil
	}
	end, err := ToMinutes(c.EndTime)
	if err != nil {
		return nil
	}

	for i := range existing {
		other := &existing[i]
		if other.DoctorName != c.DoctorName || other.Date != c.Date {
			continue
		}
		if other.Status != models.StatusScheduled {
			continue
		}
		otherStart, err := ToMinutes(other.StartTime)
		if err != nil {
			continue
		}
		otherEnd, err := ToMinutes(other.EndTime)
		if err != nil {
			continue
		}
		if start < otherEnd && end > otherStart {
			return other
		}
	}
	return nil
}

// HasConflict reports whether the candidate overlaps any Scheduled
// appointment for the same doctor on the same date.
func HasConflict(c Candidate, existing []models.Appointment) bool {
	return FindConflict(c, existing) != nil
}
