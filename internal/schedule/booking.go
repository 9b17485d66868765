package schedule

import "fmt"

// FieldError is a validation failure attached to a single form field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateBooking checks field presence, time formats and interval
// ordering on a booking candidate. It returns one error per failing
// field so the client can surface them next to the inputs; an empty
// slice means the candidate is well-formed. Conflict checking is a
// separate step (FindConflict) that needs the existing appointments.
func ValidateBooking(c Candidate) []FieldError {
	var errs []FieldError

	if len(c.PatientName) < 2 {
		errs = append(errs, FieldError{"patientName", "patient name must be at least 2 characters"})
	}
	if c.DoctorName == "" {
		errs = append(errs, FieldError{"doctorName", "doctor is required"})
	}
	if !IsValidDate(c.Date) {
		errs = append(errs, FieldError{"date", "date must be YYYY-MM-DD"})
	}
	startOK := IsValidTime(c.StartTime)
	if !startOK {
		errs = append(errs, FieldError{"startTime", "time must be HH:mm"})
	}
	endOK := IsValidTime(c.EndTime)
	if !endOK {
		errs = append(errs, FieldError{"endTime", "time must be HH:mm"})
	}
	// Zero-padded HH:mm compares correctly as strings.
	if startOK && endOK && c.EndTime <= c.StartTime {
		errs = append(errs, FieldError{"endTime", "end time must be after start time"})
	}

	return errs
}
