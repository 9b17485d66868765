package models

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusScheduled AppointmentStatus = "Scheduled"
	StatusCompleted AppointmentStatus = "Completed"
	StatusCancelled AppointmentStatus = "Cancelled"
)

// Appointment represents a booked slot on a doctor's daily timeline.
// Date is "YYYY-MM-DD" and StartTime/EndTime are zero-padded 24-hour
// "HH:mm" strings; these exact formats are the wire contract for data
// already in the store, so they are kept as strings rather than
// time.Time columns. Zero-padding makes lexicographic comparison valid.
type Appointment struct {
	BaseModel
	PatientName string            `gorm:"size:255;index" json:"patientName"`
	DoctorName  string            `gorm:"size:255;index:idx_doctor_date" json:"doctorName"`
	Date        string            `gorm:"size:10;index:idx_doctor_date" json:"date"`
	StartTime   string            `gorm:"size:5" json:"startTime"`
	EndTime     string            `gorm:"size:5" json:"endTime"`
	Status      AppointmentStatus `gorm:"size:20;default:'Scheduled'" json:"status"`
	Notes       string            `gorm:"type:text" json:"notes,omitempty"`
}
