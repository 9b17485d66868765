package models

// MedicalRecord documents a completed visit: symptoms, diagnosis and
// treatment, with an optional free-text prescription. It references the
// patient both by ID and by display name because appointments carry
// names only.
type MedicalRecord struct {
	BaseModel
	PatientID       string `gorm:"size:36;index" json:"patientId"`
	PatientName     string `gorm:"size:255" json:"patientName"`
	AppointmentID   string `gorm:"size:36;index" json:"appointmentId"`
	Date            string `gorm:"size:10" json:"date"`
	DoctorName      string `gorm:"size:255" json:"doctorName"`
	Symptoms        string `gorm:"type:text" json:"symptoms"`
	Diagnosis       string `gorm:"type:text" json:"diagnosis"`
	Treatment       string `gorm:"type:text" json:"treatment"`
	Prescription    string `gorm:"type:text" json:"prescription,omitempty"`
	NextAppointment string `gorm:"size:10" json:"nextAppointment,omitempty"`
	Notes           string `gorm:"type:text" json:"notes,omitempty"`
}
