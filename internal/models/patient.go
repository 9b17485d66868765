package models

// Patient represents a patient record. LastVisit is a "YYYY-MM-DD"
// string and is advanced by the appointment status driver when a visit
// is completed.
type Patient struct {
	BaseModel
	Name           string `gorm:"size:255;index;not null" json:"name"`
	BirthYear      int    `json:"birthYear"`
	Gender         string `gorm:"size:10" json:"gender"`
	Address        string `gorm:"size:255" json:"address"`
	Phone          string `gorm:"size:20" json:"phone"`
	LastVisit      string `gorm:"size:10" json:"lastVisit"`
	AvatarURL      string `gorm:"size:255" json:"avatarUrl"`
	MedicalHistory string `gorm:"type:text" json:"medicalHistory,omitempty"`

	// Relations (not always preloaded)
	Documents      []PatientDocument `gorm:"foreignKey:PatientID" json:"documents,omitempty"`
	MedicalRecords []MedicalRecord   `gorm:"foreignKey:PatientID" json:"-"`
}

// PatientDocument is the stored metadata for an uploaded document.
// Only metadata lives here; the file itself is external.
type PatientDocument struct {
	BaseModel
	PatientID  string `gorm:"size:36;index" json:"patientId"`
	Name       string `gorm:"size:255;not null" json:"name"`
	Type       string `gorm:"size:50" json:"type"`
	UploadDate string `gorm:"size:10" json:"uploadDate"`
	URL        string `gorm:"size:255" json:"url"`
}
