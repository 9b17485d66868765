package models

// Medication represents one inventory item in the clinic pharmacy.
// ExpiryDate is a "YYYY-MM-DD" string like every other stored date.
type Medication struct {
	BaseModel
	Name                string  `gorm:"size:255;index;not null" json:"name"`
	ActiveIngredient    string  `gorm:"size:255" json:"activeIngredient"`
	Concentration       string  `gorm:"size:50" json:"concentration"`
	DosageForm          string  `gorm:"size:100" json:"dosageForm"`
	Unit                string  `gorm:"size:50" json:"unit"`
	Manufacturer        string  `gorm:"size:255" json:"manufacturer"`
	ManufacturerCountry string  `gorm:"size:100" json:"manufacturerCountry"`
	RegistrationNumber  string  `gorm:"size:100" json:"registrationNumber"`
	Supplier            string  `gorm:"size:255" json:"supplier"`
	ImportPrice         float64 `json:"importPrice"`
	SellPrice           float64 `json:"sellPrice"`
	StorageLocation     string  `gorm:"size:100" json:"storageLocation"`
	MinStockThreshold   int     `json:"minStockThreshold"`
	BatchNo             string  `gorm:"size:50" json:"batchNo"`
	ExpiryDate          string  `gorm:"size:10" json:"expiryDate"`
	Stock               int     `json:"stock"`
	Status              string  `gorm:"size:50" json:"status,omitempty"`
}
