package models

// InvoiceStatus represents the payment state of an invoice
type InvoiceStatus string

const (
	InvoicePaid    InvoiceStatus = "Paid"
	InvoicePending InvoiceStatus = "Pending"
	InvoiceOverdue InvoiceStatus = "Overdue"
)

// Invoice represents a bill issued to a patient. Amount is the sum of
// the item amounts and is computed server-side on creation.
type Invoice struct {
	BaseModel
	PatientName string        `gorm:"size:255;index" json:"patientName"`
	Date        string        `gorm:"size:10" json:"date"`
	Amount      float64       `json:"amount"`
	Status      InvoiceStatus `gorm:"size:20;default:'Pending'" json:"status"`

	Items []InvoiceItem `gorm:"foreignKey:InvoiceID" json:"items"`
}

// InvoiceItem is a single billed line on an invoice.
type InvoiceItem struct {
	BaseModel
	InvoiceID   string  `gorm:"size:36;index" json:"-"`
	Description string  `gorm:"size:255" json:"description"`
	Amount      float64 `json:"amount"`
}
