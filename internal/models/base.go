package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// BaseModel contains common columns for all tables
type BaseModel struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BeforeCreate assigns a UUID unless an ID was provided. Seed fixtures
// keep their original IDs (e.g. "APP001") so stored references survive.
func (base *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if base.ID == "" {
		base.ID = uuid.New().String()
	}
	return nil
}

// Migrate runs the schema migration for every clinic entity. Shared by
// InitDB and the test helpers so both run against the same schema.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Staff{},
		&Patient{},
		&PatientDocument{},
		&Appointment{},
		&MedicalRecord{},
		&Invoice{},
		&InvoiceItem{},
		&Medication{},
	)
}

// InitDB opens the MySQL connection and migrates the schema.
func InitDB(config DatabaseConfig) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(config.DSN), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	return db, nil
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	DSN string
}
