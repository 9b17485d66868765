package seed

import (
	"fmt"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"clinic-app-server/internal/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.New().String())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := models.Migrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

func count(t *testing.T, db *gorm.DB, model interface{}) int64 {
	t.Helper()
	var n int64
	if err := db.Model(model).Count(&n).Error; err != nil {
		t.Fatal(err)
	}
	return n
}

func TestRunSeedsEmptyTables(t *testing.T) {
	db := newTestDB(t)
	Run(db, zap.NewNop())

	if n := count(t, db, &models.Staff{}); n != 5 {
		t.Errorf("staff rows = %d, want 5", n)
	}
	if n := count(t, db, &models.Patient{}); n != 5 {
		t.Errorf("patient rows = %d, want 5", n)
	}
	if n := count(t, db, &models.Appointment{}); n != 5 {
		t.Errorf("appointment rows = %d, want 5", n)
	}
	if n := count(t, db, &models.Invoice{}); n != 5 {
		t.Errorf("invoice rows = %d, want 5", n)
	}
	if n := count(t, db, &models.Medication{}); n != 5 {
		t.Errorf("medication rows = %d, want 5", n)
	}
	if n := count(t, db, &models.PatientDocument{}); n != 4 {
		t.Errorf("document rows = %d, want 4", n)
	}

	// Fixture IDs are preserved so the demo dataset is addressable.
	var appointment models.Appointment
	if err := db.First(&appointment, "id = ?", "APP001").Error; err != nil {
		t.Fatalf("fixture APP001 not found: %v", err)
	}
	if appointment.DoctorName != "Dr. Adams" || appointment.StartTime != "09:00" {
		t.Errorf("unexpected APP001: %+v", appointment)
	}

	// Seeded staff can log in with the demo password.
	var admin models.Staff
	if err := db.First(&admin, "email = ?", "admin@clinic.local").Error; err != nil {
		t.Fatalf("seeded admin not found: %v", err)
	}
	if !admin.CheckPassword(DemoPassword) {
		t.Error("seeded admin password does not verify")
	}
}

func TestRunIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	Run(db, zap.NewNop())
	Run(db, zap.NewNop())

	if n := count(t, db, &models.Staff{}); n != 5 {
		t.Errorf("staff rows after second run = %d, want 5", n)
	}
	if n := count(t, db, &models.Appointment{}); n != 5 {
		t.Errorf("appointment rows after second run = %d, want 5", n)
	}
}

func TestRunSkipsNonEmptyTables(t *testing.T) {
	db := newTestDB(t)

	existing := models.Patient{Name: "Real Patient", BirthYear: 1985}
	if err := db.Create(&existing).Error; err != nil {
		t.Fatal(err)
	}

	Run(db, zap.NewNop())

	// The pre-populated table keeps only its real row; empty tables are
	// still seeded.
	if n := count(t, db, &models.Patient{}); n != 1 {
		t.Errorf("patient rows = %d, want 1", n)
	}
	if n := count(t, db, &models.Staff{}); n != 5 {
		t.Errorf("staff rows = %d, want 5", n)
	}
}
