// Package seed populates empty collections with demo fixture data on
// startup, mirroring the seed-on-first-read behavior of the stored
// datasets. Non-empty tables are never touched, so real data always
// wins over fixtures.
package seed

import (
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Run seeds every empty clinic table. A failing collection is logged
// and skipped; the remaining collections are still seeded.
func Run(db *gorm.DB, log *zap.Logger) {
	seedTable(db, log, "staff", staffFixtures())
	seedTable(db, log, "patients", patientFixtures())
	seedTable(db, log, "appointments", appointmentFixtures())
	seedTable(db, log, "invoices", invoiceFixtures())
	seedTable(db, log, "medications", medicationFixtures())
	seedTable(db, log, "documents", documentFixtures())
}

func seedTable[T any](db *gorm.DB, log *zap.Logger, name string, rows []T) {
	var count int64
	if err := db.Model(new(T)).Count(&count).Error; err != nil {
		log.Error("failed to inspect collection before seeding", zap.String("collection", name), zap.Error(err))
		return
	}
	if count > 0 {
		return
	}
	if err := db.Create(&rows).Error; err != nil {
		log.Error("failed to seed collection", zap.String("collection", name), zap.Error(err))
		return
	}
	log.Info("seeded collection", zap.String("collection", name), zap.Int("rows", len(rows)))
}
