package handlers_test

import (
	"net/http"
	"testing"

	"clinic-app-server/internal/models"
)

func medicationBody(name, expiry string, stock, threshold int) map[string]interface{} {
	return map[string]interface{}{
		"name":              name,
		"unit":              "Tablet",
		"expiryDate":        expiry,
		"stock":             stock,
		"minStockThreshold": threshold,
		"sellPrice":         0.10,
	}
}

func TestCreateMedicationValidatesExpiry(t *testing.T) {
	router, db, cfg := newTestApp(t)
	token := newStaffToken(t, db, cfg, "Front Desk", models.RoleAdmin)

	rec := doRequest(t, router, http.MethodPost, "/api/v1/medications", token,
		medicationBody("Paracetamol 500mg", "31-12-2025", 100, 50))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("bad expiry date returned %d, want 400", rec.Code)
	}

	rec = doRequest(t, router, http.MethodPost, "/api/v1/medications", token,
		medicationBody("Paracetamol 500mg", "2025-12-31", 100, 50))
	if rec.Code != http.StatusCreated {
		t.Fatalf("create medication returned %d: %s", rec.Code, rec.Body.String())
	}
}

func TestInventoryAlerts(t *testing.T) {
	router, db, cfg := newTestApp(t)
	token := newStaffToken(t, db, cfg, "Front Desk", models.RoleAdmin)

	rows := []models.Medication{
		// Stock at the threshold counts as low.
		{Name: "At Threshold", Unit: "Tablet", ExpiryDate: "2025-12-31", Stock: 50, MinStockThreshold: 50},
		{Name: "Low Stock", Unit: "Tablet", ExpiryDate: "2025-12-31", Stock: 10, MinStockThreshold: 40},
		{Name: "Healthy", Unit: "Tablet", ExpiryDate: "2025-12-31", Stock: 200, MinStockThreshold: 40},
		// 15 days past the reference date is the last day inside the horizon.
		{Name: "Expiring Soon", Unit: "Capsule", ExpiryDate: "2024-08-14", Stock: 100, MinStockThreshold: 10},
		{Name: "Just Outside", Unit: "Capsule", ExpiryDate: "2024-08-15", Stock: 100, MinStockThreshold: 10},
		{Name: "Expired", Unit: "Tablet", ExpiryDate: "2024-07-25", Stock: 100, MinStockThreshold: 10},
	}
	if err := db.Create(&rows).Error; err != nil {
		t.Fatal(err)
	}

	rec := doRequest(t, router, http.MethodGet, "/api/v1/medications/alerts?date=2024-07-30", token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("alerts returned %d: %s", rec.Code, rec.Body.String())
	}

	var alerts struct {
		LowStock     []models.Medication `json:"lowStock"`
		ExpiringSoon []models.Medication `json:"expiringSoon"`
		Expired      []models.Medication `json:"expired"`
	}
	decodeData(t, rec, &alerts)

	names := func(ms []models.Medication) map[string]bool {
		set := make(map[string]bool, len(ms))
		for _, m := range ms {
			set[m.Name] = true
		}
		return set
	}

	low := names(alerts.LowStock)
	if len(low) != 2 || !low["At Threshold"] || !low["Low Stock"] {
		t.Fatalf("unexpected low stock set: %v", low)
	}
	soon := names(alerts.ExpiringSoon)
	if len(soon) != 1 || !soon["Expiring Soon"] {
		t.Fatalf("unexpected expiring soon set: %v", soon)
	}
	expired := names(alerts.Expired)
	if len(expired) != 1 || !expired["Expired"] {
		t.Fatalf("unexpected expired set: %v", expired)
	}

	rec = doRequest(t, router, http.MethodGet, "/api/v1/medications/alerts?date=bad", token, nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("bad alert date returned %d, want 400", rec.Code)
	}
}

func TestUpdateMedication(t *testing.T) {
	router, db, cfg := newTestApp(t)
	token := newStaffToken(t, db, cfg, "Front Desk", models.RoleAdmin)

	medication := models.Medication{Name: "Ibuprofen 200mg", Unit: "Tablet", ExpiryDate: "2024-08-31", Stock: 200, MinStockThreshold: 60}
	if err := db.Create(&medication).Error; err != nil {
		t.Fatal(err)
	}

	rec := doRequest(t, router, http.MethodPut, "/api/v1/medications/"+medication.ID, token,
		medicationBody("Ibuprofen 200mg", "2025-08-31", 150, 60))
	if rec.Code != http.StatusOK {
		t.Fatalf("update returned %d: %s", rec.Code, rec.Body.String())
	}

	var updated models.Medication
	if err := db.First(&updated, "id = ?", medication.ID).Error; err != nil {
		t.Fatal(err)
	}
	if updated.Stock != 150 || updated.ExpiryDate != "2025-08-31" {
		t.Fatalf("update not stored: stock=%d expiry=%s", updated.Stock, updated.ExpiryDate)
	}

	rec = doRequest(t, router, http.MethodPut, "/api/v1/medications/nope", token,
		medicationBody("Ghost", "2025-08-31", 1, 1))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("missing medication returned %d, want 404", rec.Code)
	}
}
