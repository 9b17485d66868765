package handlers_test

import (
	"net/http"
	"testing"

	"clinic-app-server/internal/models"
)

func TestCreateInvoiceComputesTotal(t *testing.T) {
	router, db, cfg := newTestApp(t)
	token := newStaffToken(t, db, cfg, "Front Desk", models.RoleAdmin)

	rec := doRequest(t, router, http.MethodPost, "/api/v1/invoices", token, map[string]interface{}{
		"patientName": "John Doe",
		"date":        "2024-08-01",
		// A client-supplied total is ignored; the items decide.
		"amount": 9999.99,
		"items": []map[string]interface{}{
			{"description": "Consultation", "amount": 120.00},
			{"description": "Blood test", "amount": 80.50},
		},
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create invoice returned %d: %s", rec.Code, rec.Body.String())
	}

	var invoice models.Invoice
	decodeData(t, rec, &invoice)
	if invoice.Amount != 200.50 {
		t.Fatalf("invoice amount = %v, want 200.50", invoice.Amount)
	}
	if invoice.Status != models.InvoicePending {
		t.Fatalf("new invoice status = %s, want Pending", invoice.Status)
	}
	if len(invoice.Items) != 2 {
		t.Fatalf("invoice has %d items, want 2", len(invoice.Items))
	}
}

func TestCreateInvoiceRequiresItems(t *testing.T) {
	router, db, cfg := newTestApp(t)
	token := newStaffToken(t, db, cfg, "Front Desk", models.RoleAdmin)

	rec := doRequest(t, router, http.MethodPost, "/api/v1/invoices", token, map[string]interface{}{
		"patientName": "John Doe",
		"date":        "2024-08-01",
		"items":       []map[string]interface{}{},
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("invoice without items returned %d, want 400", rec.Code)
	}
}

func TestInvoiceStatusFilterAndUpdate(t *testing.T) {
	router, db, cfg := newTestApp(t)
	token := newStaffToken(t, db, cfg, "Front Desk", models.RoleAdmin)

	rows := []models.Invoice{
		{PatientName: "John Doe", Date: "2024-08-01", Amount: 100, Status: models.InvoicePending,
			Items: []models.InvoiceItem{{Description: "Consultation", Amount: 100}}},
		{PatientName: "Jane Smith", Date: "2024-08-02", Amount: 50, Status: models.InvoicePaid,
			Items: []models.InvoiceItem{{Description: "Follow-up", Amount: 50}}},
	}
	if err := db.Create(&rows).Error; err != nil {
		t.Fatal(err)
	}

	rec := doRequest(t, router, http.MethodGet, "/api/v1/invoices?status=Pending", token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("list returned %d", rec.Code)
	}
	var invoices []models.Invoice
	decodeData(t, rec, &invoices)
	if len(invoices) != 1 || invoices[0].PatientName != "John Doe" {
		t.Fatalf("pending filter returned %d invoices: %+v", len(invoices), invoices)
	}
	if len(invoices[0].Items) != 1 {
		t.Fatalf("listed invoice missing items")
	}

	rec = doRequest(t, router, http.MethodPatch, "/api/v1/invoices/"+rows[0].ID+"/status", token,
		map[string]string{"status": "Paid"})
	if rec.Code != http.StatusOK {
		t.Fatalf("status update returned %d: %s", rec.Code, rec.Body.String())
	}
	var updated models.Invoice
	if err := db.First(&updated, "id = ?", rows[0].ID).Error; err != nil {
		t.Fatal(err)
	}
	if updated.Status != models.InvoicePaid {
		t.Fatalf("stored status = %s, want Paid", updated.Status)
	}

	rec = doRequest(t, router, http.MethodPatch, "/api/v1/invoices/"+rows[0].ID+"/status", token,
		map[string]string{"status": "Refunded"})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("unknown invoice status returned %d, want 400", rec.Code)
	}

	rec = doRequest(t, router, http.MethodPatch, "/api/v1/invoices/nope/status", token,
		map[string]string{"status": "Paid"})
	if rec.Code != http.StatusNotFound {
		t.Fatalf("missing invoice returned %d, want 404", rec.Code)
	}
}
