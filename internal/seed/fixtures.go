package seed

import (
	"clinic-app-server/internal/models"
)

// Fixture dates are pinned so the demo dataset is stable: "today" for
// the demo timeline is 2024-07-30, one medication expires inside the
// 15-day alert horizon and one is already expired.
const (
	fixtureToday        = "2024-07-30"
	fixtureExpiringSoon = "2024-08-14"
	fixtureExpired      = "2024-07-25"
)

// DemoPassword is the login password of every seeded staff account.
const DemoPassword = "clinic-demo-2024"

func withID(id string) models.BaseModel {
	return models.BaseModel{ID: id}
}

func staffFixtures() []models.Staff {
	members := []models.Staff{
		{BaseModel: withID("STF001"), Name: "Dr. Adams", Role: models.RoleDoctor, Phone: "555-0101", Email: "adams@clinic.local", AvatarURL: "https://placehold.co/100x100.png"},
		{BaseModel: withID("STF002"), Name: "Dr. Carter", Role: models.RoleDoctor, Phone: "555-0102", Email: "carter@clinic.local", AvatarURL: "https://placehold.co/100x100.png"},
		{BaseModel: withID("STF003"), Name: "Dr. Shaw", Role: models.RoleDoctor, Phone: "555-0103", Email: "shaw@clinic.local", AvatarURL: "https://placehold.co/100x100.png"},
		{BaseModel: withID("STF004"), Name: "Nurse Riley", Role: models.RoleNurse, Phone: "555-0104", Email: "riley@clinic.local", AvatarURL: "https://placehold.co/100x100.png"},
		{BaseModel: withID("STF005"), Name: "Clinic Admin", Role: models.RoleAdmin, Phone: "555-0100", Email: "admin@clinic.local", AvatarURL: "https://placehold.co/100x100.png"},
	}
	for i := range members {
		// Hash errors cannot happen for a non-empty constant password.
		_ = members[i].SetPassword(DemoPassword)
	}
	return members
}

func patientFixtures() []models.Patient {
	return []models.Patient{
		{BaseModel: withID("PAT001"), Name: "John Doe", BirthYear: 1979, Gender: "Male", Phone: "555-0201", LastVisit: "2023-10-15", AvatarURL: "https://placehold.co/100x100.png"},
		{BaseModel: withID("PAT002"), Name: "Jane Smith", BirthYear: 1990, Gender: "Female", Phone: "555-0202", LastVisit: "2023-11-01", AvatarURL: "https://placehold.co/100x100.png"},
		{BaseModel: withID("PAT003"), Name: "Emily Jones", BirthYear: 1996, Gender: "Female", Phone: "555-0203", LastVisit: "2023-11-20", AvatarURL: "https://placehold.co/100x100.png"},
		{BaseModel: withID("PAT004"), Name: "Michael Brown", BirthYear: 1968, Gender: "Male", Phone: "555-0204", LastVisit: "2023-12-05", AvatarURL: "https://placehold.co/100x100.png"},
		{BaseModel: withID("PAT005"), Name: "Chris Wilson", BirthYear: 1983, Gender: "Male", Phone: "555-0205", LastVisit: "2024-01-02", AvatarURL: "https://placehold.co/100x100.png"},
	}
}

func appointmentFixtures() []models.Appointment {
	return []models.Appointment{
		{BaseModel: withID("APP001"), PatientName: "John Doe", DoctorName: "Dr. Adams", Date: fixtureToday, StartTime: "09:00", EndTime: "09:30", Status: models.StatusScheduled},
		{BaseModel: withID("APP002"), PatientName: "Jane Smith", DoctorName: "Dr. Carter", Date: fixtureToday, StartTime: "10:30", EndTime: "11:00", Status: models.StatusScheduled},
		{BaseModel: withID("APP003"), PatientName: "Emily Jones", DoctorName: "Dr. Adams", Date: fixtureToday, StartTime: "11:15", EndTime: "11:45", Status: models.StatusCompleted},
		{BaseModel: withID("APP004"), PatientName: "Robert Paulson", DoctorName: "Dr. Shaw", Date: "2024-06-28", StartTime: "14:00", EndTime: "14:30", Status: models.StatusCancelled},
		{BaseModel: withID("APP005"), PatientName: "Sarah Connor", DoctorName: "Dr. Carter", Date: "2024-07-01", StartTime: "09:30", EndTime: "10:00", Status: models.StatusScheduled},
	}
}

func invoiceFixtures() []models.Invoice {
	return []models.Invoice{
		{BaseModel: withID("INV001"), PatientName: "John Doe", Date: "2023-10-15", Amount: 150.00, Status: models.InvoicePaid,
			Items: []models.InvoiceItem{{Description: "General consultation", Amount: 150.00}}},
		{BaseModel: withID("INV002"), PatientName: "Jane Smith", Date: "2023-11-01", Amount: 75.50, Status: models.InvoicePaid,
			Items: []models.InvoiceItem{{Description: "Follow-up visit", Amount: 75.50}}},
		{BaseModel: withID("INV003"), PatientName: "Emily Jones", Date: "2023-11-20", Amount: 200.00, Status: models.InvoicePending,
			Items: []models.InvoiceItem{{Description: "Consultation", Amount: 120.00}, {Description: "Blood test", Amount: 80.00}}},
		{BaseModel: withID("INV004"), PatientName: "Michael Brown", Date: "2023-12-05", Amount: 310.75, Status: models.InvoiceOverdue,
			Items: []models.InvoiceItem{{Description: "Consultation", Amount: 150.00}, {Description: "X-Ray", Amount: 160.75}}},
		{BaseModel: withID("INV005"), PatientName: "Chris Wilson", Date: "2024-01-02", Amount: 50.00, Status: models.InvoicePaid,
			Items: []models.InvoiceItem{{Description: "Prescription renewal", Amount: 50.00}}},
	}
}

func medicationFixtures() []models.Medication {
	return []models.Medication{
		{BaseModel: withID("MED001"), Name: "Paracetamol 500mg", ActiveIngredient: "Paracetamol", Concentration: "500mg", DosageForm: "Tablet", Unit: "Tablet", BatchNo: "B0123", ExpiryDate: "2025-12-31", Stock: 150, MinStockThreshold: 50, SellPrice: 0.10},
		{BaseModel: withID("MED002"), Name: "Amoxicillin 250mg", ActiveIngredient: "Amoxicillin", Concentration: "250mg", DosageForm: "Capsule", Unit: "Capsule", BatchNo: "B0456", ExpiryDate: fixtureExpiringSoon, Stock: 75, MinStockThreshold: 40, SellPrice: 0.35},
		{BaseModel: withID("MED003"), Name: "Ibuprofen 200mg", ActiveIngredient: "Ibuprofen", Concentration: "200mg", DosageForm: "Tablet", Unit: "Tablet", BatchNo: "B0789", ExpiryDate: "2024-08-31", Stock: 200, MinStockThreshold: 60, SellPrice: 0.15},
		{BaseModel: withID("MED004"), Name: "Aspirin 100mg", ActiveIngredient: "Acetylsalicylic acid", Concentration: "100mg", DosageForm: "Tablet", Unit: "Tablet", BatchNo: "B1011", ExpiryDate: fixtureExpired, Stock: 40, MinStockThreshold: 50, SellPrice: 0.08},
		{BaseModel: withID("MED005"), Name: "Lisinopril 10mg", ActiveIngredient: "Lisinopril", Concentration: "10mg", DosageForm: "Tablet", Unit: "Tablet", BatchNo: "B1213", ExpiryDate: "2026-01-31", Stock: 90, MinStockThreshold: 30, SellPrice: 0.22},
	}
}

func documentFixtures() []models.PatientDocument {
	return []models.PatientDocument{
		{BaseModel: withID("DOC001"), PatientID: "PAT001", Name: "Ultrasound_Scan_Abdomen.pdf", Type: "Ultrasound", UploadDate: "2023-10-15", URL: "#"},
		{BaseModel: withID("DOC002"), PatientID: "PAT001", Name: "Blood_Test_Results_Jan23.pdf", Type: "Blood Test", UploadDate: "2023-10-14", URL: "#"},
		{BaseModel: withID("DOC003"), PatientID: "PAT004", Name: "Chest_XRay_Report.pdf", Type: "X-Ray", UploadDate: "2023-09-20", URL: "#"},
		{BaseModel: withID("DOC004"), PatientID: "PAT002", Name: "Prescription_Amoxicillin.pdf", Type: "Prescription", UploadDate: "2023-10-15", URL: "#"},
	}
}
