package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"clinic-app-server/internal/models"
	"clinic-app-server/internal/schedule"
	"clinic-app-server/internal/utils"
)

// RecordHandler handles medical records written after a visit.
type RecordHandler struct {
	DB  *gorm.DB
	Log *zap.Logger
}

// NewRecordHandler creates a new RecordHandler.
func NewRecordHandler(db *gorm.DB, log *zap.Logger) *RecordHandler {
	return &RecordHandler{DB: db, Log: log}
}

// CreateRecordRequest represents the request body for writing a
// medical record, typically right after completing an appointment.
type CreateRecordRequest struct {
	PatientID       string `json:"patientId" binding:"required"`
	AppointmentID   string `json:"appointmentId"`
	Date            string `json:"date" binding:"required"`
	DoctorName      string `json:"doctorName" binding:"required"`
	Symptoms        string `json:"symptoms" binding:"required"`
	Diagnosis       string `json:"diagnosis" binding:"required"`
	Treatment       string `json:"treatment" binding:"required"`
	Prescription    string `json:"prescription"`
	NextAppointment string `json:"nextAppointment"`
	Notes           string `json:"notes"`
}

// CreateRecord writes a medical record for a patient visit.
func (h *RecordHandler) CreateRecord(c *gin.Context) {
	var req CreateRecordRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}
	if !schedule.IsValidDate(req.Date) {
		utils.BadRequest(c, "date must be YYYY-MM-DD")
		return
	}
	if req.NextAppointment != "" && !schedule.IsValidDate(req.NextAppointment) {
		utils.BadRequest(c, "nextAppointment must be YYYY-MM-DD")
		return
	}

	var patient models.Patient
	if err := h.DB.First(&patient, "id = ?", req.PatientID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFound(c, "Patient not found")
		} else {
			h.Log.Error("failed to fetch patient", zap.String("id", req.PatientID), zap.Error(err))
			utils.InternalServerError(c, "Database error")
		}
		return
	}

	if req.AppointmentID != "" {
		var appointment models.Appointment
		if err := h.DB.First(&appointment, "id = ?", req.AppointmentID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				utils.NotFound(c, "Appointment not found")
			} else {
				h.Log.Error("failed to fetch appointment", zap.String("id", req.AppointmentID), zap.Error(err))
				utils.InternalServerError(c, "Database error")
			}
			return
		}
	}

	record := models.MedicalRecord{
		PatientID:       patient.ID,
		PatientName:     patient.Name,
		AppointmentID:   req.AppointmentID,
		Date:            req.Date,
		DoctorName:      req.DoctorName,
		Symptoms:        req.Symptoms,
		Diagnosis:       req.Diagnosis,
		Treatment:       req.Treatment,
		Prescription:    req.Prescription,
		NextAppointment: req.NextAppointment,
		Notes:           req.Notes,
	}
	if err := h.DB.Create(&record).Error; err != nil {
		h.Log.Error("failed to create medical record", zap.String("patientId", patient.ID), zap.Error(err))
		utils.InternalServerError(c, "Failed to create medical record")
		return
	}

	utils.Created(c, "Medical record created successfully", record)
}
