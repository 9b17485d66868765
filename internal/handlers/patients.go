package handlers

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"clinic-app-server/internal/models"
	"clinic-app-server/internal/utils"
)

// PatientHandler handles patient records, their document metadata and
// their medical record history.
type PatientHandler struct {
	DB  *gorm.DB
	Log *zap.Logger
}

// NewPatientHandler creates a new PatientHandler.
func NewPatientHandler(db *gorm.DB, log *zap.Logger) *PatientHandler {
	return &PatientHandler{DB: db, Log: log}
}

// CreatePatientRequest represents the request body for registering a patient.
type CreatePatientRequest struct {
	Name           string `json:"name" binding:"required,min=2"`
	BirthYear      int    `json:"birthYear" binding:"required"`
	Gender         string `json:"gender" binding:"required,oneof=Male Female Other"`
	Address        string `json:"address"`
	Phone          string `json:"phone"`
	AvatarURL      string `json:"avatarUrl"`
	MedicalHistory string `json:"medicalHistory"`
}

// CreatePatient registers a new patient. The first lastVisit is the
// registration day.
func (h *PatientHandler) CreatePatient(c *gin.Context) {
	var req CreatePatientRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	patient := models.Patient{
		Name:           req.Name,
		BirthYear:      req.BirthYear,
		Gender:         req.Gender,
		Address:        req.Address,
		Phone:          req.Phone,
		AvatarURL:      req.AvatarURL,
		MedicalHistory: req.MedicalHistory,
		LastVisit:      time.Now().Format("2006-01-02"),
	}
	if err := h.DB.Create(&patient).Error; err != nil {
		h.Log.Error("failed to create patient", zap.String("name", req.Name), zap.Error(err))
		utils.InternalServerError(c, "Failed to create patient")
		return
	}

	utils.Created(c, "Patient created successfully", patient)
}

// GetPatients lists all patients, optionally filtered by name.
func (h *PatientHandler) GetPatients(c *gin.Context) {
	query := h.DB.Order("name asc")
	if name := c.Query("name"); name != "" {
		query = query.Where("name LIKE ?", "%"+name+"%")
	}

	var patients []models.Patient
	if err := query.Find(&patients).Error; err != nil {
		h.Log.Error("failed to list patients", zap.Error(err))
		utils.InternalServerError(c, "Failed to fetch patients")
		return
	}

	utils.Success(c, "Patients fetched successfully", patients)
}

// GetPatientByID fetches one patient with their document metadata.
func (h *PatientHandler) GetPatientByID(c *gin.Context) {
	var patient models.Patient
	if err := h.DB.Preload("Documents").First(&patient, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFound(c, "Patient not found")
		} else {
			h.Log.Error("failed to fetch patient", zap.String("id", c.Param("id")), zap.Error(err))
			utils.InternalServerError(c, "Database error")
		}
		return
	}

	utils.Success(c, "Patient fetched successfully", patient)
}

// UpdatePatientRequest represents the request body for editing a patient.
type UpdatePatientRequest struct {
	Name           string `json:"name" binding:"required,min=2"`
	BirthYear      int    `json:"birthYear" binding:"required"`
	Gender         string `json:"gender" binding:"required,oneof=Male Female Other"`
	Address        string `json:"address"`
	Phone          string `json:"phone"`
	AvatarURL      string `json:"avatarUrl"`
	MedicalHistory string `json:"medicalHistory"`
}

// UpdatePatient edits a patient's demographic fields. lastVisit is
// owned by the appointment status driver and cannot be set here.
func (h *PatientHandler) UpdatePatient(c *gin.Context) {
	var req UpdatePatientRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	var patient models.Patient
	if err := h.DB.First(&patient, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFound(c, "Patient not found")
		} else {
			h.Log.Error("failed to fetch patient", zap.String("id", c.Param("id")), zap.Error(err))
			utils.InternalServerError(c, "Database error")
		}
		return
	}

	patient.Name = req.Name
	patient.BirthYear = req.BirthYear
	patient.Gender = req.Gender
	patient.Address = req.Address
	patient.Phone = req.Phone
	patient.AvatarURL = req.AvatarURL
	patient.MedicalHistory = req.MedicalHistory

	if err := h.DB.Save(&patient).Error; err != nil {
		h.Log.Error("failed to update patient", zap.String("id", patient.ID), zap.Error(err))
		utils.InternalServerError(c, "Failed to update patient")
		return
	}

	utils.Success(c, "Patient updated successfully", patient)
}

// AddDocumentRequest represents the metadata of an uploaded document.
// The file itself lives in external storage; only its descriptor is
// recorded here.
type AddDocumentRequest struct {
	Name       string `json:"name" binding:"required"`
	Type       string `json:"type" binding:"required"`
	UploadDate string `json:"uploadDate"`
	URL        string `json:"url"`
}

// AddPatientDocument attaches document metadata to a patient.
func (h *PatientHandler) AddPatientDocument(c *gin.Context) {
	var req AddDocumentRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	patientID := c.Param("id")
	var patient models.Patient
	if err := h.DB.First(&patient, "id = ?", patientID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFound(c, "Patient not found")
		} else {
			h.Log.Error("failed to fetch patient", zap.String("id", patientID), zap.Error(err))
			utils.InternalServerError(c, "Database error")
		}
		return
	}

	uploadDate := req.UploadDate
	if uploadDate == "" {
		uploadDate = time.Now().Format("2006-01-02")
	}
	document := models.PatientDocument{
		PatientID:  patient.ID,
		Name:       req.Name,
		Type:       req.Type,
		UploadDate: uploadDate,
		URL:        req.URL,
	}
	if err := h.DB.Create(&document).Error; err != nil {
		h.Log.Error("failed to add patient document", zap.String("patientId", patient.ID), zap.Error(err))
		utils.InternalServerError(c, "Failed to add document")
		return
	}

	utils.Created(c, "Document added successfully", document)
}

// GetPatientDocuments lists a patient's document metadata.
func (h *PatientHandler) GetPatientDocuments(c *gin.Context) {
	var documents []models.PatientDocument
	if err := h.DB.Where("patient_id = ?", c.Param("id")).
		Order("upload_date desc").Find(&documents).Error; err != nil {
		h.Log.Error("failed to list patient documents", zap.String("patientId", c.Param("id")), zap.Error(err))
		utils.InternalServerError(c, "Failed to fetch documents")
		return
	}

	utils.Success(c, "Documents fetched successfully", documents)
}

// GetPatientRecords lists a patient's medical record history.
func (h *PatientHandler) GetPatientRecords(c *gin.Context) {
	var records []models.MedicalRecord
	if err := h.DB.Where("patient_id = ?", c.Param("id")).
		Order("date desc").Find(&records).Error; err != nil {
		h.Log.Error("failed to list medical records", zap.String("patientId", c.Param("id")), zap.Error(err))
		utils.InternalServerError(c, "Failed to fetch medical records")
		return
	}

	utils.Success(c, "Medical records fetched successfully", records)
}
