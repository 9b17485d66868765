package handlers

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"clinic-app-server/internal/models"
	"clinic-app-server/internal/schedule"
	"clinic-app-server/internal/utils"
)

// Medications expiring within this many days show up as alerts.
const expiryHorizonDays = 15

// InventoryHandler handles the medication inventory.
type InventoryHandler struct {
	DB  *gorm.DB
	Log *zap.Logger
}

// NewInventoryHandler creates a new InventoryHandler.
func NewInventoryHandler(db *gorm.DB, log *zap.Logger) *InventoryHandler {
	return &InventoryHandler{DB: db, Log: log}
}

// MedicationRequest represents the request body for creating or
// updating an inventory item.
type MedicationRequest struct {
	Name                string  `json:"name" binding:"required"`
	ActiveIngredient    string  `json:"activeIngredient"`
	Concentration       string  `json:"concentration"`
	DosageForm          string  `json:"dosageForm"`
	Unit                string  `json:"unit"`
	Manufacturer        string  `json:"manufacturer"`
	ManufacturerCountry string  `json:"manufacturerCountry"`
	RegistrationNumber  string  `json:"registrationNumber"`
	Supplier            string  `json:"supplier"`
	ImportPrice         float64 `json:"importPrice" binding:"gte=0"`
	SellPrice           float64 `json:"sellPrice" binding:"gte=0"`
	StorageLocation     string  `json:"storageLocation"`
	MinStockThreshold   int     `json:"minStockThreshold" binding:"gte=0"`
	BatchNo             string  `json:"batchNo"`
	ExpiryDate          string  `json:"expiryDate" binding:"required"`
	Stock               int     `json:"stock" binding:"gte=0"`
	Status              string  `json:"status"`
}

func (r *MedicationRequest) apply(m *models.Medication) {
	m.Name = r.Name
	m.ActiveIngredient = r.ActiveIngredient
	m.Concentration = r.Concentration
	m.DosageForm = r.DosageForm
	m.Unit = r.Unit
	m.Manufacturer = r.Manufacturer
	m.ManufacturerCountry = r.ManufacturerCountry
	m.RegistrationNumber = r.RegistrationNumber
	m.Supplier = r.Supplier
	m.ImportPrice = r.ImportPrice
	m.SellPrice = r.SellPrice
	m.StorageLocation = r.StorageLocation
	m.MinStockThreshold = r.MinStockThreshold
	m.BatchNo = r.BatchNo
	m.ExpiryDate = r.ExpiryDate
	m.Stock = r.Stock
	m.Status = r.Status
}

// CreateMedication adds an inventory item.
func (h *InventoryHandler) CreateMedication(c *gin.Context) {
	var req MedicationRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}
	if !schedule.IsValidDate(req.ExpiryDate) {
		utils.BadRequest(c, "expiryDate must be YYYY-MM-DD")
		return
	}

	var medication models.Medication
	req.apply(&medication)
	if err := h.DB.Create(&medication).Error; err != nil {
		h.Log.Error("failed to create medication", zap.String("name", req.Name), zap.Error(err))
		utils.InternalServerError(c, "Failed to create medication")
		return
	}

	utils.Created(c, "Medication created successfully", medication)
}

// GetMedications lists the inventory.
func (h *InventoryHandler) GetMedications(c *gin.Context) {
	var medications []models.Medication
	if err := h.DB.Order("name asc").Find(&medications).Error; err != nil {
		h.Log.Error("failed to list medications", zap.Error(err))
		utils.InternalServerError(c, "Failed to fetch medications")
		return
	}

	utils.Success(c, "Medications fetched successfully", medications)
}

// UpdateMedication replaces an inventory item's fields.
func (h *InventoryHandler) UpdateMedication(c *gin.Context) {
	var req MedicationRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}
	if !schedule.IsValidDate(req.ExpiryDate) {
		utils.BadRequest(c, "expiryDate must be YYYY-MM-DD")
		return
	}

	var medication models.Medication
	if err := h.DB.First(&medication, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFound(c, "Medication not found")
		} else {
			h.Log.Error("failed to fetch medication", zap.String("id", c.Param("id")), zap.Error(err))
			utils.InternalServerError(c, "Database error")
		}
		return
	}

	req.apply(&medication)
	if err := h.DB.Save(&medication).Error; err != nil {
		h.Log.Error("failed to update medication", zap.String("id", medication.ID), zap.Error(err))
		utils.InternalServerError(c, "Failed to update medication")
		return
	}

	utils.Success(c, "Medication updated successfully", medication)
}

type inventoryAlerts struct {
	LowStock     []models.Medication `json:"lowStock"`
	ExpiringSoon []models.Medication `json:"expiringSoon"`
	Expired      []models.Medication `json:"expired"`
}

// GetInventoryAlerts reports items at or below their stock threshold
// and items expired or expiring within the 15-day horizon, relative to
// the given date (default today). ISO date strings order correctly, so
// the cutoffs are plain string comparisons in SQL.
func (h *InventoryHandler) GetInventoryAlerts(c *gin.Context) {
	today := c.Query("date")
	if today == "" {
		today = time.Now().Format("2006-01-02")
	} else if !schedule.IsValidDate(today) {
		utils.BadRequest(c, "date must be YYYY-MM-DD")
		return
	}

	ref, err := time.Parse("2006-01-02", today)
	if err != nil {
		utils.BadRequest(c, "date must be YYYY-MM-DD")
		return
	}
	horizon := ref.AddDate(0, 0, expiryHorizonDays).Format("2006-01-02")

	var alerts inventoryAlerts
	if err := h.DB.Where("stock <= min_stock_threshold").Order("stock asc").
		Find(&alerts.LowStock).Error; err != nil {
		h.Log.Error("failed to query low stock", zap.Error(err))
		utils.InternalServerError(c, "Failed to fetch inventory alerts")
		return
	}
	if err := h.DB.Where("expiry_date < ?", today).Order("expiry_date asc").
		Find(&alerts.Expired).Error; err != nil {
		h.Log.Error("failed to query expired medications", zap.Error(err))
		utils.InternalServerError(c, "Failed to fetch inventory alerts")
		return
	}
	if err := h.DB.Where("expiry_date >= ? AND expiry_date <= ?", today, horizon).
		Order("expiry_date asc").Find(&alerts.ExpiringSoon).Error; err != nil {
		h.Log.Error("failed to query expiring medications", zap.Error(err))
		utils.InternalServerError(c, "Failed to fetch inventory alerts")
		return
	}

	utils.Success(c, "Inventory alerts fetched successfully", alerts)
}
