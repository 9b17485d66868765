package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"clinic-app-server/internal/models"
	"clinic-app-server/internal/utils"
)

// BillingHandler handles invoices. Invoice creation is typically driven
// by the draft returned when an appointment is completed.
type BillingHandler struct {
	DB  *gorm.DB
	Log *zap.Logger
}

// NewBillingHandler creates a new BillingHandler.
func NewBillingHandler(db *gorm.DB, log *zap.Logger) *BillingHandler {
	return &BillingHandler{DB: db, Log: log}
}

// InvoiceItemRequest is one billed line in a create request.
type InvoiceItemRequest struct {
	Description string  `json:"description" binding:"required"`
	Amount      float64 `json:"amount" binding:"required,gt=0"`
}

// CreateInvoiceRequest represents the request body for creating an invoice.
type CreateInvoiceRequest struct {
	PatientName string               `json:"patientName" binding:"required"`
	Date        string               `json:"date" binding:"required"`
	Items       []InvoiceItemRequest `json:"items" binding:"required,min=1,dive"`
}

// CreateInvoice creates an invoice; the total is the item sum and is
// always computed here, never trusted from the client.
func (h *BillingHandler) CreateInvoice(c *gin.Context) {
	var req CreateInvoiceRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	invoice := models.Invoice{
		PatientName: req.PatientName,
		Date:        req.Date,
		Status:      models.InvoicePending,
	}
	for _, item := range req.Items {
		invoice.Items = append(invoice.Items, models.InvoiceItem{
			Description: item.Description,
			Amount:      item.Amount,
		})
		invoice.Amount += item.Amount
	}

	if err := h.DB.Create(&invoice).Error; err != nil {
		h.Log.Error("failed to create invoice", zap.String("patientName", req.PatientName), zap.Error(err))
		utils.InternalServerError(c, "Failed to create invoice")
		return
	}

	utils.Created(c, "Invoice created successfully", invoice)
}

// GetInvoices lists invoices, optionally filtered by status.
func (h *BillingHandler) GetInvoices(c *gin.Context) {
	query := h.DB.Preload("Items").Order("date desc")
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var invoices []models.Invoice
	if err := query.Find(&invoices).Error; err != nil {
		h.Log.Error("failed to list invoices", zap.Error(err))
		utils.InternalServerError(c, "Failed to fetch invoices")
		return
	}

	utils.Success(c, "Invoices fetched successfully", invoices)
}

// UpdateInvoiceStatusRequest represents the request body for a payment
// status change.
type UpdateInvoiceStatusRequest struct {
	Status models.InvoiceStatus `json:"status" binding:"required,oneof=Paid Pending Overdue"`
}

// UpdateInvoiceStatus moves an invoice between payment states.
func (h *BillingHandler) UpdateInvoiceStatus(c *gin.Context) {
	var req UpdateInvoiceStatusRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	var invoice models.Invoice
	if err := h.DB.Preload("Items").First(&invoice, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFound(c, "Invoice not found")
		} else {
			h.Log.Error("failed to fetch invoice", zap.String("id", c.Param("id")), zap.Error(err))
			utils.InternalServerError(c, "Database error")
		}
		return
	}

	invoice.Status = req.Status
	if err := h.DB.Save(&invoice).Error; err != nil {
		h.Log.Error("failed to update invoice status", zap.String("id", invoice.ID), zap.Error(err))
		utils.InternalServerError(c, "Failed to update invoice status")
		return
	}

	utils.Success(c, "Invoice status updated successfully", invoice)
}
