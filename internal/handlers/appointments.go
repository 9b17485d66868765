package handlers

import (
	"errors"
	"fmt"
	"sync"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"clinic-app-server/internal/models"
	"clinic-app-server/internal/schedule"
	"clinic-app-server/internal/utils"
)

// AppointmentHandler handles appointment booking, listing, the status
// workflow and the daily timeline.
type AppointmentHandler struct {
	DB     *gorm.DB
	Log    *zap.Logger
	Window schedule.Window

	mu        sync.Mutex
	slotLocks map[string]*sync.Mutex
}

// NewAppointmentHandler creates a new AppointmentHandler.
func NewAppointmentHandler(db *gorm.DB, log *zap.Logger, window schedule.Window) *AppointmentHandler {
	return &AppointmentHandler{
		DB:        db,
		Log:       log,
		Window:    window,
		slotLocks: make(map[string]*sync.Mutex),
	}
}

// slotLock returns the mutex guarding one (doctor, date) booking key.
// Serializing bookings per key means two near-simultaneous requests for
// the same doctor and day cannot both pass the conflict check.
func (h *AppointmentHandler) slotLock(doctorName, date string) *sync.Mutex {
	h.mu.Lock()
	defer h.mu.Unlock()
	key := doctorName + "\x00" + date
	lock, ok := h.slotLocks[key]
	if !ok {
		lock = &sync.Mutex{}
		h.slotLocks[key] = lock
	}
	return lock
}

// CreateAppointmentRequest represents the request body for booking a slot.
type CreateAppointmentRequest struct {
	PatientName string `json:"patientName" binding:"required"`
	DoctorName  string `json:"doctorName" binding:"required"`
	Date        string `json:"date" binding:"required"`
	StartTime   string `json:"startTime" binding:"required"`
	EndTime     string `json:"endTime" binding:"required"`
	Notes       string `json:"notes"`
}

// CreateAppointment validates a booking candidate, runs the conflict
// check against the doctor's day and inserts the appointment. Check and
// insert share one transaction under the slot lock, so the stored
// Scheduled intervals for a (doctor, date) stay pairwise disjoint even
// under concurrent requests.
func (h *AppointmentHandler) CreateAppointment(c *gin.Context) {
	var req CreateAppointmentRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	cand := schedule.Candidate{
		PatientName: req.PatientName,
		DoctorName:  req.DoctorName,
		Date:        req.Date,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Notes:       req.Notes,
	}
	if fieldErrs := schedule.ValidateBooking(cand); len(fieldErrs) > 0 {
		utils.ValidationFailed(c, fieldErrs)
		return
	}

	lock := h.slotLock(cand.DoctorName, cand.Date)
	lock.Lock()
	defer lock.Unlock()

	appointment := models.Appointment{
		PatientName: cand.PatientName,
		DoctorName:  cand.DoctorName,
		Date:        cand.Date,
		StartTime:   cand.StartTime,
		EndTime:     cand.EndTime,
		Status:      models.StatusScheduled,
		Notes:       cand.Notes,
	}

	var colliding *models.Appointment
	err := h.DB.Transaction(func(tx *gorm.DB) error {
		var existing []models.Appointment
		if err := tx.Where("doctor_name = ? AND date = ? AND status = ?",
			cand.DoctorName, cand.Date, models.StatusScheduled).Find(&existing).Error; err != nil {
			return err
		}
		if other := schedule.FindConflict(cand, existing); other != nil {
			colliding = other
			return errScheduleConflict
		}
		return tx.Create(&appointment).Error
	})

	if errors.Is(err, errScheduleConflict) {
		utils.Conflict(c, fmt.Sprintf("%s is already booked %s-%s on %s",
			colliding.DoctorName, colliding.StartTime, colliding.EndTime, colliding.Date))
		return
	}
	if err != nil {
		h.Log.Error("failed to create appointment",
			zap.String("doctorName", cand.DoctorName),
			zap.String("date", cand.Date),
			zap.Error(err))
		utils.InternalServerError(c, "Failed to create appointment")
		return
	}

	utils.Created(c, "Appointment created successfully", appointment)
}

var errScheduleConflict = errors.New("schedule conflict")

// GetAppointments lists appointments, optionally for a single day.
func (h *AppointmentHandler) GetAppointments(c *gin.Context) {
	query := h.DB.Order("date asc, start_time asc")
	if date := c.Query("date"); date != "" {
		if !schedule.IsValidDate(date) {
			utils.BadRequest(c, "date must be YYYY-MM-DD")
			return
		}
		query = query.Where("date = ?", date)
	}

	var appointments []models.Appointment
	if err := query.Find(&appointments).Error; err != nil {
		h.Log.Error("failed to list appointments", zap.Error(err))
		utils.InternalServerError(c, "Failed to fetch appointments")
		return
	}

	utils.Success(c, "Appointments fetched successfully", appointments)
}

// GetAppointmentByID fetches a single appointment.
func (h *AppointmentHandler) GetAppointmentByID(c *gin.Context) {
	var appointment models.Appointment
	if err := h.DB.First(&appointment, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFound(c, "Appointment not found")
		} else {
			h.Log.Error("failed to fetch appointment", zap.String("id", c.Param("id")), zap.Error(err))
			utils.InternalServerError(c, "Database error")
		}
		return
	}

	utils.Success(c, "Appointment fetched successfully", appointment)
}

// UpdateStatusRequest represents the request body for a status change.
type UpdateStatusRequest struct {
	Status models.AppointmentStatus `json:"status" binding:"required,oneof=Scheduled Completed Cancelled"`
}

// InvoiceDraft is the billing hook returned when an appointment is
// completed. The caller decides whether to turn it into an invoice; the
// status driver itself never writes one.
type InvoiceDraft struct {
	PatientName string  `json:"patientName"`
	Date        string  `json:"date"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
}

type statusChangeResponse struct {
	Appointment  models.Appointment `json:"appointment"`
	InvoiceDraft *InvoiceDraft      `json:"invoiceDraft,omitempty"`
}

// UpdateAppointmentStatus drives the status workflow. Completing an
// appointment also advances the patient's lastVisit date (matched by
// name) in the same transaction, and returns an invoice draft for the
// billing screen. Re-applying the current status is a no-op; any other
// transition out of Completed/Cancelled is rejected.
func (h *AppointmentHandler) UpdateAppointmentStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	var appointment models.Appointment
	if err := h.DB.First(&appointment, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFound(c, "Appointment not found")
		} else {
			h.Log.Error("failed to fetch appointment", zap.String("id", c.Param("id")), zap.Error(err))
			utils.InternalServerError(c, "Database error")
		}
		return
	}

	if appointment.Status == req.Status {
		utils.Success(c, "Appointment status unchanged", statusChangeResponse{Appointment: appointment})
		return
	}
	if !schedule.CanTransition(appointment.Status, req.Status) {
		utils.BadRequest(c, fmt.Sprintf("cannot change status from %s to %s", appointment.Status, req.Status))
		return
	}

	appointment.Status = req.Status
	err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&appointment).Error; err != nil {
			return err
		}
		if req.Status == models.StatusCompleted {
			// Best-effort match by display name; appointments carry no
			// patient ID on the wire.
			result := tx.Model(&models.Patient{}).
				Where("name = ?", appointment.PatientName).
				Update("last_visit", appointment.Date)
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				h.Log.Warn("completed appointment has no matching patient record",
					zap.String("patientName", appointment.PatientName),
					zap.String("appointmentId", appointment.ID))
			}
		}
		return nil
	})
	if err != nil {
		h.Log.Error("failed to update appointment status",
			zap.String("id", appointment.ID),
			zap.String("status", string(req.Status)),
			zap.Error(err))
		utils.InternalServerError(c, "Failed to update appointment status")
		return
	}

	resp := statusChangeResponse{Appointment: appointment}
	if req.Status == models.StatusCompleted {
		resp.InvoiceDraft = &InvoiceDraft{
			PatientName: appointment.PatientName,
			Date:        appointment.Date,
			Description: "Consultation with " + appointment.DoctorName,
		}
	}

	utils.Success(c, "Appointment status updated successfully", resp)
}

// TimelineBlock is one positioned appointment in a staff column.
type TimelineBlock struct {
	Appointment models.Appointment `json:"appointment"`
	Top         float64            `json:"top"`
	Height      float64            `json:"height"`
}

// TimelineColumn is one staff member's column for the day.
type TimelineColumn struct {
	StaffID   string          `json:"staffId"`
	StaffName string          `json:"staffName"`
	Role      models.Role     `json:"role"`
	Blocks    []TimelineBlock `json:"blocks"`
}

type timelineResponse struct {
	Date       string           `json:"date"`
	SlotLabels []string         `json:"slotLabels"`
	SlotHeight float64          `json:"slotHeight"`
	Columns    []TimelineColumn `json:"columns"`
}

// GetTimeline renders the day's schedule as one positioned column per
// medical staff member, using the configured display window.
func (h *AppointmentHandler) GetTimeline(c *gin.Context) {
	date := c.Query("date")
	if !schedule.IsValidDate(date) {
		utils.BadRequest(c, "date must be YYYY-MM-DD")
		return
	}

	var staff []models.Staff
	if err := h.DB.Where("role IN ?", []models.Role{models.RoleDoctor, models.RoleNurse}).
		Order("name asc").Find(&staff).Error; err != nil {
		h.Log.Error("failed to list staff for timeline", zap.Error(err))
		utils.InternalServerError(c, "Failed to fetch staff")
		return
	}

	var appointments []models.Appointment
	if err := h.DB.Where("date = ?", date).Order("start_time asc").Find(&appointments).Error; err != nil {
		h.Log.Error("failed to list appointments for timeline", zap.String("date", date), zap.Error(err))
		utils.InternalServerError(c, "Failed to fetch appointments")
		return
	}

	columns := make([]TimelineColumn, 0, len(staff))
	for _, member := range staff {
		col := TimelineColumn{
			StaffID:   member.ID,
			StaffName: member.Name,
			Role:      member.Role,
			Blocks:    []TimelineBlock{},
		}
		for _, appointment := range appointments {
			if appointment.DoctorName != member.Name {
				continue
			}
			block, ok := h.Window.Position(appointment.StartTime, appointment.EndTime)
			if !ok {
				continue
			}
			col.Blocks = append(col.Blocks, TimelineBlock{
				Appointment: appointment,
				Top:         block.Top,
				Height:      block.Height,
			})
		}
		columns = append(columns, col)
	}

	utils.Success(c, "Timeline fetched successfully", timelineResponse{
		Date:       date,
		SlotLabels: h.Window.SlotLabels(),
		SlotHeight: h.Window.SlotHeight,
		Columns:    columns,
	})
}
