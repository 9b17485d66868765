package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"clinic-app-server/internal/config"
	"clinic-app-server/internal/handlers"
	"clinic-app-server/internal/middleware"
	"clinic-app-server/internal/models"
	"clinic-app-server/internal/schedule"
)

// SetupRoutes configures the application routes.
func SetupRoutes(router *gin.Engine, db *gorm.DB, cfg *config.Config, log *zap.Logger) {
	window := schedule.Window{
		StartHour:   cfg.Timeline.StartHour,
		EndHour:     cfg.Timeline.EndHour,
		SlotMinutes: cfg.Timeline.SlotMinutes,
		SlotHeight:  schedule.DefaultWindow().SlotHeight,
	}

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(db, cfg, log)
	appointmentHandler := handlers.NewAppointmentHandler(db, log, window)
	patientHandler := handlers.NewPatientHandler(db, log)
	billingHandler := handlers.NewBillingHandler(db, log)
	inventoryHandler := handlers.NewInventoryHandler(db, log)
	staffHandler := handlers.NewStaffHandler(db, log)
	recordHandler := handlers.NewRecordHandler(db, log)

	// Public routes (no authentication required)
	public := router.Group("/api/v1")
	{
		public.POST("/auth/login", authHandler.Login)
	}

	// Authenticated routes
	private := router.Group("/api/v1")
	private.Use(middleware.AuthMiddleware(cfg))
	{
		private.GET("/auth/profile", authHandler.GetProfile)

		// Appointment scheduling
		appointmentRoutes := private.Group("/appointments")
		{
			appointmentRoutes.POST("", appointmentHandler.CreateAppointment)
			appointmentRoutes.GET("", appointmentHandler.GetAppointments)
			appointmentRoutes.GET("/timeline", appointmentHandler.GetTimeline)
			appointmentRoutes.GET("/:id", appointmentHandler.GetAppointmentByID)
			appointmentRoutes.PATCH("/:id/status", appointmentHandler.UpdateAppointmentStatus)
		}

		// Patient records
		patientRoutes := private.Group("/patients")
		{
			patientRoutes.POST("", patientHandler.CreatePatient)
			patientRoutes.GET("", patientHandler.GetPatients)
			patientRoutes.GET("/:id", patientHandler.GetPatientByID)
			patientRoutes.PUT("/:id", patientHandler.UpdatePatient)
			patientRoutes.GET("/:id/documents", patientHandler.GetPatientDocuments)
			patientRoutes.POST("/:id/documents", patientHandler.AddPatientDocument)
			patientRoutes.GET("/:id/records", patientHandler.GetPatientRecords)
		}

		// Billing
		invoiceRoutes := private.Group("/invoices")
		{
			invoiceRoutes.POST("", billingHandler.CreateInvoice)
			invoiceRoutes.GET("", billingHandler.GetInvoices)
			invoiceRoutes.PATCH("/:id/status", billingHandler.UpdateInvoiceStatus)
		}

		// Medication inventory
		medicationRoutes := private.Group("/medications")
		{
			medicationRoutes.POST("", inventoryHandler.CreateMedication)
			medicationRoutes.GET("", inventoryHandler.GetMedications)
			medicationRoutes.GET("/alerts", inventoryHandler.GetInventoryAlerts)
			medicationRoutes.PUT("/:id", inventoryHandler.UpdateMedication)
		}

		// Staff management; listing is open to any authenticated staff
		// (the booking form needs the doctor list), mutations are admin-only.
		staffRoutes := private.Group("/staff")
		{
			staffRoutes.GET("", staffHandler.GetStaff)

			adminRoutes := staffRoutes.Group("")
			adminRoutes.Use(middleware.RoleAuthMiddleware(models.RoleAdmin))
			{
				adminRoutes.POST("", staffHandler.CreateStaff)
				adminRoutes.PUT("/:id", staffHandler.UpdateStaff)
				adminRoutes.DELETE("/:id", staffHandler.DeleteStaff)
			}
		}

		// Medical records are written by doctors after a visit
		private.POST("/medical-records", middleware.RoleAuthMiddleware(models.RoleDoctor, models.RoleAdmin), recordHandler.CreateRecord)
	}

	// Simple health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "UP"})
	})
}
