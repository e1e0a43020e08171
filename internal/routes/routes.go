package routes

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/nobrecorte/booking-api/internal/audit"
	"github.com/nobrecorte/booking-api/internal/config"
	domain "github.com/nobrecorte/booking-api/internal/domain/appointment"
	"github.com/nobrecorte/booking-api/internal/handlers"
	infraRepo "github.com/nobrecorte/booking-api/internal/infra/repository"
	"github.com/nobrecorte/booking-api/internal/media"
	"github.com/nobrecorte/booking-api/internal/middleware"
	"github.com/nobrecorte/booking-api/internal/payments"
	ucAppointment "github.com/nobrecorte/booking-api/internal/usecase/appointment"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, rdb *redis.Client, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	var gateway payments.Gateway
	if mp, err := payments.NewMercadoPago(cfg.MercadoPagoToken); err != nil {
		log.Println("mercadopago disabled:", err)
	} else if mp != nil {
		gateway = mp
	}

	uploader := media.NewUploader(cfg)

	cancelPolicy := domain.CancelPolicy{
		MinNotice: time.Duration(cfg.CancelWindowHours) * time.Hour,
	}

	// ======================================================
	// USE CASES — APPOINTMENTS
	// ======================================================
	availabilityUC := ucAppointment.NewGetAvailability(appointmentRepo, cfg.SlotStepMinutes)
	createUC := ucAppointment.NewCreateAppointment(appointmentRepo, auditDispatcher)
	cancelUC := ucAppointment.NewCancelAppointment(appointmentRepo, auditDispatcher, cancelPolicy)
	confirmUC := ucAppointment.NewConfirmAppointment(appointmentRepo, auditDispatcher)
	completeUC := ucAppointment.NewCompleteAppointment(appointmentRepo, auditDispatcher)
	markPaidUC := ucAppointment.NewMarkAppointmentPaid(appointmentRepo, auditDispatcher)
	listUC := ucAppointment.NewListAppointments(appointmentRepo)
	listByDateUC := ucAppointment.NewListAppointmentsByDate(appointmentRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	profileHandler := handlers.NewProfileHandler(db, uploader)
	serviceHandler := handlers.NewServiceHandler(db)
	businessHoursHandler := handlers.NewBusinessHoursHandler(db)
	timeBlockHandler := handlers.NewTimeBlockHandler(db)
	paymentHandler := handlers.NewPaymentHandler(db, gateway)
	dashboardHandler := handlers.NewDashboardHandler(db)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	appointmentHandler := handlers.NewAppointmentHandler(
		availabilityUC,
		createUC,
		cancelUC,
		confirmUC,
		completeUC,
		markPaidUC,
		listUC,
		listByDateUC,
	)

	// ======================================================
	// API
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login",
			middleware.RateLimit(rdb, 10, time.Minute),
			authHandler.Login,
		)

		api.GET("/barbers/:barberId/services", serviceHandler.ListPublic)
		api.GET("/appointments/available", appointmentHandler.Available)

		// ------------------------------
		// AUTHENTICATED
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", profileHandler.GetMe)
			secured.POST("/me/avatar", profileHandler.UploadAvatar)
			secured.GET("/me/audit-logs", auditLogsHandler.List)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.GET("/appointments", appointmentHandler.List)
			secured.PATCH("/appointments/:id/cancel", appointmentHandler.Cancel)

			asClient := secured.Group("/")
			asClient.Use(middleware.RequireRole(domain.RoleClient))
			{
				asClient.POST("/appointments",
					middleware.RateLimit(rdb, 30, time.Minute),
					appointmentHandler.Create,
				)
				asClient.POST("/payments/appointments/:appointmentId", paymentHandler.Create)
			}

			asBarber := secured.Group("/")
			asBarber.Use(middleware.RequireRole(domain.RoleBarber))
			{
				asBarber.GET("/appointments/day", appointmentHandler.ListByDate)
				asBarber.PATCH("/appointments/:id/confirm", appointmentHandler.Confirm)
				asBarber.PATCH("/appointments/:id/complete", appointmentHandler.Complete)
				asBarber.PATCH("/appointments/:id/paid", appointmentHandler.MarkPaid)

				asBarber.GET("/me/services", serviceHandler.List)
				asBarber.POST("/me/services", serviceHandler.Create)
				asBarber.PATCH("/me/services/:id", serviceHandler.Update)

				asBarber.GET("/me/business-hours", businessHoursHandler.List)
				asBarber.PUT("/me/business-hours/:weekday", businessHoursHandler.Upsert)

				asBarber.GET("/me/time-blocks", timeBlockHandler.List)
				asBarber.POST("/me/time-blocks", timeBlockHandler.Create)
				asBarber.DELETE("/me/time-blocks/:id", timeBlockHandler.Delete)

				asBarber.PATCH("/payments/:id/confirm", paymentHandler.Confirm)

				asBarber.GET("/dashboard/summary", dashboardHandler.Summary)
			}
		}
	}
}
