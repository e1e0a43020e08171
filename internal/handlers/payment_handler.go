package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	domain "github.com/nobrecorte/booking-api/internal/domain/appointment"
	"github.com/nobrecorte/booking-api/internal/httperr"
	"github.com/nobrecorte/booking-api/internal/httpresp"
	"github.com/nobrecorte/booking-api/internal/middleware"
	"github.com/nobrecorte/booking-api/internal/models"
	"github.com/nobrecorte/booking-api/internal/payments"
	"github.com/nobrecorte/booking-api/internal/timezone"
)

type PaymentHandler struct {
	db      *gorm.DB
	gateway payments.Gateway
}

func NewPaymentHandler(db *gorm.DB, gateway payments.Gateway) *PaymentHandler {
	return &PaymentHandler{db: db, gateway: gateway}
}

type CreatePaymentRequest struct {
	Provider string `json:"provider"`
}

// Create opens a payment for a completed appointment. Only the owning client
// may pay, and only after completion.
func (h *PaymentHandler) Create(c *gin.Context) {
	clientID := c.MustGet(middleware.ContextUserID).(uint)

	appointmentID, err := strconv.ParseUint(c.Param("appointmentId"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_appointment_id", "Invalid appointment id.")
		return
	}

	var req CreatePaymentRequest
	_ = c.ShouldBindJSON(&req)
	if req.Provider == "" {
		req.Provider = "manual"
	}
	if req.Provider != "manual" && req.Provider != "mercadopago" {
		httperr.BadRequest(c, "invalid_provider", "provider must be manual or mercadopago.")
		return
	}

	var ap models.Appointment
	if err := h.db.First(&ap, uint(appointmentID)).Error; err != nil {
		httperr.NotFound(c, "appointment_not_found", "Appointment not found.")
		return
	}

	if ap.ClientID != clientID {
		httperr.Forbidden(c, "not_owner", "Only the owning client may pay this appointment.")
		return
	}

	if domain.Status(ap.Status) != domain.StatusCompleted {
		httperr.Write(c, 409, "not_completed", "Payment is only possible after completion.")
		return
	}

	payment := models.Payment{
		AppointmentID: ap.ID,
		Provider:      req.Provider,
		Amount:        ap.ServicePriceSnapshot,
		Status:        "pending",
		ExternalID:    uuid.NewString(),
	}

	if req.Provider == "mercadopago" {
		if h.gateway == nil {
			httperr.Internal(c, "provider_unavailable", "Mercado Pago is not configured.")
			return
		}

		pref, err := h.gateway.CreatePreference(
			c.Request.Context(),
			ap.ServiceNameSnapshot,
			ap.ServicePriceSnapshot,
			payment.ExternalID,
		)
		if err != nil {
			httperr.Internal(c, "provider_error", "Could not create checkout preference.")
			return
		}

		payment.ExternalID = pref.ID
		payment.CheckoutURL = pref.CheckoutURL
	}

	if err := h.db.Create(&payment).Error; err != nil {
		httperr.Internal(c, "failed_to_create_payment", "Could not create payment.")
		return
	}

	httpresp.Created(c, payment)
}

// Confirm marks a payment as settled. Barber-only; flips the appointment's
// payment sub-state alongside.
func (h *PaymentHandler) Confirm(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_payment_id", "Invalid payment id.")
		return
	}

	var payment models.Payment
	if err := h.db.First(&payment, uint(id)).Error; err != nil {
		httperr.NotFound(c, "payment_not_found", "Payment not found.")
		return
	}

	var ap models.Appointment
	if err := h.db.First(&ap, payment.AppointmentID).Error; err != nil {
		httperr.NotFound(c, "appointment_not_found", "Appointment not found.")
		return
	}

	if ap.BarberID != barberID {
		httperr.Forbidden(c, "not_owner", "Only the owning barber may confirm this payment.")
		return
	}

	if payment.Status == "paid" {
		httpresp.OK(c, payment)
		return
	}

	now := timezone.Now()

	err = h.db.Transaction(func(tx *gorm.DB) error {
		payment.Status = "paid"
		payment.PaidAt = &now
		if err := tx.Save(&payment).Error; err != nil {
			return err
		}

		ap.PaymentStatus = string(domain.PaymentPaid)
		return tx.Save(&ap).Error
	})
	if err != nil {
		httperr.Internal(c, "failed_to_confirm_payment", "Could not confirm payment.")
		return
	}

	httpresp.OK(c, payment)
}
