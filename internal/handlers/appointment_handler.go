package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nobrecorte/booking-api/internal/httperr"
	"github.com/nobrecorte/booking-api/internal/httpresp"
	"github.com/nobrecorte/booking-api/internal/middleware"
	"github.com/nobrecorte/booking-api/internal/timezone"
	ucAppointment "github.com/nobrecorte/booking-api/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	availabilityUC *ucAppointment.GetAvailability
	createUC       *ucAppointment.CreateAppointment
	cancelUC       *ucAppointment.CancelAppointment
	confirmUC      *ucAppointment.ConfirmAppointment
	completeUC     *ucAppointment.CompleteAppointment
	markPaidUC     *ucAppointment.MarkAppointmentPaid
	listUC         *ucAppointment.ListAppointments
	listByDateUC   *ucAppointment.ListAppointmentsByDate
}

func NewAppointmentHandler(
	availabilityUC *ucAppointment.GetAvailability,
	createUC *ucAppointment.CreateAppointment,
	cancelUC *ucAppointment.CancelAppointment,
	confirmUC *ucAppointment.ConfirmAppointment,
	completeUC *ucAppointment.CompleteAppointment,
	markPaidUC *ucAppointment.MarkAppointmentPaid,
	listUC *ucAppointment.ListAppointments,
	listByDateUC *ucAppointment.ListAppointmentsByDate,
) *AppointmentHandler {
	return &AppointmentHandler{
		availabilityUC: availabilityUC,
		createUC:       createUC,
		cancelUC:       cancelUC,
		confirmUC:      confirmUC,
		completeUC:     completeUC,
		markPaidUC:     markPaidUC,
		listUC:         listUC,
		listByDateUC:   listByDateUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	ServiceID uint      `json:"service_id" binding:"required"`
	StartTime time.Time `json:"start_time" binding:"required"`
}

type CancelAppointmentRequest struct {
	Reason string `json:"reason"`
}

// ======================================================
// AVAILABILITY (public)
// ======================================================

// Available answers GET /appointments/available?service_id=1&day=2026-02-14
func (h *AppointmentHandler) Available(c *gin.Context) {
	serviceID, err := strconv.ParseUint(c.Query("service_id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_service_id", "service_id is required.")
		return
	}

	day, err := time.ParseInLocation("2006-01-02", c.Query("day"), timezone.Location())
	if err != nil {
		httperr.BadRequest(c, "invalid_day", "day must be YYYY-MM-DD.")
		return
	}

	out, err := h.availabilityUC.Execute(c.Request.Context(), uint(serviceID), day)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, out)
}

// ======================================================
// CREATE (client)
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	clientID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "service_id and start_time are required.")
		return
	}

	ap, err := h.createUC.Execute(c.Request.Context(), clientID, ucAppointment.CreateAppointmentInput{
		ServiceID: req.ServiceID,
		StartTime: req.StartTime.In(timezone.Location()),
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.Created(c, ap)
}

// ======================================================
// LISTS
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	actor := middleware.Actor(c)

	appts, err := h.listUC.Execute(c.Request.Context(), actor)
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Could not list appointments.")
		return
	}

	httpresp.List(c, appts)
}

func (h *AppointmentHandler) ListByDate(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextUserID).(uint)

	day, err := time.ParseInLocation("2006-01-02", c.Query("day"), timezone.Location())
	if err != nil {
		httperr.BadRequest(c, "invalid_day", "day must be YYYY-MM-DD.")
		return
	}

	appts, err := h.listByDateUC.Execute(c.Request.Context(), barberID, day)
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Could not list appointments.")
		return
	}

	httpresp.List(c, appts)
}

// ======================================================
// STATE TRANSITIONS
// ======================================================

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	actor := middleware.Actor(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_appointment_id", "Invalid appointment id.")
		return
	}

	var req CancelAppointmentRequest
	_ = c.ShouldBindJSON(&req)
	if req.Reason == "" {
		req.Reason = "canceled"
	}

	ap, err := h.cancelUC.Execute(c.Request.Context(), actor, uint(id), req.Reason)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) Confirm(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_appointment_id", "Invalid appointment id.")
		return
	}

	ap, err := h.confirmUC.Execute(c.Request.Context(), barberID, uint(id))
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) Complete(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_appointment_id", "Invalid appointment id.")
		return
	}

	ap, err := h.completeUC.Execute(c.Request.Context(), barberID, uint(id))
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) MarkPaid(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_appointment_id", "Invalid appointment id.")
		return
	}

	ap, err := h.markPaidUC.Execute(c.Request.Context(), barberID, uint(id))
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, ap)
}
