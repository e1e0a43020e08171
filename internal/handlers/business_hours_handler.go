package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/nobrecorte/booking-api/internal/domain/appointment"
	"github.com/nobrecorte/booking-api/internal/httperr"
	"github.com/nobrecorte/booking-api/internal/httpresp"
	"github.com/nobrecorte/booking-api/internal/middleware"
	"github.com/nobrecorte/booking-api/internal/models"
)

type BusinessHoursHandler struct {
	db *gorm.DB
}

func NewBusinessHoursHandler(db *gorm.DB) *BusinessHoursHandler {
	return &BusinessHoursHandler{db: db}
}

type UpsertBusinessHoursRequest struct {
	IsClosed   bool   `json:"is_closed"`
	OpenTime   string `json:"open_time"`
	CloseTime  string `json:"close_time"`
	LunchStart string `json:"lunch_start"`
	LunchEnd   string `json:"lunch_end"`
}

func (h *BusinessHoursHandler) List(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextUserID).(uint)

	var hours []models.BusinessHours
	if err := h.db.
		Where("barber_id = ?", barberID).
		Order("weekday ASC").
		Find(&hours).Error; err != nil {
		httperr.Internal(c, "failed_to_get_business_hours", "Could not load business hours.")
		return
	}

	httpresp.List(c, hours)
}

// Upsert replaces the rule for one weekday (0=Monday .. 6=Sunday), keeping at
// most one rule per (barber, weekday).
func (h *BusinessHoursHandler) Upsert(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextUserID).(uint)

	weekday, err := strconv.Atoi(c.Param("weekday"))
	if err != nil {
		httperr.BadRequest(c, "invalid_weekday", "weekday must be 0 (Monday) to 6 (Sunday).")
		return
	}

	var req UpsertBusinessHoursRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid business hours payload.")
		return
	}

	bh := models.BusinessHours{
		BarberID:   barberID,
		Weekday:    weekday,
		IsClosed:   req.IsClosed,
		OpenTime:   req.OpenTime,
		CloseTime:  req.CloseTime,
		LunchStart: req.LunchStart,
		LunchEnd:   req.LunchEnd,
	}

	if err := domain.ValidateBusinessHours(&bh); err != nil {
		httperr.FromError(c, err)
		return
	}

	var existing models.BusinessHours
	err = h.db.
		Where("barber_id = ? AND weekday = ?", barberID, weekday).
		First(&existing).Error

	if err == nil {
		existing.IsClosed = bh.IsClosed
		existing.OpenTime = bh.OpenTime
		existing.CloseTime = bh.CloseTime
		existing.LunchStart = bh.LunchStart
		existing.LunchEnd = bh.LunchEnd

		if err := h.db.Save(&existing).Error; err != nil {
			httperr.Internal(c, "failed_to_save_business_hours", "Could not save business hours.")
			return
		}
		httpresp.OK(c, existing)
		return
	}

	if err := h.db.Create(&bh).Error; err != nil {
		httperr.Internal(c, "failed_to_save_business_hours", "Could not save business hours.")
		return
	}

	httpresp.OK(c, bh)
}
