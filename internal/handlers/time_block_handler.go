package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/nobrecorte/booking-api/internal/httperr"
	"github.com/nobrecorte/booking-api/internal/httpresp"
	"github.com/nobrecorte/booking-api/internal/middleware"
	"github.com/nobrecorte/booking-api/internal/models"
)

type TimeBlockHandler struct {
	db *gorm.DB
}

func NewTimeBlockHandler(db *gorm.DB) *TimeBlockHandler {
	return &TimeBlockHandler{db: db}
}

type CreateTimeBlockRequest struct {
	StartTime time.Time `json:"start_time" binding:"required"`
	EndTime   time.Time `json:"end_time" binding:"required"`
	Reason    string    `json:"reason"`
}

func (h *TimeBlockHandler) List(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextUserID).(uint)

	var blocks []models.TimeBlock
	if err := h.db.
		Where("barber_id = ?", barberID).
		Order("start_time ASC").
		Find(&blocks).Error; err != nil {
		httperr.Internal(c, "failed_to_list_blocks", "Could not list time blocks.")
		return
	}

	httpresp.List(c, blocks)
}

func (h *TimeBlockHandler) Create(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateTimeBlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid time block payload.")
		return
	}

	if !req.EndTime.After(req.StartTime) {
		httperr.BadRequest(c, "inverted_block", "end_time must be after start_time.")
		return
	}

	reason := req.Reason
	if reason == "" {
		reason = "blocked"
	}

	// ownership forced from the authenticated barber, never from the payload
	block := models.TimeBlock{
		BarberID:  barberID,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Reason:    reason,
	}

	if err := h.db.Create(&block).Error; err != nil {
		httperr.Internal(c, "failed_to_create_block", "Could not create time block.")
		return
	}

	httpresp.Created(c, block)
}

func (h *TimeBlockHandler) Delete(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_block_id", "Invalid time block id.")
		return
	}

	var block models.TimeBlock
	if err := h.db.First(&block, uint(id)).Error; err != nil {
		httperr.NotFound(c, "block_not_found", "Time block not found.")
		return
	}

	if block.BarberID != barberID {
		httperr.Forbidden(c, "not_owner", "Only the owning barber may delete this block.")
		return
	}

	if err := h.db.Delete(&block).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_block", "Could not delete time block.")
		return
	}

	httpresp.OK(c, gin.H{"message": "time block removed"})
}
