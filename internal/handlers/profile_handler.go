package handlers

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nobrecorte/booking-api/internal/httperr"
	"github.com/nobrecorte/booking-api/internal/httpresp"
	"github.com/nobrecorte/booking-api/internal/media"
	"github.com/nobrecorte/booking-api/internal/middleware"
	"github.com/nobrecorte/booking-api/internal/models"
)

type ProfileHandler struct {
	db       *gorm.DB
	uploader *media.Uploader
}

func NewProfileHandler(db *gorm.DB, uploader *media.Uploader) *ProfileHandler {
	return &ProfileHandler{db: db, uploader: uploader}
}

func (h *ProfileHandler) GetMe(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var user models.User
	if err := h.db.First(&user, userID).Error; err != nil {
		httperr.NotFound(c, "user_not_found", "User not found.")
		return
	}

	httpresp.OK(c, user)
}

// UploadAvatar accepts a multipart "avatar" file, converts it to WebP and
// stores it in the media bucket.
func (h *ProfileHandler) UploadAvatar(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	if h.uploader == nil {
		httperr.Internal(c, "media_disabled", "Media storage is not configured.")
		return
	}

	fileHeader, err := c.FormFile("avatar")
	if err != nil {
		httperr.BadRequest(c, "missing_file", "avatar file is required.")
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		httperr.BadRequest(c, "invalid_file", "Could not read uploaded file.")
		return
	}
	defer f.Close()

	encoded, err := media.EncodeAvatar(f)
	if err != nil {
		httperr.BadRequest(c, "invalid_image", "File must be a valid JPEG or PNG image.")
		return
	}

	key := fmt.Sprintf("avatars/%d/%s.webp", userID, uuid.NewString())
	url, err := h.uploader.Upload(c.Request.Context(), key, encoded, "image/webp")
	if err != nil {
		httperr.Internal(c, "upload_failed", "Could not store avatar.")
		return
	}

	if err := h.db.Model(&models.User{}).
		Where("id = ?", userID).
		Update("avatar_url", url).Error; err != nil {
		httperr.Internal(c, "failed_to_save_avatar", "Could not save avatar URL.")
		return
	}

	httpresp.OK(c, gin.H{"avatar_url": url})
}
