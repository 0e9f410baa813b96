package gallery

import (
	"net/http"
	"time"

	"github.com/greenwheel/ev-rental-backend/internal/pkg/apperror"
)

var (
	ErrNotFound    = apperror.New(http.StatusNotFound, "Photo not found")
	ErrNoThumbnail = apperror.New(http.StatusNotFound, "Thumbnail not available")
)

// Photo is an uploaded car image managed from the admin screens.
type Photo struct {
	ID            string    `json:"id"`
	CarID         string    `json:"carId"`
	Filename      string    `json:"filename"`
	StoragePath   string    `json:"-"`
	ThumbnailPath *string   `json:"-"`
	ContentType   string    `json:"contentType"`
	Size          int64     `json:"size"`
	CreatedAt     time.Time `json:"createdAt"`
}

// PhotoURL returns the public URL for a photo by its ID.
func PhotoURL(id string) string {
	return "/photos/" + id
}

// ThumbnailURL returns the public URL for a photo's thumbnail by its ID.
func ThumbnailURL(id string) string {
	return "/photos/" + id + "/thumbnail"
}
