package staff

import (
	"net/http"

	"github.com/greenwheel/ev-rental-backend/internal/pkg/apperror"
)

var (
	ErrNotFound           = apperror.New(http.StatusNotFound, "Staff account not found")
	ErrInvalidCredentials = apperror.New(http.StatusUnauthorized, "Invalid username or password")
)

const (
	RoleStaff = "staff"
	RoleAdmin = "admin"
)

// Staff is a back-office account from the demo credential table.
type Staff struct {
	ID           string
	Username     string
	PasswordHash string
	DisplayName  string
	Role         string
}
