package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/greenwheel/ev-rental-backend/internal/auth"
	"github.com/greenwheel/ev-rental-backend/internal/pkg/response"
	"github.com/greenwheel/ev-rental-backend/internal/staff"
)

type Handler struct {
	service    staff.Service
	jwtManager *auth.JWTManager
}

func NewHandler(service staff.Service, jwtManager *auth.JWTManager) *Handler {
	return &Handler{
		service:    service,
		jwtManager: jwtManager,
	}
}

func (h *Handler) Login(c *gin.Context) {
	var body LoginBody
	if err := c.ShouldBindJSON(&body); err != nil {
		response.Error(c, staff.ErrInvalidCredentials, "Failed to log in")
		return
	}

	acct, err := h.service.Authenticate(c.Request.Context(), body.Username, body.Password)
	if err != nil {
		response.Error(c, err, "Failed to log in")
		return
	}

	token, err := h.jwtManager.GenerateAccessToken(acct.ID, acct.Username, acct.Role)
	if err != nil {
		response.Error(c, err, "Failed to log in")
		return
	}

	c.JSON(http.StatusOK, response.OK(LoginResponse{
		Token: token,
		Staff: NewStaffResponse(acct),
	}))
}
