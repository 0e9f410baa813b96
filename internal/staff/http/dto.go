package http

import "github.com/greenwheel/ev-rental-backend/internal/staff"

type LoginBody struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token string        `json:"token"`
	Staff StaffResponse `json:"staff"`
}

type StaffResponse struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	DisplayName string `json:"displayName"`
	Role        string `json:"role"`
}

func NewStaffResponse(s *staff.Staff) StaffResponse {
	return StaffResponse{
		ID:          s.ID,
		Username:    s.Username,
		DisplayName: s.DisplayName,
		Role:        s.Role,
	}
}
