package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mosaops/timesheet-backend-go/internal/service"
	"github.com/mosaops/timesheet-backend-go/pkg/response"
)

// AuthHandler handles registration and login.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(auth *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

type registerRequest struct {
	Username        string `json:"username"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
	FullName        string `json:"fullname"`
}

// Register handles POST /api/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if req.Password != req.ConfirmPassword {
		response.BadRequest(c, "Passwords do not match")
		return
	}

	id, err := h.auth.Register(c.Request.Context(), req.Username, req.Password, req.FullName)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrFieldsRequired),
			errors.Is(err, service.ErrWeakPassword),
			errors.Is(err, service.ErrShortUsername),
			errors.Is(err, service.ErrUsernameTaken):
			response.BadRequest(c, err.Error())
		default:
			response.InternalError(c, "Failed to register user")
		}
		return
	}

	response.OKFields(c, gin.H{"id": id, "message": "Registration successful"})
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	user, token, err := h.auth.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			response.Error(c, http.StatusUnauthorized, "Invalid username or password")
		} else {
			response.InternalError(c, "Login failed")
		}
		return
	}

	response.OKFields(c, gin.H{"token": token, "user": user})
}
