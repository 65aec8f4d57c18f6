package otp

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"courtbook/internal/modules/auth"
	"courtbook/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	g := rg.Group("/otp")
	{
		g.POST("/send", h.Send)
		g.POST("/verify", h.Verify)
	}
}

func (h *Handler) Send(c *gin.Context) {
	var req SendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	expiresAt, err := h.service.Send(c.Request.Context(), req, c.ClientIP(), c.Request.UserAgent())
	if err != nil {
		if errors.Is(err, ErrInvalidPhone) {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid phone number")
			return
		}
		response.Error(c, http.StatusInternalServerError, "OTP_SEND_FAILED", "Failed to send OTP")
		return
	}

	response.SuccessWithMessage(c, http.StatusOK, "OTP sent successfully", gin.H{
		"expires_at": expiresAt,
	})
}

func (h *Handler) Verify(c *gin.Context) {
	var req VerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	user, token, err := h.service.Verify(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrNoActiveCode):
			response.Error(c, http.StatusBadRequest, "OTP_EXPIRED", "Invalid or expired OTP")
		case errors.Is(err, ErrTooManyAttempts):
			response.Error(c, http.StatusTooManyRequests, "TOO_MANY_ATTEMPTS", "Too many failed attempts")
		case errors.Is(err, ErrCodeMismatch):
			response.Error(c, http.StatusBadRequest, "OTP_MISMATCH", "Invalid OTP code")
		default:
			response.Error(c, http.StatusInternalServerError, "OTP_VERIFY_FAILED", "Failed to verify OTP")
		}
		return
	}

	response.SuccessWithMessage(c, http.StatusOK, "OTP verified successfully", gin.H{
		"user_id": user.ID.String(),
		"token":   token,
		"user":    auth.ToUserPublic(user),
	})
}
