package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/publication-cms-api/internal/service"
	"github.com/rs/zerolog"
)

// AuthHandler handles registration and login endpoints
type AuthHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(services *service.Services, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		services: services,
		log:      log.With().Str("handler", "auth").Logger(),
	}
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register handles POST /v1/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "validation_error",
			"message": "request body must be JSON with email and password",
		})
		return
	}

	userID, err := h.services.Auth.Register(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": userID})
}

// Login handles POST /v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "validation_error",
			"message": "request body must be JSON with email and password",
		})
		return
	}

	ctx := c.Request.Context()
	principal, err := h.services.Auth.Verify(ctx, req.Email, req.Password)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	token, err := h.services.Auth.IssueToken(principal)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":     token,
		"principal": principal,
	})
}
