package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/publication-cms-api/internal/service"
	"github.com/rs/zerolog"
)

// SpotifyHandler handles spotify link endpoints
type SpotifyHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewSpotifyHandler creates a new SpotifyHandler
func NewSpotifyHandler(services *service.Services, log zerolog.Logger) *SpotifyHandler {
	return &SpotifyHandler{
		services: services,
		log:      log.With().Str("handler", "spotify").Logger(),
	}
}

// List handles GET /v1/spotify
func (h *SpotifyHandler) List(c *gin.Context) {
	links, err := h.services.Spotify.List(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, links)
}

// Get handles GET /v1/spotify/:id
func (h *SpotifyHandler) Get(c *gin.Context) {
	link, err := h.services.Spotify.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, link)
}

// Create handles POST /v1/spotify
func (h *SpotifyHandler) Create(c *gin.Context) {
	var req service.CreateSpotifyLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "validation_error",
			"message": "invalid request body",
		})
		return
	}

	link, err := h.services.Spotify.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, link)
}

// Delete handles DELETE /v1/spotify/:id
func (h *SpotifyHandler) Delete(c *gin.Context) {
	if err := h.services.Spotify.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
