package handlers

import (
	"net/http"

	"art-catalog-service/internal/adapters/primary/http/dto"
	"art-catalog-service/internal/core/services"

	"github.com/gin-gonic/gin"
)

func (h *Handler) ListArtistsByCountry(c *gin.Context) {
	lines := h.engine.ListArtistsByCountry(c.Query("country"))
	c.JSON(http.StatusOK, dto.ToLinesResponse(services.QueryArtistsByCountry, lines))
}

func (h *Handler) GroupArtistsByCountry(c *gin.Context) {
	lines := h.engine.GroupArtistsByCountry()
	c.JSON(http.StatusOK, dto.ToLinesResponse(services.QueryArtistsGroupedByCountry, lines))
}
