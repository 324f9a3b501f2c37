package handlers

import (
	"net/http"

	"art-catalog-service/internal/adapters/primary/http/dto"
	"art-catalog-service/internal/core/services"

	"github.com/gin-gonic/gin"
)

func (h *Handler) ListCountries(c *gin.Context) {
	lines := h.engine.ListCountries()
	c.JSON(http.StatusOK, dto.ToLinesResponse(services.QueryCountries, lines))
}

func (h *Handler) CountPaintingsPerCountry(c *gin.Context) {
	lines := h.engine.CountPaintingsPerCountry()
	c.JSON(http.StatusOK, dto.ToLinesResponse(services.QueryPaintingCountsByCountry, lines))
}

func (h *Handler) ListJoined(c *gin.Context) {
	lines := h.engine.ListAllJoinedWithCountry()
	c.JSON(http.StatusOK, dto.ToLinesResponse(services.QueryJoinedWithCountry, lines))
}

func (h *Handler) GetStats(c *gin.Context) {
	c.JSON(http.StatusOK, h.engine.Stats())
}
