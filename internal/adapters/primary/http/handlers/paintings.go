package handlers

import (
	"net/http"
	"strconv"

	"art-catalog-service/internal/adapters/primary/http/dto"
	"art-catalog-service/internal/core/domain"
	"art-catalog-service/internal/core/services"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

func (h *Handler) ListPaintings(c *gin.Context) {
	lines := h.engine.ListAllPaintings()
	c.JSON(http.StatusOK, dto.ToLinesResponse(services.QueryAllPaintings, lines))
}

func (h *Handler) GetOldestPainting(c *gin.Context) {
	painting, err := h.engine.FindOldestPainting()
	if err != nil {
		log.WithError(err).Warn("find oldest painting failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToOldestPaintingResponse(painting))
}

func (h *Handler) ListPaintingsBeforeYear(c *gin.Context) {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		mapDomainError(c, domain.ErrInvalidYear)
		return
	}

	lines := h.engine.ListPaintingsBeforeYear(year)
	c.JSON(http.StatusOK, dto.ToLinesResponse(services.QueryPaintingsBeforeYear, lines))
}

func (h *Handler) ListPaintingsByArtist(c *gin.Context) {
	lines := h.engine.ListPaintingsByArtistLastName(c.Query("name"))
	c.JSON(http.StatusOK, dto.ToLinesResponse(services.QueryPaintingsByArtist, lines))
}

func (h *Handler) ListPaintingsByCountries(c *gin.Context) {
	countries := c.QueryArray("country")
	if len(countries) == 0 {
		mapDomainError(c, domain.ErrMissingCountry)
		return
	}

	lines := h.engine.ListPaintingsByArtistCountries(countries...)
	c.JSON(http.StatusOK, dto.ToLinesResponse(services.QueryPaintingsByCountries, lines))
}

func (h *Handler) ListDutchPaintings(c *gin.Context) {
	lines := h.engine.ListPaintingsByDutchArtists()
	c.JSON(http.StatusOK, dto.ToLinesResponse(services.QueryDutchPaintings, lines))
}

func (h *Handler) ListFrenchOrItalianPaintings(c *gin.Context) {
	lines := h.engine.ListPaintingsByFrenchOrItalianArtists()
	c.JSON(http.StatusOK, dto.ToLinesResponse(services.QueryFrenchOrItalian, lines))
}

func (h *Handler) ListOrphanedPaintings(c *gin.Context) {
	lines := h.engine.ListOrphanedPaintings()
	c.JSON(http.StatusOK, dto.ToLinesResponse(services.QueryOrphanedPaintings, lines))
}
