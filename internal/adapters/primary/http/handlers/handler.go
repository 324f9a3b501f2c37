package handlers

import (
	"art-catalog-service/internal/core/services"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	engine *services.QueryEngine
}

func New(engine *services.QueryEngine) *Handler {
	return &Handler{engine: engine}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	// Paintings
	r.GET("/paintings", h.ListPaintings)
	r.GET("/paintings/oldest", h.GetOldestPainting)
	r.GET("/paintings/before/:year", h.ListPaintingsBeforeYear)
	r.GET("/paintings/by-artist", h.ListPaintingsByArtist)
	r.GET("/paintings/by-countries", h.ListPaintingsByCountries)
	r.GET("/paintings/dutch", h.ListDutchPaintings)
	r.GET("/paintings/french-or-italian", h.ListFrenchOrItalianPaintings)
	r.GET("/paintings/orphaned", h.ListOrphanedPaintings)

	// Artists
	r.GET("/artists", h.ListArtistsByCountry)
	r.GET("/artists/grouped-by-country", h.GroupArtistsByCountry)

	// Countries
	r.GET("/countries", h.ListCountries)
	r.GET("/countries/painting-counts", h.CountPaintingsPerCountry)

	// Joins and summary
	r.GET("/joined", h.ListJoined)
	r.GET("/stats", h.GetStats)
}
