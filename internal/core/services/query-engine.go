package services

import (
	"strconv"
	"time"

	"art-catalog-service/internal/core/domain"
	ports "art-catalog-service/internal/core/ports/output"
	"art-catalog-service/internal/core/query"
)

const (
	countryNetherlands = "Netherlands"
	countryFrance      = "France"
	countryItaly       = "Italy"

	groupIndent = "\t\t"
)

// Query names, used for metrics labels and API responses.
const (
	QueryAllPaintings            = "all_paintings"
	QueryArtistsByCountry        = "artists_by_country"
	QueryPaintingsBeforeYear     = "paintings_before_year"
	QueryOldestPainting          = "oldest_painting"
	QueryPaintingsByArtist       = "paintings_by_artist"
	QueryPaintingCountsByCountry = "painting_counts_by_country"
	QueryArtistsGroupedByCountry = "artists_grouped_by_country"
	QueryDutchPaintings          = "dutch_paintings"
	QueryJoinedWithCountry       = "joined_with_country"
	QueryFrenchOrItalian         = "french_or_italian_paintings"
	QueryPaintingsByCountries    = "paintings_by_countries"
	QueryOrphanedPaintings       = "orphaned_paintings"
	QueryCountries               = "countries"
	QueryStats                   = "stats"
)

type artistPainting = query.Pair[domain.Artist, domain.Painting]

// CatalogStats summarises a catalog.
type CatalogStats struct {
	Artists     int `json:"artists"`
	Paintings   int `json:"paintings"`
	JoinMatches int `json:"join_matches"`
	Orphans     int `json:"orphans"`
	Countries   int `json:"countries"`
}

// QueryEngine answers read-only queries over a catalog. Every method is a
// pure function of the catalog contents and safe for concurrent use.
type QueryEngine struct {
	catalog *domain.Catalog
	metrics ports.QueryMetrics
}

func NewQueryEngine(catalog *domain.Catalog, metrics ports.QueryMetrics) *QueryEngine {
	if metrics == nil {
		metrics = ports.NopQueryMetrics{}
	}
	return &QueryEngine{catalog: catalog, metrics: metrics}
}

// ListAllPaintings formats every painting in insertion order.
func (e *QueryEngine) ListAllPaintings() []string {
	start := time.Now()
	return e.record(QueryAllPaintings, start, formatPaintings(e.catalog.Paintings()))
}

// ListArtistsByCountry returns artists whose country equals country exactly.
func (e *QueryEngine) ListArtistsByCountry(country string) []string {
	start := time.Now()
	artists := query.Filter(e.catalog.Artists(), func(a domain.Artist) bool {
		return a.Country == country
	})
	return e.record(QueryArtistsByCountry, start, query.Map(artists, domain.Artist.String))
}

// ListPaintingsBeforeYear returns paintings made strictly before year.
func (e *QueryEngine) ListPaintingsBeforeYear(year int) []string {
	start := time.Now()
	paintings := query.Filter(e.catalog.Paintings(), func(p domain.Painting) bool {
		return p.Year < year
	})
	return e.record(QueryPaintingsBeforeYear, start, formatPaintings(paintings))
}

// FindOldestPainting returns the painting with the smallest year. Ties go to
// the earliest painting in insertion order.
func (e *QueryEngine) FindOldestPainting() (domain.Painting, error) {
	start := time.Now()
	oldest, ok := query.MinBy(e.catalog.Paintings(), func(a, b domain.Painting) bool {
		return a.Year < b.Year
	})
	if !ok {
		e.metrics.ObserveQuery(QueryOldestPainting, 0, time.Since(start), domain.ErrEmptyCollection)
		return domain.Painting{}, domain.ErrEmptyCollection
	}
	e.metrics.ObserveQuery(QueryOldestPainting, 1, time.Since(start), nil)
	return oldest, nil
}

// ListPaintingsByArtistLastName returns paintings whose artist field equals
// name. An empty name matches nothing.
func (e *QueryEngine) ListPaintingsByArtistLastName(name string) []string {
	start := time.Now()
	paintings := []domain.Painting{}
	if name != "" {
		paintings = query.Filter(e.catalog.Paintings(), func(p domain.Painting) bool {
			return p.Artist == name
		})
	}
	return e.record(QueryPaintingsByArtist, start, formatPaintings(paintings))
}

// CountPaintingsPerCountry emits "<n> paintings from <country>" for every
// country with at least one joined painting.
func (e *QueryEngine) CountPaintingsPerCountry() []string {
	start := time.Now()
	groups := query.GroupBy(e.joined(), func(row artistPainting) string {
		return row.Left.Country
	})
	lines := query.Map(groups, func(g query.Group[string, artistPainting]) string {
		return strconv.Itoa(len(g.Items)) + " paintings from " + g.Key
	})
	return e.record(QueryPaintingCountsByCountry, start, lines)
}

// GroupArtistsByCountry emits each country followed by its artists' names, indented.
func (e *QueryEngine) GroupArtistsByCountry() []string {
	start := time.Now()
	groups := query.GroupBy(e.catalog.Artists(), func(a domain.Artist) string {
		return a.Country
	})

	lines := make([]string, 0, len(groups)+len(e.catalog.Artists()))
	for _, g := range groups {
		lines = append(lines, g.Key)
		for _, a := range g.Items {
			lines = append(lines, groupIndent+a.FullName())
		}
	}
	return e.record(QueryArtistsGroupedByCountry, start, lines)
}

// ListPaintingsByDutchArtists returns paintings by Netherlands artists,
// grouped by artist and flattened.
func (e *QueryEngine) ListPaintingsByDutchArtists() []string {
	start := time.Now()
	rows := query.Filter(e.joined(), func(row artistPainting) bool {
		return row.Left.Country == countryNetherlands
	})
	paintings := query.Flatten(query.GroupBy(
		query.Map(rows, func(row artistPainting) domain.Painting { return row.Right }),
		func(p domain.Painting) string { return p.Artist },
	))
	return e.record(QueryDutchPaintings, start, formatPaintings(paintings))
}

// ListAllJoinedWithCountry emits "<country>\t\t<painting>" for every join match.
func (e *QueryEngine) ListAllJoinedWithCountry() []string {
	start := time.Now()
	lines := query.Map(e.joined(), func(row artistPainting) string {
		return row.Left.Country + groupIndent + row.Right.String()
	})
	return e.record(QueryJoinedWithCountry, start, lines)
}

// ListPaintingsByFrenchOrItalianArtists returns paintings by artists from France or Italy.
func (e *QueryEngine) ListPaintingsByFrenchOrItalianArtists() []string {
	start := time.Now()
	paintings := e.paintingsByCountries([]string{countryFrance, countryItaly})
	return e.record(QueryFrenchOrItalian, start, formatPaintings(paintings))
}

// ListPaintingsByArtistCountries returns paintings whose artist comes from
// any of countries, ordered by artist then painting.
func (e *QueryEngine) ListPaintingsByArtistCountries(countries ...string) []string {
	start := time.Now()
	paintings := e.paintingsByCountries(countries)
	return e.record(QueryPaintingsByCountries, start, formatPaintings(paintings))
}

// ListOrphanedPaintings returns paintings whose artist matches no artist last name.
func (e *QueryEngine) ListOrphanedPaintings() []string {
	start := time.Now()
	return e.record(QueryOrphanedPaintings, start, formatPaintings(e.orphans()))
}

// ListCountries returns the distinct artist countries in first-seen order.
func (e *QueryEngine) ListCountries() []string {
	start := time.Now()
	return e.record(QueryCountries, start, e.countries())
}

// Stats counts artists, paintings, join matches, orphans and distinct
// countries. It is recorded as a single-row query.
func (e *QueryEngine) Stats() CatalogStats {
	start := time.Now()
	stats := CatalogStats{
		Artists:     len(e.catalog.Artists()),
		Paintings:   len(e.catalog.Paintings()),
		JoinMatches: len(e.joined()),
		Orphans:     len(e.orphans()),
		Countries:   len(e.countries()),
	}
	e.metrics.ObserveQuery(QueryStats, 1, time.Since(start), nil)
	return stats
}

func (e *QueryEngine) joined() []artistPainting {
	return query.InnerJoin(e.catalog.Artists(), e.catalog.Paintings(),
		func(a domain.Artist) string { return a.LastName },
		func(p domain.Painting) string { return p.Artist },
	)
}

func (e *QueryEngine) paintingsByCountries(countries []string) []domain.Painting {
	wanted := make(map[string]struct{}, len(countries))
	for _, c := range countries {
		wanted[c] = struct{}{}
	}
	rows := query.Filter(e.joined(), func(row artistPainting) bool {
		_, ok := wanted[row.Left.Country]
		return ok
	})
	return query.Map(rows, func(row artistPainting) domain.Painting { return row.Right })
}

func (e *QueryEngine) orphans() []domain.Painting {
	known := make(map[string]struct{}, len(e.catalog.Artists()))
	for _, a := range e.catalog.Artists() {
		known[a.LastName] = struct{}{}
	}
	return query.Filter(e.catalog.Paintings(), func(p domain.Painting) bool {
		_, ok := known[p.Artist]
		return !ok
	})
}

func (e *QueryEngine) countries() []string {
	return query.Distinct(e.catalog.Artists(), func(a domain.Artist) string {
		return a.Country
	})
}

func (e *QueryEngine) record(name string, start time.Time, lines []string) []string {
	e.metrics.ObserveQuery(name, len(lines), time.Since(start), nil)
	return lines
}

func formatPaintings(paintings []domain.Painting) []string {
	return query.Map(paintings, domain.Painting.String)
}
