package services

import (
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"art-catalog-service/internal/adapters/secondary/memory"
	"art-catalog-service/internal/core/domain"
	"art-catalog-service/internal/testutil"
)

func seedEngine() *QueryEngine {
	return NewQueryEngine(domain.NewCatalog(memory.SeedArtists(), memory.SeedPaintings()), nil)
}

func parsePaintings(t *testing.T, lines []string) []domain.Painting {
	t.Helper()
	out := make([]domain.Painting, 0, len(lines))
	for _, line := range lines {
		p, err := domain.ParsePainting(line)
		require.NoError(t, err, line)
		out = append(out, p)
	}
	return out
}

func titles(paintings []domain.Painting) []string {
	out := make([]string, 0, len(paintings))
	for _, p := range paintings {
		out = append(out, p.Title)
	}
	return out
}

func TestQueryEngine_ListAllPaintings(t *testing.T) {
	e := seedEngine()

	got := parsePaintings(t, e.ListAllPaintings())
	assert.Equal(t, memory.SeedPaintings(), got)
}

func TestQueryEngine_ListArtistsByCountry_Italy(t *testing.T) {
	e := seedEngine()

	lines := e.ListArtistsByCountry("Italy")
	require.Len(t, lines, 3)

	var lastNames []string
	for _, line := range lines {
		a, err := domain.ParseArtist(line)
		require.NoError(t, err)
		assert.Equal(t, "Italy", a.Country)
		lastNames = append(lastNames, a.LastName)
	}
	assert.Equal(t, []string{"Raphael", "da Vinci", "Botticelli"}, lastNames)
}

func TestQueryEngine_ListArtistsByCountry_CaseSensitive(t *testing.T) {
	e := seedEngine()
	assert.Empty(t, e.ListArtistsByCountry("italy"))
	assert.Empty(t, e.ListArtistsByCountry("Atlantis"))
}

func TestQueryEngine_ListArtistsByCountry_Completeness(t *testing.T) {
	e := seedEngine()
	for _, country := range e.ListCountries() {
		want := 0
		for _, a := range memory.SeedArtists() {
			if a.Country == country {
				want++
			}
		}
		assert.Len(t, e.ListArtistsByCountry(country), want, country)
	}
}

func TestQueryEngine_ListPaintingsBeforeYear(t *testing.T) {
	e := seedEngine()

	got := parsePaintings(t, e.ListPaintingsBeforeYear(1800))
	assert.Equal(t, []string{
		"Girl with a Pearl Earring",
		"Madonna dell Granduca",
		"The Last Supper",
		"The Birth of Venus",
	}, titles(got))
	for _, p := range got {
		assert.Less(t, p.Year, 1800)
	}
}

func TestQueryEngine_ListPaintingsBeforeYear_Completeness(t *testing.T) {
	e := seedEngine()
	for _, year := range []int{0, 1485, 1486, 1825, 1826, 1900, 3000} {
		got := parsePaintings(t, e.ListPaintingsBeforeYear(year))
		var want []domain.Painting
		for _, p := range memory.SeedPaintings() {
			if p.Year < year {
				want = append(want, p)
			}
		}
		assert.ElementsMatch(t, want, got, "year %d", year)
	}
}

func TestQueryEngine_FindOldestPainting(t *testing.T) {
	e := seedEngine()

	oldest, err := e.FindOldestPainting()
	require.NoError(t, err)
	assert.Equal(t, "The Birth of Venus", oldest.Title)
	for _, p := range memory.SeedPaintings() {
		assert.LessOrEqual(t, oldest.Year, p.Year)
	}

	again, err := e.FindOldestPainting()
	require.NoError(t, err)
	assert.Equal(t, oldest, again)
}

func TestQueryEngine_FindOldestPainting_TieGoesToFirst(t *testing.T) {
	e := NewQueryEngine(domain.NewCatalog(nil, []domain.Painting{
		{Artist: "A", Title: "later", Year: 1900},
		{Artist: "B", Title: "first", Year: 1500},
		{Artist: "C", Title: "second", Year: 1500},
	}), nil)

	oldest, err := e.FindOldestPainting()
	require.NoError(t, err)
	assert.Equal(t, "first", oldest.Title)
}

func TestQueryEngine_FindOldestPainting_Empty(t *testing.T) {
	e := NewQueryEngine(domain.NewCatalog(nil, nil), nil)

	_, err := e.FindOldestPainting()
	assert.ErrorIs(t, err, domain.ErrEmptyCollection)
}

func TestQueryEngine_ListPaintingsByArtistLastName_VanGogh(t *testing.T) {
	e := seedEngine()

	got := parsePaintings(t, e.ListPaintingsByArtistLastName("van Gogh"))
	require.Len(t, got, 2)
	assert.Equal(t, "The Starry Night", got[0].Title)
	assert.Equal(t, 1889, got[0].Year)
	assert.Equal(t, "Village Street in Auvers", got[1].Title)
	assert.Equal(t, 1890, got[1].Year)
}

func TestQueryEngine_ListPaintingsByArtistLastName_NoMatch(t *testing.T) {
	e := seedEngine()
	assert.Empty(t, e.ListPaintingsByArtistLastName(""))
	assert.Empty(t, e.ListPaintingsByArtistLastName("Van Gogh"))
	assert.Empty(t, e.ListPaintingsByArtistLastName("Rembrandt"))
}

func TestQueryEngine_ListPaintingsByArtistLastName_EmptyNameIgnoresBlankArtists(t *testing.T) {
	e := NewQueryEngine(domain.NewCatalog(nil, []domain.Painting{{Artist: "", Title: "Anonymous"}}), nil)
	assert.Empty(t, e.ListPaintingsByArtistLastName(""))
}

func TestQueryEngine_CountPaintingsPerCountry(t *testing.T) {
	e := seedEngine()

	assert.Equal(t, []string{
		"5 paintings from France",
		"1 paintings from England",
		"4 paintings from Netherlands",
		"4 paintings from Italy",
		"1 paintings from Spain",
		"1 paintings from Norway",
		"1 paintings from United States",
	}, e.CountPaintingsPerCountry())
}

func TestQueryEngine_CountPaintingsPerCountry_SumsToJoinMatches(t *testing.T) {
	e := NewQueryEngine(domain.NewCatalog(memory.SeedArtists(), append(memory.SeedPaintings(),
		domain.Painting{Artist: "Rembrandt", Title: "The Night Watch", Year: 1642},
	)), nil)

	total := 0
	for _, line := range e.CountPaintingsPerCountry() {
		n, _, ok := strings.Cut(line, " ")
		require.True(t, ok)
		count, err := strconv.Atoi(n)
		require.NoError(t, err)
		total += count
	}
	assert.Equal(t, e.Stats().JoinMatches, total)
	assert.Equal(t, 17, total)
}

func TestQueryEngine_GroupArtistsByCountry(t *testing.T) {
	e := seedEngine()

	assert.Equal(t, []string{
		"France",
		"\t\tCamille Pissarro",
		"\t\tClaude Monet",
		"\t\tHenri Matisse",
		"England",
		"\t\tJohn Constable",
		"Netherlands",
		"\t\tJan Vermeer",
		"\t\tPiet Mondrian",
		"\t\tVincent van Gogh",
		"Italy",
		"\t\tSanzio Raphael",
		"\t\tLeonardo da Vinci",
		"\t\tSandro Botticelli",
		"Spain",
		"\t\tPablo Picasso",
		"Norway",
		"\t\tEdvard Munch",
		"United States",
		"\t\tJackson Pollock",
	}, e.GroupArtistsByCountry())
}

func TestQueryEngine_ListPaintingsByDutchArtists(t *testing.T) {
	e := seedEngine()

	got := parsePaintings(t, e.ListPaintingsByDutchArtists())
	assert.Equal(t, []string{
		"Girl with a Pearl Earring",
		"Composition with Red, Yellow and Blue",
		"The Starry Night",
		"Village Street in Auvers",
	}, titles(got))
	for _, p := range got {
		assert.Contains(t, []string{"Vermeer", "Mondrian", "van Gogh"}, p.Artist)
	}
}

func TestQueryEngine_ListAllJoinedWithCountry(t *testing.T) {
	e := seedEngine()

	lines := e.ListAllJoinedWithCountry()
	require.Len(t, lines, 17)

	country, painting, ok := strings.Cut(lines[0], "\t\t")
	require.True(t, ok)
	assert.Equal(t, "France", country)
	p, err := domain.ParsePainting(painting)
	require.NoError(t, err)
	assert.Equal(t, "Gelee Blanche", p.Title)

	country, painting, ok = strings.Cut(lines[len(lines)-1], "\t\t")
	require.True(t, ok)
	assert.Equal(t, "Netherlands", country)
	p, err = domain.ParsePainting(painting)
	require.NoError(t, err)
	assert.Equal(t, "Village Street in Auvers", p.Title)
}

func TestQueryEngine_ListAllJoinedWithCountry_SkipsOrphans(t *testing.T) {
	e := NewQueryEngine(domain.NewCatalog(
		[]domain.Artist{{Country: "Norway", LastName: "Munch"}},
		[]domain.Painting{{Artist: "Ghost", Title: "Nowhere"}, {Artist: "Munch", Title: "The Scream"}},
	), nil)

	lines := e.ListAllJoinedWithCountry()
	require.Len(t, lines, 1)
	assert.True(t, strings.HasPrefix(lines[0], "Norway\t\tThe Scream"))
}

func TestQueryEngine_ListPaintingsByFrenchOrItalianArtists(t *testing.T) {
	e := seedEngine()

	got := parsePaintings(t, e.ListPaintingsByFrenchOrItalianArtists())
	assert.Equal(t, []string{
		"Gelee Blanche",
		"Village Path",
		"Fishing Boats Leaving the Harbor, Le Havre",
		"Water Lilies",
		"Madonna dell Granduca",
		"St. George Fighting the Dragon",
		"The Last Supper",
		"The Birth of Venus",
		"La Musique",
	}, titles(got))
}

func TestQueryEngine_ListPaintingsByArtistCountries(t *testing.T) {
	e := seedEngine()

	assert.Equal(t, e.ListPaintingsByFrenchOrItalianArtists(), e.ListPaintingsByArtistCountries("France", "Italy"))
	assert.Empty(t, e.ListPaintingsByArtistCountries())
	assert.Len(t, e.ListPaintingsByArtistCountries("Norway"), 1)
}

func TestQueryEngine_ListOrphanedPaintings(t *testing.T) {
	assert.Empty(t, seedEngine().ListOrphanedPaintings())

	e := NewQueryEngine(domain.NewCatalog(memory.SeedArtists(), []domain.Painting{
		{Artist: "Rembrandt", Title: "The Night Watch", Method: "Oil on canvas", Year: 1642, Width: 363, Height: 437},
	}), nil)
	got := parsePaintings(t, e.ListOrphanedPaintings())
	assert.Equal(t, []string{"The Night Watch"}, titles(got))
}

func TestQueryEngine_ListCountries(t *testing.T) {
	assert.Equal(t,
		[]string{"France", "England", "Netherlands", "Italy", "Spain", "Norway", "United States"},
		seedEngine().ListCountries())
}

func TestQueryEngine_Stats(t *testing.T) {
	assert.Equal(t, CatalogStats{
		Artists:     13,
		Paintings:   17,
		JoinMatches: 17,
		Orphans:     0,
		Countries:   7,
	}, seedEngine().Stats())
}

func TestQueryEngine_EmptyCatalog(t *testing.T) {
	e := NewQueryEngine(domain.NewCatalog(nil, nil), nil)

	assert.Empty(t, e.ListAllPaintings())
	assert.Empty(t, e.ListArtistsByCountry("Italy"))
	assert.Empty(t, e.ListPaintingsBeforeYear(1800))
	assert.Empty(t, e.CountPaintingsPerCountry())
	assert.Empty(t, e.GroupArtistsByCountry())
	assert.Empty(t, e.ListPaintingsByDutchArtists())
	assert.Empty(t, e.ListAllJoinedWithCountry())
	assert.Empty(t, e.ListPaintingsByFrenchOrItalianArtists())
}

func TestQueryEngine_RecordsMetrics(t *testing.T) {
	metrics := new(testutil.MockQueryMetrics)
	e := NewQueryEngine(domain.NewCatalog(memory.SeedArtists(), memory.SeedPaintings()), metrics)

	metrics.On("ObserveQuery", QueryArtistsByCountry, 3, mock.AnythingOfType("time.Duration"), nil).Return().Once()
	metrics.On("ObserveQuery", QueryOldestPainting, 1, mock.AnythingOfType("time.Duration"), nil).Return().Once()

	e.ListArtistsByCountry("Italy")
	_, err := e.FindOldestPainting()
	require.NoError(t, err)

	metrics.AssertExpectations(t)
}

func TestQueryEngine_RecordsEmptyCollectionError(t *testing.T) {
	metrics := new(testutil.MockQueryMetrics)
	e := NewQueryEngine(domain.NewCatalog(nil, nil), metrics)

	metrics.On("ObserveQuery", QueryOldestPainting, 0, mock.AnythingOfType("time.Duration"), domain.ErrEmptyCollection).Return().Once()

	_, err := e.FindOldestPainting()
	assert.ErrorIs(t, err, domain.ErrEmptyCollection)
	metrics.AssertExpectations(t)
}

func TestQueryEngine_StatsRecordsMetrics(t *testing.T) {
	metrics := new(testutil.MockQueryMetrics)
	e := NewQueryEngine(domain.NewCatalog(memory.SeedArtists(), memory.SeedPaintings()), metrics)

	metrics.On("ObserveQuery", QueryStats, 1, mock.AnythingOfType("time.Duration"), nil).Return().Once()

	assert.Equal(t, 17, e.Stats().Paintings)
	metrics.AssertExpectations(t)
}

func TestQueryEngine_ConcurrentReaders(t *testing.T) {
	e := seedEngine()
	queries := map[string]func() []string{
		QueryJoinedWithCountry:       e.ListAllJoinedWithCountry,
		QueryPaintingCountsByCountry: e.CountPaintingsPerCountry,
		QueryDutchPaintings:          e.ListPaintingsByDutchArtists,
		QueryArtistsGroupedByCountry: e.GroupArtistsByCountry,
		QueryFrenchOrItalian:         e.ListPaintingsByFrenchOrItalianArtists,
		QueryAllPaintings:            e.ListAllPaintings,
	}
	baseline := make(map[string][]string, len(queries))
	for name, q := range queries {
		baseline[name] = q()
	}
	oldest, err := e.FindOldestPainting()
	require.NoError(t, err)

	const workers = 16
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for name, q := range queries {
				assert.Equal(t, baseline[name], q(), name)
			}
			got, err := e.FindOldestPainting()
			assert.NoError(t, err)
			assert.Equal(t, oldest, got)
		}()
	}
	wg.Wait()
}
