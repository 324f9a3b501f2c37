package ports

import "time"

// QueryMetrics records how queries against the catalog behave.
type QueryMetrics interface {
	ObserveQuery(name string, rows int, elapsed time.Duration, err error)
	ObserveCatalogLoad(source string, artists, paintings int)
}

// NopQueryMetrics discards all observations.
type NopQueryMetrics struct{}

func (NopQueryMetrics) ObserveQuery(string, int, time.Duration, error) {}

func (NopQueryMetrics) ObserveCatalogLoad(string, int, int) {}
