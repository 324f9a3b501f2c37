package prometheus

import (
	"strconv"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	ports "art-catalog-service/internal/core/ports/output"
)

const namespace = "art_catalog"

// Recorder exports query, catalog and HTTP metrics to a Prometheus registry.
type Recorder struct {
	queriesTotal     *prom.CounterVec
	queryDuration    *prom.HistogramVec
	queryRows        *prom.HistogramVec
	catalogArtists   *prom.GaugeVec
	catalogPaintings *prom.GaugeVec
	requestsTotal    *prom.CounterVec
	requestDuration  *prom.HistogramVec
}

var _ ports.QueryMetrics = (*Recorder)(nil)

// NewRecorder registers all collectors with reg.
func NewRecorder(reg prom.Registerer) *Recorder {
	factory := promauto.With(reg)
	return &Recorder{
		queriesTotal: factory.NewCounterVec(
			prom.CounterOpts{
				Namespace: namespace,
				Name:      "queries_total",
				Help:      "Total number of catalog queries",
			},
			[]string{"query", "status"},
		),
		queryDuration: factory.NewHistogramVec(
			prom.HistogramOpts{
				Namespace: namespace,
				Name:      "query_duration_seconds",
				Help:      "Catalog query latency in seconds",
				Buckets:   []float64{.00001, .0001, .001, .01, .1},
			},
			[]string{"query"},
		),
		queryRows: factory.NewHistogramVec(
			prom.HistogramOpts{
				Namespace: namespace,
				Name:      "query_rows",
				Help:      "Number of lines produced per catalog query",
				Buckets:   prom.LinearBuckets(0, 5, 6),
			},
			[]string{"query"},
		),
		catalogArtists: factory.NewGaugeVec(
			prom.GaugeOpts{
				Namespace: namespace,
				Name:      "catalog_artists",
				Help:      "Artists loaded into the catalog",
			},
			[]string{"source"},
		),
		catalogPaintings: factory.NewGaugeVec(
			prom.GaugeOpts{
				Namespace: namespace,
				Name:      "catalog_paintings",
				Help:      "Paintings loaded into the catalog",
			},
			[]string{"source"},
		),
		requestsTotal: factory.NewCounterVec(
			prom.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		requestDuration: factory.NewHistogramVec(
			prom.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request latency in seconds",
				Buckets:   prom.DefBuckets,
			},
			[]string{"method", "path"},
		),
	}
}

func (r *Recorder) ObserveQuery(name string, rows int, elapsed time.Duration, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	r.queriesTotal.WithLabelValues(name, status).Inc()
	r.queryDuration.WithLabelValues(name).Observe(elapsed.Seconds())
	r.queryRows.WithLabelValues(name).Observe(float64(rows))
}

func (r *Recorder) ObserveCatalogLoad(source string, artists, paintings int) {
	r.catalogArtists.WithLabelValues(source).Set(float64(artists))
	r.catalogPaintings.WithLabelValues(source).Set(float64(paintings))
}

// ObserveRequest records one served HTTP request. path should be the route
// template, not the raw URL, to keep label cardinality bounded.
func (r *Recorder) ObserveRequest(method, path string, status int, elapsed time.Duration) {
	r.requestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	r.requestDuration.WithLabelValues(method, path).Observe(elapsed.Seconds())
}
