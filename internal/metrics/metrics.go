// Package metrics exposes Prometheus collectors for the reporting pipeline,
// the row-set cache, notifications and background jobs.
package metrics

import (
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "outbound"

// Metrics holds every collector. A nil *Metrics is valid and records nothing.
type Metrics struct {
	queryDuration *prometheus.HistogramVec
	queries       *prometheus.CounterVec
	rows          prometheus.Histogram
	cacheLookups  *prometheus.CounterVec
	notifications *prometheus.CounterVec
	fallbacks     *prometheus.CounterVec
	jobRuns       *prometheus.CounterVec
	jobDuration   *prometheus.HistogramVec
}

var (
	defaultOnce    sync.Once
	defaultMetrics *Metrics
)

// NewMetrics registers the collectors against registerer. When registerer is
// nil the default Prometheus registerer is used.
func NewMetrics(registerer prometheus.Registerer) *Metrics {
	if registerer == nil {
		defaultOnce.Do(func() {
			defaultMetrics = buildMetrics(prometheus.DefaultRegisterer)
		})
		return defaultMetrics
	}
	return buildMetrics(registerer)
}

// Handler serves the exposition format for gatherer. A nil gatherer serves
// the default registry.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	if gatherer == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

func buildMetrics(registerer prometheus.Registerer) *Metrics {
	m := &Metrics{
		queryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "view_query_duration_seconds",
			Help:      "Duration of delivery view queries.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"query"}),
		queries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "view_queries_total",
			Help:      "Delivery view queries by outcome.",
		}, []string{"query", "status"}),
		rows: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "view_rows",
			Help:      "Rows returned per delivery line query.",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 8),
		}),
		cacheLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rowset_cache_lookups_total",
			Help:      "Row-set cache lookups by result.",
		}, []string{"result"}),
		notifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notifications_total",
			Help:      "Notification sends by kind and status.",
		}, []string{"kind", "status"}),
		fallbacks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "attachment_fallbacks_total",
			Help:      "Attachments that failed to build and were replaced or dropped.",
		}, []string{"attachment"}),
		jobRuns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "job_runs_total",
			Help:      "Background job runs by status.",
		}, []string{"job", "status"}),
		jobDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "job_duration_seconds",
			Help:      "Background job run duration.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"job"}),
	}
	registerer.MustRegister(
		m.queryDuration, m.queries, m.rows, m.cacheLookups,
		m.notifications, m.fallbacks, m.jobRuns, m.jobDuration,
	)
	return m
}

func status(err error) string {
	if err != nil {
		return "failure"
	}
	return "success"
}

// ObserveQuery records one view query.
func (m *Metrics) ObserveQuery(query string, start time.Time, err error) {
	if m == nil {
		return
	}
	m.queryDuration.WithLabelValues(query).Observe(time.Since(start).Seconds())
	m.queries.WithLabelValues(query, status(err)).Inc()
}

// ObserveRows records the size of a delivery line result
func (m *Metrics) ObserveRows(n int) {
	if m == nil {
		return
	}
	m.rows.Observe(float64(n))
}

// CacheHit counts a row-set cache hit
func (m *Metrics) CacheHit() {
	if m == nil {
		return
	}
	m.cacheLookups.WithLabelValues("hit").Inc()
}

// CacheMiss counts a row-set cache miss
func (m *Metrics) CacheMiss() {
	if m == nil {
		return
	}
	m.cacheLookups.WithLabelValues("miss").Inc()
}

// CacheError counts a failed cache lookup
func (m *Metrics) CacheError() {
	if m == nil {
		return
	}
	m.cacheLookups.WithLabelValues("error").Inc()
}

// NotificationResult counts one recipient's send outcome.
func (m *Metrics) NotificationResult(kind, sendStatus string) {
	if m == nil {
		return
	}
	m.notifications.WithLabelValues(kind, sendStatus).Inc()
}

// AttachmentFallback counts a failed attachment build.
func (m *Metrics) AttachmentFallback(attachment string) {
	if m == nil {
		return
	}
	m.fallbacks.WithLabelValues(attachment).Inc()
}

// JobTracker instruments a single job run.
type JobTracker struct {
	metrics *Metrics
	job     string
	start   time.Time
}

// TrackJob starts a tracker for job.
func (m *Metrics) TrackJob(job string) *JobTracker {
	return &JobTracker{metrics: m, job: job, start: time.Now()}
}

// End records the run and returns err untouched.
func (t *JobTracker) End(err error) error {
	if t == nil || t.metrics == nil {
		return err
	}
	t.metrics.jobRuns.WithLabelValues(t.job, status(err)).Inc()
	t.metrics.jobDuration.WithLabelValues(t.job).Observe(time.Since(t.start).Seconds())
	return err
}
