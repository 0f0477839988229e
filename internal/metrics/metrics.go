package metrics

import (
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "ashi"

// Lab match outcomes.
const (
	OutcomeMatched  = "matched"
	OutcomeNoMatch  = "no_match"
	OutcomeRejected = "rejected"
)

// Recorder captures service telemetry.
type Recorder interface {
	RecordSearch(tagFiltered, queried bool, results int)
	RecordLabMatch(outcome string)
	RecordQuizCompleted(dosha string)
	RecordContentReload(duration time.Duration, err error)
	RecordHTTPRequest(method, route string, status int, duration time.Duration)
}

// PrometheusRecorder exports service metrics to Prometheus.
type PrometheusRecorder struct {
	searches       *prometheus.CounterVec
	searchResults  prometheus.Histogram
	labMatches     *prometheus.CounterVec
	quizCompleted  *prometheus.CounterVec
	reloadDuration prometheus.Histogram
	reloadErrors   prometheus.Counter
	httpDuration   *prometheus.HistogramVec
}

// NewPrometheusRecorder registers every collector on reg, reusing collectors
// that are already registered.
func NewPrometheusRecorder(reg prometheus.Registerer) (*PrometheusRecorder, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	r := &PrometheusRecorder{}
	var err error
	if r.searches, err = register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "remedy_searches_total",
		Help:      "Remedy catalog searches by filter kind.",
	}, []string{"tag_filtered", "queried"})); err != nil {
		return nil, err
	}
	if r.searchResults, err = register(reg, prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "remedy_search_results",
		Help:      "Number of remedies returned per search.",
		Buckets:   []float64{0, 1, 2, 5, 10, 25, 50, 100},
	})); err != nil {
		return nil, err
	}
	if r.labMatches, err = register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "lab_matches_total",
		Help:      "Veda Lab mixture analyses by outcome.",
	}, []string{"outcome"})); err != nil {
		return nil, err
	}
	if r.quizCompleted, err = register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "quiz_completions_total",
		Help:      "Completed dosha quizzes by dominant dosha.",
	}, []string{"dosha"})); err != nil {
		return nil, err
	}
	if r.reloadDuration, err = register(reg, prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "content_reload_duration_seconds",
		Help:      "Latency of content snapshot reloads.",
		Buckets:   prometheus.DefBuckets,
	})); err != nil {
		return nil, err
	}
	if r.reloadErrors, err = register(reg, prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "content_reload_errors_total",
		Help:      "Content snapshot reloads that failed validation or storage.",
	})); err != nil {
		return nil, err
	}
	if r.httpDuration, err = register(reg, prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency by route and status.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route", "status"})); err != nil {
		return nil, err
	}
	return r, nil
}

func register[T prometheus.Collector](reg prometheus.Registerer, c T) (T, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(T); ok {
				return existing, nil
			}
		}
		return c, fmt.Errorf("register metric: %w", err)
	}
	return c, nil
}

func (r *PrometheusRecorder) RecordSearch(tagFiltered, queried bool, results int) {
	if r == nil {
		return
	}
	r.searches.WithLabelValues(fmt.Sprint(tagFiltered), fmt.Sprint(queried)).Inc()
	r.searchResults.Observe(float64(results))
}

func (r *PrometheusRecorder) RecordLabMatch(outcome string) {
	if r == nil {
		return
	}
	r.labMatches.WithLabelValues(outcome).Inc()
}

func (r *PrometheusRecorder) RecordQuizCompleted(dosha string) {
	if r == nil {
		return
	}
	r.quizCompleted.WithLabelValues(dosha).Inc()
}

func (r *PrometheusRecorder) RecordContentReload(duration time.Duration, err error) {
	if r == nil {
		return
	}
	r.reloadDuration.Observe(duration.Seconds())
	if err != nil {
		r.reloadErrors.Inc()
	}
}

func (r *PrometheusRecorder) RecordHTTPRequest(method, route string, status int, duration time.Duration) {
	if r == nil {
		return
	}
	r.httpDuration.WithLabelValues(method, route, fmt.Sprint(status)).Observe(duration.Seconds())
}

// Nop discards everything.
type Nop struct{}

func (Nop) RecordSearch(bool, bool, int) {}

func (Nop) RecordLabMatch(string) {}

func (Nop) RecordQuizCompleted(string) {}

func (Nop) RecordContentReload(time.Duration, error) {}

func (Nop) RecordHTTPRequest(string, string, int, time.Duration) {}
