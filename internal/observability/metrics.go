package observability

import (
	"io"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/mindease/mindease-backend/internal/platform/logger"
)

// Metrics is nil when disabled. Every method is nil-safe.
type Metrics struct {
	apiRequests     *CounterVec
	apiLatency      *HistogramVec
	apiInflight     *Gauge
	chatReplies     *CounterVec
	plansGenerated  *CounterVec
	activityToggles *CounterVec
}

var (
	initOnce sync.Once
	instance *Metrics
)

// Init builds the process-wide registry once. It returns nil when enabled
// is false.
func Init(log *logger.Logger, enabled bool) *Metrics {
	if !enabled {
		return nil
	}
	initOnce.Do(func() {
		instance = newMetrics()
		if log != nil {
			log.Info("metrics enabled")
		}
	})
	return instance
}

func newMetrics() *Metrics {
	return &Metrics{
		apiRequests: NewCounterVec("mindease_api_requests_total", "API requests by method/route/status.", []string{"method", "route", "status"}),
		apiLatency: NewHistogramVec(
			"mindease_api_request_duration_seconds",
			"API request latency in seconds by method/route.",
			[]string{"method", "route"},
			[]float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10},
		),
		apiInflight:     NewGauge("mindease_api_inflight_requests", "In-flight API requests."),
		chatReplies:     NewCounterVec("mindease_chat_replies_total", "Companion replies by source.", []string{"source"}),
		plansGenerated:  NewCounterVec("mindease_wellness_plans_total", "Generated wellness plans by mood.", []string{"mood"}),
		activityToggles: NewCounterVec("mindease_activity_toggles_total", "Plan activity toggles by outcome.", []string{"completed"}),
	}
}

func (m *Metrics) ObserveAPI(method, route string, status int, dur time.Duration) {
	if m == nil {
		return
	}
	if route == "" {
		route = "unmatched"
	}
	m.apiRequests.Inc(method, route, strconv.Itoa(status))
	m.apiLatency.Observe(dur.Seconds(), method, route)
}

func (m *Metrics) APIInflightInc() {
	if m == nil {
		return
	}
	m.apiInflight.Inc()
}

func (m *Metrics) APIInflightDec() {
	if m == nil {
		return
	}
	m.apiInflight.Dec()
}

func (m *Metrics) IncChatReply(source string) {
	if m == nil {
		return
	}
	m.chatReplies.Inc(source)
}

func (m *Metrics) IncPlanGenerated(mood string) {
	if m == nil {
		return
	}
	m.plansGenerated.Inc(mood)
}

func (m *Metrics) IncActivityToggle(completed bool) {
	if m == nil {
		return
	}
	m.activityToggles.Inc(strconv.FormatBool(completed))
}

func (m *Metrics) WriteHTTP(w http.ResponseWriter, _ *http.Request) {
	if m == nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}
	w.Header().Set("Content-Type", "text/plain; version=0.0.4")
	_ = m.WritePrometheus(w)
}

func (m *Metrics) WritePrometheus(w io.Writer) error {
	if m == nil {
		return nil
	}
	writers := []interface{ WritePrometheus(io.Writer) error }{
		m.apiRequests,
		m.apiLatency,
		m.apiInflight,
		m.chatReplies,
		m.plansGenerated,
		m.activityToggles,
	}
	for _, mw := range writers {
		if err := mw.WritePrometheus(w); err != nil {
			return err
		}
	}
	return nil
}
