// File path: internal/common/telemetry/telemetry.go
package telemetry

import (
	"context"
	"expvar"
	"strings"
	"sync"
	"time"

	"github.com/neoenergia/neoview/internal/common"
)

type spanKey struct{}

type span struct {
	name  string
	start time.Time
}

var (
	initOnce sync.Once

	requestTotal     *expvar.Map
	requestLatencyMS *expvar.Map

	searchTotal     *expvar.Int
	searchHitsTotal *expvar.Int

	assistantTotal     *expvar.Map
	assistantFailures  *expvar.Map
	assistantLatencyMS *expvar.Map

	reportViewsTotal *expvar.Int
	decisionTotal    *expvar.Map
)

func ensureInit() {
	initOnce.Do(func() {
		requestTotal = expvar.NewMap("neoview_requests_total")
		requestLatencyMS = expvar.NewMap("neoview_request_latency_ms")

		searchTotal = expvar.NewInt("neoview_search_total")
		searchHitsTotal = expvar.NewInt("neoview_search_hits_total")

		assistantTotal = expvar.NewMap("neoview_assistant_total")
		assistantFailures = expvar.NewMap("neoview_assistant_failures")
		assistantLatencyMS = expvar.NewMap("neoview_assistant_latency_ms")

		reportViewsTotal = expvar.NewInt("neoview_report_views_total")
		decisionTotal = expvar.NewMap("neoview_decision_total")
	})
}

// StartSpan logs the start of a named unit of work and returns a finish
// function that logs its duration along with any extra attributes.
func StartSpan(ctx context.Context, name string) (context.Context, func(attrs ...interface{})) {
	ensureInit()
	sp := &span{name: name, start: time.Now()}
	ctx = context.WithValue(ctx, spanKey{}, sp)
	logger := common.Logger()
	logger.Debug("trace: start", "span", name)
	return ctx, func(attrs ...interface{}) {
		if sp == nil {
			return
		}
		duration := time.Since(sp.start)
		logger.Debug("trace: end", append([]interface{}{"span", name, "dur", duration}, attrs...)...)
	}
}

// RecordRequest counts one HTTP request keyed by method.
func RecordRequest(method string, duration time.Duration) {
	ensureInit()
	key := strings.TrimSpace(strings.ToUpper(method))
	if key == "" {
		key = "UNKNOWN"
	}
	requestTotal.Add(key, 1)
	if duration > 0 {
		requestLatencyMS.Add(key, duration.Milliseconds())
	}
}

// RecordSearch counts one tree search and the hits it produced.
func RecordSearch(hits int) {
	ensureInit()
	searchTotal.Add(1)
	if hits > 0 {
		searchHitsTotal.Add(int64(hits))
	}
}

// RecordAssistantCall counts one model invocation keyed by kind, which is
// either "chat" or "ai_search".
func RecordAssistantCall(kind string, duration time.Duration, failed bool) {
	ensureInit()
	key := strings.TrimSpace(strings.ToLower(kind))
	if key == "" {
		key = "unknown"
	}
	assistantTotal.Add(key, 1)
	if failed {
		assistantFailures.Add(key, 1)
	}
	if duration > 0 {
		assistantLatencyMS.Add(key, duration.Milliseconds())
	}
}

// RecordReportView counts one report view event.
func RecordReportView() {
	ensureInit()
	reportViewsTotal.Add(1)
}

// RecordDecision counts one approval decision keyed by outcome.
func RecordDecision(action string) {
	ensureInit()
	key := strings.TrimSpace(strings.ToLower(action))
	if key == "" {
		key = "unknown"
	}
	decisionTotal.Add(key, 1)
}

// SpanDuration reports how long the span attached to ctx has been running.
func SpanDuration(ctx context.Context) time.Duration {
	sp, _ := ctx.Value(spanKey{}).(*span)
	if sp == nil {
		return 0
	}
	return time.Since(sp.start)
}
