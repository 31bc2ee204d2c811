package telemetry

import (
	"fmt"
	"io"
	"math"
	"net/http"
	"sort"
	"strings"
)

// PrometheusExporter exports a Collector's counters and histograms in
// Prometheus text exposition format.
type PrometheusExporter struct {
	collector *Collector
	namespace string
}

// NewPrometheusExporter creates an exporter for collector. namespace is
// prepended to every metric name (e.g. "envcrypt").
func NewPrometheusExporter(collector *Collector, namespace string) *PrometheusExporter {
	return &PrometheusExporter{collector: collector, namespace: namespace}
}

// Handler returns an http.Handler that serves the current snapshot on
// every request.
func (e *PrometheusExporter) Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; version=0.0.4; charset=utf-8")
		e.WriteMetrics(w)
	})
}

// WriteMetrics writes the current snapshot to w in Prometheus text format.
func (e *PrometheusExporter) WriteMetrics(w io.Writer) {
	snap := e.collector.Snapshot()
	labels := e.formatLabels(snap.Labels)

	e.writeHelp(w, "seal_total", "Total number of seal operations attempted")
	e.writeType(w, "seal_total", "counter")
	e.writeMetric(w, "seal_total", labels, float64(snap.SealTotal))

	e.writeHelp(w, "seal_failed_total", "Total number of seal operations that failed")
	e.writeType(w, "seal_failed_total", "counter")
	e.writeMetric(w, "seal_failed_total", labels, float64(snap.SealFailed))

	e.writeHelp(w, "open_total", "Total number of open operations attempted")
	e.writeType(w, "open_total", "counter")
	e.writeMetric(w, "open_total", labels, float64(snap.OpenTotal))

	e.writeHelp(w, "open_failed_total", "Total number of open operations that failed")
	e.writeType(w, "open_failed_total", "counter")
	e.writeMetric(w, "open_failed_total", labels, float64(snap.OpenFailed))

	e.writeHelp(w, "auth_failures_total", "Total authentication failures across seal and open")
	e.writeType(w, "auth_failures_total", "counter")
	e.writeMetric(w, "auth_failures_total", labels, float64(snap.AuthFailures))

	e.writeHelp(w, "malformed_artifacts_total", "Total artifacts rejected as malformed")
	e.writeType(w, "malformed_artifacts_total", "counter")
	e.writeMetric(w, "malformed_artifacts_total", labels, float64(snap.MalformedTotal))

	e.writeHelp(w, "random_source_failures_total", "Total failures reading the random source")
	e.writeType(w, "random_source_failures_total", "counter")
	e.writeMetric(w, "random_source_failures_total", labels, float64(snap.RandomSourceFail))

	e.writeHelp(w, "uptime_seconds", "Time since the collector was created")
	e.writeType(w, "uptime_seconds", "gauge")
	e.writeMetric(w, "uptime_seconds", labels, snap.Uptime.Seconds())

	e.writeHistogram(w, "seal_duration_microseconds", "Seal operation duration in microseconds", labels, snap.SealLatency)
	e.writeHistogram(w, "open_duration_microseconds", "Open operation duration in microseconds", labels, snap.OpenLatency)
}

func (e *PrometheusExporter) writeHelp(w io.Writer, name, help string) {
	fmt.Fprintf(w, "# HELP %s_%s %s\n", e.namespace, name, help)
}

func (e *PrometheusExporter) writeType(w io.Writer, name, typ string) {
	fmt.Fprintf(w, "# TYPE %s_%s %s\n", e.namespace, name, typ)
}

func (e *PrometheusExporter) writeMetric(w io.Writer, name, labels string, value float64) {
	if labels != "" {
		fmt.Fprintf(w, "%s_%s{%s} %g\n", e.namespace, name, labels, value)
	} else {
		fmt.Fprintf(w, "%s_%s %g\n", e.namespace, name, value)
	}
}

func (e *PrometheusExporter) writeHistogram(w io.Writer, name, help, labels string, h HistogramSummary) {
	e.writeHelp(w, name, help)
	e.writeType(w, name, "histogram")

	fullName := e.namespace + "_" + name

	for _, b := range h.Buckets {
		le := fmt.Sprintf("%g", b.UpperBound)
		if math.IsInf(b.UpperBound, 1) {
			le = "+Inf"
		}
		if labels != "" {
			fmt.Fprintf(w, "%s_bucket{%s,le=\"%s\"} %d\n", fullName, labels, le, b.Count)
		} else {
			fmt.Fprintf(w, "%s_bucket{le=\"%s\"} %d\n", fullName, le, b.Count)
		}
	}

	if labels != "" {
		fmt.Fprintf(w, "%s_sum{%s} %g\n", fullName, labels, h.Sum)
		fmt.Fprintf(w, "%s_count{%s} %d\n", fullName, labels, h.Count)
	} else {
		fmt.Fprintf(w, "%s_sum %g\n", fullName, h.Sum)
		fmt.Fprintf(w, "%s_count %d\n", fullName, h.Count)
	}
}

func (e *PrometheusExporter) formatLabels(labels Labels) string {
	if len(labels) == 0 {
		return ""
	}

	keys := make([]string, 0, len(labels))
	for k := range labels {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=\"%s\"", k, escapePromValue(labels[k])))
	}

	return strings.Join(parts, ",")
}

func escapePromValue(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "\"", "\\\"")
	s = strings.ReplaceAll(s, "\n", "\\n")
	return s
}

// ServePrometheus starts a blocking HTTP server exposing collector's
// metrics at /metrics. It is a convenience for simple deployments; callers
// that already run an HTTP server should mount Handler() directly instead.
func ServePrometheus(addr string, collector *Collector, namespace string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", NewPrometheusExporter(collector, namespace).Handler())
	return http.ListenAndServe(addr, mux)
}
