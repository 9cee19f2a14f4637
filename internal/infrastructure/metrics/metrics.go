package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	HTTPRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "citynotes_http_requests_total",
		Help: "Total number of HTTP requests by method, route and status",
	}, []string{"method", "route", "status"})
	HTTPRequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "citynotes_http_request_duration_seconds",
		Help:    "HTTP request duration in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})
	NotesWrittenTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "citynotes_notes_written_total",
		Help: "Total number of committed note writes by operation",
	}, []string{"op"})
)

// ノート書き込みの操作ラベル
const (
	OpCreate = "create"
	OpUpdate = "update"
	OpDelete = "delete"
)

func init() {
	prometheus.MustRegister(HTTPRequestsTotal)
	prometheus.MustRegister(HTTPRequestDuration)
	prometheus.MustRegister(NotesWrittenTotal)
}

// Handler 登録済みメトリクスを /metrics で公開するハンドラー
func Handler() http.Handler { return promhttp.Handler() }
