// Package metrics はPrometheusメトリクスの収集と公開を提供する。
package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsCollector はメトリクス収集のインターフェース。
// ハンドラーやサービス層から利用する。
type MetricsCollector interface {
	RecordQuizSubmission(category string, score int)
	RecordAuthFailure()
	RecordHTTPStatus(statusCode int)
}

// Collector はPrometheusメトリクスを収集する実装。
type Collector struct {
	quizSubmissions *prometheus.CounterVec
	quizScore       prometheus.Histogram
	authFailures    prometheus.Counter
	httpStatus      *prometheus.CounterVec
}

// NewCollector は新しいCollectorを生成し、指定されたレジストリにメトリクスを登録する。
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		quizSubmissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "kokoro_quiz_submissions_total",
			Help: "カテゴリ別のクイズ提出数",
		}, []string{"category"}),
		quizScore: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name: "kokoro_quiz_score",
			Help: "クイズ提出スコアの分布",
			// スコア域[0,30]をカテゴリ境界に合わせて分割
			Buckets: []float64{0, 1, 5, 9, 10, 15, 19, 20, 25, 30},
		}),
		authFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "kokoro_auth_failures_total",
			Help: "認証失敗（401）の合計数",
		}),
		httpStatus: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "kokoro_http_status_total",
			Help: "HTTPステータスコード別のレスポンス数",
		}, []string{"status_code"}),
	}

	reg.MustRegister(
		c.quizSubmissions,
		c.quizScore,
		c.authFailures,
		c.httpStatus,
	)

	return c
}

// RecordQuizSubmission はクイズ提出をカテゴリとスコア付きで記録する。
func (c *Collector) RecordQuizSubmission(category string, score int) {
	c.quizSubmissions.WithLabelValues(category).Inc()
	c.quizScore.Observe(float64(score))
}

// RecordAuthFailure は認証失敗を記録する。
func (c *Collector) RecordAuthFailure() {
	c.authFailures.Inc()
}

// RecordHTTPStatus はHTTPステータスコードを記録する。
func (c *Collector) RecordHTTPStatus(statusCode int) {
	c.httpStatus.WithLabelValues(strconv.Itoa(statusCode)).Inc()
}

// Handler はPrometheusスクレイプ用のHTTPハンドラーを返す。
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

// compile-time interface check
var _ MetricsCollector = (*Collector)(nil)
