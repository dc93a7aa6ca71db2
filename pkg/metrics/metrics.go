// Package metrics 提供基于Prometheus的指标收集
//
// 指标类型速查：
// - Counter（计数器）：只增不减，如请求总数、借阅总数
// - Gauge（仪表盘）：可增可减的瞬时值，如处理中的请求数
// - Histogram（直方图）：观测值分布，自动计算P50/P90/P99
//
// 命名规范：
// - Counter以`_total`结尾（http_requests_total）
// - Histogram以单位结尾（http_request_duration_seconds）
// - 标签只用低基数维度（method、path、status），不要用user_id
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// initialized 标记是否已初始化（防止重复注册）
	initialized bool

	// HTTP请求相关指标

	// HTTPRequestsTotal HTTP请求总数（Counter）
	// 标签：method（GET/POST）、path（/api/v1/books）、status（200/500）
	HTTPRequestsTotal *prometheus.CounterVec

	// HTTPRequestDuration HTTP请求耗时（Histogram）
	HTTPRequestDuration *prometheus.HistogramVec

	// HTTPRequestsInProgress 正在处理的HTTP请求数（Gauge）
	HTTPRequestsInProgress prometheus.Gauge

	// 借阅业务指标

	// BorrowsTotal 借书成功总数（Counter）
	BorrowsTotal prometheus.Counter

	// BorrowsFailedTotal 借书失败总数（Counter）
	// 标签：reason（not_found/out_of_stock/internal）
	BorrowsFailedTotal *prometheus.CounterVec

	// ReturnsTotal 还书成功总数（Counter）
	ReturnsTotal prometheus.Counter

	// BorrowDuration 借书流程耗时（Histogram）
	BorrowDuration prometheus.Histogram

	// 对象存储指标

	// CoverUploadsTotal 封面上传总数（Counter）
	// 标签：result（success/failure）
	CoverUploadsTotal *prometheus.CounterVec
)

// InitMetrics 初始化所有Prometheus指标
// 必须在程序启动时调用一次，注册所有指标到默认Registry
func InitMetrics() {
	// 防止重复初始化
	if initialized {
		return
	}
	initialized = true

	// HTTP请求指标
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "HTTP请求总数",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "http_request_duration_seconds",
			Help: "HTTP请求耗时（秒）",
			// 桶设置：1ms、10ms、100ms、500ms、1s、5s、10s
			Buckets: []float64{0.001, 0.01, 0.1, 0.5, 1, 5, 10},
		},
		[]string{"method", "path"},
	)

	HTTPRequestsInProgress = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_requests_in_progress",
			Help: "正在处理的HTTP请求数",
		},
	)

	// 借阅业务指标
	BorrowsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "library_borrows_total",
			Help: "借书成功总数",
		},
	)

	BorrowsFailedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "library_borrows_failed_total",
			Help: "借书失败总数",
		},
		[]string{"reason"},
	)

	ReturnsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "library_returns_total",
			Help: "还书成功总数",
		},
	)

	BorrowDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name: "library_borrow_duration_seconds",
			Help: "借书流程耗时（秒）",
			// 借书流程包含事务与行锁，桶设置偏向短耗时
			Buckets: []float64{0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		},
	)

	// 对象存储指标
	CoverUploadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "library_cover_uploads_total",
			Help: "封面上传总数",
		},
		[]string{"result"},
	)
}

// =========================================
// 辅助函数（封装常用操作）
// =========================================

// IncCounter 递增Counter
func IncCounter(counter prometheus.Counter) {
	if counter != nil {
		counter.Inc()
	}
}

// IncCounterVec 递增带标签的Counter
func IncCounterVec(counterVec *prometheus.CounterVec, labels map[string]string) {
	if counterVec != nil {
		counterVec.With(labels).Inc()
	}
}

// ObserveHistogram 记录Histogram观测值
func ObserveHistogram(histogram prometheus.Histogram, value float64) {
	if histogram != nil {
		histogram.Observe(value)
	}
}

// IncGauge 递增Gauge
func IncGauge(gauge prometheus.Gauge) {
	if gauge != nil {
		gauge.Inc()
	}
}

// DecGauge 递减Gauge
func DecGauge(gauge prometheus.Gauge) {
	if gauge != nil {
		gauge.Dec()
	}
}
