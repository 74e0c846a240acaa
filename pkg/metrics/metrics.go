// Package metrics 提供基于Prometheus的指标收集
//
// 指标通过/metrics端点暴露,由Prometheus Server定期抓取。
// 使用示例:
//
//	metrics.InitMetrics()
//	r.GET("/metrics", gin.WrapH(metrics.Handler()))
//	metrics.IncCounter(metrics.BooksCreatedTotal)
package metrics

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTPRequestsTotal HTTP请求总数(按方法、路径、状态码)
	HTTPRequestsTotal *prometheus.CounterVec

	// HTTPRequestDuration HTTP请求耗时分布(秒)
	HTTPRequestDuration *prometheus.HistogramVec

	// BooksCreatedTotal 创建图书总数
	BooksCreatedTotal prometheus.Counter

	// BooksDeletedTotal 删除图书总数
	BooksDeletedTotal prometheus.Counter

	initOnce sync.Once
)

// InitMetrics 初始化并注册所有指标
// 幂等:重复调用只注册一次
func InitMetrics() {
	initOnce.Do(func() {
		HTTPRequestsTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		)

		HTTPRequestDuration = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		)

		BooksCreatedTotal = prometheus.NewCounter(prometheus.CounterOpts{
			Name: "books_created_total",
			Help: "Total number of books created",
		})

		BooksDeletedTotal = prometheus.NewCounter(prometheus.CounterOpts{
			Name: "books_deleted_total",
			Help: "Total number of books deleted",
		})

		prometheus.MustRegister(
			HTTPRequestsTotal,
			HTTPRequestDuration,
			BooksCreatedTotal,
			BooksDeletedTotal,
		)
	})
}

// Handler /metrics端点处理器
func Handler() http.Handler {
	return promhttp.Handler()
}

// IncCounter 递增Counter
func IncCounter(counter prometheus.Counter) {
	if counter != nil {
		counter.Inc()
	}
}

// IncCounterVec 递增带标签的Counter
func IncCounterVec(vec *prometheus.CounterVec, labels map[string]string) {
	if vec != nil {
		vec.With(labels).Inc()
	}
}

// ObserveHistogramVec 记录带标签的Histogram观测值
func ObserveHistogramVec(vec *prometheus.HistogramVec, labels map[string]string, value float64) {
	if vec != nil {
		vec.With(labels).Observe(value)
	}
}
