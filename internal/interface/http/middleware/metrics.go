package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/xiebiao/library/pkg/metrics"
)

// Metrics HTTP指标中间件
// 记录请求总数、耗时、进行中请求数
// 注意:path使用路由模板(c.FullPath())而非真实URL,避免指标基数爆炸
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		metrics.IncGauge(metrics.HTTPRequestsInProgress)

		c.Next()

		metrics.DecGauge(metrics.HTTPRequestsInProgress)

		path := c.FullPath()
		if path == "" {
			path = "unknown" // 未匹配到路由(404)
		}
		metrics.IncCounterVec(metrics.HTTPRequestsTotal, map[string]string{
			"method": c.Request.Method,
			"path":   path,
			"status": strconv.Itoa(c.Writer.Status()),
		})

		if metrics.HTTPRequestDuration != nil {
			metrics.HTTPRequestDuration.With(map[string]string{
				"method": c.Request.Method,
				"path":   path,
			}).Observe(time.Since(start).Seconds())
		}
	}
}
