package api_router

import (
	"expvar"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// 业务指标，由私有监听的 /metrics 导出
var (
	metricFlushTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "daily_note_flush_total",
		Help: "Number of flush runs triggered over the API.",
	})
	metricRetroTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "daily_note_retro_total",
		Help: "Number of retroactive linking runs triggered over the API.",
	})
	metricLinksWritten = promauto.NewCounter(prometheus.CounterOpts{
		Name: "daily_note_links_written_total",
		Help: "Number of note links written into daily notes.",
	})
)

// Expvar 导出系统运行时指标
// 处理获取系统运行时指标 (expvar) 的 HTTP 请求，将 expvar 导出的 JSON 数据写入响应
func Expvar(c *gin.Context) {
	c.Writer.Header().Set("Content-Type", "application/json; charset=utf-8")
	first := true
	report := func(key string, value interface{}) {
		if !first {
			fmt.Fprintf(c.Writer, ",\n")
		}
		first = false
		if str, ok := value.(string); ok {
			fmt.Fprintf(c.Writer, "%q: %q", key, str)
		} else {
			fmt.Fprintf(c.Writer, "%q: %v", key, value)
		}
	}

	fmt.Fprintf(c.Writer, "{\n")
	expvar.Do(func(kv expvar.KeyValue) {
		report(kv.Key, kv.Value)
	})
	fmt.Fprintf(c.Writer, "\n}\n")
}
