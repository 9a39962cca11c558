// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type MetricsBuilder struct {
	summaryVec *prometheus.SummaryVec
	counterVec *prometheus.CounterVec
}

// NewMetricsBuilder 只能调用一次，重复注册同名指标会 panic
func NewMetricsBuilder() *MetricsBuilder {
	labels := []string{"method", "path", "status_code"}
	return &MetricsBuilder{
		summaryVec: promauto.NewSummaryVec(prometheus.SummaryOpts{
			Namespace: "loyalty",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP 请求耗时",
			Objectives: map[float64]float64{
				0.5:  0.05,
				0.9:  0.01,
				0.99: 0.001,
			},
		}, labels),
		counterVec: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: "loyalty",
			Name:      "http_requests_total",
			Help:      "HTTP 请求次数",
		}, labels),
	}
}

func (a *MetricsBuilder) Build() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()
		path := ctx.FullPath()
		if path == "" {
			// 未命中路由时不用原始 URL，避免标签基数爆炸
			path = "unknown"
		}
		status := strconv.Itoa(ctx.Writer.Status())
		method := ctx.Request.Method
		a.summaryVec.WithLabelValues(method, path, status).Observe(time.Since(start).Seconds())
		a.counterVec.WithLabelValues(method, path, status).Inc()
	}
}
