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

package web

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var webhookCounter = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "loyalty",
		Name:      "webhook_requests_total",
		Help:      "平台 webhook 请求数，按主题与处理结果区分",
	},
	[]string{"topic", "outcome"},
)

const (
	topicOrdersPaid      = "orders/paid"
	topicOrdersUpdated   = "orders/updated"
	topicCustomersCreate = "customers/create"
)
