// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Request metrics are labelled by route operation rather than raw path so
// query strings and unknown paths cannot grow the label set.
var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "owadocs_http_requests_total",
			Help: "HTTP requests by docs operation, method and status.",
		},
		[]string{"operation", "method", "status"},
	)

	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "owadocs_http_request_duration_seconds",
			Help:    "HTTP request latency by docs operation.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)

	responseSize = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "owadocs_http_response_size_bytes",
			Help:    "Response body size by docs operation.",
			Buckets: prometheus.ExponentialBuckets(256, 4, 8),
		},
		[]string{"operation"},
	)

	requestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "owadocs_http_requests_in_flight",
			Help: "HTTP requests currently being served.",
		},
	)

	errorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "owadocs_http_errors_total",
			Help: "Error responses by docs operation and error code.",
		},
		[]string{"operation", "code"},
	)

	rateLimitRejects = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "owadocs_rate_limit_rejects_total",
			Help: "Requests rejected by the rate limiter.",
		},
	)

	panicRecoveries = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "owadocs_panic_recoveries_total",
			Help: "Panics recovered in docs handlers.",
		},
	)

	readyState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "owadocs_ready_check",
			Help: "Last readiness check result per check (1 ok, 0 failing).",
		},
		[]string{"check"},
	)
)
