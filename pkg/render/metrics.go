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

package render

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	renderTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "owadocs_render_total",
			Help: "Total number of render calls by selected template and outcome",
		},
		[]string{"template", "status"},
	)

	renderDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "owadocs_render_duration_seconds",
			Help:    "Time taken to parse and execute a template",
			Buckets: []float64{0.0001, 0.001, 0.01, 0.1},
		},
		[]string{"template"},
	)
)
