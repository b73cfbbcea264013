// Copyright 2026 Ewout Prangsma
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
//
// Author Ewout Prangsma
//

package objects

import (
	"github.com/binkynet/SharedPin/pkg/metrics"
)

const (
	subSystem = "objects"
)

var (
	// Logical level last written by an object (0=low, 1=high)
	outputLevelGauge = metrics.MustRegisterGaugeVec(subSystem,
		"output_level",
		"Logical level last written by an object (0=low, 1=high)",
		"id")
	// Total number of output changes per object
	outputChangesTotal = metrics.MustRegisterCounterVec(subSystem,
		"output_changes_total",
		"Total number of output changes",
		"id")
	// Total number of input edges detected per object
	inputEdgesTotal = metrics.MustRegisterCounterVec(subSystem,
		"input_edges_total",
		"Total number of input edges detected",
		"id")
)
