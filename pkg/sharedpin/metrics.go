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

package sharedpin

import (
	"github.com/binkynet/SharedPin/pkg/metrics"
)

const (
	subSystem = "pin"
)

var (
	// Total number of capability calls per pin & operation
	operationsTotal = metrics.MustRegisterCounterVec(subSystem,
		"operations_total",
		"Total number of capability calls per pin & operation",
		"pin", "operation")
	// Total number of failed capability calls per pin & operation
	operationErrorsTotal = metrics.MustRegisterCounterVec(subSystem,
		"operation_errors_total",
		"Total number of failed capability calls per pin & operation",
		"pin", "operation")
	// Number of live handles per pin
	handlesGauge = metrics.MustRegisterGaugeVec(subSystem,
		"handles",
		"Number of live handles per pin",
		"pin")
	// Total number of destroyed pins
	destroyedTotal = metrics.MustRegisterCounterVec(subSystem,
		"destroyed_total",
		"Total number of destroyed pins",
		"pin")
)

const (
	opSetLow  = "set_low"
	opSetHigh = "set_high"
	opIsHigh  = "is_high"
	opIsLow   = "is_low"
)
