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

package bridge

import (
	"github.com/binkynet/SharedPin/pkg/metrics"
)

const (
	subSystem = "bridge"
)

var (
	// Number of open pins per bridge type
	openPinsGauge = metrics.MustRegisterGaugeVec(subSystem,
		"open_pins",
		"Number of open pins",
		"bridge")
	// Total number of pin writes per pin number
	pinWritesTotal = metrics.MustRegisterCounterVec(subSystem,
		"pin_writes_total",
		"Total number of pin writes",
		"bridge", "pin")
	// Total number of pin reads per pin number
	pinReadsTotal = metrics.MustRegisterCounterVec(subSystem,
		"pin_reads_total",
		"Total number of pin reads",
		"bridge", "pin")
	// Total number of failed pin reads & writes
	pinErrorsTotal = metrics.MustRegisterCounterVec(subSystem,
		"pin_errors_total",
		"Total number of failed pin reads & writes",
		"bridge", "pin")
)
