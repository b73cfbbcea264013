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

package worker

import (
	"github.com/binkynet/SharedPin/pkg/metrics"
)

const (
	subSystem = "worker"
)

var (
	// Total number of loop ticks
	ticksTotal = metrics.MustRegisterCounter(subSystem,
		"ticks_total",
		"Total number of loop ticks")
	// Number of tasks in the loop
	tasksGauge = metrics.MustRegisterGauge(subSystem,
		"tasks",
		"Number of tasks in the loop")
	// Total number of failed task ticks per task
	taskErrorsTotal = metrics.MustRegisterCounterVec(subSystem,
		"task_errors_total",
		"Total number of failed task ticks",
		"task")
)
