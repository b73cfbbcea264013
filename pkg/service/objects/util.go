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
	"github.com/binkynet/SharedPin/pkg/pin"
)

// setOutput drives the given output and updates the output metrics.
func setOutput(id string, out pin.OutputPin, level pin.Level) error {
	if err := pin.Set(out, level); err != nil {
		return err
	}
	outputChangesTotal.WithLabelValues(id).Inc()
	if level == pin.High {
		outputLevelGauge.WithLabelValues(id).Set(1)
	} else {
		outputLevelGauge.WithLabelValues(id).Set(0)
	}
	return nil
}
