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

package pin

// OutputPin is the capability of a pin that can be driven low or high.
type OutputPin interface {
	// SetLow drives the pin low.
	SetLow() error
	// SetHigh drives the pin high.
	SetHigh() error
}

// InputPin is the capability of a pin whose level can be sensed.
type InputPin interface {
	// IsHigh returns true when the pin is high.
	IsHigh() (bool, error)
	// IsLow returns true when the pin is low.
	IsLow() (bool, error)
}

// IOPin is a pin that is both an input and an output.
type IOPin interface {
	InputPin
	OutputPin
}

// Level of a digital pin.
type Level bool

const (
	Low  Level = false
	High Level = true
)

// LevelOf converts a boolean (true=high) into a level.
func LevelOf(high bool) Level {
	return Level(high)
}

// String returns "high" or "low".
func (l Level) String() string {
	if l {
		return "high"
	}
	return "low"
}

// Invert returns the opposite level.
func (l Level) Invert() Level {
	return !l
}

// Set drives the given output to the given level.
func Set(p OutputPin, l Level) error {
	if l == High {
		return p.SetHigh()
	}
	return p.SetLow()
}

// Get senses the level of the given input.
func Get(p InputPin) (Level, error) {
	high, err := p.IsHigh()
	if err != nil {
		return Low, err
	}
	return LevelOf(high), nil
}
