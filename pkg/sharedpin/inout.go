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
	"github.com/binkynet/SharedPin/pkg/pin"
)

// InputOutput is a shared handle to a pin that is both input and output.
type InputOutput[P pin.IOPin] struct {
	*Pin[P]
}

var _ pin.IOPin = &InputOutput[pin.IOPin]{}

// NewInputOutput wraps the given pin and returns the first handle to it.
func NewInputOutput[P pin.IOPin](p P, opts ...Option) *InputOutput[P] {
	return &InputOutput[P]{Pin: New(p, opts...)}
}

// Clone returns a new handle to the same inner pin.
func (h *InputOutput[P]) Clone() *InputOutput[P] {
	return &InputOutput[P]{Pin: h.Pin.Clone()}
}

// Output returns a new handle to the same inner pin, restricted to the output capability.
func (h *InputOutput[P]) Output() *Output[P] {
	return &Output[P]{Pin: h.Pin.Clone()}
}

// Input returns a new handle to the same inner pin, restricted to the input capability.
func (h *InputOutput[P]) Input() *Input[P] {
	return &Input[P]{Pin: h.Pin.Clone()}
}

// SetLow drives the inner pin low.
func (h *InputOutput[P]) SetLow() error {
	return h.call(opSetLow, func(p P) error { return p.SetLow() })
}

// SetHigh drives the inner pin high.
func (h *InputOutput[P]) SetHigh() error {
	return h.call(opSetHigh, func(p P) error { return p.SetHigh() })
}

// IsHigh returns true when the inner pin is high.
func (h *InputOutput[P]) IsHigh() (bool, error) {
	return h.Pin.sense(opIsHigh, func(p P) (bool, error) { return p.IsHigh() })
}

// IsLow returns true when the inner pin is low.
func (h *InputOutput[P]) IsLow() (bool, error) {
	return h.Pin.sense(opIsLow, func(p P) (bool, error) { return p.IsLow() })
}
