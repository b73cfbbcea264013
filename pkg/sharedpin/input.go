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

// Input is a shared handle to an input pin.
// It is itself an input pin.
//
// Sensing takes the same exclusive hold on the inner pin as driving does,
// since reading a level may change peripheral state.
type Input[P pin.InputPin] struct {
	*Pin[P]
}

var _ pin.InputPin = &Input[pin.InputPin]{}

// NewInput wraps the given input pin and returns the first handle to it.
func NewInput[P pin.InputPin](p P, opts ...Option) *Input[P] {
	return &Input[P]{Pin: New(p, opts...)}
}

// Clone returns a new handle to the same inner pin.
func (i *Input[P]) Clone() *Input[P] {
	return &Input[P]{Pin: i.Pin.Clone()}
}

// IsHigh returns true when the inner pin is high.
func (i *Input[P]) IsHigh() (bool, error) {
	return i.Pin.sense(opIsHigh, func(p P) (bool, error) { return p.IsHigh() })
}

// IsLow returns true when the inner pin is low.
func (i *Input[P]) IsLow() (bool, error) {
	return i.Pin.sense(opIsLow, func(p P) (bool, error) { return p.IsLow() })
}

// sense performs a single level sensing call on the inner pin.
func (h *Pin[P]) sense(op string, fn func(P) (bool, error)) (bool, error) {
	var result bool
	if err := h.call(op, func(p P) (err error) {
		result, err = fn(p)
		return err
	}); err != nil {
		return false, err
	}
	return result, nil
}
