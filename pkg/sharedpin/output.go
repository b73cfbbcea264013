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

// Output is a shared handle to an output pin.
// It is itself an output pin.
type Output[P pin.OutputPin] struct {
	*Pin[P]
}

var _ pin.OutputPin = &Output[pin.OutputPin]{}

// NewOutput wraps the given output pin and returns the first handle to it.
func NewOutput[P pin.OutputPin](p P, opts ...Option) *Output[P] {
	return &Output[P]{Pin: New(p, opts...)}
}

// Clone returns a new handle to the same inner pin.
func (o *Output[P]) Clone() *Output[P] {
	return &Output[P]{Pin: o.Pin.Clone()}
}

// SetLow drives the inner pin low.
func (o *Output[P]) SetLow() error {
	return o.call(opSetLow, func(p P) error { return p.SetLow() })
}

// SetHigh drives the inner pin high.
func (o *Output[P]) SetHigh() error {
	return o.call(opSetHigh, func(p P) error { return p.SetHigh() })
}
