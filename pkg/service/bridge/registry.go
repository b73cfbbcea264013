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
	"strconv"
	"sync"

	aerr "github.com/ewoutp/go-aggregate-error"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
)

// registry keeps track of the open pins of a bridge.
type registry struct {
	mutex    sync.Mutex
	bridge   string
	pinCount int
	open     map[int]func() error
	closed   bool
}

func newRegistry(bridge string, pinCount int) *registry {
	return &registry{
		bridge:   bridge,
		pinCount: pinCount,
		open:     make(map[int]func() error),
	}
}

// reserve claims the given pin number.
func (r *registry) reserve(pinNumber int) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if r.closed {
		return maskAny(ClosedError)
	}
	if pinNumber < 0 || pinNumber >= r.pinCount {
		return errors.Wrapf(InvalidPinError, "pin %d out of range [0..%d)", pinNumber, r.pinCount)
	}
	if _, found := r.open[pinNumber]; found {
		return errors.Wrapf(PinInUseError, "pin %d", pinNumber)
	}
	r.open[pinNumber] = nil
	openPinsGauge.WithLabelValues(r.bridge).Set(float64(len(r.open)))
	return nil
}

// opened records the close function of a reserved pin.
func (r *registry) opened(pinNumber int, closer func() error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.open[pinNumber] = closer
}

// release frees a pin number claimed by reserve.
func (r *registry) release(pinNumber int) {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	delete(r.open, pinNumber)
	openPinsGauge.WithLabelValues(r.bridge).Set(float64(len(r.open)))
}

// closeAll closes all open pins and refuses new ones.
func (r *registry) closeAll() error {
	r.mutex.Lock()
	closers := make([]func() error, 0, len(r.open))
	for _, c := range r.open {
		if c != nil {
			closers = append(closers, c)
		}
	}
	r.closed = true
	r.mutex.Unlock()

	var ae aerr.AggregateError
	for _, c := range closers {
		ae.Add(c())
	}
	return ae.AsError()
}

// observe updates the read or write metrics of a pin.
func (r *registry) observe(counter *prometheus.CounterVec, pinNumber int, err error) {
	label := strconv.Itoa(pinNumber)
	counter.WithLabelValues(r.bridge, label).Inc()
	if err != nil {
		pinErrorsTotal.WithLabelValues(r.bridge, label).Inc()
	}
}
