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

// Package sharedpin shares a single digital I/O pin between several
// components that run in the same execution context.
//
// A pin is wrapped once with New (or NewOutput, NewInput, NewInputOutput)
// and handed to other components as clones. All handles of a pin operate
// the same inner pin value, one call at a time. The inner pin is closed
// when the last handle is released.
//
// Handles are not safe for concurrent use by multiple goroutines.
package sharedpin

import (
	"io"
	"sync/atomic"

	"github.com/binkynet/SharedPin/pkg/util"
)

// slot holds the inner pin shared by all handles.
type slot[P any] struct {
	options
	pin  P
	refs int32
	busy util.SpinLock
}

// Pin is a handle to a shared inner pin of type P.
// Handles must be distributed with Clone, never by copying the struct.
type Pin[P any] struct {
	s *slot[P]
}

// New wraps the given pin in a shared slot and returns the first handle to it.
func New[P any](p P, opts ...Option) *Pin[P] {
	s := &slot[P]{
		options: newOptions(opts),
		pin:     p,
		refs:    1,
	}
	s.log = s.log.With().Str("pin", s.name).Logger()
	s.log.Debug().Msg("Created shared pin")
	s.observeHandles(1)
	return &Pin[P]{s: s}
}

// Name returns the name of the pin.
func (h *Pin[P]) Name() string {
	return h.mustSlot().name
}

// RefCount returns the number of live handles of the pin.
func (h *Pin[P]) RefCount() int {
	return int(atomic.LoadInt32(&h.mustSlot().refs))
}

// Clone returns a new handle to the same inner pin.
func (h *Pin[P]) Clone() *Pin[P] {
	s := h.mustSlot()
	refs := atomic.AddInt32(&s.refs, 1)
	s.log.Debug().Int32("refs", refs).Msg("Cloned shared pin")
	s.observeHandles(refs)
	return &Pin[P]{s: s}
}

// Release gives up this handle. When it was the last handle of the pin,
// the inner pin is closed (if it implements io.Closer).
// Releasing a handle more than once has no effect.
func (h *Pin[P]) Release() {
	s := h.s
	if s == nil {
		return
	}
	h.s = nil
	refs := atomic.AddInt32(&s.refs, -1)
	s.log.Debug().Int32("refs", refs).Msg("Released shared pin")
	s.observeHandles(refs)
	if refs == 0 {
		s.destroy()
	}
}

// Borrow calls fn with exclusive access to the inner pin.
// The error returned by fn is returned unchanged.
// fn must not access the pin through any of its handles.
func (h *Pin[P]) Borrow(fn func(P) error) error {
	s := h.mustSlot()
	if !s.busy.TryLock() {
		panic(BorrowedError)
	}
	defer s.busy.Unlock()
	return fn(s.pin)
}

// call borrows the inner pin for a single capability call and
// folds its outcome into PinError.
func (h *Pin[P]) call(op string, fn func(P) error) error {
	s := h.mustSlot()
	err := h.Borrow(fn)
	s.observeCall(op, err)
	if err != nil {
		return maskAny(PinError)
	}
	return nil
}

// mustSlot returns the slot of this handle, panicking when the handle is released.
func (h *Pin[P]) mustSlot() *slot[P] {
	if h.s == nil {
		panic(ReleasedError)
	}
	return h.s
}

// destroy closes the inner pin. It is called exactly once,
// by the release of the last handle.
func (s *slot[P]) destroy() {
	if !s.busy.TryLock() {
		panic(BorrowedError)
	}
	defer s.busy.Unlock()
	log := s.log
	if c, ok := any(s.pin).(io.Closer); ok {
		if err := c.Close(); err != nil {
			log.Warn().Err(err).Msg("Failed to close inner pin")
		}
	}
	var zero P
	s.pin = zero
	if s.metrics {
		destroyedTotal.WithLabelValues(s.name).Inc()
	}
	log.Debug().Msg("Destroyed shared pin")
}

func (s *slot[P]) observeHandles(refs int32) {
	if s.metrics {
		handlesGauge.WithLabelValues(s.name).Set(float64(refs))
	}
}

func (s *slot[P]) observeCall(op string, err error) {
	if !s.metrics {
		return
	}
	operationsTotal.WithLabelValues(s.name, op).Inc()
	if err != nil {
		operationErrorsTotal.WithLabelValues(s.name, op).Inc()
	}
}

