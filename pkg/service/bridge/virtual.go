// Copyright 2017 Ewout Prangsma
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
	"context"
	"sync"

	"github.com/mattn/go-pubsub"
	"github.com/pkg/errors"

	"github.com/binkynet/SharedPin/pkg/pin"
)

const (
	virtualBridgeName = "virtual"
)

// LevelChange is published by the virtual bridge when the
// physical level of one of its lines changes.
type LevelChange struct {
	Pin   int
	Level pin.Level
}

// VirtualBridge implements the bridge with in-memory lines.
// Inputs can be driven from the outside with Drive.
type VirtualBridge struct {
	*registry
	levelMutex sync.Mutex
	levels     []pin.Level
	changes    *pubsub.PubSub
}

// NewVirtualBridge implements the bridge for a virtual local worker.
func NewVirtualBridge(pinCount int) *VirtualBridge {
	return &VirtualBridge{
		registry: newRegistry(virtualBridgeName, pinCount),
		levels:   make([]pin.Level, pinCount),
		changes:  pubsub.New(),
	}
}

// Returns number of local pins
func (b *VirtualBridge) PinCount() int {
	return len(b.levels)
}

// Input initializes a GPIO input pin with the given pin number.
func (b *VirtualBridge) Input(pinNumber int, activeLow bool) (pin.InputPin, error) {
	if err := b.reserve(pinNumber); err != nil {
		return nil, err
	}
	l := &virtualLine{bridge: b, number: pinNumber, activeLow: activeLow}
	b.opened(pinNumber, l.Close)
	return pin.FromReader(l), nil
}

// Output initializes a GPIO output pin with the given pin number
// and initial logical value.
func (b *VirtualBridge) Output(pinNumber int, activeLow bool, initialValue bool) (pin.OutputPin, error) {
	if err := b.reserve(pinNumber); err != nil {
		return nil, err
	}
	l := &virtualLine{bridge: b, number: pinNumber, activeLow: activeLow}
	l.Write(initialValue)
	b.opened(pinNumber, l.Close)
	return pin.FromWriter(l), nil
}

// Close all pins that are still open.
func (b *VirtualBridge) Close() error {
	if err := b.closeAll(); err != nil {
		return errors.Wrap(err, "Close failed")
	}
	return nil
}

// Drive sets the physical level of the line with given pin number,
// as if it was driven by external hardware.
func (b *VirtualBridge) Drive(pinNumber int, level pin.Level) error {
	if pinNumber < 0 || pinNumber >= len(b.levels) {
		return errors.Wrapf(InvalidPinError, "pin %d", pinNumber)
	}
	b.setLevel(pinNumber, level)
	return nil
}

// Levels returns a snapshot of the physical levels of all lines.
func (b *VirtualBridge) Levels() []pin.Level {
	b.levelMutex.Lock()
	defer b.levelMutex.Unlock()
	return append([]pin.Level(nil), b.levels...)
}

// Subscribe registers a callback that receives all level changes.
// Callbacks are invoked asynchronously.
func (b *VirtualBridge) Subscribe(cb func(LevelChange)) context.CancelFunc {
	wcb := func(x LevelChange) {
		cb(x)
	}
	b.changes.Sub(wcb)
	return func() {
		b.changes.Leave(wcb)
	}
}

func (b *VirtualBridge) level(pinNumber int) pin.Level {
	b.levelMutex.Lock()
	defer b.levelMutex.Unlock()
	return b.levels[pinNumber]
}

func (b *VirtualBridge) setLevel(pinNumber int, level pin.Level) {
	b.levelMutex.Lock()
	changed := b.levels[pinNumber] != level
	b.levels[pinNumber] = level
	b.levelMutex.Unlock()
	if changed {
		b.changes.Pub(LevelChange{Pin: pinNumber, Level: level})
	}
}

// virtualLine is a single line of the virtual bridge.
type virtualLine struct {
	bridge    *VirtualBridge
	number    int
	activeLow bool
	closed    bool
}

func (l *virtualLine) Write(v bool) error {
	if l.closed {
		l.bridge.observe(pinWritesTotal, l.number, ClosedError)
		return errors.Wrapf(ClosedError, "Write[%d] failed", l.number)
	}
	l.bridge.setLevel(l.number, pin.LevelOf(v != l.activeLow))
	l.bridge.observe(pinWritesTotal, l.number, nil)
	return nil
}

func (l *virtualLine) Read() (bool, error) {
	if l.closed {
		l.bridge.observe(pinReadsTotal, l.number, ClosedError)
		return false, errors.Wrapf(ClosedError, "Read[%d] failed", l.number)
	}
	l.bridge.observe(pinReadsTotal, l.number, nil)
	return bool(l.bridge.level(l.number)) != l.activeLow, nil
}

// Close frees the pin number of the line.
func (l *virtualLine) Close() error {
	if l.closed {
		return nil
	}
	l.closed = true
	l.bridge.release(l.number)
	return nil
}
