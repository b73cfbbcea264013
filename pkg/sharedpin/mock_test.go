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
	"github.com/pkg/errors"

	"github.com/binkynet/SharedPin/pkg/pin"
)

var busyError = errors.New("busy")

// mockOutput records the last commanded level.
type mockOutput struct {
	level  pin.Level
	calls  int
	failAt map[int]error // call number (1...) -> error
	closed int
	onCall func()
}

func (m *mockOutput) record(l pin.Level) error {
	m.calls++
	if m.onCall != nil {
		m.onCall()
	}
	if err, ok := m.failAt[m.calls]; ok {
		return err
	}
	m.level = l
	return nil
}

func (m *mockOutput) SetLow() error  { return m.record(pin.Low) }
func (m *mockOutput) SetHigh() error { return m.record(pin.High) }
func (m *mockOutput) Close() error {
	m.closed++
	return nil
}

// mockInput returns a programmed sequence of levels.
type mockInput struct {
	levels []pin.Level
	calls  int
	err    error
	closed int
}

func (m *mockInput) next() (pin.Level, error) {
	m.calls++
	if m.err != nil {
		return pin.Low, m.err
	}
	l := m.levels[0]
	m.levels = m.levels[1:]
	return l, nil
}

func (m *mockInput) IsHigh() (bool, error) {
	l, err := m.next()
	return l == pin.High, err
}

func (m *mockInput) IsLow() (bool, error) {
	l, err := m.next()
	return l == pin.Low, err
}

func (m *mockInput) Close() error {
	m.closed++
	return nil
}

// mockIO is an output whose level can be read back.
type mockIO struct {
	mockOutput
	reads int
}

func (m *mockIO) IsHigh() (bool, error) {
	m.reads++
	return m.level == pin.High, nil
}

func (m *mockIO) IsLow() (bool, error) {
	m.reads++
	return m.level == pin.Low, nil
}

// expectPanic calls fn and returns the recovered panic value.
func expectPanic(fn func()) (result interface{}) {
	defer func() {
		result = recover()
	}()
	fn()
	return nil
}
