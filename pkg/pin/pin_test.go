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

import (
	"errors"
	"testing"
)

type fakeGPIO struct {
	value  bool
	writes int
	err    error
	closed bool
}

func (f *fakeGPIO) Write(v bool) error {
	f.writes++
	if f.err != nil {
		return f.err
	}
	f.value = v
	return nil
}

func (f *fakeGPIO) Read() (bool, error) { return f.value, f.err }

func (f *fakeGPIO) Close() error {
	f.closed = true
	return nil
}

func TestLevel(t *testing.T) {
	if High.String() != "high" || Low.String() != "low" {
		t.Errorf("Unexpected level strings %s/%s", High, Low)
	}
	if LevelOf(true) != High || LevelOf(false) != Low {
		t.Error("LevelOf mismatch")
	}
	if High.Invert() != Low {
		t.Error("Invert mismatch")
	}
}

func TestFromReadWriter(t *testing.T) {
	g := &fakeGPIO{}
	p := FromReadWriter(g)
	if err := Set(p, High); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if !g.value {
		t.Error("Expected value true")
	}
	if l, err := Get(p); err != nil || l != High {
		t.Errorf("Expected high, got %s (%v)", l, err)
	}
	if v, err := p.IsLow(); err != nil || v {
		t.Errorf("Expected IsLow false, got %v (%v)", v, err)
	}
	p.SetLow()
	if g.value || g.writes != 2 {
		t.Errorf("Expected low after 2 writes, got %v after %d", g.value, g.writes)
	}
	p.(interface{ Close() error }).Close()
	if !g.closed {
		t.Error("Close must be forwarded")
	}
}

func TestFromReaderError(t *testing.T) {
	g := &fakeGPIO{err: errors.New("io")}
	p := FromReader(g)
	if _, err := p.IsLow(); err == nil {
		t.Error("Expected error")
	}
	if _, err := Get(p); err == nil {
		t.Error("Expected error")
	}
}

func TestFromWriter(t *testing.T) {
	g := &fakeGPIO{}
	p := FromWriter(g)
	p.SetHigh()
	if !g.value {
		t.Error("Expected value true")
	}
}
