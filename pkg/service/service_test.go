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

package service

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/binkynet/SharedPin/pkg/pin"
	"github.com/binkynet/SharedPin/pkg/service/bridge"
)

func TestConfigValidate(t *testing.T) {
	for _, cfg := range []Config{
		{OutputPin: 1, InputPin: 1, BlinkPeriod: 1, TickInterval: time.Second},
		{OutputPin: 1, InputPin: 2, BlinkPeriod: 0, TickInterval: time.Second},
		{OutputPin: 1, InputPin: 2, BlinkPeriod: 1},
	} {
		if _, err := NewService(cfg, Dependencies{}); errors.Cause(err) != InvalidConfigError {
			t.Errorf("Expected InvalidConfigError for %+v, got %v", cfg, err)
		}
	}
}

func TestRunBlinksAndReleasesPins(t *testing.T) {
	br := bridge.NewVirtualBridge(8)
	changes := make(chan bridge.LevelChange, 64)
	cancelSub := br.Subscribe(func(c bridge.LevelChange) {
		select {
		case changes <- c:
		default:
		}
	})
	defer cancelSub()

	svc, err := NewService(Config{
		OutputPin:    3,
		InputPin:     4,
		BlinkPeriod:  1,
		TickInterval: time.Millisecond,
	}, Dependencies{
		Log:    zerolog.Nop(),
		Bridge: br,
	})
	if err != nil {
		t.Fatalf("NewService failed: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	if err := svc.Run(ctx); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	select {
	case c := <-changes:
		if c.Pin != 3 {
			t.Errorf("Expected change on pin 3, got %+v", c)
		}
	case <-time.After(time.Second):
		t.Fatal("Expected LED to change")
	}
	if br.Levels()[3] != pin.Low {
		t.Error("Expected LED to be low after stop")
	}
	// All handles are released, so both pins can be opened again.
	if _, err := br.Output(3, false, false); err != nil {
		t.Errorf("Output(3) failed: %v", err)
	}
	if _, err := br.Input(4, false); err != nil {
		t.Errorf("Input(4) failed: %v", err)
	}
}

func TestRunFailsOnInvalidPin(t *testing.T) {
	br := bridge.NewVirtualBridge(2)
	svc, err := NewService(Config{
		OutputPin:    5,
		InputPin:     0,
		BlinkPeriod:  1,
		TickInterval: time.Millisecond,
	}, Dependencies{
		Log:    zerolog.Nop(),
		Bridge: br,
	})
	if err != nil {
		t.Fatalf("NewService failed: %v", err)
	}
	if err := svc.Run(context.Background()); !bridge.IsInvalidPin(err) {
		t.Errorf("Expected InvalidPinError, got %v", err)
	}
}
