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
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/binkynet/SharedPin/pkg/pin"
	"github.com/binkynet/SharedPin/pkg/service/bridge"
	"github.com/binkynet/SharedPin/pkg/service/objects"
	"github.com/binkynet/SharedPin/pkg/service/worker"
	"github.com/binkynet/SharedPin/pkg/sharedpin"
)

var (
	InvalidConfigError = errors.New("invalid config")
	maskAny            = errors.WithStack
)

// Service contains the API exposed by the worker service
type Service interface {
	// Run the worker service until the given context is cancelled.
	Run(ctx context.Context) error
}

// Config of the service.
type Config struct {
	// Pin number of the shared status LED
	OutputPin int
	// Pin number of the button mirrored onto the LED
	InputPin int
	// If set, both pins are active low
	ActiveLow bool
	// Number of ticks between two blinks of the LED
	BlinkPeriod int
	// Time between two ticks of the loop
	TickInterval time.Duration
}

// Validate the configuration, returning an error when invalid.
func (c Config) Validate() error {
	if c.OutputPin == c.InputPin {
		return errors.Wrapf(InvalidConfigError, "OutputPin and InputPin must differ, got %d", c.OutputPin)
	}
	if c.BlinkPeriod < 1 {
		return errors.Wrapf(InvalidConfigError, "BlinkPeriod must be at least 1, got %d", c.BlinkPeriod)
	}
	if c.TickInterval <= 0 {
		return errors.Wrapf(InvalidConfigError, "TickInterval must be positive, got %s", c.TickInterval)
	}
	return nil
}

type Dependencies struct {
	Log    zerolog.Logger
	Bridge bridge.API
}

// NewService instantiates a new Service.
func NewService(config Config, deps Dependencies) (Service, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &service{
		config:       config,
		Dependencies: deps,
	}, nil
}

type service struct {
	config Config
	Dependencies
}

// Run the worker service until the given context is cancelled.
// The status LED is shared by a heartbeat blinker and a mirror
// of the button; both run in a single loop.
func (s *service) Run(ctx context.Context) error {
	log := s.Log
	cfg := s.config

	log.Debug().Int("pin", cfg.OutputPin).Msg("open status LED")
	rawLED, err := s.Bridge.Output(cfg.OutputPin, cfg.ActiveLow, false)
	if err != nil {
		return errors.Wrap(err, "failed to open status LED")
	}
	led := sharedpin.NewOutput(rawLED,
		sharedpin.WithName("led"),
		sharedpin.WithLogger(log.With().Str("component", "sharedpin").Logger()),
		sharedpin.WithMetrics())
	defer led.Release()

	log.Debug().Int("pin", cfg.InputPin).Msg("open button")
	rawButton, err := s.Bridge.Input(cfg.InputPin, cfg.ActiveLow)
	if err != nil {
		return errors.Wrap(err, "failed to open button")
	}
	button := sharedpin.NewInput(rawButton,
		sharedpin.WithName("button"),
		sharedpin.WithMetrics())
	defer button.Release()

	loop, err := worker.NewLoop(worker.Config{
		TickInterval: cfg.TickInterval,
	}, log.With().Str("component", "worker").Logger())
	if err != nil {
		return maskAny(err)
	}

	heartbeatLED := led.Clone()
	defer heartbeatLED.Release()
	heartbeat, err := objects.NewBlinker(objects.BlinkerConfig{
		ID:     "heartbeat",
		Period: cfg.BlinkPeriod,
	}, heartbeatLED, log)
	if err != nil {
		return maskAny(err)
	}

	// While the button is pressed, the heartbeat is paused
	// and the LED shows the button.
	mirrorLED := led.Clone()
	defer mirrorLED.Release()
	mirror, err := objects.NewMirror(objects.MirrorConfig{
		ID: "button-led",
		OnEdge: func(level pin.Level) {
			heartbeat.SetEnabled(level == pin.Low)
		},
	}, button, mirrorLED, log)
	if err != nil {
		return maskAny(err)
	}

	loop.Add(mirror)
	loop.Add(heartbeat)
	if err := loop.Run(ctx); err != nil {
		return errors.Wrap(err, "loop failed")
	}
	return nil
}
