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

package objects

import (
	"context"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/binkynet/SharedPin/pkg/pin"
)

// BlinkerConfig configures a blinker.
type BlinkerConfig struct {
	// Identifier of the object
	ID string
	// Number of ticks between two toggles
	Period int
}

// Blinker toggles an output pin at a fixed period.
type Blinker struct {
	BlinkerConfig
	log     zerolog.Logger
	output  pin.OutputPin
	ticks   int
	level   pin.Level
	enabled bool
}

var _ Object = &Blinker{}

// NewBlinker creates an object that toggles the given output
// every Period ticks, starting with high.
func NewBlinker(cfg BlinkerConfig, output pin.OutputPin, log zerolog.Logger) (*Blinker, error) {
	if cfg.ID == "" {
		return nil, errors.Wrap(InvalidArgumentError, "ID is empty")
	}
	if cfg.Period < 1 {
		return nil, errors.Wrapf(InvalidArgumentError, "Period of '%s' must be at least 1, got %d", cfg.ID, cfg.Period)
	}
	return &Blinker{
		BlinkerConfig: cfg,
		log:           log.With().Str("object", cfg.ID).Logger(),
		output:        output,
		enabled:       true,
	}, nil
}

// Name of the object.
func (b *Blinker) Name() string {
	return b.ID
}

// SetEnabled turns blinking on or off.
// A disabled blinker leaves its output alone.
func (b *Blinker) SetEnabled(enabled bool) {
	b.enabled = enabled
	b.ticks = 0
}

// Tick toggles the output when the period has elapsed.
func (b *Blinker) Tick(ctx context.Context) error {
	if !b.enabled {
		return nil
	}
	if b.ticks%b.Period == 0 {
		next := b.level.Invert()
		if err := setOutput(b.ID, b.output, next); err != nil {
			return errors.Wrapf(err, "failed to set output of '%s' %s", b.ID, next)
		}
		b.level = next
	}
	b.ticks++
	return nil
}

// Stop drives the output low.
func (b *Blinker) Stop() error {
	b.log.Debug().Msg("Stopping blinker")
	if err := setOutput(b.ID, b.output, pin.Low); err != nil {
		return errors.Wrapf(err, "failed to clear output of '%s'", b.ID)
	}
	b.level = pin.Low
	return nil
}
