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

// MirrorConfig configures a mirror.
type MirrorConfig struct {
	// Identifier of the object
	ID string
	// If set, the output is driven to the opposite level of the input
	Invert bool
	// Called after every detected edge (optional)
	OnEdge func(level pin.Level)
}

// Mirror drives an output pin to the level of an input pin.
type Mirror struct {
	MirrorConfig
	log    zerolog.Logger
	input  pin.InputPin
	output pin.OutputPin
	last   pin.Level
	known  bool
}

var _ Object = &Mirror{}

// NewMirror creates an object that copies the level of the given input
// to the given output whenever the input changes.
func NewMirror(cfg MirrorConfig, input pin.InputPin, output pin.OutputPin, log zerolog.Logger) (*Mirror, error) {
	if cfg.ID == "" {
		return nil, errors.Wrap(InvalidArgumentError, "ID is empty")
	}
	return &Mirror{
		MirrorConfig: cfg,
		log:          log.With().Str("object", cfg.ID).Logger(),
		input:        input,
		output:       output,
	}, nil
}

// Name of the object.
func (m *Mirror) Name() string {
	return m.ID
}

// Tick samples the input and drives the output on an edge.
// The first sample always counts as an edge.
func (m *Mirror) Tick(ctx context.Context) error {
	level, err := pin.Get(m.input)
	if err != nil {
		return errors.Wrapf(err, "failed to read input of '%s'", m.ID)
	}
	if m.known && level == m.last {
		return nil
	}
	inputEdgesTotal.WithLabelValues(m.ID).Inc()
	m.log.Debug().Str("level", level.String()).Msg("Input changed")
	target := level
	if m.Invert {
		target = target.Invert()
	}
	if err := setOutput(m.ID, m.output, target); err != nil {
		// Retry on the next tick
		return errors.Wrapf(err, "failed to set output of '%s' %s", m.ID, target)
	}
	m.last, m.known = level, true
	if m.OnEdge != nil {
		m.OnEdge(level)
	}
	return nil
}

// Stop does nothing; the output is left as is.
func (m *Mirror) Stop() error {
	return nil
}
