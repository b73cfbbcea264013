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

package worker

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

var (
	InvalidConfigError = errors.New("invalid config")
)

// Task is a piece of work that is stepped by the loop on every tick.
// All tasks of a loop run on the same goroutine, one after the other,
// so they can share pins without further synchronization.
type Task interface {
	// Name of the task, used in logs & metrics.
	Name() string
	// Tick performs a single step of the task.
	Tick(ctx context.Context) error
}

// Stopper is implemented by tasks that must bring their pins
// into a safe state when the loop ends.
type Stopper interface {
	Stop() error
}

// Config of the loop.
type Config struct {
	// Time between two ticks
	TickInterval time.Duration
}

// Validate the configuration, returning an error when invalid.
func (c Config) Validate() error {
	if c.TickInterval <= 0 {
		return errors.Wrapf(InvalidConfigError, "TickInterval must be positive, got %s", c.TickInterval)
	}
	return nil
}

// Loop is the cooperative main loop that steps all its tasks.
type Loop struct {
	Config
	log   zerolog.Logger
	tasks []Task
}

// NewLoop creates a loop without tasks.
func NewLoop(cfg Config, log zerolog.Logger) (*Loop, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Loop{
		Config: cfg,
		log:    log,
	}, nil
}

// Add the given task to the loop.
// Tasks must be added before Run is called.
func (l *Loop) Add(t Task) {
	l.tasks = append(l.tasks, t)
	tasksGauge.Set(float64(len(l.tasks)))
}

// Step runs all tasks once, in the order they were added.
// A failing task is logged and does not prevent the others from running.
func (l *Loop) Step(ctx context.Context) {
	ticksTotal.Inc()
	for _, t := range l.tasks {
		if err := t.Tick(ctx); err != nil {
			taskErrorsTotal.WithLabelValues(t.Name()).Inc()
			l.log.Warn().Err(err).Str("task", t.Name()).Msg("Task failed")
		}
	}
}

// Run the loop until the given context is canceled.
// When done, all tasks that implement Stopper are stopped.
func (l *Loop) Run(ctx context.Context) error {
	log := l.log
	log.Debug().Int("tasks", len(l.tasks)).Dur("interval", l.TickInterval).Msg("Running loop")
	defer l.stop()

	ticker := time.NewTicker(l.TickInterval)
	defer ticker.Stop()
	for {
		l.Step(ctx)
		select {
		case <-ctx.Done():
			log.Info().Msg("Stopping loop; context canceled")
			return nil
		case <-ticker.C:
			// Continue
		}
	}
}

func (l *Loop) stop() {
	for _, t := range l.tasks {
		if s, ok := t.(Stopper); ok {
			if err := s.Stop(); err != nil {
				l.log.Warn().Err(err).Str("task", t.Name()).Msg("Failed to stop task")
			}
		}
	}
}
