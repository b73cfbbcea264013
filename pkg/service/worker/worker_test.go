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
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

type countingTask struct {
	name    string
	ticks   int
	fail    bool
	stopped int
	order   *[]string
}

func (t *countingTask) Name() string { return t.name }

func (t *countingTask) Tick(ctx context.Context) error {
	t.ticks++
	if t.order != nil {
		*t.order = append(*t.order, t.name)
	}
	if t.fail {
		return errors.New("failed")
	}
	return nil
}

func (t *countingTask) Stop() error {
	t.stopped++
	return nil
}

func TestConfigValidate(t *testing.T) {
	if _, err := NewLoop(Config{}, zerolog.Nop()); errors.Cause(err) != InvalidConfigError {
		t.Errorf("Expected InvalidConfigError, got %v", err)
	}
}

func TestStepRunsTasksInOrder(t *testing.T) {
	l, err := NewLoop(Config{TickInterval: time.Millisecond}, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewLoop failed: %v", err)
	}
	var order []string
	a := &countingTask{name: "a", fail: true, order: &order}
	b := &countingTask{name: "b", order: &order}
	l.Add(a)
	l.Add(b)
	l.Step(context.Background())
	l.Step(context.Background())
	if a.ticks != 2 || b.ticks != 2 {
		t.Errorf("Expected 2 ticks each, got %d/%d", a.ticks, b.ticks)
	}
	if len(order) != 4 || order[0] != "a" || order[1] != "b" {
		t.Errorf("Unexpected order %v", order)
	}
}

func TestRunStopsTasks(t *testing.T) {
	l, err := NewLoop(Config{TickInterval: time.Millisecond}, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewLoop failed: %v", err)
	}
	task := &countingTask{name: "task"}
	l.Add(task)
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	if err := l.Run(ctx); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if task.ticks == 0 {
		t.Error("Expected at least one tick")
	}
	if task.stopped != 1 {
		t.Errorf("Expected 1 stop, got %d", task.stopped)
	}
}
