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
	"github.com/rs/zerolog"
)

const defaultName = "pin"

// Option configures a shared pin at construction.
type Option func(*options)

type options struct {
	name    string
	log     zerolog.Logger
	metrics bool
}

func newOptions(opts []Option) options {
	o := options{
		name: defaultName,
		log:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithName sets the name used in logs and metrics.
func WithName(name string) Option {
	return func(o *options) {
		if name != "" {
			o.name = name
		}
	}
}

// WithLogger logs handle lifecycle events (clone, release, destroy) at debug level.
// Failing capability calls are not logged.
func WithLogger(log zerolog.Logger) Option {
	return func(o *options) {
		o.log = log
	}
}

// WithMetrics enables prometheus metrics for the pin, labeled with its name.
func WithMetrics() Option {
	return func(o *options) {
		o.metrics = true
	}
}
