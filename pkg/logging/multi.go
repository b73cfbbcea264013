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

package logging

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

type multiWriter struct {
	writers []io.Writer
}

// NewMultiWriter creates a new output for logs that writes to all
// given writers. A failing writer does not stop the others.
func NewMultiWriter(writers ...io.Writer) io.Writer {
	return &multiWriter{
		writers: writers,
	}
}

func (l *multiWriter) Write(p []byte) (int, error) {
	var firstErr error
	for _, w := range l.writers {
		if _, err := w.Write(p); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return len(p), firstErr
}

// NewLogger creates a logger that writes human readable output to stderr
// and, when logFile is set, JSON lines to that file.
// The returned close function closes the log file.
func NewLogger(level zerolog.Level, logFile string) (zerolog.Logger, func() error, error) {
	console := zerolog.ConsoleWriter{Out: os.Stderr}
	if logFile == "" {
		return zerolog.New(console).With().Timestamp().Logger().Level(level), func() error { return nil }, nil
	}
	f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return zerolog.Logger{}, nil, errors.Wrapf(err, "failed to open log file '%s'", logFile)
	}
	log := zerolog.New(NewMultiWriter(console, f)).With().Timestamp().Logger().Level(level)
	return log, f.Close, nil
}
