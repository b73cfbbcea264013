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
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) { return 0, errors.New("fail") }

func TestMultiWriter(t *testing.T) {
	var a, b bytes.Buffer
	w := NewMultiWriter(&a, failingWriter{}, &b)
	n, err := w.Write([]byte("hello"))
	if err == nil {
		t.Error("Expected error")
	}
	if n != 5 {
		t.Errorf("Expected 5, got %d", n)
	}
	if a.String() != "hello" || b.String() != "hello" {
		t.Errorf("Expected both writers to receive data, got %q/%q", a.String(), b.String())
	}
}

func TestNewLoggerWithFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sharedpin.log")
	log, closer, err := NewLogger(zerolog.InfoLevel, path)
	if err != nil {
		t.Fatalf("NewLogger failed: %v", err)
	}
	log.Debug().Msg("hidden")
	log.Info().Msg("visible")
	if err := closer(); err != nil {
		t.Fatalf("close failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if !strings.Contains(string(data), `"message":"visible"`) || strings.Contains(string(data), "hidden") {
		t.Errorf("Unexpected log content %s", data)
	}
}
