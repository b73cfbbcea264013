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

package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"

	"github.com/binkynet/SharedPin/pkg/pin"
)

type staticLevels []pin.Level

func (s staticLevels) Levels() []pin.Level { return s }

func TestPins(t *testing.T) {
	s, err := New(Config{}, zerolog.Nop(), staticLevels{pin.Low, pin.High})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/pins", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	var result []PinLevel
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if len(result) != 2 || result[1].Pin != 1 || result[1].Level != "high" {
		t.Errorf("Unexpected result %+v", result)
	}
}

func TestMetricsAndHealth(t *testing.T) {
	s, _ := New(Config{}, zerolog.Nop(), nil)
	for _, path := range []string{"/metrics", "/health"} {
		rec := httptest.NewRecorder()
		s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		if rec.Code != http.StatusOK {
			t.Errorf("%s: expected 200, got %d", path, rec.Code)
		}
	}
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/pins", nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("/pins without level source: expected 404, got %d", rec.Code)
	}
}
