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

package util

import (
	"runtime"
	"sync"
	"testing"
)

func TestSpinLockTryLock(t *testing.T) {
	var l SpinLock
	if !l.TryLock() {
		t.Fatal("TryLock on free lock must succeed")
	}
	if l.TryLock() {
		t.Error("TryLock on held lock must fail")
	}
	l.Unlock()
	if !l.TryLock() {
		t.Error("TryLock after Unlock must succeed")
	}
}

func TestSpinLockExclusive(t *testing.T) {
	var l SpinLock
	var wg sync.WaitGroup
	counter := 0
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				for !l.TryLock() {
					runtime.Gosched()
				}
				counter++
				l.Unlock()
			}
		}()
	}
	wg.Wait()
	if counter != 800 {
		t.Errorf("Expected 800, got %d", counter)
	}
}
