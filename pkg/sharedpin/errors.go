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

import "github.com/pkg/errors"

var (
	// PinError is returned by every failing capability call.
	// The error of the underlying pin is not preserved.
	PinError   = errors.New("pin operation failed")
	IsPinError = isErrorFunc(PinError)
	// BorrowedError is the panic value raised when a pin is accessed
	// while another call on the same pin is still in progress.
	BorrowedError   = errors.New("pin already borrowed")
	IsBorrowedError = isErrorFunc(BorrowedError)
	// ReleasedError is the panic value raised when a released handle is used.
	ReleasedError   = errors.New("pin handle released")
	IsReleasedError = isErrorFunc(ReleasedError)

	maskAny = errors.WithStack
)

func isErrorFunc(typeOfError error) func(err error) bool {
	return func(err error) bool {
		return err == typeOfError || errors.Cause(err) == typeOfError
	}
}
