// Copyright 2025 Aurum Labs
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

package aeon

import "fmt"

// ErrorKind identifies a kind of error.  It has full support for errors.Is
// and errors.As, so the caller can directly check against an error kind when
// determining the reason for an error.
type ErrorKind string

// These constants are used to identify a specific ScoreError.
const (
	// ErrCompressionBackend indicates the compression backend failed.
	// Backend failures always propagate; they are never interpreted as
	// output, since an empty "result" would inflate the compressibility
	// component to its maximum.
	ErrCompressionBackend = ErrorKind("ErrCompressionBackend")

	// ErrPayloadTooLarge indicates a payload exceeding MaxPayloadSize.
	ErrPayloadTooLarge = ErrorKind("ErrPayloadTooLarge")

	// ErrNegativeWeight indicates a negative entry in a component weight
	// vector.
	ErrNegativeWeight = ErrorKind("ErrNegativeWeight")

	// ErrWeightMismatch indicates a weight vector whose length does not
	// match the number of fingerprint components.
	ErrWeightMismatch = ErrorKind("ErrWeightMismatch")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// ScoreError identifies a fingerprint scoring failure. It has full support
// for errors.Is and errors.As, so the caller can ascertain the specific
// reason for the error by checking the underlying error.
type ScoreError struct {
	Description string
	Err         error
}

// Error satisfies the error interface and prints human-readable errors.
func (e ScoreError) Error() string {
	return e.Description
}

// Unwrap returns the underlying wrapped error.
func (e ScoreError) Unwrap() error {
	return e.Err
}

// scoreError creates a ScoreError given a set of arguments.
func scoreError(kind ErrorKind, desc string) ScoreError {
	return ScoreError{Description: desc, Err: kind}
}

// backendError wraps a compression backend failure, keeping the backend's
// own error in the chain for audit logging.
func backendError(name string, err error) ScoreError {
	return ScoreError{
		Description: fmt.Sprintf("compression backend %q: %s", name, err),
		Err:         fmt.Errorf("%w: %w", ErrCompressionBackend, err),
	}
}
