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

package ledger

import "fmt"

// ErrorKind identifies a kind of error.  It has full support for errors.Is
// and errors.As, so the caller can directly check against an error kind when
// determining the reason for an error.
type ErrorKind string

// These constants are used to identify a specific EncodeError.
const (
	// ErrConfusableString indicates a string field containing a Unicode
	// character visually confusable with another (a homoglyph).
	ErrConfusableString = ErrorKind("ErrConfusableString")

	// ErrFieldTooLarge indicates a field exceeding its documented maximum
	// length.
	ErrFieldTooLarge = ErrorKind("ErrFieldTooLarge")

	// ErrTooManyTxs indicates a block holding more transactions than the
	// canonical encoding can represent.
	ErrTooManyTxs = ErrorKind("ErrTooManyTxs")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// EncodeError identifies a canonical encoding failure and names the field
// that caused it. It has full support for errors.Is and errors.As, so the
// caller can ascertain the specific reason for the error by checking the
// underlying error.
type EncodeError struct {
	Field       string
	Description string
	Err         error
}

// Error satisfies the error interface and prints human-readable errors.
func (e EncodeError) Error() string {
	return fmt.Sprintf("field %q: %s", e.Field, e.Description)
}

// Unwrap returns the underlying wrapped error.
func (e EncodeError) Unwrap() error {
	return e.Err
}

// encodeError creates an EncodeError given a set of arguments.
func encodeError(kind ErrorKind, field string, desc string) EncodeError {
	return EncodeError{Field: field, Description: desc, Err: kind}
}
