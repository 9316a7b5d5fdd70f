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

package merkle

import "fmt"

// ErrorKind identifies a kind of error.  It has full support for errors.Is
// and errors.As, so the caller can directly check against an error kind when
// determining the reason for an error.
type ErrorKind string

// These constants are used to identify a specific TreeError.
const (
	// ErrInvalidLeaf indicates a zero-length or oversized leaf.
	ErrInvalidLeaf = ErrorKind("ErrInvalidLeaf")

	// ErrIndexOutOfRange indicates a proof was requested for a leaf index
	// the tree does not contain.
	ErrIndexOutOfRange = ErrorKind("ErrIndexOutOfRange")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// TreeError identifies a Merkle construction failure and carries the index
// of the first offending leaf. It has full support for errors.Is and
// errors.As, so the caller can ascertain the specific reason for the error
// by checking the underlying error.
type TreeError struct {
	Index       int
	Description string
	Err         error
}

// Error satisfies the error interface and prints human-readable errors.
func (e TreeError) Error() string {
	return fmt.Sprintf("leaf %d: %s", e.Index, e.Description)
}

// Unwrap returns the underlying wrapped error.
func (e TreeError) Unwrap() error {
	return e.Err
}

// treeError creates a TreeError given a set of arguments.
func treeError(kind ErrorKind, index int, desc string) TreeError {
	return TreeError{Index: index, Description: desc, Err: kind}
}
