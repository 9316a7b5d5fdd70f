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

package hashing

import "fmt"

// ErrorKind identifies a kind of error.  It has full support for errors.Is
// and errors.As, so the caller can directly check against an error kind when
// determining the reason for an error.
type ErrorKind string

// These constants are used to identify a specific TagError.
const (
	// ErrEmptyTag indicates an empty domain tag was supplied.
	ErrEmptyTag = ErrorKind("ErrEmptyTag")

	// ErrUnknownTag indicates a domain tag that is not registered with this
	// package and therefore has no derived subkey.
	ErrUnknownTag = ErrorKind("ErrUnknownTag")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// TagError identifies a domain tag configuration error. It has full support
// for errors.Is and errors.As, so the caller can ascertain the specific
// reason for the error by checking the underlying error.
type TagError struct {
	Tag         DomainTag
	Description string
	Err         error
}

// Error satisfies the error interface and prints human-readable errors.
func (e TagError) Error() string {
	return fmt.Sprintf("tag %q: %s", string(e.Tag), e.Description)
}

// Unwrap returns the underlying wrapped error.
func (e TagError) Unwrap() error {
	return e.Err
}

// tagError creates a TagError given a set of arguments.
func tagError(kind ErrorKind, tag DomainTag, desc string) TagError {
	return TagError{Tag: tag, Description: desc, Err: kind}
}
