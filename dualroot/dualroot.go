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

// Package dualroot validates that two independently produced commitments
// to a block's state agree.
//
// The poseidon commitment is supplied by an external scheme and treated as
// opaque 32 bytes; the blake3 commitment is computed by this core. The
// decision rule is plain bitwise equality of the two values. The comparison
// runs in constant time with respect to the position of the first differing
// byte, so an adversarial peer cannot learn where two roots diverge from
// response timing.
package dualroot

import (
	"crypto/subtle"
	"errors"
	"fmt"

	"github.com/aurumlabs/aurum-core/hashing"
	"github.com/aurumlabs/aurum-core/ledger"
)

// ErrNilBlock indicates a nil block was passed to Validate.
var ErrNilBlock = errors.New("nil block")

// MismatchError reports disagreeing commitments. Both roots are carried for
// audit logging; the service boundary translates this to a generic fault
// without them.
type MismatchError struct {
	PoseidonRoot hashing.Hash32
	Blake3Root   hashing.Hash32
}

// Error satisfies the error interface and prints human-readable errors.
func (e MismatchError) Error() string {
	return fmt.Sprintf(
		"dual root mismatch: poseidon=%s blake3=%s",
		e.PoseidonRoot,
		e.Blake3Root,
	)
}

// Validate accepts the block iff its two commitments are bitwise equal.
func Validate(block *ledger.Block) error {
	if block == nil {
		return ErrNilBlock
	}
	return ValidateRoots(block.PoseidonRoot, block.Blake3Root)
}

// ValidateRoots applies the decision rule to a commitment pair directly.
func ValidateRoots(poseidonRoot, blake3Root hashing.Hash32) error {
	if subtle.ConstantTimeCompare(poseidonRoot.Bytes(), blake3Root.Bytes()) == 1 {
		return nil
	}
	return MismatchError{
		PoseidonRoot: poseidonRoot,
		Blake3Root:   blake3Root,
	}
}
