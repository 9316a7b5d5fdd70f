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

// Package vrf prepares verifiable-random-function inputs.
//
// Only the input-hashing stage lives here: the hashed input seeds an
// externally held VRF key pair, and proving and verification happen in the
// collaborator owning that key. The context length is encoded ahead of the
// context bytes inside the hashed input, so two contexts that are
// prefix/suffix rearrangements of each other can never produce the same
// input.
package vrf

import (
	"encoding/binary"
	"fmt"

	"github.com/aurumlabs/aurum-core/hashing"
)

// MaxContextSize is the maximum length in bytes of a VRF input context.
const MaxContextSize = 64 * 1024

// ErrContextTooLarge indicates a context exceeding MaxContextSize. It has
// full support for errors.Is.
var ErrContextTooLarge = fmt.Errorf(
	"vrf context exceeds maximum size %d",
	MaxContextSize,
)

// Input produces the 32-byte VRF input for the given context: the
// big-endian 8-byte context length followed by the context bytes, hashed
// under the VRF domain tag.
func Input(context []byte) (hashing.Hash32, error) {
	if len(context) > MaxContextSize {
		return hashing.Hash32{}, fmt.Errorf(
			"%w: got %d bytes",
			ErrContextTooLarge,
			len(context),
		)
	}
	var lengthTag [8]byte
	binary.BigEndian.PutUint64(lengthTag[:], uint64(len(context)))
	h, err := hashing.New(hashing.TagVRF)
	if err != nil {
		return hashing.Hash32{}, err
	}
	h.Write(lengthTag[:])
	h.Write(context)
	return h.Sum32(), nil
}
