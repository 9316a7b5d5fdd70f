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

import (
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/btcsuite/btcd/btcutil/bech32"
)

// Hash32Size is the size of every digest produced by this package.
const Hash32Size = 32

// Hash32 is a 32-byte domain-separated digest.
type Hash32 [Hash32Size]byte

// NewHash32 copies up to 32 bytes of data into a Hash32.
func NewHash32(data []byte) Hash32 {
	h := Hash32{}
	copy(h[:], data)
	return h
}

// ParseHash32 decodes a 64-character hex string into a Hash32.
func ParseHash32(s string) (Hash32, error) {
	data, err := hex.DecodeString(s)
	if err != nil {
		return Hash32{}, fmt.Errorf("invalid hash hex: %w", err)
	}
	if len(data) != Hash32Size {
		return Hash32{}, fmt.Errorf(
			"invalid hash length: %d, expected %d",
			len(data),
			Hash32Size,
		)
	}
	return NewHash32(data), nil
}

func (h Hash32) String() string {
	return hex.EncodeToString(h[:])
}

func (h Hash32) Bytes() []byte {
	return h[:]
}

func (h Hash32) MarshalJSON() ([]byte, error) {
	return json.Marshal(h.String())
}

func (h *Hash32) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	tmp, err := ParseHash32(s)
	if err != nil {
		return err
	}
	*h = tmp
	return nil
}

// Bech32 renders the digest with a human-readable prefix for display in
// explorers and status responses.
func (h Hash32) Bech32(prefix string) string {
	// Convert data to base32 and encode as bech32
	convData, err := bech32.ConvertBits(h[:], 8, 5, true)
	if err != nil {
		panic(
			fmt.Sprintf("unexpected error converting data to base32: %s", err),
		)
	}
	encoded, err := bech32.Encode(prefix, convData)
	if err != nil {
		panic(fmt.Sprintf("unexpected error encoding data as bech32: %s", err))
	}
	return encoded
}
