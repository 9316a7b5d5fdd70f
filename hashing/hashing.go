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

// Package hashing provides the domain-separated hashing primitive shared by
// every other component of the AURUM core.
//
// Each hashing context is identified by a short ASCII domain tag. A 32-byte
// subkey is derived from the tag with unkeyed BLAKE2b-256, and the message is
// then hashed with BLAKE3 keyed by that subkey. The same message hashed under
// two different tags yields unrelated digests, so values from one context can
// never be replayed in another.
//
// Independent implementations that need byte-for-byte compatible digests must
// reproduce this construction exactly:
//
//	subkey = BLAKE2b-256(tag)        // unkeyed, no personalization, no salt
//	digest = BLAKE3-256(key=subkey, message)
//
// using the exact tag strings exported by this package. All multi-byte
// integers anywhere in the AURUM core are big-endian.
//
// Subkeys for the registered tags are derived once at process start into a
// read-only map, so concurrent callers share no mutable state.
package hashing

import (
	"golang.org/x/crypto/blake2b"
	"lukechampine.com/blake3"
)

// DomainTag identifies a hashing context. Tags map 1:1 to derived subkeys.
type DomainTag string

// Registered domain tags. These strings are part of the cross-implementation
// compatibility contract and must never change.
const (
	// TagTx is the context for canonical transaction hashing (TxID derivation).
	TagTx DomainTag = "AURUM/Tx"

	// TagBlock is the context for canonical block hashing.
	TagBlock DomainTag = "AURUM/Block"

	// TagMerkleLeaf is the context for Merkle leaf digests.
	TagMerkleLeaf DomainTag = "AURUM/MerkleLeaf"

	// TagMerkleNode is the context for Merkle internal node digests. Keeping
	// it distinct from TagMerkleLeaf prevents leaf/internal-node confusion.
	TagMerkleNode DomainTag = "AURUM/MerkleNode"

	// TagMerkleEmpty is the context for the frozen empty-tree root.
	TagMerkleEmpty DomainTag = "AURUM/MerkleEmpty"

	// TagVRF is the context for VRF input preparation.
	TagVRF DomainTag = "AURUM/VRF"
)

// subkeys holds the derived subkey for every registered tag. It is populated
// once at init and read-only afterwards, so lookups need no locking.
var subkeys = func() map[DomainTag][Hash32Size]byte {
	tags := []DomainTag{
		TagTx,
		TagBlock,
		TagMerkleLeaf,
		TagMerkleNode,
		TagMerkleEmpty,
		TagVRF,
	}
	m := make(map[DomainTag][Hash32Size]byte, len(tags))
	for _, tag := range tags {
		m[tag] = blake2b.Sum256([]byte(tag))
	}
	return m
}()

func subkeyForTag(tag DomainTag) ([Hash32Size]byte, error) {
	if tag == "" {
		return [Hash32Size]byte{}, tagError(ErrEmptyTag, tag, "empty domain tag")
	}
	key, ok := subkeys[tag]
	if !ok {
		return [Hash32Size]byte{}, tagError(
			ErrUnknownTag,
			tag,
			"domain tag is not registered",
		)
	}
	return key, nil
}

// Sum hashes message under the given domain tag and returns the 32-byte
// digest. An empty or unregistered tag is a configuration error.
func Sum(tag DomainTag, message []byte) (Hash32, error) {
	key, err := subkeyForTag(tag)
	if err != nil {
		return Hash32{}, err
	}
	h := blake3.New(Hash32Size, key[:])
	h.Write(message)
	return NewHash32(h.Sum(nil)), nil
}

// Hasher is the streaming form of Sum. It accepts any number of fragments
// without requiring the caller to concatenate buffers first.
type Hasher struct {
	inner *blake3.Hasher
}

// New returns a streaming hasher for the given domain tag.
func New(tag DomainTag) (*Hasher, error) {
	key, err := subkeyForTag(tag)
	if err != nil {
		return nil, err
	}
	return &Hasher{inner: blake3.New(Hash32Size, key[:])}, nil
}

// Write absorbs another message fragment. It never returns an error.
func (h *Hasher) Write(p []byte) (int, error) {
	return h.inner.Write(p)
}

// Sum32 returns the digest of all fragments written so far without
// disturbing the hasher state.
func (h *Hasher) Sum32() Hash32 {
	return NewHash32(h.inner.Sum(nil))
}

// Reset restores the hasher to its initial keyed state.
func (h *Hasher) Reset() {
	h.inner.Reset()
}
