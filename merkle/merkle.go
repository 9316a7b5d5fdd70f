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

// Package merkle builds and verifies Merkle roots and inclusion proofs over
// ordered leaf values.
//
// Leaves are hashed under the merkle-leaf domain tag and internal nodes
// under the distinct merkle-node tag, so a leaf digest can never be
// confused with an internal node digest. When a level holds an odd number
// of digests the last digest is duplicated to complete the final pair; in
// particular a single-leaf tree hashes the leaf digest paired with itself,
// so its root differs from the bare leaf digest.
//
// An empty tree yields a frozen constant root derived under its own domain
// tag. It is never computed as the hash of an empty buffer, so it cannot
// collide with the digest of any leaf, including an empty-content one.
//
// Root construction is O(n) digests and reduces each level in place over a
// single digest buffer. Malformed leaves are reported as errors; nothing in
// this package panics on input, since roots are routinely built from
// untrusted pending-transaction data.
package merkle

import (
	"fmt"

	"github.com/aurumlabs/aurum-core/hashing"
)

// MaxLeafSize is the maximum length in bytes of a single leaf.
const MaxLeafSize = 1 << 20

// emptyRoot is the frozen root of a tree with no leaves, derived once at
// process start under a tag no leaf or node digest can share.
var emptyRoot = func() hashing.Hash32 {
	root, err := hashing.Sum(hashing.TagMerkleEmpty, nil)
	if err != nil {
		panic(fmt.Sprintf("unexpected error deriving empty root: %s", err))
	}
	return root
}()

// EmptyRoot returns the frozen root of a tree with no leaves. It
// distinguishes "no transactions" from any specific transaction set.
func EmptyRoot() hashing.Hash32 {
	return emptyRoot
}

// Root computes the Merkle root over the given ordered leaves.
func Root(leaves [][]byte) (hashing.Hash32, error) {
	if len(leaves) == 0 {
		return emptyRoot, nil
	}
	digests, err := leafDigests(leaves)
	if err != nil {
		return hashing.Hash32{}, err
	}
	return reduce(digests)
}

// LeafDigest hashes a single leaf under the merkle-leaf domain tag.
func LeafDigest(leaf []byte) (hashing.Hash32, error) {
	if err := checkLeaf(0, leaf); err != nil {
		return hashing.Hash32{}, err
	}
	return hashing.Sum(hashing.TagMerkleLeaf, leaf)
}

func checkLeaf(index int, leaf []byte) error {
	if len(leaf) == 0 {
		return treeError(ErrInvalidLeaf, index, "zero-length leaf")
	}
	if len(leaf) > MaxLeafSize {
		return treeError(
			ErrInvalidLeaf,
			index,
			fmt.Sprintf("leaf size %d exceeds maximum %d", len(leaf), MaxLeafSize),
		)
	}
	return nil
}

// leafDigests hashes every leaf, rejecting the first malformed one.
func leafDigests(leaves [][]byte) ([]hashing.Hash32, error) {
	digests := make([]hashing.Hash32, 0, len(leaves)+1)
	for i, leaf := range leaves {
		if err := checkLeaf(i, leaf); err != nil {
			return nil, err
		}
		digest, err := hashing.Sum(hashing.TagMerkleLeaf, leaf)
		if err != nil {
			return nil, err
		}
		digests = append(digests, digest)
	}
	return digests, nil
}

// reduce collapses the digest buffer level by level until one root remains.
// Each level is written over the front of the same buffer.
func reduce(digests []hashing.Hash32) (hashing.Hash32, error) {
	h, err := hashing.New(hashing.TagMerkleNode)
	if err != nil {
		return hashing.Hash32{}, err
	}
	for {
		if len(digests)%2 != 0 {
			digests = append(digests, digests[len(digests)-1])
		}
		offset := 0
		for i := 0; i < len(digests); i += 2 {
			digests[offset] = parent(h, digests[i], digests[i+1])
			offset++
		}
		digests = digests[:offset]
		if len(digests) == 1 {
			return digests[0], nil
		}
	}
}

// parent hashes a left/right digest pair under the merkle-node tag. The
// streaming hasher takes both fragments directly, avoiding a 64-byte
// scratch copy per node.
func parent(h *hashing.Hasher, left, right hashing.Hash32) hashing.Hash32 {
	h.Reset()
	h.Write(left.Bytes())
	h.Write(right.Bytes())
	return h.Sum32()
}
