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

import (
	"crypto/subtle"
	"fmt"

	"github.com/aurumlabs/aurum-core/hashing"
)

// Side records which side of the pair a proof sibling sits on.
type Side uint8

const (
	// SideLeft means the sibling is the left input of the parent hash.
	SideLeft Side = iota

	// SideRight means the sibling is the right input of the parent hash.
	SideRight
)

// ProofStep is one level of an inclusion proof: the sibling digest and the
// side it occupies.
type ProofStep struct {
	Sibling hashing.Hash32
	Side    Side
}

// Prove generates the inclusion proof for the leaf at the given index. The
// proof is ordered from the leaf level up to the level below the root.
func Prove(leaves [][]byte, index int) ([]ProofStep, error) {
	if index < 0 || index >= len(leaves) {
		return nil, treeError(
			ErrIndexOutOfRange,
			index,
			fmt.Sprintf("index out of range for %d leaves", len(leaves)),
		)
	}
	digests, err := leafDigests(leaves)
	if err != nil {
		return nil, err
	}

	h, err := hashing.New(hashing.TagMerkleNode)
	if err != nil {
		return nil, err
	}
	var steps []ProofStep
	for {
		if len(digests)%2 != 0 {
			digests = append(digests, digests[len(digests)-1])
		}
		side := SideRight
		if index%2 == 1 {
			side = SideLeft
		}
		steps = append(steps, ProofStep{Sibling: digests[index^1], Side: side})

		offset := 0
		for i := 0; i < len(digests); i += 2 {
			digests[offset] = parent(h, digests[i], digests[i+1])
			offset++
		}
		digests = digests[:offset]
		index /= 2
		if len(digests) == 1 {
			return steps, nil
		}
	}
}

// Verify reports whether the given leaf is committed to by root at the
// position described by proof. It is pure and never errors: any malformed
// input simply fails verification.
func Verify(leaf []byte, proof []ProofStep, root hashing.Hash32) bool {
	if checkLeaf(0, leaf) != nil {
		return false
	}
	digest, err := hashing.Sum(hashing.TagMerkleLeaf, leaf)
	if err != nil {
		return false
	}
	h, err := hashing.New(hashing.TagMerkleNode)
	if err != nil {
		return false
	}
	for _, step := range proof {
		if step.Side == SideLeft {
			digest = parent(h, step.Sibling, digest)
		} else {
			digest = parent(h, digest, step.Sibling)
		}
	}
	return subtle.ConstantTimeCompare(digest.Bytes(), root.Bytes()) == 1
}
