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

package dualroot_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/aurumlabs/aurum-core/dualroot"
	"github.com/aurumlabs/aurum-core/hashing"
	"github.com/aurumlabs/aurum-core/ledger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRoot(seed byte) hashing.Hash32 {
	var root hashing.Hash32
	for i := range root {
		root[i] = seed + byte(i)
	}
	return root
}

func TestValidateRootsEqual(t *testing.T) {
	for _, seed := range []byte{0x00, 0x01, 0x42, 0xff} {
		root := testRoot(seed)
		assert.NoError(t, dualroot.ValidateRoots(root, root))
	}
}

func TestValidateRootsSingleBitFlips(t *testing.T) {
	root := testRoot(0x42)
	for byteIdx := 0; byteIdx < hashing.Hash32Size; byteIdx++ {
		for bit := 0; bit < 8; bit++ {
			flipped := root
			flipped[byteIdx] ^= 1 << bit
			err := dualroot.ValidateRoots(root, flipped)
			require.Errorf(
				t,
				err,
				"flip of byte %d bit %d accepted",
				byteIdx,
				bit,
			)
		}
	}
}

func TestMismatchErrorCarriesRoots(t *testing.T) {
	poseidon := testRoot(0x01)
	blake3 := testRoot(0x02)
	err := dualroot.ValidateRoots(poseidon, blake3)
	require.Error(t, err)

	var mismatchErr dualroot.MismatchError
	require.True(t, errors.As(err, &mismatchErr))
	assert.Equal(t, poseidon, mismatchErr.PoseidonRoot)
	assert.Equal(t, blake3, mismatchErr.Blake3Root)
	assert.Equal(
		t,
		fmt.Sprintf("dual root mismatch: poseidon=%s blake3=%s", poseidon, blake3),
		err.Error(),
	)
}

func TestValidateBlock(t *testing.T) {
	root := testRoot(0x10)
	block := &ledger.Block{
		PoseidonRoot: root,
		Blake3Root:   root,
	}
	assert.NoError(t, dualroot.Validate(block))

	block.Blake3Root = testRoot(0x11)
	var mismatchErr dualroot.MismatchError
	assert.ErrorAs(t, dualroot.Validate(block), &mismatchErr)
}

func TestValidateNilBlock(t *testing.T) {
	assert.ErrorIs(t, dualroot.Validate(nil), dualroot.ErrNilBlock)
}
