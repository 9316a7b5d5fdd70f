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

import (
	"bytes"
	"fmt"

	"github.com/aurumlabs/aurum-core/hashing"
	"github.com/aurumlabs/aurum-core/merkle"
)

// MaxBlockTxs is the maximum number of transactions in a single block.
const MaxBlockTxs = 65535

// Block is an ordered sequence of transactions together with two
// independently produced 32-byte commitments over the block's state.
// PoseidonRoot is supplied by an external commitment scheme and is treated
// as opaque bytes here; Blake3Root is computed by this core.
type Block struct {
	Transactions []Transaction
	PoseidonRoot hashing.Hash32
	Blake3Root   hashing.Hash32
}

// EncodeCanonical returns the canonical byte encoding of the block.
func (b *Block) EncodeCanonical() ([]byte, error) {
	if len(b.Transactions) > MaxBlockTxs {
		return nil, encodeError(
			ErrTooManyTxs,
			"transactions",
			fmt.Sprintf(
				"%d transactions exceeds maximum %d",
				len(b.Transactions),
				MaxBlockTxs,
			),
		)
	}
	buf := new(bytes.Buffer)
	writeUint32(buf, uint32(len(b.Transactions))) // #nosec G115 -- capped above
	for i := range b.Transactions {
		enc, err := b.Transactions[i].EncodeCanonical()
		if err != nil {
			return nil, err
		}
		buf.Write(enc)
	}
	buf.Write(b.PoseidonRoot.Bytes())
	buf.Write(b.Blake3Root.Bytes())
	return buf.Bytes(), nil
}

// Hash returns the block's canonical digest under the block domain tag.
func (b *Block) Hash() (hashing.Hash32, error) {
	enc, err := b.EncodeCanonical()
	if err != nil {
		return hashing.Hash32{}, err
	}
	return hashing.Sum(hashing.TagBlock, enc)
}

// TxRoot computes the Merkle root over the canonical encodings of the
// block's transactions.
func (b *Block) TxRoot() (hashing.Hash32, error) {
	leaves := make([][]byte, len(b.Transactions))
	for i := range b.Transactions {
		enc, err := b.Transactions[i].EncodeCanonical()
		if err != nil {
			return hashing.Hash32{}, err
		}
		leaves[i] = enc
	}
	return merkle.Root(leaves)
}
