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

// Package golden produces the golden-vector record set: one structured
// record per core primitive, regenerated by a single deterministic
// side-effect-free call and diffed on every core change to catch
// unintended behavior drift.
//
// testdata/vectors.json holds the checked-in records; the aurum-vectors
// command prints a fresh set and the package test compares the two.
package golden

import (
	"encoding/hex"
	"encoding/json"
	"errors"

	"github.com/aurumlabs/aurum-core/aeon"
	"github.com/aurumlabs/aurum-core/dualroot"
	"github.com/aurumlabs/aurum-core/hashing"
	"github.com/aurumlabs/aurum-core/ledger"
	"github.com/aurumlabs/aurum-core/merkle"
	"github.com/aurumlabs/aurum-core/vrf"
)

// HashRecord pins one domain-separated digest.
type HashRecord struct {
	Tag        string `json:"tag"`
	MessageHex string `json:"message_hex"`
	DigestHex  string `json:"digest_hex"`
}

// MerkleRecord pins one leaf set's Merkle root.
type MerkleRecord struct {
	Name      string   `json:"name"`
	LeavesHex []string `json:"leaves_hex"`
	RootHex   string   `json:"root_hex"`
}

// VRFRecord pins one context's VRF input.
type VRFRecord struct {
	ContextHex string `json:"context_hex"`
	InputHex   string `json:"input_hex"`
}

// TxRecord pins one transaction's canonical encoding and identifier.
type TxRecord struct {
	Version     uint32 `json:"version"`
	Sender      string `json:"sender"`
	Recipient   string `json:"recipient"`
	Amount      uint64 `json:"amount"`
	Fee         uint64 `json:"fee"`
	Nonce       uint64 `json:"nonce"`
	EncodingHex string `json:"encoding_hex"`
	TxIDHex     string `json:"txid_hex"`
}

// AeonRecord pins one payload's fingerprint.
type AeonRecord struct {
	PayloadHex      string  `json:"payload_hex"`
	Entropy         float64 `json:"entropy"`
	Compressibility float64 `json:"compressibility"`
	TStar           float64 `json:"t_star"`
}

// DualRootRecord pins one root pair's validation outcome.
type DualRootRecord struct {
	PoseidonHex string `json:"poseidon_hex"`
	Blake3Hex   string `json:"blake3_hex"`
	Valid       bool   `json:"valid"`
}

// Vectors is the full golden-vector record set.
type Vectors struct {
	Hash     []HashRecord     `json:"hash"`
	Merkle   []MerkleRecord   `json:"merkle"`
	VRF      []VRFRecord      `json:"vrf"`
	Tx       []TxRecord       `json:"tx"`
	Aeon     []AeonRecord     `json:"aeon"`
	DualRoot []DualRootRecord `json:"dual_root"`
}

// EncodeJSON renders the record set in the checked-in format.
func (v *Vectors) EncodeJSON() ([]byte, error) {
	return json.MarshalIndent(v, "", "  ")
}

// Generate computes the full record set from the live primitives. It is
// deterministic and side-effect-free.
func Generate() (*Vectors, error) {
	v := &Vectors{}

	// Domain-separated hashing: the same message under two tags.
	message := []byte("hello, aurum")
	for _, tag := range []hashing.DomainTag{hashing.TagTx, hashing.TagBlock} {
		digest, err := hashing.Sum(tag, message)
		if err != nil {
			return nil, err
		}
		v.Hash = append(v.Hash, HashRecord{
			Tag:        string(tag),
			MessageHex: hex.EncodeToString(message),
			DigestHex:  digest.String(),
		})
	}

	// Merkle roots over the demo mempool entries, covering the frozen
	// empty-tree constant, the single-leaf duplication, an even level, and
	// an odd level.
	demoLeaves := [][]byte{
		[]byte("demo-tx-1"),
		[]byte("demo-tx-2"),
		[]byte("demo-tx-3"),
	}
	merkleCases := []struct {
		name   string
		leaves [][]byte
	}{
		{"empty", nil},
		{"single", demoLeaves[:1]},
		{"pair", demoLeaves[:2]},
		{"odd", demoLeaves},
	}
	for _, mc := range merkleCases {
		root, err := merkle.Root(mc.leaves)
		if err != nil {
			return nil, err
		}
		rec := MerkleRecord{Name: mc.name, RootHex: root.String()}
		for _, leaf := range mc.leaves {
			rec.LeavesHex = append(rec.LeavesHex, hex.EncodeToString(leaf))
		}
		v.Merkle = append(v.Merkle, rec)
	}

	// VRF input preparation.
	vrfContext := []byte("demo-context")
	vrfInput, err := vrf.Input(vrfContext)
	if err != nil {
		return nil, err
	}
	v.VRF = append(v.VRF, VRFRecord{
		ContextHex: hex.EncodeToString(vrfContext),
		InputHex:   vrfInput.String(),
	})

	// Canonical transaction encoding and identifier.
	tx := ledger.Transaction{
		Version:   1,
		Sender:    "alice",
		Recipient: "bob",
		Amount:    10,
		Fee:       1,
		Nonce:     42,
	}
	txEnc, err := tx.EncodeCanonical()
	if err != nil {
		return nil, err
	}
	txID, err := tx.ID()
	if err != nil {
		return nil, err
	}
	v.Tx = append(v.Tx, TxRecord{
		Version:     tx.Version,
		Sender:      tx.Sender,
		Recipient:   tx.Recipient,
		Amount:      tx.Amount,
		Fee:         tx.Fee,
		Nonce:       tx.Nonce,
		EncodingHex: hex.EncodeToString(txEnc),
		TxIDHex:     txID.String(),
	})

	// AEON fingerprint of the empty payload. Non-empty payloads are
	// excluded here on purpose: their compressibility component depends on
	// the backend's output size, which may shift across compressor
	// versions without a core behavior change.
	fp, err := aeon.Score(nil)
	if err != nil {
		return nil, err
	}
	v.Aeon = append(v.Aeon, AeonRecord{
		PayloadHex:      "",
		Entropy:         fp.Entropy,
		Compressibility: fp.Compressibility,
		TStar:           fp.TStar,
	})

	// Dual-root validation outcomes for an agreeing and a disagreeing pair.
	rootA := v.Hash[0].DigestHex
	rootB := v.Hash[1].DigestHex
	pairs := [][2]string{{rootA, rootA}, {rootA, rootB}}
	for _, pair := range pairs {
		poseidonRoot, err := hashing.ParseHash32(pair[0])
		if err != nil {
			return nil, err
		}
		blake3Root, err := hashing.ParseHash32(pair[1])
		if err != nil {
			return nil, err
		}
		valid := true
		if err := dualroot.ValidateRoots(poseidonRoot, blake3Root); err != nil {
			var mismatchErr dualroot.MismatchError
			if !errors.As(err, &mismatchErr) {
				return nil, err
			}
			valid = false
		}
		v.DualRoot = append(v.DualRoot, DualRootRecord{
			PoseidonHex: pair[0],
			Blake3Hex:   pair[1],
			Valid:       valid,
		})
	}

	return v, nil
}
