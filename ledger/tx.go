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

// Package ledger defines the AURUM transaction and block data model and
// their canonical byte encoding.
//
// The canonical encoding is total and injective over the valid value space:
// identical field values always produce byte-identical output, and distinct
// values never collide. Field order is fixed by this package, all integers
// are big-endian fixed-width, and string fields are length-prefixed. String
// fields are validated against a homoglyph denylist before any bytes are
// produced; see confusable.go.
//
// Transaction wire layout:
//
//	version   uint32
//	lenS      uint32 | sender bytes (UTF-8)
//	lenR      uint32 | recipient bytes (UTF-8)
//	amount    uint64
//	fee       uint64
//	nonce     uint64
//
// Block wire layout:
//
//	txCount      uint32 | each transaction's canonical encoding
//	poseidonRoot 32 bytes
//	blake3Root   32 bytes
package ledger

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/aurumlabs/aurum-core/hashing"
)

// MaxStringFieldLen is the maximum length in bytes of the sender and
// recipient fields.
const MaxStringFieldLen = 256

// Transaction is a single AURUM value transfer.
type Transaction struct {
	Version   uint32
	Sender    string
	Recipient string
	Amount    uint64
	Fee       uint64
	Nonce     uint64
}

func (t *Transaction) validate() error {
	stringFields := []struct {
		name  string
		value string
	}{
		{"sender", t.Sender},
		{"recipient", t.Recipient},
	}
	for _, f := range stringFields {
		if len(f.value) > MaxStringFieldLen {
			return encodeError(
				ErrFieldTooLarge,
				f.name,
				fmt.Sprintf(
					"length %d exceeds maximum %d",
					len(f.value),
					MaxStringFieldLen,
				),
			)
		}
		if err := checkConfusables(f.name, f.value); err != nil {
			return err
		}
	}
	return nil
}

// EncodeCanonical returns the canonical byte encoding of the transaction.
func (t *Transaction) EncodeCanonical() ([]byte, error) {
	if err := t.validate(); err != nil {
		return nil, err
	}
	buf := bytes.NewBuffer(
		make([]byte, 0, 4+4+len(t.Sender)+4+len(t.Recipient)+8+8+8),
	)
	writeUint32(buf, t.Version)
	writeString(buf, t.Sender)
	writeString(buf, t.Recipient)
	writeUint64(buf, t.Amount)
	writeUint64(buf, t.Fee)
	writeUint64(buf, t.Nonce)
	return buf.Bytes(), nil
}

// ID returns the transaction identifier: the canonical encoding hashed under
// the transaction domain tag. Client-side implementations derive the same
// identifier from the same bytes.
func (t *Transaction) ID() (hashing.Hash32, error) {
	enc, err := t.EncodeCanonical()
	if err != nil {
		return hashing.Hash32{}, err
	}
	return hashing.Sum(hashing.TagTx, enc)
}

func writeUint32(buf *bytes.Buffer, v uint32) {
	var tmp [4]byte
	binary.BigEndian.PutUint32(tmp[:], v)
	buf.Write(tmp[:])
}

func writeUint64(buf *bytes.Buffer, v uint64) {
	var tmp [8]byte
	binary.BigEndian.PutUint64(tmp[:], v)
	buf.Write(tmp[:])
}

// writeString writes a length-prefixed string. The prefix keeps the
// encoding injective when adjacent variable-length fields would otherwise
// admit ambiguous splits.
func writeString(buf *bytes.Buffer, s string) {
	writeUint32(buf, uint32(len(s))) // #nosec G115 -- length capped by validate
	buf.WriteString(s)
}
