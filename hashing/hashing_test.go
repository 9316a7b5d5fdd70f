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

package hashing_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/aurumlabs/aurum-core/hashing"
)

var allTags = []hashing.DomainTag{
	hashing.TagTx,
	hashing.TagBlock,
	hashing.TagMerkleLeaf,
	hashing.TagMerkleNode,
	hashing.TagMerkleEmpty,
	hashing.TagVRF,
}

func TestSumDeterminism(t *testing.T) {
	payloads := [][]byte{
		nil,
		{0x00},
		[]byte("hello, aurum"),
		bytes.Repeat([]byte{0xab}, 4096),
	}
	for _, tag := range allTags {
		for _, payload := range payloads {
			first, err := hashing.Sum(tag, payload)
			if err != nil {
				t.Fatalf("unexpected error: %s", err)
			}
			second, err := hashing.Sum(tag, payload)
			if err != nil {
				t.Fatalf("unexpected error: %s", err)
			}
			if first != second {
				t.Fatalf(
					"digest not deterministic for tag %q: %s != %s",
					tag,
					first,
					second,
				)
			}
		}
	}
}

func TestSumKnownDigest(t *testing.T) {
	// Pinned cross-implementation value; also covered by the golden
	// vectors.
	digest, err := hashing.Sum(hashing.TagTx, []byte("hello, aurum"))
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	expected := "4d51d0a47823eece659e0c36330c7c3d13fa22617ad99d677b5b6e69879abd76"
	if digest.String() != expected {
		t.Fatalf("digest mismatch: got %s, expected %s", digest, expected)
	}
}

func TestDomainSeparation(t *testing.T) {
	payloads := [][]byte{
		nil,
		[]byte("x"),
		[]byte("the same message under every tag"),
		bytes.Repeat([]byte{0x55}, 1000),
	}
	for _, payload := range payloads {
		seen := map[hashing.Hash32]hashing.DomainTag{}
		for _, tag := range allTags {
			digest, err := hashing.Sum(tag, payload)
			if err != nil {
				t.Fatalf("unexpected error: %s", err)
			}
			if prev, ok := seen[digest]; ok {
				t.Fatalf(
					"tags %q and %q collide on payload %q",
					prev,
					tag,
					payload,
				)
			}
			seen[digest] = tag
		}
	}
}

func TestSumTagErrors(t *testing.T) {
	testCases := []struct {
		name string
		tag  hashing.DomainTag
		kind hashing.ErrorKind
	}{
		{
			name: "empty tag",
			tag:  hashing.DomainTag(""),
			kind: hashing.ErrEmptyTag,
		},
		{
			name: "unregistered tag",
			tag:  hashing.DomainTag("AURUM/Nope"),
			kind: hashing.ErrUnknownTag,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := hashing.Sum(tc.tag, []byte("payload"))
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !errors.Is(err, tc.kind) {
				t.Fatalf("expected error kind %v, got %v", tc.kind, err)
			}
			var tagErr hashing.TagError
			if !errors.As(err, &tagErr) {
				t.Fatalf("expected TagError, got %T", err)
			}
			if tagErr.Tag != tc.tag {
				t.Fatalf("error names tag %q, expected %q", tagErr.Tag, tc.tag)
			}
			if _, err := hashing.New(tc.tag); !errors.Is(err, tc.kind) {
				t.Fatalf("New: expected error kind %v, got %v", tc.kind, err)
			}
		})
	}
}

func TestStreamingMatchesSum(t *testing.T) {
	fragments := [][]byte{
		[]byte("frag-one|"),
		nil,
		[]byte("frag-two|"),
		bytes.Repeat([]byte{0x31}, 100),
	}
	var whole []byte
	h, err := hashing.New(hashing.TagMerkleNode)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	for _, frag := range fragments {
		whole = append(whole, frag...)
		if _, err := h.Write(frag); err != nil {
			t.Fatalf("unexpected write error: %s", err)
		}
	}
	oneShot, err := hashing.Sum(hashing.TagMerkleNode, whole)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if streamed := h.Sum32(); streamed != oneShot {
		t.Fatalf("streaming digest %s != one-shot digest %s", streamed, oneShot)
	}

	// Reset returns the hasher to its keyed initial state.
	h.Reset()
	if _, err := h.Write(whole); err != nil {
		t.Fatalf("unexpected write error: %s", err)
	}
	if streamed := h.Sum32(); streamed != oneShot {
		t.Fatalf("digest after Reset %s != one-shot digest %s", streamed, oneShot)
	}
}

func TestHash32JSONRoundTrip(t *testing.T) {
	digest, err := hashing.Sum(hashing.TagBlock, []byte("round trip"))
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	data, err := json.Marshal(digest)
	if err != nil {
		t.Fatalf("unexpected marshal error: %s", err)
	}
	var decoded hashing.Hash32
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unexpected unmarshal error: %s", err)
	}
	if decoded != digest {
		t.Fatalf("round trip mismatch: %s != %s", decoded, digest)
	}
}

func TestParseHash32Errors(t *testing.T) {
	testCases := []struct {
		name  string
		input string
	}{
		{"not hex", "zz"},
		{"short", "abcd"},
		{"long", "4d51d0a47823eece659e0c36330c7c3d13fa22617ad99d677b5b6e69879abd7600"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := hashing.ParseHash32(tc.input); err == nil {
				t.Fatal("expected error, got nil")
			}
		})
	}
}
