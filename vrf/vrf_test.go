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

package vrf_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/aurumlabs/aurum-core/hashing"
	"github.com/aurumlabs/aurum-core/vrf"
)

func TestInputDeterminism(t *testing.T) {
	contexts := [][]byte{
		nil,
		{0x00},
		[]byte("demo-context"),
		bytes.Repeat([]byte{0xee}, 4096),
	}
	for _, context := range contexts {
		first, err := vrf.Input(context)
		if err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
		second, err := vrf.Input(context)
		if err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
		if first != second {
			t.Fatalf("input not deterministic for context %q", context)
		}
	}
}

func TestInputKnownValue(t *testing.T) {
	input, err := vrf.Input([]byte("demo-context"))
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	expected := "5891478d3d8f107cc080c91ee44c9bde6642f8ead2cf50aeb3fb76218182c08f"
	if input.String() != expected {
		t.Fatalf("input mismatch: got %s, expected %s", input, expected)
	}
}

func TestInputLengthTagged(t *testing.T) {
	context := []byte("abc")

	// The hashed input carries the length ahead of the context, so the
	// result must differ from hashing the raw context under the VRF tag.
	input, err := vrf.Input(context)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	untagged, err := hashing.Sum(hashing.TagVRF, context)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if input == untagged {
		t.Fatal("input equals raw context digest; length tag missing")
	}

	// A context embedding another context's length tag cannot collide.
	embedded := append(
		[]byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x03},
		context...,
	)
	other, err := vrf.Input(embedded)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if input == other {
		t.Fatal("length-prefixed context collides with embedded prefix")
	}
}

func TestInputContextTooLarge(t *testing.T) {
	atLimit := make([]byte, vrf.MaxContextSize)
	if _, err := vrf.Input(atLimit); err != nil {
		t.Fatalf("unexpected error at limit: %s", err)
	}
	_, err := vrf.Input(make([]byte, vrf.MaxContextSize+1))
	if !errors.Is(err, vrf.ErrContextTooLarge) {
		t.Fatalf("expected ErrContextTooLarge, got %v", err)
	}
}
