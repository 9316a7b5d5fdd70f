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

package aeon

import (
	"fmt"

	"github.com/golang/snappy"
	"github.com/klauspost/compress/zstd"
)

// Compressor is a general-purpose lossless compression backend for the
// compressibility component.
type Compressor interface {
	// Name identifies the backend in errors and logs.
	Name() string

	// Compress returns the compressed form of src. It must return an error
	// rather than an empty or truncated result on failure.
	Compress(src []byte) ([]byte, error)
}

// zstdCompressor is the default backend.
type zstdCompressor struct {
	enc *zstd.Encoder
}

// NewZstdCompressor returns a zstd-backed Compressor. The encoder is
// single-threaded since payloads are scored one at a time and callers
// parallelize across payloads.
func NewZstdCompressor() (Compressor, error) {
	enc, err := zstd.NewWriter(
		nil,
		zstd.WithEncoderConcurrency(1),
		zstd.WithEncoderLevel(zstd.SpeedDefault),
	)
	if err != nil {
		return nil, backendError("zstd", err)
	}
	return &zstdCompressor{enc: enc}, nil
}

func (c *zstdCompressor) Name() string {
	return "zstd"
}

func (c *zstdCompressor) Compress(src []byte) ([]byte, error) {
	return c.enc.EncodeAll(src, nil), nil
}

// snappyCompressor is an alternate backend exercising the fingerprint
// extension point with a cheaper, lower-ratio compressor.
type snappyCompressor struct{}

// NewSnappyCompressor returns a snappy-backed Compressor.
func NewSnappyCompressor() Compressor {
	return snappyCompressor{}
}

func (snappyCompressor) Name() string {
	return "snappy"
}

func (snappyCompressor) Compress(src []byte) ([]byte, error) {
	return snappy.Encode(nil, src), nil
}

// compressedRatio runs the backend and converts its output length into the
// compressibility component, hardening against backends that report success
// with an empty result.
func compressedRatio(c Compressor, payload []byte) (float64, error) {
	out, err := c.Compress(payload)
	if err != nil {
		return 0, backendError(c.Name(), err)
	}
	if len(out) == 0 {
		return 0, backendError(
			c.Name(),
			fmt.Errorf("empty output for %d-byte payload", len(payload)),
		)
	}
	ratio := 1 - float64(len(out))/float64(len(payload))
	return clamp01(ratio), nil
}
