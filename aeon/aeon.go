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

// Package aeon computes the AEON fingerprint: a normalized [0,1] profile of
// a byte payload combining Shannon entropy and compressibility, used to
// flag anomalously structured or anomalously random payloads.
//
// Scoring is a pure function of the payload. A compression backend failure
// always propagates as an error; it is never treated as "compressed to
// nothing" and folded into the score.
package aeon

import (
	"fmt"
	"math"
	"sync"
)

// MaxPayloadSize bounds scorer running time: compression worst case is
// linear in the payload, so callers cap input size rather than carrying
// cancellation through a pure function.
const MaxPayloadSize = 64 << 20

// Fingerprint is the entropy/compressibility profile of one payload. All
// components lie in [0,1]. Extra holds extension components by name; they
// participate in the TStar weighting after the two base components.
type Fingerprint struct {
	Entropy         float64            `json:"entropy"`
	Compressibility float64            `json:"compressibility"`
	TStar           float64            `json:"t_star"`
	Extra           map[string]float64 `json:"extra,omitempty"`
}

// ComponentFunc computes one extension component over a payload. Results
// are clamped to [0,1].
type ComponentFunc func(payload []byte) (float64, error)

type namedComponent struct {
	name string
	fn   ComponentFunc
}

// Scorer computes fingerprints with a configurable compression backend,
// optional extension components, and an optional component weight vector.
// A Scorer is safe for concurrent use.
type Scorer struct {
	compressor Compressor
	extras     []namedComponent
	weights    []float64
}

// Option configures a Scorer.
type Option func(*Scorer)

// WithCompressor overrides the default zstd backend.
func WithCompressor(c Compressor) Option {
	return func(s *Scorer) {
		s.compressor = c
	}
}

// WithComponent registers an extension component. Components are evaluated
// in registration order and their values appear in Fingerprint.Extra.
func WithComponent(name string, fn ComponentFunc) Option {
	return func(s *Scorer) {
		s.extras = append(s.extras, namedComponent{name: name, fn: fn})
	}
}

// WithWeights sets the non-negative component weight vector, ordered as
// entropy, compressibility, then extension components in registration
// order. The vector is normalized by its sum; an all-zero vector yields a
// TStar of 0. Nil means equal weighting.
func WithWeights(weights []float64) Option {
	return func(s *Scorer) {
		s.weights = weights
	}
}

// NewScorer returns a Scorer with the given options applied.
func NewScorer(opts ...Option) (*Scorer, error) {
	s := &Scorer{}
	for _, opt := range opts {
		opt(s)
	}
	if s.compressor == nil {
		c, err := NewZstdCompressor()
		if err != nil {
			return nil, err
		}
		s.compressor = c
	}
	if s.weights != nil {
		if err := checkWeights(s.weights, 2+len(s.extras)); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Score computes the fingerprint of payload.
func (s *Scorer) Score(payload []byte) (Fingerprint, error) {
	if len(payload) > MaxPayloadSize {
		return Fingerprint{}, scoreError(
			ErrPayloadTooLarge,
			fmt.Sprintf(
				"payload size %d exceeds maximum %d",
				len(payload),
				MaxPayloadSize,
			),
		)
	}

	fp := Fingerprint{Entropy: shannonEntropy(payload)}
	if len(payload) > 0 {
		ratio, err := compressedRatio(s.compressor, payload)
		if err != nil {
			return Fingerprint{}, err
		}
		fp.Compressibility = ratio
	}

	values := []float64{fp.Entropy, fp.Compressibility}
	for _, extra := range s.extras {
		v, err := extra.fn(payload)
		if err != nil {
			return Fingerprint{}, fmt.Errorf(
				"component %q: %w",
				extra.name,
				err,
			)
		}
		v = clamp01(v)
		if fp.Extra == nil {
			fp.Extra = make(map[string]float64, len(s.extras))
		}
		fp.Extra[extra.name] = v
		values = append(values, v)
	}

	tStar, err := Combine(values, s.weights)
	if err != nil {
		return Fingerprint{}, err
	}
	fp.TStar = tStar
	return fp, nil
}

var defaultScorer = sync.OnceValues(func() (*Scorer, error) {
	return NewScorer()
})

// Score computes the fingerprint of payload with the default scorer.
func Score(payload []byte) (Fingerprint, error) {
	s, err := defaultScorer()
	if err != nil {
		return Fingerprint{}, err
	}
	return s.Score(payload)
}

// Combine reduces component values to a single [0,1] score using the given
// non-negative weight vector normalized by its sum. A nil vector means
// equal weighting; an all-zero vector yields 0 rather than a division
// fault.
func Combine(values []float64, weights []float64) (float64, error) {
	if len(values) == 0 {
		return 0, nil
	}
	if weights == nil {
		weights = make([]float64, len(values))
		for i := range weights {
			weights[i] = 1
		}
	}
	if err := checkWeights(weights, len(values)); err != nil {
		return 0, err
	}
	var sum, wSum float64
	for i, w := range weights {
		sum += w * values[i]
		wSum += w
	}
	if wSum == 0 {
		return 0, nil
	}
	return clamp01(sum / wSum), nil
}

func checkWeights(weights []float64, n int) error {
	if len(weights) != n {
		return scoreError(
			ErrWeightMismatch,
			fmt.Sprintf(
				"%d weights for %d components",
				len(weights),
				n,
			),
		)
	}
	for i, w := range weights {
		if w < 0 || math.IsNaN(w) {
			return scoreError(
				ErrNegativeWeight,
				fmt.Sprintf("weight %d is %v", i, w),
			)
		}
	}
	return nil
}

// shannonEntropy computes the byte-histogram Shannon entropy of payload,
// normalized by log2(256) into [0,1]. An empty payload scores 0.
func shannonEntropy(payload []byte) float64 {
	if len(payload) == 0 {
		return 0
	}
	var hist [256]int
	for _, b := range payload {
		hist[b]++
	}
	n := float64(len(payload))
	var entropy float64
	for _, count := range hist {
		if count == 0 {
			continue
		}
		p := float64(count) / n
		entropy -= p * math.Log2(p)
	}
	return clamp01(entropy / 8)
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
