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

package golden_test

import (
	"encoding/json"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/aurumlabs/aurum-core/golden"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var update = flag.Bool("update", false, "regenerate testdata/vectors.json")

func vectorsPath() string {
	return filepath.Join("testdata", "vectors.json")
}

// TestVectors compares freshly generated records against the checked-in
// set. Run with -update to regenerate the file after an intentional
// behavior change.
func TestVectors(t *testing.T) {
	generated, err := golden.Generate()
	require.NoError(t, err)

	if *update {
		data, err := generated.EncodeJSON()
		require.NoError(t, err)
		require.NoError(
			t,
			os.WriteFile(vectorsPath(), append(data, '\n'), 0o644),
		)
	}

	data, err := os.ReadFile(vectorsPath())
	require.NoError(t, err)
	var checkedIn golden.Vectors
	require.NoError(t, json.Unmarshal(data, &checkedIn))

	// Field-level comparison rather than byte comparison: the checked-in
	// file may be regenerated by out-of-tree tooling with different JSON
	// whitespace or float rendering.
	assert.Equal(t, checkedIn.Hash, generated.Hash, "hash records")
	assert.Equal(t, checkedIn.Merkle, generated.Merkle, "merkle records")
	assert.Equal(t, checkedIn.VRF, generated.VRF, "vrf records")
	assert.Equal(t, checkedIn.Tx, generated.Tx, "tx records")
	assert.Equal(t, checkedIn.Aeon, generated.Aeon, "aeon records")
	assert.Equal(t, checkedIn.DualRoot, generated.DualRoot, "dual root records")
}

// TestGenerateDeterministic guards the regeneration contract: two calls in
// the same process must agree exactly.
func TestGenerateDeterministic(t *testing.T) {
	first, err := golden.Generate()
	require.NoError(t, err)
	second, err := golden.Generate()
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestEncodeJSONRoundTrip(t *testing.T) {
	generated, err := golden.Generate()
	require.NoError(t, err)
	data, err := generated.EncodeJSON()
	require.NoError(t, err)

	var decoded golden.Vectors
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, *generated, decoded)
}
