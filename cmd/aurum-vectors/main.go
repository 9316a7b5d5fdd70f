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

// aurum-vectors regenerates the golden-vector record set on stdout:
//
//	aurum-vectors > golden/testdata/vectors.json
package main

import (
	"fmt"
	"os"

	"github.com/aurumlabs/aurum-core/golden"
)

func main() {
	vectors, err := golden.Generate()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to generate vectors: %s\n", err)
		os.Exit(1)
	}
	data, err := vectors.EncodeJSON()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to encode vectors: %s\n", err)
		os.Exit(1)
	}
	fmt.Println(string(data))
}
