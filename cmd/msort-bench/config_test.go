// Copyright 2026 go-mergesort Authors
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

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultSuite(t *testing.T) {
	s := defaultSuite()
	require.NotEmpty(t, s.Bench.Sizes)
	require.GreaterOrEqual(t, s.Bench.Steps, 1)
	require.GreaterOrEqual(t, s.Bench.Trials, 1)
	require.NotEmpty(t, s.Bench.Algorithms)
	for _, algo := range s.Bench.Algorithms {
		require.True(t, knownAlgorithms[algo], "default algorithm %q is unknown", algo)
	}
	require.GreaterOrEqual(t, s.Verify.MaxItems, 1)
	require.GreaterOrEqual(t, s.Verify.DupValues, 1)
}

func TestLoadSuiteEmptyPath(t *testing.T) {
	s, err := loadSuite("")
	require.NoError(t, err)
	require.Equal(t, defaultSuite(), s)
}

func TestLoadSuiteOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "suite.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[bench]
sizes = [64, 256]
steps = 4
algorithms = ["msort", "refsort"]
strings = true

[verify]
max_items = 1024
`), 0o644))

	s, err := loadSuite(path)
	require.NoError(t, err)

	require.Equal(t, []int{64, 256}, s.Bench.Sizes)
	require.Equal(t, 4, s.Bench.Steps)
	require.Equal(t, []string{"msort", "refsort"}, s.Bench.Algorithms)
	require.True(t, s.Bench.Strings)
	require.Equal(t, 1024, s.Verify.MaxItems)

	// Untouched fields keep their defaults.
	require.Equal(t, defaultSuite().Bench.Trials, s.Bench.Trials)
	require.Equal(t, defaultSuite().Verify.DupValues, s.Verify.DupValues)
}

func TestLoadSuiteMissingFile(t *testing.T) {
	_, err := loadSuite(filepath.Join(t.TempDir(), "absent.toml"))
	require.Error(t, err)
}
