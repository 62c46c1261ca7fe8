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
	"fmt"

	"github.com/BurntSushi/toml"
)

// Suite is the TOML configuration for a full harness run. Every field
// has a usable default; a suite file overrides the defaults and flags
// override the file.
//
//	[bench]
//	sizes = [1000, 100000]
//	steps = 20
//	trials = 5
//	algorithms = ["msort", "stdstable"]
//
//	[verify]
//	max_items = 131072
type Suite struct {
	Bench  BenchConfig  `toml:"bench"`
	Verify VerifyConfig `toml:"verify"`
}

type BenchConfig struct {
	// Sizes are the element counts swept per factor.
	Sizes []int `toml:"sizes"`
	// Steps divides the sortedness range 0..1; step/steps is the
	// fraction of positions randomized.
	Steps int `toml:"steps"`
	// Trials per cell; the fastest is reported.
	Trials int `toml:"trials"`
	// Algorithms to time, in column order.
	Algorithms []string `toml:"algorithms"`
	// Strings switches the element type from int to fixed-width
	// decimal strings.
	Strings bool `toml:"strings"`
	// Width is the zero-padded width used in string mode.
	Width int `toml:"width"`
}

type VerifyConfig struct {
	// MaxItems bounds the doubling size grid.
	MaxItems int `toml:"max_items"`
	// DupValues is the value-pool size for the duplicate-heavy cells.
	DupValues int `toml:"dup_values"`
	// Workers for the verification pool; 0 means GOMAXPROCS.
	Workers int `toml:"workers"`
}

func defaultSuite() Suite {
	return Suite{
		Bench: BenchConfig{
			Sizes:      []int{1000, 10000, 100000},
			Steps:      10,
			Trials:     3,
			Algorithms: []string{"msort", "stdsort", "stdstable"},
			Width:      12,
		},
		Verify: VerifyConfig{
			MaxItems:  1 << 16,
			DupValues: 8,
		},
	}
}

// loadSuite returns the defaults overlaid with the TOML file at path,
// if any.
func loadSuite(path string) (Suite, error) {
	s := defaultSuite()
	if path == "" {
		return s, nil
	}
	if _, err := toml.DecodeFile(path, &s); err != nil {
		return s, fmt.Errorf("load suite %s: %w", path, err)
	}
	return s, nil
}
