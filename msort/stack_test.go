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

package msort

import "testing"

func TestRunStack(t *testing.T) {
	var s runStack

	if s.depth() != 0 {
		t.Fatalf("zero stack depth = %d, want 0", s.depth())
	}

	s.push(10)
	if s.depth() != 1 || s.top() != 10 {
		t.Fatalf("after push(10): depth %d top %d, want 1 10", s.depth(), s.top())
	}

	s.push(30)
	s.push(100)
	if s.depth() != 3 {
		t.Fatalf("depth = %d, want 3", s.depth())
	}
	if s.top() != 100 || s.second() != 30 {
		t.Fatalf("top %d second %d, want 100 30", s.top(), s.second())
	}

	s.drop()
	if s.top() != 30 || s.second() != 10 {
		t.Fatalf("after drop: top %d second %d, want 30 10", s.top(), s.second())
	}

	s.drop()
	s.drop()
	if s.depth() != 0 {
		t.Fatalf("depth after draining = %d, want 0", s.depth())
	}
}

func TestRunStackFull(t *testing.T) {
	var s runStack
	for i := 0; i < maxPendingRuns; i++ {
		s.push(i)
	}
	if s.depth() != maxPendingRuns {
		t.Fatalf("depth = %d, want %d", s.depth(), maxPendingRuns)
	}
	if s.top() != maxPendingRuns-1 {
		t.Fatalf("top = %d, want %d", s.top(), maxPendingRuns-1)
	}
	for s.depth() > 0 {
		s.drop()
	}
}

// TestRunStackDepthBound: each stacked run is at most half its right
// neighbor, so run lengths at least double from the top of the stack
// down. 64 entries therefore cover any slice addressable on a 64-bit
// machine. Exercise a worst-ish case that builds many short runs.
func TestRunStackDepthBound(t *testing.T) {
	// Alternating ramps force frequent short runs without ever
	// letting the pending stack grow past its bound.
	n := 1 << 16
	x := make([]int, n)
	for i := range x {
		if i%2 == 0 {
			x[i] = i
		} else {
			x[i] = n - i
		}
	}
	Sort(x)
	if !IsSorted(x) {
		t.Fatal("alternating ramp input not sorted")
	}
}
