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

import "golang.org/x/sys/cpu"

// cpuFeatures lists the ISA extensions recorded with each run. Merge
// throughput is dominated by block copies, so the copy-relevant
// features matter most when comparing numbers across machines.
func cpuFeatures() []string {
	var out []string
	if cpu.X86.HasSSE42 {
		out = append(out, "sse42")
	}
	if cpu.X86.HasPOPCNT {
		out = append(out, "popcnt")
	}
	if cpu.X86.HasAVX {
		out = append(out, "avx")
	}
	if cpu.X86.HasAVX2 {
		out = append(out, "avx2")
	}
	if cpu.X86.HasAVX512F {
		out = append(out, "avx512f")
	}
	if cpu.X86.HasBMI2 {
		out = append(out, "bmi2")
	}
	if cpu.X86.HasERMS {
		out = append(out, "erms")
	}
	return out
}
