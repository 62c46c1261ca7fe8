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

// cpuFeatures lists the ISA extensions recorded with each run.
func cpuFeatures() []string {
	var out []string
	if cpu.ARM64.HasASIMD {
		out = append(out, "asimd")
	}
	if cpu.ARM64.HasCRC32 {
		out = append(out, "crc32")
	}
	if cpu.ARM64.HasATOMICS {
		out = append(out, "atomics")
	}
	if cpu.ARM64.HasSVE {
		out = append(out, "sve")
	}
	return out
}
