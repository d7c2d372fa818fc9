// Copyright 2025 go-highway Authors
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

package bench

import (
	"fmt"
	"runtime"
	"strings"

	"golang.org/x/sys/cpu"
)

// Host describes the machine a sweep ran on. Operation counts are hardware
// independent; timings and energy readings are not.
type Host struct {
	GOOS      string   `json:"goos" yaml:"goos"`
	GOARCH    string   `json:"goarch" yaml:"goarch"`
	GoVersion string   `json:"go_version" yaml:"go_version"`
	NumCPU    int      `json:"num_cpu" yaml:"num_cpu"`
	Features  []string `json:"features" yaml:"features"`
}

// HostInfo returns the current host description.
func HostInfo() Host {
	return Host{
		GOOS:      runtime.GOOS,
		GOARCH:    runtime.GOARCH,
		GoVersion: runtime.Version(),
		NumCPU:    runtime.NumCPU(),
		Features:  cpuFeatures(),
	}
}

func (h Host) String() string {
	return fmt.Sprintf("%s/%s %s cpus=%d features=[%s]",
		h.GOOS, h.GOARCH, h.GoVersion, h.NumCPU, strings.Join(h.Features, ","))
}

type feature struct {
	name string
	has  bool
}

func cpuFeatures() []string {
	var fs []feature
	switch runtime.GOARCH {
	case "amd64", "386":
		fs = []feature{
			{"sse4.2", cpu.X86.HasSSE42},
			{"popcnt", cpu.X86.HasPOPCNT},
			{"avx", cpu.X86.HasAVX},
			{"avx2", cpu.X86.HasAVX2},
			{"bmi2", cpu.X86.HasBMI2},
			{"fma", cpu.X86.HasFMA},
			{"avx512f", cpu.X86.HasAVX512F},
		}
	case "arm64":
		// ASIMD is always present on ARMv8+.
		fs = []feature{
			{"asimd", cpu.ARM64.HasASIMD},
			{"aes", cpu.ARM64.HasAES},
			{"atomics", cpu.ARM64.HasATOMICS},
			{"sve", cpu.ARM64.HasSVE},
		}
	}

	out := []string{}
	for _, f := range fs {
		if f.has {
			out = append(out, f.name)
		}
	}
	return out
}
