// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package util

import (
	"fmt"
	"runtime"
	"time"

	log "github.com/sirupsen/logrus"
)

// PerfStats records the time and memory allocation at a given point, such that
// the cost of some subsequent computation can be measured.
type PerfStats struct {
	// Starting time
	startTime time.Time
	// Starting total memory allocation
	startMem uint64
	// Starting number of gc events
	startGc uint32
}

// PerfReport summarises the cost of a computation measured by PerfStats.
type PerfReport struct {
	// Elapsed wall clock time.
	Elapsed time.Duration
	// Allocated bytes (in total).
	Allocated uint64
	// Number of garbage collection events.
	Collections uint32
}

// NewPerfStats creates a new snapshot of the current time and amount of memory
// allocated.
func NewPerfStats() *PerfStats {
	var m runtime.MemStats

	startTime := time.Now()

	runtime.ReadMemStats(&m)

	return &PerfStats{startTime, m.TotalAlloc, m.NumGC}
}

// Report determines the difference between the state now and as it was when
// the PerfStats object was created.
func (p *PerfStats) Report() PerfReport {
	var m runtime.MemStats

	runtime.ReadMemStats(&m)

	return PerfReport{time.Since(p.startTime), m.TotalAlloc - p.startMem, m.NumGC - p.startGc}
}

// Log the difference between the state now and as it was when the PerfStats
// object was created.
func (p *PerfStats) Log(prefix string) {
	log.Debugf("%s took %s", prefix, p.Report().String())
}

func (p PerfReport) String() string {
	return fmt.Sprintf("%0.3fs using %0.2f Mb (%d GC events)", p.Elapsed.Seconds(),
		float64(p.Allocated)/1024/1024, p.Collections)
}
