// Package host describes the machine a benchmark runs on, for the banner.
package host

import (
	"runtime"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/klauspost/cpuid/v2"
)

// ThreadOverhead is the per-worker memory estimate for a freshly created OS
// thread (kernel stack plus the runtime's system stack).
const ThreadOverhead = 64 << 10

// Info is a snapshot of the host CPU.
type Info struct {
	Brand         string
	LogicalCores  int
	PhysicalCores int
	GOMAXPROCS    int
}

// Detect probes the CPU with cpuid. Fields cpuid cannot fill (common off
// x86) fall back to the runtime's view of the machine.
func Detect() Info {
	info := Info{
		Brand:         strings.TrimSpace(cpuid.CPU.BrandName),
		LogicalCores:  cpuid.CPU.LogicalCores,
		PhysicalCores: cpuid.CPU.PhysicalCores,
		GOMAXPROCS:    runtime.GOMAXPROCS(0),
	}
	if info.Brand == "" {
		info.Brand = runtime.GOARCH
	}
	if info.LogicalCores <= 0 {
		info.LogicalCores = runtime.NumCPU()
	}
	if info.PhysicalCores <= 0 {
		info.PhysicalCores = info.LogicalCores
	}

	return info
}

// Oversubscribed reports whether threads exceeds the logical core count.
func (i Info) Oversubscribed(threads int) bool {
	return i.LogicalCores > 0 && threads > i.LogicalCores
}

// Footprint estimates the peak resident memory of a run: the shared n×n
// matrix plus, per worker, a result vector of n doubles and ThreadOverhead.
func Footprint(n, threads int) uint64 {
	matrixBytes := uint64(n) * uint64(n) * 8
	perWorker := uint64(n)*8 + ThreadOverhead

	return matrixBytes + uint64(threads)*perWorker
}

// FormatBytes renders b in IEC units, e.g. "8.0 MiB".
func FormatBytes(b uint64) string {
	return humanize.IBytes(b)
}

// FormatCount renders n with thousands separators, e.g. "12,345".
func FormatCount(n uint64) string {
	return humanize.Comma(int64(n))
}
