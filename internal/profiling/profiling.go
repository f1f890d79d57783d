package profiling

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"
)

// Per-frame CPU timings for mesh building and buffer uploads.

var (
	mu     sync.Mutex
	totals = make(map[string]time.Duration)
	counts = make(map[string]int)
)

// Track returns a stop function that adds the elapsed time to name.
// Usage: defer profiling.Track("chunk.buildMesh")()
func Track(name string) func() {
	start := time.Now()
	return func() {
		d := time.Since(start)
		mu.Lock()
		totals[name] += d
		counts[name]++
		mu.Unlock()
	}
}

// ResetFrame clears the totals. Call at the start of each frame.
func ResetFrame() {
	mu.Lock()
	clear(totals)
	clear(counts)
	mu.Unlock()
}

// Sample is the accumulated time of one tracked name
type Sample struct {
	Name  string
	Total time.Duration
	Calls int
}

// Snapshot returns the current samples, slowest first.
func Snapshot() []Sample {
	mu.Lock()
	out := make([]Sample, 0, len(totals))
	for k, v := range totals {
		out = append(out, Sample{Name: k, Total: v, Calls: counts[k]})
	}
	mu.Unlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].Total == out[j].Total {
			return out[i].Name < out[j].Name
		}
		return out[i].Total > out[j].Total
	})
	return out
}

// TopN formats the n slowest samples, e.g. "chunk.buildMesh:2.1ms, chunk.upload:0.4ms".
func TopN(n int) string {
	ss := Snapshot()
	if n > len(ss) {
		n = len(ss)
	}
	parts := make([]string, 0, n)
	for _, s := range ss[:n] {
		parts = append(parts, fmt.Sprintf("%s:%.1fms", s.Name, float64(s.Total.Microseconds())/1000.0))
	}
	return strings.Join(parts, ", ")
}
