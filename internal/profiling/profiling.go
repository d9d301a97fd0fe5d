package profiling

import (
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"
)

// Per-tick CPU timing keyed by "package.Operation".

var (
	mu         sync.Mutex
	tickTotals = make(map[string]time.Duration)
	tickCalls  = make(map[string]int)
)

// Track returns a stop function that records the elapsed time under the given name.
// Usage: defer profiling.Track("world.ChunkStreamer.Update")()
func Track(name string) func() {
	start := time.Now()
	return func() {
		d := time.Since(start)
		mu.Lock()
		tickTotals[name] += d
		tickCalls[name]++
		mu.Unlock()
	}
}

// ResetFrame clears the current totals. Call at the start of each tick.
func ResetFrame() {
	mu.Lock()
	clear(tickTotals)
	clear(tickCalls)
	mu.Unlock()
}

// Snapshot returns a copy of the current totals.
func Snapshot() map[string]time.Duration {
	mu.Lock()
	defer mu.Unlock()
	out := make(map[string]time.Duration, len(tickTotals))
	for k, v := range tickTotals {
		out[k] = v
	}
	return out
}

// Calls returns how many times name was tracked since the last reset.
func Calls(name string) int {
	mu.Lock()
	defer mu.Unlock()
	return tickCalls[name]
}

// TopN formats the n slowest entries of the current tick, slowest first.
// Example: "world.ChunkStreamer.Update:4.2ms(1), physics.PickTarget:0.3ms(1)"
func TopN(n int) string {
	mu.Lock()
	type entry struct {
		name  string
		dur   time.Duration
		calls int
	}
	list := make([]entry, 0, len(tickTotals))
	for k, v := range tickTotals {
		list = append(list, entry{name: k, dur: v, calls: tickCalls[k]})
	}
	mu.Unlock()

	sort.Slice(list, func(i, j int) bool {
		if list[i].dur != list[j].dur {
			return list[i].dur > list[j].dur
		}
		return list[i].name < list[j].name
	})
	n = max(min(n, len(list)), 0)
	parts := make([]string, 0, n)
	for _, e := range list[:n] {
		ms := float64(e.dur.Microseconds()) / 1000.0
		parts = append(parts, e.name+":"+strconv.FormatFloat(ms, 'f', 1, 64)+"ms("+strconv.Itoa(e.calls)+")")
	}
	return strings.Join(parts, ", ")
}
