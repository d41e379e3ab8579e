package loadgen

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"
	"sync"
	"time"

	"personbench/internal/util"
)

// Summary is the outcome of one run.
type Summary struct {
	Total      int
	Errors     int
	ByStatus   map[int]int
	ByMethod   map[string]int
	Elapsed    time.Duration
	Throughput float64 // completed requests per second
	BytesIn    int64   // response body bytes across all requests

	P50 time.Duration
	P95 time.Duration
	P99 time.Duration
	Max time.Duration
}

// WriteTo prints a human-readable report.
func (s *Summary) WriteTo(w io.Writer) (int64, error) {
	var b strings.Builder

	fmt.Fprintf(&b, "requests:   %d (%d errors)\n", s.Total, s.Errors)
	fmt.Fprintf(&b, "elapsed:    %s\n", util.FormatDuration(s.Elapsed))
	fmt.Fprintf(&b, "throughput: %.1f req/s\n", s.Throughput)
	fmt.Fprintf(&b, "received:   %s\n", util.FormatBytes(s.BytesIn))
	fmt.Fprintf(&b, "latency:    p50=%s p95=%s p99=%s max=%s\n", s.P50, s.P95, s.P99, s.Max)

	for _, status := range slices.Sorted(maps.Keys(s.ByStatus)) {
		if status == 0 {
			fmt.Fprintf(&b, "status transport error: %d\n", s.ByStatus[status])

			continue
		}
		fmt.Fprintf(&b, "status %d: %d\n", status, s.ByStatus[status])
	}

	n, err := io.WriteString(w, b.String())

	return int64(n), err
}

type recorder struct {
	mu        sync.Mutex
	latencies []time.Duration
	errors    int
	bytesIn   int64
	byStatus  map[int]int
	byMethod  map[string]int
}

func newRecorder() *recorder {
	return &recorder{
		byStatus: make(map[int]int),
		byMethod: make(map[string]int),
	}
}

func (r *recorder) record(method string, status int, n int64, elapsed time.Duration, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.latencies = append(r.latencies, elapsed)
	r.bytesIn += n
	r.byStatus[status]++
	r.byMethod[method]++
	if err != nil {
		r.errors++
	}
}

func (r *recorder) summarize(elapsed time.Duration) *Summary {
	r.mu.Lock()
	defer r.mu.Unlock()

	sorted := slices.Clone(r.latencies)
	slices.Sort(sorted)

	s := &Summary{
		Total:    len(sorted),
		Errors:   r.errors,
		BytesIn:  r.bytesIn,
		ByStatus: maps.Clone(r.byStatus),
		ByMethod: maps.Clone(r.byMethod),
		Elapsed:  elapsed,
		P50:      percentile(sorted, 50),
		P95:      percentile(sorted, 95),
		P99:      percentile(sorted, 99),
	}
	if len(sorted) > 0 {
		s.Max = sorted[len(sorted)-1]
	}
	if elapsed > 0 {
		s.Throughput = float64(s.Total) / elapsed.Seconds()
	}

	return s
}

// percentile uses the nearest-rank method on an ascending slice.
func percentile(sorted []time.Duration, p int) time.Duration {
	if len(sorted) == 0 {
		return 0
	}

	rank := (p*len(sorted) + 99) / 100
	if rank < 1 {
		rank = 1
	}

	return sorted[rank-1]
}
