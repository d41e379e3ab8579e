package loadgen

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type countingServer struct {
	posts atomic.Int64
	gets  atomic.Int64
	fail  func(n int64) bool
}

func (s *countingServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var n int64
	switch r.Method {
	case http.MethodPost:
		n = s.posts.Add(1)
	case http.MethodGet:
		n = s.gets.Add(1)
	}

	if s.fail != nil && s.fail(n) {
		w.WriteHeader(http.StatusServiceUnavailable)

		return
	}

	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{}`))
}

func TestNewRunner_Validation(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{name: "missing url", cfg: Config{Workers: 1, Requests: 1}},
		{name: "no workers", cfg: Config{BaseURL: "http://x", Requests: 1}},
		{name: "no stop condition", cfg: Config{BaseURL: "http://x", Workers: 1}},
		{name: "unknown mode", cfg: Config{BaseURL: "http://x", Workers: 1, Requests: 1, Mode: "delete"}},
		{name: "negative rate", cfg: Config{BaseURL: "http://x", Workers: 1, Requests: 1, Rate: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRunner(tt.cfg, nil, newDiscardLogger())
			assert.Error(t, err)
		})
	}
}

func TestRun_RequestBudget(t *testing.T) {
	srv := &countingServer{}
	ts := httptest.NewServer(srv)
	defer ts.Close()

	runner, err := NewRunner(Config{BaseURL: ts.URL + "/", Workers: 4, Requests: 25}, ts.Client(), newDiscardLogger())
	require.NoError(t, err)

	summary, err := runner.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 25, summary.Total)
	assert.Zero(t, summary.Errors)
	assert.EqualValues(t, 25, srv.posts.Load())
	assert.Equal(t, 25, summary.ByStatus[http.StatusOK])
	assert.EqualValues(t, 25*len(`{}`), summary.BytesIn)
	assert.LessOrEqual(t, summary.P50, summary.P99)
	assert.LessOrEqual(t, summary.P99, summary.Max)
}

func TestRun_MixedModeAlternates(t *testing.T) {
	srv := &countingServer{}
	ts := httptest.NewServer(srv)
	defer ts.Close()

	runner, err := NewRunner(Config{BaseURL: ts.URL, Mode: ModeMixed, Workers: 2, Requests: 10}, ts.Client(), newDiscardLogger())
	require.NoError(t, err)

	summary, err := runner.Run(context.Background())
	require.NoError(t, err)

	assert.EqualValues(t, 5, srv.posts.Load())
	assert.EqualValues(t, 5, srv.gets.Load())
	assert.Equal(t, 5, summary.ByMethod[http.MethodGet])
}

func TestRun_CountsNon2xxAsErrors(t *testing.T) {
	srv := &countingServer{fail: func(n int64) bool { return n%2 == 0 }}
	ts := httptest.NewServer(srv)
	defer ts.Close()

	runner, err := NewRunner(Config{BaseURL: ts.URL, Workers: 1, Requests: 10}, ts.Client(), newDiscardLogger())
	require.NoError(t, err)

	summary, err := runner.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 10, summary.Total)
	assert.Equal(t, 5, summary.Errors)
	assert.Equal(t, 5, summary.ByStatus[http.StatusServiceUnavailable])
}

func TestRun_RateLimited(t *testing.T) {
	ts := httptest.NewServer(&countingServer{})
	defer ts.Close()

	runner, err := NewRunner(Config{BaseURL: ts.URL, Workers: 4, Requests: 6, Rate: 50}, ts.Client(), newDiscardLogger())
	require.NoError(t, err)

	start := time.Now()
	summary, err := runner.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 6, summary.Total)
	// Burst of one: five waits of 20ms after the first token.
	assert.GreaterOrEqual(t, time.Since(start), 80*time.Millisecond)
}

func TestRun_StopsAfterDuration(t *testing.T) {
	ts := httptest.NewServer(&countingServer{})
	defer ts.Close()

	runner, err := NewRunner(Config{BaseURL: ts.URL, Workers: 2, Duration: 100 * time.Millisecond, Rate: 100}, ts.Client(), newDiscardLogger())
	require.NoError(t, err)

	done := make(chan *Summary, 1)
	go func() {
		summary, err := runner.Run(context.Background())
		assert.NoError(t, err)
		done <- summary
	}()

	select {
	case summary := <-done:
		assert.Positive(t, summary.Total)
		assert.LessOrEqual(t, summary.Total, 15)
	case <-time.After(5 * time.Second):
		t.Fatal("run did not stop after its duration")
	}
}

func TestPercentile(t *testing.T) {
	var samples []time.Duration
	for i := 1; i <= 100; i++ {
		samples = append(samples, time.Duration(i)*time.Millisecond)
	}

	assert.Equal(t, 50*time.Millisecond, percentile(samples, 50))
	assert.Equal(t, 95*time.Millisecond, percentile(samples, 95))
	assert.Equal(t, 99*time.Millisecond, percentile(samples, 99))
	assert.Equal(t, time.Duration(0), percentile(nil, 99))
	assert.Equal(t, 7*time.Millisecond, percentile([]time.Duration{7 * time.Millisecond}, 50))
}

func TestSummary_WriteTo(t *testing.T) {
	s := &Summary{
		Total:    3,
		Errors:   1,
		ByStatus: map[int]int{200: 2, 0: 1},
		Elapsed:  time.Second,
		BytesIn:  1536,
		P50:      time.Millisecond,
	}

	var buf bytes.Buffer
	_, err := s.WriteTo(&buf)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "requests:   3 (1 errors)")
	assert.Contains(t, out, "status 200: 2")
	assert.Contains(t, out, "status transport error: 1")
	assert.Contains(t, out, "received:   1.5 KB")
}
