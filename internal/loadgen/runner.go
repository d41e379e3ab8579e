// Package loadgen drives the person endpoints at a fixed rate and summarizes latency.
package loadgen

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"sync/atomic"
	"time"

	"personbench/internal/errors"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

// Mode selects which endpoint each request hits.
type Mode string

const (
	ModeCreate Mode = "create"
	ModeList   Mode = "list"
	ModeMixed  Mode = "mixed"
)

// Config describes one run. At least one of Duration and Requests must be set.
type Config struct {
	BaseURL  string
	Mode     Mode
	Rate     float64 // requests per second across all workers; zero means unthrottled
	Workers  int
	Duration time.Duration
	Requests int
	Timeout  time.Duration // per request
}

// Runner issues requests against a running service.
type Runner struct {
	cfg     Config
	client  *http.Client
	limiter *rate.Limiter
	logger  *slog.Logger
}

// NewRunner validates cfg. A nil client gets one with cfg.Timeout.
func NewRunner(cfg Config, client *http.Client, logger *slog.Logger) (*Runner, error) {
	if strings.TrimSpace(cfg.BaseURL) == "" {
		return nil, errors.New("base URL is required")
	}
	switch cfg.Mode {
	case ModeCreate, ModeList, ModeMixed:
	case "":
		cfg.Mode = ModeCreate
	default:
		return nil, errors.Errorf("unknown mode %q", cfg.Mode)
	}
	if cfg.Workers <= 0 {
		return nil, errors.New("workers must be positive")
	}
	if cfg.Duration <= 0 && cfg.Requests <= 0 {
		return nil, errors.New("either duration or requests must be set")
	}
	if cfg.Rate < 0 {
		return nil, errors.New("rate must not be negative")
	}

	if client == nil {
		client = &http.Client{Timeout: cfg.Timeout}
	}

	var limiter *rate.Limiter
	if cfg.Rate > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.Rate), 1)
	}

	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")

	return &Runner{cfg: cfg, client: client, limiter: limiter, logger: logger}, nil
}

// Run blocks until the request budget is spent, the duration elapses or ctx is cancelled.
func (r *Runner) Run(ctx context.Context) (*Summary, error) {
	if r.cfg.Duration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.cfg.Duration)
		defer cancel()
	}

	rec := newRecorder()
	var issued atomic.Int64
	start := time.Now()

	g, gctx := errgroup.WithContext(ctx)
	for range r.cfg.Workers {
		g.Go(func() error {
			for {
				seq := issued.Add(1)
				if r.cfg.Requests > 0 && seq > int64(r.cfg.Requests) {
					return nil
				}
				if r.limiter != nil {
					if err := r.limiter.Wait(gctx); err != nil {
						return nil
					}
				}
				if gctx.Err() != nil {
					return nil
				}

				r.fire(gctx, seq, rec)
			}
		})
	}

	if err := g.Wait(); err != nil {
		return nil, errors.WithStack(err)
	}

	summary := rec.summarize(time.Since(start))
	r.logger.Info("Load run finished",
		slog.Int("requests", summary.Total),
		slog.Int("errors", summary.Errors),
		slog.Duration("p99", summary.P99),
	)

	return summary, nil
}

func (r *Runner) fire(ctx context.Context, seq int64, rec *recorder) {
	method, path := r.pick(seq)

	start := time.Now()
	status, n, err := r.do(ctx, method, path)
	elapsed := time.Since(start)

	// Requests cut short by the end of the run are not part of the sample.
	if err != nil && ctx.Err() != nil {
		return
	}
	if err != nil {
		r.logger.Debug("Request failed", slog.String("method", method), slog.Any("error", err))
	}

	rec.record(method, status, n, elapsed, err)
}

func (r *Runner) pick(seq int64) (string, string) {
	switch r.cfg.Mode {
	case ModeList:
		return http.MethodGet, "/person/"
	case ModeMixed:
		if seq%2 == 0 {
			return http.MethodGet, "/person/"
		}
	}

	return http.MethodPost, "/person/"
}

func (r *Runner) do(ctx context.Context, method, path string) (int, int64, error) {
	req, err := http.NewRequestWithContext(ctx, method, r.cfg.BaseURL+path, nil)
	if err != nil {
		return 0, 0, errors.WithStack(err)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return 0, 0, errors.WithStack(err)
	}
	defer resp.Body.Close()

	// Drain so the connection is reused.
	n, err := io.Copy(io.Discard, resp.Body)
	if err != nil {
		return resp.StatusCode, n, errors.WithStack(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return resp.StatusCode, n, errors.Errorf("unexpected status %d", resp.StatusCode)
	}

	return resp.StatusCode, n, nil
}
