package providers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/sony/gobreaker"
	"ulascansenturk/city-weather-service/internal/apperrors"
)

var (
	ErrCircuitOpen       = errors.New("circuit breaker open")
	ErrMalformedResponse = errors.New("malformed JSON")

	errCallerGone = errors.New("caller context done")
)

// StatusError is a non-success HTTP response from a provider.
type StatusError struct {
	Code   int
	Status string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("status code: %d %s", e.Code, e.Status)
}

// CallObserver receives one observation per provider call attempt.
type CallObserver interface {
	ObserveCall(provider, outcome string, duration time.Duration)
}

type ResilienceConfig struct {
	Timeout        time.Duration
	MaxRetries     int
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
}

func DefaultResilienceConfig() ResilienceConfig {
	return ResilienceConfig{
		Timeout:        8 * time.Second,
		MaxRetries:     0,
		InitialBackoff: time.Second,
		MaxBackoff:     8 * time.Second,
	}
}

// Requester performs GET requests against one provider with a per-call
// timeout, a circuit breaker and an optional bounded retry.
type Requester struct {
	name     string
	client   *http.Client
	breaker  *gobreaker.CircuitBreaker
	cfg      ResilienceConfig
	observer CallObserver
}

func NewRequester(name string, client *http.Client, cfg ResilienceConfig, observer CallObserver) *Requester {
	if client == nil {
		client = &http.Client{}
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultResilienceConfig().Timeout
	}

	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        name,
		MaxRequests: 3,
		Interval:    time.Minute,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn().Str("provider", name).Str("from", from.String()).Str("to", to.String()).Msg("circuit breaker state changed")
		},
		// Requests abandoned by the caller are not provider failures.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, errCallerGone)
		},
	})

	return &Requester{
		name:     name,
		client:   client,
		breaker:  breaker,
		cfg:      cfg,
		observer: observer,
	}
}

// GetJSON fetches rawURL and decodes a 2xx body into out.
func (r *Requester) GetJSON(ctx context.Context, rawURL string, out interface{}) error {
	attempt := 0
	for {
		err := r.attempt(ctx, rawURL, out)
		if err == nil {
			return nil
		}

		if attempt >= r.cfg.MaxRetries || !r.retryable(ctx, err) {
			return err
		}

		delay := r.cfg.InitialBackoff * time.Duration(math.Pow(2, float64(attempt)))
		if r.cfg.MaxBackoff > 0 && delay > r.cfg.MaxBackoff {
			delay = r.cfg.MaxBackoff
		}

		log.Debug().Err(err).Str("provider", r.name).Int("attempt", attempt+1).Dur("backoff", delay).Msg("retrying provider call")

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}

		attempt++
	}
}

func (r *Requester) attempt(ctx context.Context, rawURL string, out interface{}) error {
	callCtx, cancel := context.WithTimeout(ctx, r.cfg.Timeout)
	defer cancel()

	start := time.Now()

	result, err := r.breaker.Execute(func() (interface{}, error) {
		req, err := http.NewRequestWithContext(callCtx, http.MethodGet, rawURL, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("Accept", "application/json")

		resp, err := r.client.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return nil, fmt.Errorf("%s request abandoned: %w: %w", r.name, errCallerGone, err)
			}
			return nil, fmt.Errorf("%s request failed: %w", r.name, err)
		}

		if resp.StatusCode >= http.StatusInternalServerError || resp.StatusCode == http.StatusTooManyRequests {
			drainAndClose(resp)
			return nil, &StatusError{Code: resp.StatusCode, Status: http.StatusText(resp.StatusCode)}
		}

		return resp, nil
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			r.observe("rejected", start)
			return fmt.Errorf("%s: %w", r.name, ErrCircuitOpen)
		}
		if errors.Is(err, errCallerGone) {
			r.observe("cancelled", start)
			return err
		}
		r.observe("failure", start)
		return err
	}

	resp, ok := result.(*http.Response)
	if !ok {
		r.observe("failure", start)
		return fmt.Errorf("%s: unexpected result type from circuit breaker", r.name)
	}
	defer drainAndClose(resp)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		r.observe("status", start)
		return &StatusError{Code: resp.StatusCode, Status: http.StatusText(resp.StatusCode)}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		r.observe("failure", start)
		return fmt.Errorf("%s returned %w: %v", r.name, ErrMalformedResponse, err)
	}

	r.observe("success", start)
	return nil
}

func (r *Requester) retryable(ctx context.Context, err error) bool {
	if ctx.Err() != nil {
		return false
	}
	if errors.Is(err, ErrCircuitOpen) || errors.Is(err, ErrMalformedResponse) {
		return false
	}

	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.Code >= http.StatusInternalServerError || statusErr.Code == http.StatusTooManyRequests
	}

	return true
}

func (r *Requester) observe(outcome string, start time.Time) {
	if r.observer != nil {
		r.observer.ObserveCall(r.name, outcome, time.Since(start))
	}
}

func drainAndClose(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	if err := resp.Body.Close(); err != nil {
		log.Warn().Err(err).Msg("failed to close provider response body")
	}
}

// upstreamError converts a requester error into the upstream error kind,
// keeping the provider status when there was one.
func upstreamError(message string, err error) error {
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return apperrors.NewUpstreamStatusError(message, statusErr.Code, statusErr.Status)
	}
	return apperrors.NewUpstreamError(message, err)
}
