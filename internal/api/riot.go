package api

import (
	"arena-tracker/internal/config"
	"arena-tracker/internal/constants"
	"arena-tracker/internal/metrics"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/sethvargo/go-retry"
	"github.com/valyala/fasthttp"
)

const (
	EndpointAccount            = "account"
	EndpointMatchIDs           = "match_ids"
	EndpointMatch              = "match"
	EndpointDataDragonVersions = "ddragon_versions"
	EndpointChampionRoster     = "ddragon_champions"
)

var (
	ErrNotFound         = errors.New("upstream resource not found")
	ErrRetriesExhausted = errors.New("upstream retries exhausted")
)

// Doer is the subset of *fasthttp.Client the Riot client needs.
type Doer interface {
	DoDeadline(req *fasthttp.Request, resp *fasthttp.Response, deadline time.Time) error
}

type StatusError struct {
	Endpoint   string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: upstream returned status %d", e.Endpoint, e.StatusCode)
}

func (e *StatusError) Is(target error) bool {
	return target == ErrNotFound && e.StatusCode == fasthttp.StatusNotFound
}

// Transient reports whether the status is worth retrying.
func (e *StatusError) Transient() bool {
	return isTransient(e.StatusCode)
}

func isTransient(status int) bool {
	return status == fasthttp.StatusTooManyRequests || status >= fasthttp.StatusInternalServerError
}

type RetryPolicy struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
}

// backoff is stateful, so every request gets its own.
func (p RetryPolicy) backoff() retry.Backoff {
	b := retry.NewExponential(p.BaseDelay)
	b = retry.WithJitterPercent(20, b)
	b = retry.WithCappedDuration(p.MaxDelay, b)
	return retry.WithMaxRetries(uint64(p.MaxAttempts-1), b)
}

type RiotClient struct {
	apiKey        string
	baseURL       string
	dataDragonURL string
	client        Doer
	policy        RetryPolicy
	metrics       *metrics.Metrics
	logger        zerolog.Logger
}

func NewRiotClient(cfg *config.Config, m *metrics.Metrics, logger zerolog.Logger) *RiotClient {
	return NewRiotClientWithDoer(cfg, &fasthttp.Client{
		MaxConnsPerHost:     100,
		ReadTimeout:         constants.ExternalAPITimeout,
		WriteTimeout:        constants.ExternalAPITimeout,
		MaxIdleConnDuration: 1 * time.Minute,
	}, m, logger)
}

func NewRiotClientWithDoer(cfg *config.Config, doer Doer, m *metrics.Metrics, logger zerolog.Logger) *RiotClient {
	return &RiotClient{
		apiKey:        cfg.RiotAPIKey,
		baseURL:       cfg.RiotBaseURL(),
		dataDragonURL: constants.DataDragonBaseURL,
		client:        doer,
		policy: RetryPolicy{
			MaxAttempts: cfg.RetryMaxAttempts,
			BaseDelay:   cfg.RetryBaseDelay,
			MaxDelay:    cfg.RetryMaxDelay,
		},
		metrics: m,
		logger:  logger.With().Str("component", "riot_client").Logger(),
	}
}

func (c *RiotClient) GetAccountByRiotID(ctx context.Context, gameName, tagLine string) (*AccountDTO, error) {
	u := fmt.Sprintf("%s/riot/account/v1/accounts/by-riot-id/%s/%s", c.baseURL, url.PathEscape(gameName), url.PathEscape(tagLine))
	return doRequest[AccountDTO](ctx, c, EndpointAccount, u, true)
}

func (c *RiotClient) GetMatchIDs(ctx context.Context, puuid string, queue, start, count int) ([]string, error) {
	q := url.Values{}
	q.Set("queue", strconv.Itoa(queue))
	q.Set("start", strconv.Itoa(start))
	q.Set("count", strconv.Itoa(count))
	u := fmt.Sprintf("%s/lol/match/v5/matches/by-puuid/%s/ids?%s", c.baseURL, url.PathEscape(puuid), q.Encode())

	ids, err := doRequest[[]string](ctx, c, EndpointMatchIDs, u, true)
	if err != nil {
		return nil, err
	}
	return *ids, nil
}

func (c *RiotClient) GetMatch(ctx context.Context, matchID string) (*MatchDTO, error) {
	u := fmt.Sprintf("%s/lol/match/v5/matches/%s", c.baseURL, url.PathEscape(matchID))
	return doRequest[MatchDTO](ctx, c, EndpointMatch, u, true)
}

func doRequest[T any](ctx context.Context, c *RiotClient, endpoint, rawURL string, authenticated bool) (*T, error) {
	body, err := c.do(ctx, endpoint, rawURL, authenticated)
	if err != nil {
		return nil, err
	}

	var result T
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("%s: failed to decode response: %w", endpoint, err)
	}
	return &result, nil
}

// do issues a GET under the retry policy. 429, 5xx and transport errors are retried,
// any other non-200 status fails immediately.
func (c *RiotClient) do(ctx context.Context, endpoint, rawURL string, authenticated bool) ([]byte, error) {
	var body []byte
	attempt := 0
	exhausted := false

	err := retry.Do(ctx, c.policy.backoff(), func(ctx context.Context) error {
		if authenticated {
			if err := pace(ctx); err != nil {
				return err
			}
		}
		attempt++
		status, b, err := c.get(ctx, rawURL, authenticated)
		c.metrics.Upstream(endpoint, status)

		var failure error
		switch {
		case err != nil:
			if ctx.Err() != nil {
				return ctx.Err()
			}
			failure = fmt.Errorf("%s: request failed: %w", endpoint, err)
		case status == fasthttp.StatusOK:
			body = b
			return nil
		default:
			statusErr := &StatusError{Endpoint: endpoint, StatusCode: status}
			if !statusErr.Transient() {
				c.logger.Debug().Str("endpoint", endpoint).Str("url", rawURL).Int("status", status).Msg("permanent upstream failure")
				return statusErr
			}
			failure = statusErr
		}

		if attempt >= c.policy.MaxAttempts {
			exhausted = true
		} else {
			c.metrics.Retry(endpoint)
			c.logger.Warn().
				Err(failure).
				Str("endpoint", endpoint).
				Str("url", rawURL).
				Int("attempt", attempt).
				Int("max_attempts", c.policy.MaxAttempts).
				Msg("transient upstream failure, retrying")
		}
		return retry.RetryableError(failure)
	})
	if err != nil {
		if exhausted {
			return nil, fmt.Errorf("%w after %d attempts: %w", ErrRetriesExhausted, attempt, err)
		}
		return nil, err
	}
	return body, nil
}

type getResult struct {
	status int
	body   []byte
	err    error
}

// get returns as soon as ctx is done. The in-flight request keeps running until its deadline
// and releases the pooled request and response itself.
func (c *RiotClient) get(ctx context.Context, rawURL string, authenticated bool) (int, []byte, error) {
	if err := ctx.Err(); err != nil {
		return 0, nil, err
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()

	req.SetRequestURI(c.withAPIKey(rawURL, authenticated))
	req.URI().DisablePathNormalizing = true
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set("Accept", "application/json")

	deadline := time.Now().Add(constants.ExternalAPITimeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}

	done := make(chan getResult, 1)
	go func() {
		defer fasthttp.ReleaseRequest(req)
		defer fasthttp.ReleaseResponse(resp)

		if err := c.client.DoDeadline(req, resp, deadline); err != nil {
			done <- getResult{err: err}
			return
		}
		done <- getResult{status: resp.StatusCode(), body: append([]byte(nil), resp.Body()...)}
	}()

	select {
	case <-ctx.Done():
		return 0, nil, ctx.Err()
	case r := <-done:
		return r.status, r.body, r.err
	}
}

// withAPIKey appends the credential at send time so logged URLs never carry it.
func (c *RiotClient) withAPIKey(rawURL string, authenticated bool) string {
	if !authenticated {
		return rawURL
	}
	sep := "?"
	if strings.Contains(rawURL, "?") {
		sep = "&"
	}
	return rawURL + sep + "api_key=" + url.QueryEscape(c.apiKey)
}
