// Package claim implements the client side of the lucky money allocation
// protocol: one request per submission, tolerant response normalization,
// and an offline simulator for demo setups without a live service.
package claim

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/seallabs/lixi/config"
	"github.com/seallabs/lixi/logger/xzap"
	types "github.com/seallabs/lixi/types/v1"
)

// The service's own contract: the body is JSON but declared as plain text.
const claimContentType = "text/plain;charset=utf-8"

const maxResponseBytes = 1 << 20

// Submitter is the protocol contract the reveal session depends on.
// Implementations never propagate transport failures; every outcome is a
// ClaimResult.
type Submitter interface {
	SubmitClaim(ctx context.Context, identifier string) types.ClaimResult
}

// Client submits claims to the allocation service, or to the simulator
// when no endpoint is configured. Exactly one round-trip per call, no
// internal retry.
type Client struct {
	endpoint string
	httpc    *http.Client
	sim      *Simulator
	now      func() time.Time
}

type Option func(*Client)

func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.httpc = h }
}

// NewClient selects live mode when cfg.Endpoint is set, otherwise routes
// every submission through sim.
func NewClient(cfg config.ClaimConf, sim *Simulator, opts ...Option) *Client {
	timeout := time.Duration(cfg.TimeoutMs) * time.Millisecond
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	c := &Client{
		endpoint: cfg.Endpoint,
		httpc:    &http.Client{Timeout: timeout},
		sim:      sim,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.endpoint != "" {
		xzap.WithContext(context.Background()).Info("claim client in live mode",
			zap.String("endpoint", c.endpoint))
	}
	return c
}

// SubmitClaim validates the identifier locally, then runs one simulated or
// live round-trip. An identifier that is empty after trimming short-circuits
// to INVALID_CODE without touching the network.
func (c *Client) SubmitClaim(ctx context.Context, identifier string) types.ClaimResult {
	if strings.TrimSpace(identifier) == "" {
		return types.ClaimResult{
			Identifier: identifier,
			Timestamp:  c.now().UTC().Format(time.RFC3339),
			Status:     types.StatusInvalidCode,
			Message:    "Please enter a valid code.",
		}
	}

	if c.endpoint == "" {
		return c.sim.Draw(ctx, identifier)
	}
	return c.live(ctx, identifier)
}

func (c *Client) live(ctx context.Context, identifier string) types.ClaimResult {
	payload, err := json.Marshal(types.ClaimRequest{Code: identifier})
	if err != nil {
		return c.errorResult(ctx, identifier, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return c.errorResult(ctx, identifier, err)
	}
	req.Header.Set("Content-Type", claimContentType)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return c.errorResult(ctx, identifier, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return c.errorResult(ctx, identifier, err)
	}

	res, err := normalize(identifier, body, c.now())
	if err != nil {
		return c.errorResult(ctx, identifier, err)
	}
	return res
}

// errorResult recovers every transport or parse failure at the client
// boundary; business outcomes travel in the body's status field, so the
// caller only ever sees a uniform ClaimResult.
func (c *Client) errorResult(ctx context.Context, identifier string, err error) types.ClaimResult {
	xzap.WithContext(ctx).Error("claim round-trip failed", zap.Error(err))
	return types.ClaimResult{
		Identifier: identifier,
		Timestamp:  c.now().UTC().Format(time.RFC3339),
		Status:     types.StatusError,
		Message:    "Network error or server unavailable. Please try again.",
	}
}
