package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/mnemosyne-lab/mnemosyne/pkg/domain/model"
)

// Error tags for categorization
var (
	ErrTagTransport  = goerr.NewTag("transport")
	ErrTagHTTPStatus = goerr.NewTag("http_status")
	ErrTagDecode     = goerr.NewTag("decode")
)

const unknownErrorDetail = "Unknown error"

// Client talks to the external knowledge backend over JSON HTTP. It does
// not retry and has no timeout unless the injected http.Client carries
// one; a hung backend call blocks only its caller.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient injects a custom HTTP client (timeouts, transports, test
// doubles)
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// New creates a backend client for the given base URL
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// RiskAnalysis fetches the combined risk analysis for all documents and
// topics. When recommend is true the backend includes generated
// recommendation text.
func (c *Client) RiskAnalysis(ctx context.Context, recommend bool) (*model.RiskAnalysis, error) {
	path := "/api/documents/at-risk"
	if recommend {
		path += "?recommend=true"
	}

	var out model.RiskAnalysis
	if err := c.get(ctx, path, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Query asks a question over the document corpus
func (c *Client) Query(ctx context.Context, req *model.QueryRequest) (*model.QueryResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var out model.QueryResult
	if err := c.post(ctx, "/api/query", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SimulateDeparture computes the hypothetical impact of a person leaving
func (c *Client) SimulateDeparture(ctx context.Context, req *model.DepartureRequest) (*model.DepartureImpact, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var out model.DepartureImpact
	if err := c.post(ctx, "/api/simulate-departure", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// RecommendOnboarding generates an onboarding plan
func (c *Client) RecommendOnboarding(ctx context.Context, req *model.OnboardingRequest) (*model.OnboardingPlan, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var out model.OnboardingPlan
	if err := c.post(ctx, "/api/recommend-onboarding", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Health checks backend liveness
func (c *Client) Health(ctx context.Context) (*model.BackendHealth, error) {
	var out model.BackendHealth
	if err := c.get(ctx, "/health", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return goerr.Wrap(err, "failed to build backend request",
			goerr.V("path", path))
	}
	return c.do(req, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return goerr.Wrap(err, "failed to encode backend request body",
			goerr.V("path", path))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return goerr.Wrap(err, "failed to build backend request",
			goerr.V("path", path))
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return goerr.Wrap(err, "backend request failed",
			goerr.T(ErrTagTransport),
			goerr.V("url", req.URL.String()))
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return goerr.New(errorDetail(resp),
			goerr.T(ErrTagHTTPStatus),
			goerr.V("status", resp.StatusCode),
			goerr.V("url", req.URL.String()))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return goerr.Wrap(err, "failed to decode backend response",
			goerr.T(ErrTagDecode),
			goerr.V("url", req.URL.String()))
	}
	return nil
}

// errorDetail extracts a human-readable message from an error response.
// The backend convention is a JSON body with a "detail" string; a
// parseable body without one degrades to "HTTP <status>", and an
// unparseable body to a generic message.
func errorDetail(resp *http.Response) string {
	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err != nil {
		return unknownErrorDetail
	}

	var payload struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return unknownErrorDetail
	}
	if payload.Detail == "" {
		return fmt.Sprintf("HTTP %d", resp.StatusCode)
	}
	return payload.Detail
}
