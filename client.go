// Package floosak is a typed client for the Floosak merchant payment API.
//
// Supported flows:
//   - Key request + OTP verification (request/key, verify/key)
//   - Merchant-initiated payments (merchant/p2mcl + confirm)
//   - Refunds (merchant/p2mcl/refund)
//
// The two-step key flow yields a bearer token that the client stores and
// attaches to every subsequent request. Callers that already hold a token can
// skip the flow and construct the client with WithToken.
package floosak

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"
)

// API endpoint paths, fixed by the remote service.
const (
	pathRequestKey      = "/api/v1/request/key"
	pathVerifyKey       = "/api/v1/verify/key"
	pathPurchase        = "/api/v1/merchant/p2mcl"
	pathPurchaseConfirm = "/api/v1/merchant/p2mcl/confirm"
	pathRefund          = "/api/v1/merchant/p2mcl/refund"
)

const defaultTimeout = 30 * time.Second

// Client is a stateful client for the Floosak merchant API. It holds the
// merchant identity and the current bearer token; the token is written by
// VerifyKey and read on every outgoing request (last write wins).
type Client struct {
	baseURL   string
	phone     string
	shortCode string

	mu    sync.RWMutex
	token string

	timeout time.Duration
	hc      *http.Client
	http    *resty.Client
	log     zerolog.Logger
}

// Option configures a Client at construction time.
type Option func(*Client)

// WithToken seeds the client with an existing bearer token, skipping the
// RequestKey/VerifyKey flow.
func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

// WithTimeout overrides the default 30s request timeout. Ignored when a
// custom *http.Client is supplied.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

// WithHTTPClient replaces the underlying HTTP client, e.g. to supply a
// custom transport or TLS configuration.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.hc = hc }
}

// WithLogger enables request/response debug logging. Logging is off by
// default.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Client) { c.log = l }
}

// New creates a merchant client for the given API base URL and merchant
// identity (wallet phone number and short code).
func New(baseURL, phone, shortCode string, opts ...Option) *Client {
	c := &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		phone:     phone,
		shortCode: shortCode,
		timeout:   defaultTimeout,
		log:       zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}

	var rc *resty.Client
	if c.hc != nil {
		rc = resty.NewWithClient(c.hc)
	} else {
		rc = resty.New()
		rc.SetTimeout(c.timeout)
	}
	rc.SetBaseURL(c.baseURL)
	rc.SetHeaders(map[string]string{
		"Content-Type": "application/json",
		"Accept":       "application/json",
		"Channel":      "merchant",
	})
	// Bearer injection reads the token at send time, so a token stored by
	// VerifyKey is picked up by every later request on the same client.
	rc.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		if tok, ok := c.Token(); ok {
			req.SetHeader("Authorization", "Bearer "+tok)
		}
		return nil
	})
	c.http = rc
	return c
}

// Token returns the current bearer token and whether one is set.
func (c *Client) Token() (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token, c.token != ""
}

func (c *Client) setToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

// requireToken guards payment operations: they must not reach the network
// without a bearer token.
func (c *Client) requireToken() error {
	if _, ok := c.Token(); !ok {
		return ErrNotAuthenticated
	}
	return nil
}

// RequestKey starts the authentication flow by asking the API to send an OTP
// to the merchant's phone. It requires no token and returns the request
// identifier to pass to VerifyKey.
func (c *Client) RequestKey(ctx context.Context) (*RequestKeyResponse, error) {
	var out RequestKeyResponse
	req := RequestKeyRequest{Phone: c.phone, ShortCode: c.shortCode}
	if err := c.post(ctx, pathRequestKey, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// VerifyKey completes the authentication flow with the OTP received via SMS.
// When the response carries a key, it becomes the client's bearer token,
// replacing any previous one. The full response is returned either way.
func (c *Client) VerifyKey(ctx context.Context, requestID int64, otp string) (*VerifyKeyResponse, error) {
	var out VerifyKeyResponse
	req := VerifyKeyRequest{RequestID: requestID, OTP: otp}
	if err := c.post(ctx, pathVerifyKey, req, &out); err != nil {
		return nil, err
	}
	if out.Key != "" {
		c.setToken(out.Key)
	}
	return &out, nil
}

// PurchaseRequest initiates a P2MCL payment against a customer wallet and
// returns the pending purchase. The customer receives an OTP to approve it;
// complete the payment with PurchaseConfirm.
func (c *Client) PurchaseRequest(ctx context.Context, payload PurchaseRequestPayload) (*Purchase, error) {
	if err := c.requireToken(); err != nil {
		return nil, err
	}
	var env purchaseEnvelope
	if err := c.post(ctx, pathPurchase, payload, &env); err != nil {
		return nil, err
	}
	return &env.Data, nil
}

// PurchaseConfirm completes a pending purchase with the customer's OTP and
// returns the settled transaction.
func (c *Client) PurchaseConfirm(ctx context.Context, payload PurchaseConfirmPayload) (*Transaction, error) {
	if err := c.requireToken(); err != nil {
		return nil, err
	}
	var env transactionEnvelope
	if err := c.post(ctx, pathPurchaseConfirm, payload, &env); err != nil {
		return nil, err
	}
	return &env.Data, nil
}

// Refund returns funds from a settled transaction back to the customer
// wallet.
func (c *Client) Refund(ctx context.Context, payload RefundPayload) (*RefundResponse, error) {
	if err := c.requireToken(); err != nil {
		return nil, err
	}
	var out RefundResponse
	if err := c.post(ctx, pathRefund, payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// post issues a JSON POST and decodes a 2xx response into out. Non-2xx
// responses become *APIError with the remote status and body untouched;
// transport errors are returned as-is.
func (c *Client) post(ctx context.Context, path string, body, out any) error {
	c.log.Debug().
		Str("method", http.MethodPost).
		Str("url", c.baseURL+path).
		Msg("making HTTP request")

	resp, err := c.http.R().SetContext(ctx).SetBody(body).Post(path)
	if err != nil {
		c.log.Error().
			Str("url", c.baseURL+path).
			Err(err).
			Msg("HTTP request failed")
		return err
	}

	c.log.Debug().
		Str("url", c.baseURL+path).
		Int("status_code", resp.StatusCode()).
		Int("body_length", len(resp.Body())).
		Msg("received HTTP response")

	if !resp.IsSuccess() {
		return &APIError{
			StatusCode: resp.StatusCode(),
			Body:       append([]byte(nil), resp.Body()...),
		}
	}
	if out == nil {
		return nil
	}
	return json.Unmarshal(resp.Body(), out)
}
