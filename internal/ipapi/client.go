package ipapi

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// Client is a client for the ip-api.com web service. Construct with New and
// release with Close. Methods are safe for concurrent use; concurrent calls
// share the per-endpoint rate-limit state, so a burst may briefly overshoot
// the service window and be absorbed by the normal throttling path.
type Client struct {
	cfg    Config
	fields []string
	lang   string
	key    string

	httpClient *http.Client
	ownSession bool
	timeout    time.Duration

	retryAttempts int
	retryDelay    time.Duration
	retrySet      bool
	resetHold     time.Duration

	jsonWindow  *rateWindow
	batchWindow *rateWindow

	log logrus.FieldLogger

	mu     sync.Mutex
	closed bool
}

// Option configures a Client.
type Option func(*Client)

// WithFields sets the default response field selection. The mandatory
// service fields are always requested on top of it.
func WithFields(fields ...string) Option {
	return func(c *Client) { c.fields = fields }
}

// WithLang sets the default response language.
func WithLang(lang string) Option {
	return func(c *Client) { c.lang = lang }
}

// WithAPIKey sets the pro-tier API key. Keyed clients skip all rate-limit
// waits and reach the service over https.
func WithAPIKey(key string) Option {
	return func(c *Client) { c.key = key }
}

// WithHTTPClient supplies a caller-owned session. Close leaves it open for
// the caller to release.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
		c.ownSession = false
	}
}

// WithTimeout bounds each individual HTTP exchange. An expired exchange
// counts as a transport failure against the retry budget.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

// WithRetry overrides the bounded retry policy applied to transport
// failures: attempts is the total number of exchanges tried, delay the fixed
// pause between them.
func WithRetry(attempts int, delay time.Duration) Option {
	return func(c *Client) {
		c.retryAttempts = attempts
		c.retryDelay = delay
		c.retrySet = true
	}
}

// WithConfig replaces the documented service parameters, for self-hosted
// mirrors or when the service revises its published limits.
func WithConfig(cfg Config) Option {
	return func(c *Client) { c.cfg = cfg }
}

// WithLogger routes the client's rate-limit and retry logging.
func WithLogger(log logrus.FieldLogger) Option {
	return func(c *Client) { c.log = log }
}

// New creates a service client. Unless WithHTTPClient supplies a session, the
// client creates its own and closes it in Close.
func New(opts ...Option) (*Client, error) {
	c := &Client{
		cfg:        DefaultConfig(),
		ownSession: true,
		log:        logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}

	if err := c.cfg.Validate(); err != nil {
		return nil, err
	}
	if !c.retrySet {
		c.retryAttempts = c.cfg.RetryAttempts
		c.retryDelay = time.Duration(c.cfg.RetryDelaySeconds * float64(time.Second))
	}
	if c.retryAttempts < 1 {
		return nil, &InvalidArgumentError{Reason: "retry attempts must be at least 1"}
	}
	if c.retryDelay < 0 {
		return nil, &InvalidArgumentError{Reason: "retry delay must not be negative"}
	}
	c.resetHold = time.Duration(c.cfg.ResetHoldSeconds * float64(time.Second))

	if c.httpClient == nil {
		c.httpClient = &http.Client{Timeout: 30 * time.Second}
	}

	c.jsonWindow = newRateWindow(c.cfg.JSONRateLimit)
	c.batchWindow = newRateWindow(c.cfg.BatchRateLimit)

	return c, nil
}

// Close releases the client. The underlying session is closed only when the
// client created it; a session supplied via WithHTTPClient stays open. Close
// is idempotent, and every operation after it fails with ErrClientClosed.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil
	}
	c.closed = true
	if c.ownSession {
		c.httpClient.CloseIdleConnections()
	}
	return nil
}

func (c *Client) checkOpen() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return ErrClientClosed
	}
	return nil
}

// QueryOption overrides a client default for a single call.
type QueryOption func(*queryOptions)

type queryOptions struct {
	fields []string
	lang   string
}

// Fields overrides the response field selection for this call.
func Fields(fields ...string) QueryOption {
	return func(qo *queryOptions) { qo.fields = fields }
}

// Lang overrides the response language for this call.
func Lang(lang string) QueryOption {
	return func(qo *queryOptions) { qo.lang = lang }
}

func (c *Client) queryDefaults(opts []QueryOption) queryOptions {
	qo := queryOptions{fields: c.fields, lang: c.lang}
	for _, opt := range opts {
		opt(&qo)
	}
	return qo
}

// warnAdvisory logs selections outside the documented field and language
// lists. They are still sent: the lists are advisory, not a contract.
func (c *Client) warnAdvisory(fields []string, lang string) {
	for _, f := range fields {
		if !KnownField(f) {
			c.log.WithField("field", f).Warn("field is not in the documented field list, sending anyway")
		}
	}
	if lang != "" && !KnownLang(lang) {
		c.log.WithField("lang", lang).Warn("lang is not in the documented language list, sending anyway")
	}
}

// Location resolves a single IP address or domain through the json endpoint.
// An empty query asks the service about the caller's own address.
func (c *Client) Location(ctx context.Context, query string, opts ...QueryOption) (Result, error) {
	if err := c.checkOpen(); err != nil {
		return nil, err
	}

	qo := c.queryDefaults(opts)
	c.warnAdvisory(qo.fields, qo.lang)

	elems := []string{c.cfg.JSONEndpoint}
	if query != "" {
		elems = append(elems, query)
	}
	u, err := c.buildURL(qo.fields, qo.lang, elems...)
	if err != nil {
		return nil, err
	}

	var result Result
	if err := c.fetch(ctx, c.jsonWindow, http.MethodGet, u, nil, &result); err != nil {
		return nil, err
	}
	return result, nil
}
