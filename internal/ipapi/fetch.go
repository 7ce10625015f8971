package ipapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/cenkalti/backoff/v4"
)

// fetch runs rate-limited exchanges against one endpoint class until the
// request succeeds or fails for good, decoding the JSON payload into out.
//
// Transport failures are retried up to the configured attempt budget with a
// fixed delay between attempts. A keyless 429 is not a failure: the window
// state was just refreshed from the response headers, so the engine loops,
// waits the window out, and tries again without consuming the budget. Every
// other non-200 status is permanent.
func (c *Client) fetch(ctx context.Context, window *rateWindow, method, url string, body []byte, out any) error {
	op := func() error {
		for {
			if err := window.wait(ctx, c.key != "", c.resetHold, c.log); err != nil {
				return backoff.Permanent(err)
			}

			err := c.exchange(ctx, window, method, url, body, out)
			if err == nil {
				return nil
			}

			var tooMany *TooManyRequestsError
			if errors.As(err, &tooMany) {
				if c.key != "" {
					return backoff.Permanent(err)
				}
				c.log.WithField("status", tooMany.Status).Error("too many requests, waiting out the rate window")
				continue
			}

			var transport *TransportError
			if errors.As(err, &transport) {
				return err
			}
			return backoff.Permanent(err)
		}
	}

	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewConstantBackOff(c.retryDelay), uint64(c.retryAttempts-1)),
		ctx,
	)
	return backoff.Retry(op, policy)
}

// exchange runs exactly one HTTP round trip. The rate window is refreshed
// from the response headers before the status is interpreted, so throttled
// responses still update the tracked state.
func (c *Client) exchange(ctx context.Context, window *rateWindow, method, url string, body []byte, out any) error {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &TransportError{Err: err}
	}
	defer resp.Body.Close()

	window.update(resp.Header)

	if err := statusError(resp.StatusCode); err != nil {
		return err
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &TransportError{Err: fmt.Errorf("decoding response: %w", err)}
	}
	return nil
}
