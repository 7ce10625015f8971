package ipapi

import (
	"context"
	"encoding/json"
	"fmt"
	"iter"
	"net/http"
	"slices"
)

// Locator streams one Result per query, grouping the input into batch
// requests of at most the configured batch size. The source is consumed
// lazily, so it may be unbounded; breaking out of the range stops the
// producer before it issues further HTTP calls.
//
// Results are yielded in input order. The service documents that batch
// responses preserve request order, and the client relies on that rather
// than re-correlating by the query field.
//
// A non-nil error ends the stream; the first yielded pair then carries the
// error and no further results follow.
func (c *Client) Locator(ctx context.Context, queries iter.Seq[Query], opts ...QueryOption) iter.Seq2[Result, error] {
	return func(yield func(Result, error) bool) {
		if err := c.checkOpen(); err != nil {
			yield(nil, err)
			return
		}

		qo := c.queryDefaults(opts)
		c.warnAdvisory(qo.fields, qo.lang)

		u, err := c.buildURL(qo.fields, qo.lang, c.cfg.BatchEndpoint)
		if err != nil {
			yield(nil, err)
			return
		}

		for batch := range chunk(queries, c.cfg.BatchSize) {
			body, err := json.Marshal(batch)
			if err != nil {
				yield(nil, fmt.Errorf("encoding batch: %w", err))
				return
			}

			var results []Result
			if err := c.fetch(ctx, c.batchWindow, http.MethodPost, u, body, &results); err != nil {
				yield(nil, err)
				return
			}

			for _, result := range results {
				if !yield(result, nil) {
					return
				}
			}
		}
	}
}

// Locations resolves every query through the batch endpoint and returns the
// results in input order. It is the materialized form of Locator.
func (c *Client) Locations(ctx context.Context, queries []Query, opts ...QueryOption) ([]Result, error) {
	results := make([]Result, 0, len(queries))
	for result, err := range c.Locator(ctx, slices.Values(queries), opts...) {
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}
	return results, nil
}
