package ipapi

import (
	"fmt"
	"net/url"
	"slices"
	"strings"
)

// buildURL composes the request URL from the base URL and the given path
// elements. The fields parameter is attached only when a selection exists and
// always carries the mandatory service fields; an API key upgrades the scheme
// so the key never travels in clear text.
func (c *Client) buildURL(fields []string, lang string, elem ...string) (string, error) {
	u, err := url.Parse(c.cfg.BaseURL)
	if err != nil {
		return "", fmt.Errorf("parsing base URL: %w", err)
	}
	u = u.JoinPath(elem...)

	params := url.Values{}
	if len(fields) > 0 {
		params.Set("fields", strings.Join(mergeFields(fields), ","))
	}
	if lang != "" {
		params.Set("lang", lang)
	}
	if c.key != "" {
		u.Scheme = "https"
		params.Set("key", c.key)
	}
	u.RawQuery = params.Encode()

	return u.String(), nil
}

// mergeFields unions the caller's selection with the service fields, dropping
// empties and duplicates. The result is sorted: the service ignores order and
// a stable parameter keeps URLs reproducible.
func mergeFields(fields []string) []string {
	merged := make([]string, 0, len(fields)+len(ServiceFields))
	seen := make(map[string]bool, len(fields)+len(ServiceFields))
	for _, f := range slices.Concat(fields, ServiceFields) {
		if f == "" || seen[f] {
			continue
		}
		seen[f] = true
		merged = append(merged, f)
	}
	slices.Sort(merged)
	return merged
}
