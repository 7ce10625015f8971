package ipapi

import (
	"encoding/json"
	"strings"
)

// Query is one lookup request. A bare IP or domain is the common case;
// Fields and Lang, when set, override the request-level selection for this
// item only, as the batch endpoint allows.
type Query struct {
	Query  string
	Fields []string
	Lang   string
}

// MarshalJSON emits the wire shape of a batch element: a bare string when
// only the query is set, otherwise an object with per-item overrides.
func (q Query) MarshalJSON() ([]byte, error) {
	if len(q.Fields) == 0 && q.Lang == "" {
		return json.Marshal(q.Query)
	}

	obj := make(map[string]string, 3)
	obj["query"] = q.Query
	if len(q.Fields) > 0 {
		obj["fields"] = strings.Join(q.Fields, ",")
	}
	if q.Lang != "" {
		obj["lang"] = q.Lang
	}
	return json.Marshal(obj)
}

// Addresses converts bare IP/domain strings into Queries.
func Addresses(addrs ...string) []Query {
	queries := make([]Query, len(addrs))
	for i, a := range addrs {
		queries[i] = Query{Query: a}
	}
	return queries
}

// Result is the service's response for one query, kept as an opaque mapping:
// the set of keys depends entirely on the requested field selection.
type Result map[string]any

// Status returns the service's status field, "success" on resolved lookups.
func (r Result) Status() string {
	s, _ := r["status"].(string)
	return s
}

// Success reports whether the service resolved the query.
func (r Result) Success() bool {
	return r.Status() == "success"
}

// Message returns the failure explanation, empty on success.
func (r Result) Message() string {
	s, _ := r["message"].(string)
	return s
}

// Query returns the query this result answers.
func (r Result) Query() string {
	s, _ := r["query"].(string)
	return s
}

// Str returns the named field as a string, empty when absent or non-string.
func (r Result) Str(field string) string {
	s, _ := r[field].(string)
	return s
}

// Float returns the named field as a float64, zero when absent or non-numeric.
func (r Result) Float(field string) (float64, bool) {
	f, ok := r[field].(float64)
	return f, ok
}
