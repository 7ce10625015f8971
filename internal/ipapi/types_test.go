package ipapi

import (
	"encoding/json"
	"testing"
)

func TestQueryMarshal_BareString(t *testing.T) {
	raw, err := json.Marshal(Query{Query: "192.168.0.1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(raw) != `"192.168.0.1"` {
		t.Errorf("expected bare string, got %s", raw)
	}
}

func TestQueryMarshal_WithOverrides(t *testing.T) {
	raw, err := json.Marshal(Query{
		Query:  "192.168.0.1",
		Fields: []string{"lat", "lon"},
		Lang:   "ru",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var obj map[string]string
	if err := json.Unmarshal(raw, &obj); err != nil {
		t.Fatalf("result is not an object: %s", raw)
	}
	if obj["query"] != "192.168.0.1" {
		t.Errorf("expected query field, got %v", obj)
	}
	if obj["fields"] != "lat,lon" {
		t.Errorf("expected joined fields, got %q", obj["fields"])
	}
	if obj["lang"] != "ru" {
		t.Errorf("expected lang ru, got %q", obj["lang"])
	}
}

func TestResultAccessors(t *testing.T) {
	r := Result{
		"status":  "fail",
		"message": "private range",
		"query":   "10.0.0.1",
		"lat":     52.52,
	}

	if r.Success() {
		t.Error("expected failure result")
	}
	if r.Status() != "fail" || r.Message() != "private range" || r.Query() != "10.0.0.1" {
		t.Errorf("unexpected accessor values: %q %q %q", r.Status(), r.Message(), r.Query())
	}
	if lat, ok := r.Float("lat"); !ok || lat != 52.52 {
		t.Errorf("expected lat 52.52, got %v (%v)", lat, ok)
	}
	if _, ok := r.Float("lon"); ok {
		t.Error("expected missing lon to report absence")
	}
	if r.Str("country") != "" {
		t.Errorf("expected empty country, got %q", r.Str("country"))
	}
}
