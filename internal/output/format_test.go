package output

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bloomquist/ipapi-cli/internal/ipapi"
)

func sampleResults() []ipapi.Result {
	return []ipapi.Result{
		{
			"status": "success", "query": "8.8.8.8",
			"country": "United States", "countryCode": "US",
			"regionName": "California", "city": "Mountain View",
			"lat": 37.4056, "lon": -122.0775,
			"timezone": "America/Los_Angeles", "isp": "Google LLC",
		},
		{
			"status": "fail", "message": "private range", "query": "10.0.0.1",
		},
	}
}

func TestFormatResultsJSON(t *testing.T) {
	var buf bytes.Buffer
	err := FormatResults(&buf, sampleResults(), OutputConfig{JSON: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var parsed []map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &parsed); err != nil {
		t.Fatalf("output is not valid JSON: %v\nOutput: %s", err, buf.String())
	}
	if len(parsed) != 2 {
		t.Fatalf("expected 2 results, got %d", len(parsed))
	}
	if parsed[0]["query"] != "8.8.8.8" {
		t.Errorf("expected first query 8.8.8.8, got %v", parsed[0]["query"])
	}
}

func TestFormatResultsPlain(t *testing.T) {
	var buf bytes.Buffer
	err := FormatResults(&buf, sampleResults(), OutputConfig{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"8.8.8.8", "United States (US)", "Google LLC", "fail (private range)"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q\nOutput: %s", want, out)
		}
	}
}

func TestFormatResultsPlain_Empty(t *testing.T) {
	var buf bytes.Buffer
	if err := FormatResults(&buf, nil, OutputConfig{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), "No results") {
		t.Errorf("expected empty notice, got %q", buf.String())
	}
}

func TestFormatResultsHuman(t *testing.T) {
	var buf bytes.Buffer
	err := FormatResults(&buf, sampleResults(), OutputConfig{Human: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "8.8.8.8") || !strings.Contains(out, "10.0.0.1") {
		t.Errorf("expected both queries in table output:\n%s", out)
	}
}

func TestWriteResultsCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	var buf bytes.Buffer
	err := FormatResults(&buf, sampleResults(), OutputConfig{CSVFile: path})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("opening export: %v", err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("reading export: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected header + 2 rows, got %d", len(rows))
	}
	if rows[0][0] != "query" {
		t.Errorf("expected query header first, got %q", rows[0][0])
	}
	if rows[1][0] != "8.8.8.8" {
		t.Errorf("expected first row query 8.8.8.8, got %q", rows[1][0])
	}
	if rows[2][2] != "private range" {
		t.Errorf("expected failure message in CSV, got %q", rows[2][2])
	}
}
