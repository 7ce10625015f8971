// Package output provides formatting for geo-IP lookup results.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/bloomquist/ipapi-cli/internal/ipapi"
)

// OutputConfig controls which output mode(s) are active.
type OutputConfig struct {
	JSON    bool   // Structured JSON
	Human   bool   // Rich terminal output with color
	CSVFile string // Export results to this CSV path (works alongside any mode)
}

// FormatResults writes lookup results in the configured mode(s).
func FormatResults(w io.Writer, results []ipapi.Result, cfg OutputConfig) error {
	if cfg.CSVFile != "" {
		if err := writeResultsCSV(cfg.CSVFile, results); err != nil {
			return fmt.Errorf("CSV export failed: %w", err)
		}
	}
	if cfg.JSON {
		return writeJSON(w, results)
	}
	if cfg.Human {
		return formatResultsHuman(w, results)
	}
	return formatResultsPlain(w, results)
}

// --- Plain text formatter (default) ---

func formatResultsPlain(w io.Writer, results []ipapi.Result) error {
	if len(results) == 0 {
		fmt.Fprintln(w, "No results.")
		return nil
	}

	for i, r := range results {
		if i > 0 {
			fmt.Fprintf(w, "\n%s\n\n", strings.Repeat("─", 60))
		}

		fmt.Fprintf(w, "Query: %s\n", r.Query())
		if !r.Success() {
			status := r.Status()
			if msg := r.Message(); msg != "" {
				status += " (" + msg + ")"
			}
			fmt.Fprintf(w, "Status: %s\n", status)
			continue
		}

		if country := r.Str("country"); country != "" {
			if code := r.Str("countryCode"); code != "" {
				country += " (" + code + ")"
			}
			fmt.Fprintf(w, "Country: %s\n", country)
		}
		if region := joinNonEmpty(" / ", r.Str("regionName"), r.Str("city"), r.Str("zip")); region != "" {
			fmt.Fprintf(w, "Region: %s\n", region)
		}
		if lat, ok := r.Float("lat"); ok {
			if lon, ok := r.Float("lon"); ok {
				fmt.Fprintf(w, "Coordinates: %.4f, %.4f\n", lat, lon)
			}
		}
		if tz := r.Str("timezone"); tz != "" {
			fmt.Fprintf(w, "Timezone: %s\n", tz)
		}
		if isp := r.Str("isp"); isp != "" {
			fmt.Fprintf(w, "ISP: %s\n", isp)
		}
		if org := joinNonEmpty(" / ", r.Str("org"), r.Str("as")); org != "" {
			fmt.Fprintf(w, "Org: %s\n", org)
		}
	}

	return nil
}

func joinNonEmpty(sep string, parts ...string) string {
	var kept []string
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
