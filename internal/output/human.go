package output

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/bloomquist/ipapi-cli/internal/ipapi"
)

// --- Styles ---

var (
	cyan     = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	bold     = lipgloss.NewStyle().Bold(true)
	dim      = lipgloss.NewStyle().Faint(true)
	green    = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	red      = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	label    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("4"))
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("6")).
			Padding(0, 1)
)

// truncate cuts a string to maxLen characters, appending "…" if truncated.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-1] + "…"
}

func formatResultsHuman(w io.Writer, results []ipapi.Result) error {
	if len(results) == 0 {
		fmt.Fprintln(w, "🌍 No results.")
		return nil
	}
	if len(results) == 1 {
		return formatResultCard(w, results[0])
	}
	return formatResultsTable(w, results)
}

// formatResultCard renders a single lookup as a bordered detail card.
func formatResultCard(w io.Writer, r ipapi.Result) error {
	var lines []string
	add := func(name, value string) {
		if value != "" {
			lines = append(lines, label.Render(name+": ")+value)
		}
	}

	add("Query", cyan.Render(r.Query()))
	if r.Success() {
		add("Status", green.Render(r.Status()))
	} else {
		add("Status", red.Render(r.Status()))
		add("Message", r.Message())
	}
	code := r.Str("countryCode")
	if code != "" {
		code = dim.Render(code)
	}
	add("Country", joinNonEmpty(" ", r.Str("country"), code))
	add("Region", joinNonEmpty(" / ", r.Str("regionName"), r.Str("city"), r.Str("zip")))
	if lat, ok := r.Float("lat"); ok {
		if lon, ok := r.Float("lon"); ok {
			add("Coords", fmt.Sprintf("%.4f, %.4f", lat, lon))
		}
	}
	add("Timezone", r.Str("timezone"))
	add("ISP", r.Str("isp"))
	add("Org", r.Str("org"))
	add("AS", r.Str("as"))

	fmt.Fprintln(w, boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...)))
	return nil
}

// formatResultsTable renders a batch as one row per query.
func formatResultsTable(w io.Writer, results []ipapi.Result) error {
	var rows [][]string
	for _, r := range results {
		status := green.Render(r.Status())
		if !r.Success() {
			status = red.Render(joinNonEmpty(": ", r.Status(), r.Message()))
		}
		coords := ""
		if lat, ok := r.Float("lat"); ok {
			if lon, ok := r.Float("lon"); ok {
				coords = fmt.Sprintf("%.2f, %.2f", lat, lon)
			}
		}
		rows = append(rows, []string{
			cyan.Render(r.Query()),
			status,
			truncate(r.Str("country"), 20),
			truncate(r.Str("city"), 20),
			coords,
			truncate(r.Str("isp"), 30),
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(dim).
		Headers("QUERY", "STATUS", "COUNTRY", "CITY", "COORDS", "ISP").
		Rows(rows...)

	fmt.Fprintln(w, t.Render())
	fmt.Fprintln(w, bold.Render(fmt.Sprintf("🌍 %d queries resolved", len(results))))
	return nil
}
