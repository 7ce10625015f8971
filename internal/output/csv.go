package output

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/bloomquist/ipapi-cli/internal/ipapi"
)

// csvColumns is the fixed export schema. Fields absent from a result leave
// empty cells, so any field selection produces the same column layout.
var csvColumns = []string{
	"query", "status", "message",
	"country", "countryCode", "regionName", "city", "zip",
	"lat", "lon", "timezone", "isp", "org", "as",
}

func writeResultsCSV(path string, results []ipapi.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	if err := cw.Write(csvColumns); err != nil {
		return err
	}

	for _, r := range results {
		row := make([]string, len(csvColumns))
		for i, col := range csvColumns {
			if v, ok := r.Float(col); ok {
				row[i] = strconv.FormatFloat(v, 'f', -1, 64)
				continue
			}
			row[i] = r.Str(col)
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
