package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bloomquist/ipapi-cli/internal/ipapi"
	"github.com/bloomquist/ipapi-cli/internal/output"
)

// batchCmd resolves many queries through the batch endpoint.
var batchCmd = &cobra.Command{
	Use:   "batch [file]",
	Short: "Resolve many IPs or domains at once",
	Long: `Resolve a list of IP addresses or domains through the batch endpoint.
Queries are read one per line from the given file, or from stdin when no file
is given. Blank lines and lines starting with # are skipped.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var in io.Reader = os.Stdin
		if len(args) == 1 {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("opening query file: %w", err)
			}
			defer f.Close()
			in = f
		}

		queries, err := readQueries(in)
		if err != nil {
			return err
		}
		if len(queries) == 0 {
			return fmt.Errorf("no queries to resolve")
		}

		client, err := newClient()
		if err != nil {
			return err
		}
		defer client.Close()

		var results []ipapi.Result
		for result, err := range client.Locator(cmd.Context(), slices.Values(queries)) {
			if err != nil {
				return fmt.Errorf("batch lookup failed: %w", err)
			}
			results = append(results, result)
		}

		return output.FormatResults(os.Stdout, results, outputCfg())
	},
}

// readQueries parses one query per line, skipping blanks and # comments.
func readQueries(r io.Reader) ([]ipapi.Query, error) {
	var queries []ipapi.Query
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		queries = append(queries, ipapi.Query{Query: line})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading queries: %w", err)
	}
	return queries, nil
}
