// Command ipapi provides a CLI for the ip-api.com geo-location service.
package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/bloomquist/ipapi-cli/internal/ipapi"
	"github.com/bloomquist/ipapi-cli/internal/output"
)

var (
	flagJSON    bool
	flagHuman   bool
	flagCSV     string
	flagFields  string
	flagLang    string
	flagAPIKey  string
	flagTimeout time.Duration
	flagConfig  string
	flagVerbose bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "ipapi",
	Short: "ip-api.com geo-location CLI",
	Long:  `A command-line interface for resolving IP addresses and domains to location metadata via the ip-api.com web service, respecting its published rate limits.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if flagVerbose {
			logrus.SetLevel(logrus.DebugLevel)
		} else {
			logrus.SetLevel(logrus.ErrorLevel)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "Output as structured JSON")
	rootCmd.PersistentFlags().BoolVarP(&flagHuman, "human", "H", false, "Rich colorful terminal output (default on TTYs)")
	rootCmd.PersistentFlags().StringVar(&flagCSV, "csv", "", "Export results to CSV file")
	rootCmd.PersistentFlags().StringVarP(&flagFields, "fields", "f", "", "Comma-separated response fields (e.g. country,city,isp)")
	rootCmd.PersistentFlags().StringVarP(&flagLang, "lang", "l", "", "Response language (e.g. en, de, ru)")
	rootCmd.PersistentFlags().StringVar(&flagAPIKey, "key", "", "ip-api.com API key (or set IPAPI_KEY env var)")
	rootCmd.PersistentFlags().DurationVar(&flagTimeout, "timeout", 0, "Timeout per HTTP exchange (e.g. 5s)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "YAML file overriding the service parameters")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log rate-limit waits and retries")

	rootCmd.AddCommand(lookupCmd)
	rootCmd.AddCommand(batchCmd)
	rootCmd.AddCommand(fieldsCmd)
	rootCmd.AddCommand(langsCmd)
}

func outputCfg() output.OutputConfig {
	human := flagHuman
	if !flagJSON && !flagHuman {
		human = isatty.IsTerminal(os.Stdout.Fd())
	}
	return output.OutputConfig{
		JSON:    flagJSON,
		Human:   human,
		CSVFile: flagCSV,
	}
}

// parseFields splits a comma-separated field selection, dropping blanks.
func parseFields(csv string) []string {
	var fields []string
	for _, f := range strings.Split(csv, ",") {
		if f = strings.TrimSpace(f); f != "" {
			fields = append(fields, f)
		}
	}
	return fields
}

func newClient() (*ipapi.Client, error) {
	apiKey := flagAPIKey
	if apiKey == "" {
		apiKey = os.Getenv("IPAPI_KEY")
	}

	var opts []ipapi.Option
	if fields := parseFields(flagFields); len(fields) > 0 {
		opts = append(opts, ipapi.WithFields(fields...))
	}
	if flagLang != "" {
		opts = append(opts, ipapi.WithLang(flagLang))
	}
	if apiKey != "" {
		opts = append(opts, ipapi.WithAPIKey(apiKey))
	}
	if flagTimeout > 0 {
		opts = append(opts, ipapi.WithTimeout(flagTimeout))
	}
	if flagConfig != "" {
		cfg, err := ipapi.ParseConfigFile(flagConfig)
		if err != nil {
			return nil, err
		}
		opts = append(opts, ipapi.WithConfig(cfg))
	}

	return ipapi.New(opts...)
}

// fieldsCmd lists the selectable response fields.
var fieldsCmd = &cobra.Command{
	Use:   "fields",
	Short: "List the selectable response fields",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, f := range ipapi.KnownFields {
			fmt.Println(f)
		}
		return nil
	},
}

// langsCmd lists the documented response languages.
var langsCmd = &cobra.Command{
	Use:   "langs",
	Short: "List the documented response languages",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, l := range ipapi.KnownLangs {
			fmt.Println(l)
		}
		return nil
	},
}
