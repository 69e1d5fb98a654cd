package main

import (
	"encoding/json"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/sells-group/bizintel/internal/extract"
	"github.com/sells-group/bizintel/internal/scrape"
)

var scrapeCmd = &cobra.Command{
	Use:   "scrape <url>",
	Short: "Scrape one business website and print its profile as JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fetcher := scrape.NewFetcher(
			time.Duration(cfg.Scrape.TimeoutSecs)*time.Second,
			cfg.Scrape.UserAgent,
		)

		target := scrape.NormalizeURL(args[0])
		start := time.Now()

		body, err := fetcher.Fetch(cmd.Context(), target)
		if err != nil {
			return err
		}

		profile := extract.Profile(body, time.Since(start))

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(profile)
	},
}

func init() {
	rootCmd.AddCommand(scrapeCmd)
}
