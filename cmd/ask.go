package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/sells-group/bizintel/internal/extract"
	"github.com/sells-group/bizintel/internal/scrape"
)

var askHeuristic bool

var askCmd = &cobra.Command{
	Use:   "ask <url> <question>",
	Short: "Scrape a website and answer one question about the business",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if askHeuristic {
			cfg.Answer.Mode = "heuristic"
		}

		engine, err := buildEngine(cfg)
		if err != nil {
			return err
		}

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

		ans, err := engine.Ask(cmd.Context(), profile, args[1])
		if err != nil {
			return err
		}

		fmt.Println(ans.Message)
		return nil
	},
}

func init() {
	askCmd.Flags().BoolVar(&askHeuristic, "heuristic", false, "answer from fixed heuristics instead of the LLM")
	rootCmd.AddCommand(askCmd)
}
