package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/bizintel/internal/answer"
	"github.com/sells-group/bizintel/internal/config"
	"github.com/sells-group/bizintel/pkg/anthropic"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "bizintel",
	Short: "Business website intelligence API",
	Long:  "Scrapes a business website into a structured profile and answers free-text questions about it via heuristics or Claude.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Local .env is optional; real deployments set env directly.
		_ = godotenv.Load()

		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

// buildEngine constructs the configured answer strategy over a fresh cache.
func buildEngine(c *config.Config) (answer.Engine, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	cache := answer.NewCache()
	if c.Answer.Mode == "heuristic" {
		return answer.NewHeuristic(cache), nil
	}

	client := anthropic.NewClient(c.Anthropic.Key)
	return answer.NewLLM(client, cache, c.Anthropic.Model, c.Anthropic.MaxTokens, c.Anthropic.Temperature), nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
