package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/naka-gawa/github-profile-card/internal/config"
	"github.com/naka-gawa/github-profile-card/internal/counter"
	"github.com/naka-gawa/github-profile-card/internal/handler"
)

var counterCmd = &cobra.Command{
	Use:   "counter",
	Short: "Runs one action against the usage counter file and prints the result as JSON",
	Long: `Runs increment_generations, increment_visitors or get_stats against the counter file
(STATS_FILE, or --stats-file) and prints the result in JSON format. Unknown actions read the stats.`,
	Run: func(cmd *cobra.Command, args []string) {
		logger := newLogger(cmd)
		cfg := config.Load()

		action, _ := cmd.Flags().GetString("action")
		debug, _ := cmd.Flags().GetBool("debug")
		if path, _ := cmd.Flags().GetString("stats-file"); path != "" {
			cfg.StatsFile = path
		}

		store := counter.NewStore(cfg.StatsFile, logger, counter.WithLocation(cfg.Location()))

		var result any
		var err error
		switch action {
		case handler.ActionIncrementGenerations:
			result, err = store.IncrementGenerations()
		case handler.ActionIncrementVisitors:
			result, err = store.IncrementVisitors()
		default:
			result = store.GetStats()
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to run %s: %v\n", action, err)
			os.Exit(1)
		}
		if debug {
			info, err := store.Debug()
			if err != nil {
				fmt.Fprintf(os.Stderr, "Failed to read debug info: %v\n", err)
				os.Exit(1)
			}
			result = map[string]any{"result": result, "debug": info}
		}

		jsonData, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to marshal result to JSON: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(string(jsonData))
	},
}

func init() {
	rootCmd.AddCommand(counterCmd)
	counterCmd.Flags().StringP("action", "a", handler.ActionGetStats, "increment_generations, increment_visitors or get_stats")
	counterCmd.Flags().Bool("debug", false, "Include the file path, permissions and raw contents")
	counterCmd.Flags().String("stats-file", "", "Counter file path (overrides STATS_FILE)")
}
