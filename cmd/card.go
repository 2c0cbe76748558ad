package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/naka-gawa/github-profile-card/internal/config"
	"github.com/naka-gawa/github-profile-card/internal/gateway"
	"github.com/naka-gawa/github-profile-card/internal/usecase"
)

var cardCmd = &cobra.Command{
	Use:   "card",
	Short: "Renders the profile card of a GitHub user as SVG",
	Long: `Fetches the public profile and repositories of a GitHub user and writes the SVG card
to standard output, or to the file given with --out. Error documents are written as well,
but the command then exits with a non-zero status.`,
	Run: func(cmd *cobra.Command, args []string) {
		logger := newLogger(cmd)
		cfg := config.Load()

		user, _ := cmd.Flags().GetString("user")
		out, _ := cmd.Flags().GetString("out")

		githubGateway, err := gateway.NewGitHubGateway(cfg.GitHubAPIURL, logger)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to create GitHub gateway: %v\n", err)
			os.Exit(1)
		}
		composer := usecase.NewComposer(githubGateway, logger, cfg.APITimeout, cfg.AvatarTimeout)

		result := composer.Compose(context.Background(), user)

		if out == "" {
			os.Stdout.Write(result.SVG)
		} else if err := os.WriteFile(out, result.SVG, 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to write %s: %v\n", out, err)
			os.Exit(1)
		}
		if result.Err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", result.Err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(cardCmd)
	cardCmd.Flags().StringP("user", "u", "", "Target GitHub user name (required)")
	cardCmd.Flags().StringP("out", "o", "", "Write the SVG to this file instead of stdout")
	cardCmd.MarkFlagRequired("user")
}
