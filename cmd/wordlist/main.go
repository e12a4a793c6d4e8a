package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/medusavr/moderation/internal/setup/config"
	"github.com/medusavr/moderation/internal/wordlist"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		log.Printf("Error: %v", err)
		os.Exit(1)
	}
}

func run() error {
	deps, err := setupDependencies()
	if err != nil {
		return fmt.Errorf("failed to setup dependencies: %w", err)
	}

	app := &cli.Command{
		Name:  "wordlist",
		Usage: "Wordlist validation tool",
		Commands: []*cli.Command{
			{
				Name:  "check",
				Usage: "Check wordlist for errors",
				Description: `Check the wordlist for curation errors:
- Exact duplicate terms
- Substring redundancy (boundary terms contained in longer ones)
- Empty or uppercase terms
- Invalid categories
- Unreachable or conflicting severity override phrases

Returns exit code 1 if errors found, 0 if clean.`,
				Action: func(_ context.Context, _ *cli.Command) error {
					issues := wordlist.ValidateWordlist(deps.wordlist)

					if len(issues) > 0 {
						fmt.Printf("Found %d error(s):\n\n", len(issues))

						for _, issue := range issues {
							fmt.Printf("- %s\n", issue.Description)
						}

						return cli.Exit("", 1)
					}

					fmt.Println("No errors found")

					return nil
				},
			},
			{
				Name:  "patterns",
				Usage: "Check response patterns compile",
				Action: func(_ context.Context, _ *cli.Command) error {
					patterns, err := config.LoadPatternSet("config")
					if err != nil {
						deps.logger.Warn("No pattern file found, checking defaults", zap.Error(err))

						patterns = config.DefaultPatternSet()
					}

					if err := patterns.Compile(); err != nil {
						return cli.Exit(fmt.Sprintf("Pattern compilation failed: %v", err), 1)
					}

					fmt.Println("All patterns compile")

					return nil
				},
			},
		},
	}

	return app.Run(context.Background(), os.Args)
}

// cliDependencies holds the common dependencies needed by CLI commands.
type cliDependencies struct {
	wordlist *config.Wordlist
	logger   *zap.Logger
}

// setupDependencies initializes all dependencies needed by the CLI.
func setupDependencies() (*cliDependencies, error) {
	logger, err := zap.NewDevelopment()
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	list, err := config.LoadWordlist("config")
	if err != nil {
		logger.Warn("No wordlist file found, validating compiled-in defaults", zap.Error(err))

		list = config.DefaultWordlist()
	}

	logger.Info("Loaded wordlist", zap.Int("terms", len(list.Terms)))

	return &cliDependencies{
		wordlist: list,
		logger:   logger,
	}, nil
}
