// Package main is the operator CLI: schema migrations, seed data, cache
// maintenance and offline scoring.
package main

import (
	"fmt"
	"os"

	"talent-sync/internal/app"
	"talent-sync/internal/config"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "admin",
	Short:         "TalentSync maintenance commands",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func loadContainer() (*app.Container, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	c, err := app.NewContainer(cfg)
	if err != nil {
		return nil, fmt.Errorf("init container: %w", err)
	}
	return c, nil
}
