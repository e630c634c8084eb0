package main

import (
	"context"
	"time"

	"github.com/spf13/cobra"
)

var migrateTimeout time.Duration

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending SQL migrations",
	RunE:  runMigrate,
}

func init() {
	migrateCmd.Flags().DurationVar(&migrateTimeout, "timeout", 2*time.Minute, "Overall migration timeout")
	rootCmd.AddCommand(migrateCmd)
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	c, err := loadContainer()
	if err != nil {
		return err
	}
	defer func() { _ = c.Close() }()

	ctx, cancel := context.WithTimeout(cmd.Context(), migrateTimeout)
	defer cancel()

	n, err := c.Migrate(ctx)
	if err != nil {
		return err
	}
	c.Logger.Printf("[Migration] %d migration(s) applied", n)
	return nil
}
