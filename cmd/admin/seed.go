package main

import (
	"context"
	"fmt"
	"time"

	"talent-sync/internal/database/seeder"

	"github.com/spf13/cobra"
)

var (
	seedMigrate bool
	seedTimeout time.Duration
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert demo skills, opportunities and candidates",
	Long:  "Seeds are idempotent: rows use deterministic ids and existing rows are left untouched. The search cache is flushed afterwards.",
	RunE:  runSeed,
}

func init() {
	seedCmd.Flags().BoolVar(&seedMigrate, "migrate", false, "Apply pending migrations before seeding")
	seedCmd.Flags().DurationVar(&seedTimeout, "timeout", time.Minute, "Overall seed timeout")
	rootCmd.AddCommand(seedCmd)
}

func runSeed(cmd *cobra.Command, _ []string) error {
	c, err := loadContainer()
	if err != nil {
		return err
	}
	defer func() { _ = c.Close() }()

	ctx, cancel := context.WithTimeout(cmd.Context(), seedTimeout)
	defer cancel()

	if seedMigrate {
		if _, err := c.Migrate(ctx); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	r := seeder.Runner{Seeders: seeder.Defaults(), Logger: c.Logger}
	if err := r.Run(ctx, c.DB); err != nil {
		return err
	}

	flushCtx, flushCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer flushCancel()
	if err := c.Cache.InvalidateSearch(flushCtx); err != nil {
		c.Logger.Printf("[Cache] invalidate after seed failed: %v", err)
	}
	return nil
}
