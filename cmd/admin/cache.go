package main

import (
	"context"
	"time"

	"github.com/spf13/cobra"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Search cache maintenance",
}

var cacheFlushCmd = &cobra.Command{
	Use:   "flush",
	Short: "Drop every cached opportunity search listing",
	RunE:  runCacheFlush,
}

func init() {
	cacheCmd.AddCommand(cacheFlushCmd)
	rootCmd.AddCommand(cacheCmd)
}

func runCacheFlush(cmd *cobra.Command, _ []string) error {
	c, err := loadContainer()
	if err != nil {
		return err
	}
	defer func() { _ = c.Close() }()

	if !c.Cache.Available() {
		c.Logger.Printf("[Cache] Redis unavailable, nothing to flush")
		return nil
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
	defer cancel()
	if err := c.Cache.InvalidateSearch(ctx); err != nil {
		return err
	}
	c.Logger.Printf("[Cache] search listings flushed")
	return nil
}
