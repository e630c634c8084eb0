package main

import (
	"encoding/json"
	"fmt"
	"os"

	"talent-sync/internal/config"
	"talent-sync/internal/delivery/http/dto"
	"talent-sync/internal/domain/matching"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"
)

var evaluateInput string

var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Score a candidate snapshot against opportunity snapshots offline",
	Long:  "Reads the same JSON body accepted by POST /api/v1/match/evaluate and prints the ranked results. Weights come from MATCH_WEIGHT_*, each defaulting to the built-in value; invalid weights are an error.",
	RunE:  runEvaluate,
}

func init() {
	evaluateCmd.Flags().StringVarP(&evaluateInput, "in", "i", "", "Path to the evaluate request JSON file (required)")
	if err := evaluateCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}
	rootCmd.AddCommand(evaluateCmd)
}

func runEvaluate(cmd *cobra.Command, _ []string) error {
	raw, err := os.ReadFile(evaluateInput)
	if err != nil {
		return fmt.Errorf("read %s: %w", evaluateInput, err)
	}

	var req dto.EvaluateRequest
	if err := json.Unmarshal(raw, &req); err != nil {
		return fmt.Errorf("decode %s: %w", evaluateInput, err)
	}
	if err := validator.New().Struct(req); err != nil {
		return fmt.Errorf("invalid request: %w", err)
	}

	m, err := config.LoadMatching()
	if err != nil {
		return fmt.Errorf("load weights: %w", err)
	}
	engine := matching.NewEngine(m.Weights)

	pool := make([]matching.OpportunityRequirement, 0, len(req.Opportunities))
	for _, o := range req.Opportunities {
		pool = append(pool, o.Requirement())
	}
	results := engine.ScoreAndRank(req.Candidate.Profile(), pool)

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(dto.NewMatchResultResponses(results))
}
