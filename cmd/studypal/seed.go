package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"studypal/internal/fixture"
)

var (
	seedFile string
	seedBase string
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load users, tasks and status history from a TOML fixture",
	Long: `Load users, tasks and status history from a TOML fixture.

Date fields accept calendar dates, RFC3339 timestamps or relative
expressions such as "today", "yesterday", "3 days ago" and "in 2 weeks",
resolved against --base.`,
	Args: cobra.NoArgs,
	RunE: runSeed,
}

func init() {
	seedCmd.Flags().StringVarP(&seedFile, "file", "f", "", "fixture file (required)")
	seedCmd.Flags().StringVar(&seedBase, "base", "today", "reference day for relative dates")
	_ = seedCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(seedCmd)
}

func runSeed(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	dates, err := newDateParser()
	if err != nil {
		return err
	}
	base, err := dates.Parse(seedBase, time.Now())
	if err != nil {
		return fmt.Errorf("--base: %w", err)
	}

	file, err := fixture.Load(seedFile)
	if err != nil {
		return err
	}

	db, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	res, err := file.Apply(ctx, db, dates, base)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "seeded %d users, %d tasks, %d status events into %s\n",
		res.Users, res.Tasks, res.Events, dbPath)
	return nil
}
