package main

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"studypal/internal/model"
	"studypal/internal/stats"
	statsHTTP "studypal/internal/stats/delivery/http"
	statsRepo "studypal/internal/stats/repository/sqlite"
	statsUC "studypal/internal/stats/usecase"
)

var (
	overviewUser  string
	overviewAsOf  string
	overviewLimit int
	overviewJSON  bool
)

var overviewCmd = &cobra.Command{
	Use:   "overview",
	Short: "Print a user's study analytics overview",
	Args:  cobra.NoArgs,
	RunE:  runOverview,
}

func init() {
	overviewCmd.Flags().StringVarP(&overviewUser, "user", "u", "", "user id (required)")
	overviewCmd.Flags().StringVar(&overviewAsOf, "as-of", "today", "reference day")
	overviewCmd.Flags().IntVarP(&overviewLimit, "limit", "n", stats.DefaultUpcomingLimit, "max upcoming tasks")
	overviewCmd.Flags().BoolVar(&overviewJSON, "json", false, "print the API JSON payload instead of a report")
	_ = overviewCmd.MarkFlagRequired("user")
	rootCmd.AddCommand(overviewCmd)
}

func runOverview(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	l := newLogger()

	dates, err := newDateParser()
	if err != nil {
		return err
	}
	asOf, err := dates.Parse(overviewAsOf, time.Now())
	if err != nil {
		return fmt.Errorf("--as-of: %w", err)
	}

	db, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	uc := statsUC.New(l, statsRepo.New(db, l), statsUC.Options{Dates: dates})
	out, err := uc.Overview(ctx, model.Scope{UserID: overviewUser}, stats.OverviewInput{
		AsOf:          asOf,
		UpcomingLimit: overviewLimit,
	})
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if overviewJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(statsHTTP.NewOverviewResp(out))
	}

	_, err = fmt.Fprint(w, renderOverview(overviewUser, asOf, out))
	return err
}
