// Package main implements the studypal CLI: schema migration, fixture seeding,
// local overview rendering and token issuing for the analytics API.
package main

import (
	"context"
	"database/sql"
	"os"

	"github.com/spf13/cobra"

	"studypal/pkg/datemath"
	"studypal/pkg/log"
	"studypal/pkg/sqlite"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var (
	dbPath   string
	timezone string
	verbose  bool
)

var rootCmd = &cobra.Command{
	Use:          "studypal",
	Short:        "StudyPal analytics tooling",
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "data/studypal.db", "path to the SQLite task store")
	rootCmd.PersistentFlags().StringVar(&timezone, "tz", "UTC", "IANA timezone used for calendar days")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log normalization details")
}

// newLogger returns a console logger; debug output only with --verbose.
func newLogger() log.Logger {
	level := "warn"
	if verbose {
		level = "debug"
	}
	return log.Init(log.ZapConfig{
		Level:    level,
		Mode:     log.ModeDevelopment,
		Encoding: log.EncodingConsole,
	})
}

// openStore opens and migrates the database named by --db.
func openStore(ctx context.Context) (*sql.DB, error) {
	return sqlite.Open(ctx, dbPath)
}

func newDateParser() (*datemath.Parser, error) {
	return datemath.NewParser(timezone)
}
