package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"studypal/pkg/scope"
)

var (
	tokenUser   string
	tokenTTL    time.Duration
	tokenSecret string
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Issue a bearer token for the analytics API",
	Args:  cobra.NoArgs,
	RunE:  runToken,
}

func init() {
	tokenCmd.Flags().StringVarP(&tokenUser, "user", "u", "", "user id to embed (required)")
	tokenCmd.Flags().DurationVar(&tokenTTL, "ttl", 24*time.Hour, "token lifetime; 0 for no expiry")
	tokenCmd.Flags().StringVar(&tokenSecret, "secret", "", "signing secret (defaults to $JWT_SECRET)")
	_ = tokenCmd.MarkFlagRequired("user")
	rootCmd.AddCommand(tokenCmd)
}

func runToken(cmd *cobra.Command, args []string) error {
	secret := tokenSecret
	if secret == "" {
		secret = os.Getenv("JWT_SECRET")
	}

	manager, err := scope.New(secret)
	if err != nil {
		return fmt.Errorf("%w: pass --secret or set JWT_SECRET", err)
	}

	token, err := manager.Issue(tokenUser, tokenTTL)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), token)
	return nil
}
