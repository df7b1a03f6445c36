package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/UAlbertaALTLab/recording-validation-interface-sub000/internal/auth"
)

func newTokenCommand(e *env) *cobra.Command {
	var (
		operator string
		ttl      time.Duration
	)
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue an operator token for the admin endpoints",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !e.cfg.Auth.Enabled() {
				return errors.New("token: auth.jwt_secret is not set")
			}

			id := uuid.New()
			if operator != "" {
				parsed, err := uuid.Parse(operator)
				if err != nil {
					return fmt.Errorf("token: operator: %w", err)
				}
				id = parsed
			}

			token, err := auth.NewTokens(e.cfg.Auth.JWTSecret, e.cfg.Auth.JWTIssuer).Issue(id, ttl)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
	cmd.Flags().StringVar(&operator, "operator", "", "operator id recorded in the change log (default: a new id)")
	cmd.Flags().DurationVar(&ttl, "ttl", 24*time.Hour, "token lifetime")
	return cmd
}
