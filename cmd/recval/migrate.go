package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/UAlbertaALTLab/recording-validation-interface-sub000/internal/adapter/postgres"
)

func newMigrateCommand(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply or inspect schema migrations",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply every pending migration",
			RunE: func(cmd *cobra.Command, args []string) error {
				m, err := postgres.NewMigrator(cmd.Context(), e.cfg.Database.DSN)
				if err != nil {
					return err
				}
				defer m.Close()

				results, err := m.Up(cmd.Context())
				for _, r := range results {
					e.log.Info("migration applied",
						slog.Int64("version", r.Source.Version),
						slog.String("path", r.Source.Path),
						slog.Duration("took", r.Duration),
					)
				}
				return err
			},
		},
		&cobra.Command{
			Use:   "down",
			Short: "Roll back the most recent migration",
			RunE: func(cmd *cobra.Command, args []string) error {
				m, err := postgres.NewMigrator(cmd.Context(), e.cfg.Database.DSN)
				if err != nil {
					return err
				}
				defer m.Close()

				r, err := m.Down(cmd.Context())
				if err != nil {
					return err
				}
				e.log.Info("migration rolled back", slog.Int64("version", r.Source.Version))
				return nil
			},
		},
		&cobra.Command{
			Use:   "status",
			Short: "List migrations and whether they are applied",
			RunE: func(cmd *cobra.Command, args []string) error {
				m, err := postgres.NewMigrator(cmd.Context(), e.cfg.Database.DSN)
				if err != nil {
					return err
				}
				defer m.Close()

				statuses, err := m.Status(cmd.Context())
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				for _, s := range statuses {
					applied := "-"
					if !s.AppliedAt.IsZero() {
						applied = s.AppliedAt.Format("2006-01-02 15:04:05")
					}
					fmt.Fprintf(out, "%-8d %-10s %-20s %s\n", s.Source.Version, s.State, applied, s.Source.Path)
				}
				return nil
			},
		},
	)
	return cmd
}
