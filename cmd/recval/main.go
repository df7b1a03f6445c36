// Command recval is the operator CLI: schema migrations, corpus imports,
// phrase merges, statistics and operator tokens.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/UAlbertaALTLab/recording-validation-interface-sub000/internal/app"
	"github.com/UAlbertaALTLab/recording-validation-interface-sub000/internal/config"
)

// env is what every command needs once the root command has run.
type env struct {
	cfg *config.Config
	log *slog.Logger
}

func main() {
	var e env
	root := &cobra.Command{
		Use:           "recval",
		Short:         "Operate the recording validation corpus",
		Version:       app.BuildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			e.cfg = cfg
			e.log = app.NewLogger(cfg.Log)
			return nil
		},
	}

	root.AddCommand(
		newMigrateCommand(&e),
		newImportCommand(&e),
		newAutoMergeCommand(&e),
		newMergeCommand(&e),
		newStatsCommand(&e),
		newTokenCommand(&e),
		newConfigCommand(),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := root.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "recval: %v\n", err)
		os.Exit(1)
	}
}

func (e *env) connect(ctx context.Context) (*app.Deps, error) {
	deps, err := app.Connect(ctx, e.cfg.Database, nil, e.log)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	return deps, nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func newConfigCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "List the configuration variables and their defaults",
		// Runs without a loadable configuration.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		RunE: func(cmd *cobra.Command, args []string) error {
			return config.Describe(cmd.OutOrStdout())
		},
	}
}
