package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/UAlbertaALTLab/recording-validation-interface-sub000/internal/service/merge"
)

func newImportCommand(e *env) *cobra.Command {
	var root, metadataPath, language string
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import the ELAN sessions under a corpus directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := e.cfg.Import
			if root != "" {
				cfg.RootDir = root
			}
			if metadataPath != "" {
				cfg.MetadataPath = metadataPath
			}
			if language != "" {
				cfg.Language = language
			}
			if cfg.RootDir == "" {
				return fmt.Errorf("import: --root or import.root_dir is required")
			}

			deps, err := e.connect(cmd.Context())
			if err != nil {
				return err
			}
			defer deps.Close()

			svc, err := deps.ImporterService(cfg)
			if err != nil {
				return err
			}
			res, err := svc.Run(cmd.Context(), cfg.RootDir)
			if res != nil {
				e.log.Info("import finished",
					slog.String("root", cfg.RootDir),
					slog.String("language", cfg.Language),
					slog.Int("inserted", res.Inserted),
					slog.Int("updated", res.Updated),
					slog.Int("unchanged", res.Unchanged),
					slog.Int("skipped", res.Skipped),
					slog.Int("failed", res.Failed),
				)
			}
			return err
		},
	}
	cmd.Flags().StringVar(&root, "root", "", "corpus directory with one sub-directory per session")
	cmd.Flags().StringVar(&metadataPath, "metadata", "", "session metadata file")
	cmd.Flags().StringVar(&language, "language", "", "slug of the language the phrases belong to")
	return cmd
}

func newAutoMergeCommand(e *env) *cobra.Command {
	var language string
	cmd := &cobra.Command{
		Use:   "automerge",
		Short: "Merge phrases sharing transcription and translation",
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, err := e.connect(cmd.Context())
			if err != nil {
				return err
			}
			defer deps.Close()

			res, err := deps.MergeService().AutoMerge(cmd.Context(), language, nil)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), res)
		},
	}
	cmd.Flags().StringVar(&language, "language", "", "language slug")
	_ = cmd.MarkFlagRequired("language")
	return cmd
}

func newMergeCommand(e *env) *cobra.Command {
	var input merge.MergeInput
	cmd := &cobra.Command{
		Use:   "merge",
		Short: "Fold phrases into a destination phrase",
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, err := e.connect(cmd.Context())
			if err != nil {
				return err
			}
			defer deps.Close()

			res, err := deps.MergeService().Merge(cmd.Context(), input)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), res)
		},
	}
	cmd.Flags().Int64Var(&input.Destination, "into", 0, "id of the phrase to keep")
	cmd.Flags().Int64SliceVar(&input.Sources, "from", nil, "ids of the phrases to fold in")
	cmd.Flags().BoolVar(&input.Deep, "deep", false, "reconcile phrase fields as well")
	_ = cmd.MarkFlagRequired("into")
	_ = cmd.MarkFlagRequired("from")
	return cmd
}

func newStatsCommand(e *env) *cobra.Command {
	var language string
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print the statistics of a language",
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, err := e.connect(cmd.Context())
			if err != nil {
				return err
			}
			defer deps.Close()

			st, err := deps.StatsService().ForLanguage(cmd.Context(), language)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), st)
		},
	}
	cmd.Flags().StringVar(&language, "language", "", "language slug")
	_ = cmd.MarkFlagRequired("language")
	return cmd
}
