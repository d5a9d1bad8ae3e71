package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/langr/assets"
	"github.com/robalobadob/langr/internal/catalog"
	"github.com/robalobadob/langr/internal/config"
	"github.com/robalobadob/langr/internal/daily"
	"github.com/robalobadob/langr/internal/dataset"
	"github.com/robalobadob/langr/internal/httpserver"
	"github.com/robalobadob/langr/internal/store"
)

func main() {
	_ = godotenv.Load()
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// app holds what every command shares once configuration is resolved.
type app struct {
	cfg config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "langr",
		Short:         "Daily language guessing game",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			a.cfg = cfg
			if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
				zerolog.SetGlobalLevel(lvl)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error { return a.serve(cmd.Context()) },
	}
	root.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Start the HTTP API",
			RunE:  func(cmd *cobra.Command, args []string) error { return a.serve(cmd.Context()) },
		},
		newPlayCmd(a),
		newImportCmd(a),
		newDatesCmd(a),
	)
	return root
}

// loadGame loads the dataset and catalog. Any error is fatal for the session.
func (a *app) loadGame(ctx context.Context) (*dataset.Index, *catalog.Catalog, *daily.Selector, error) {
	idx, err := dataset.Load(ctx, dataset.FromEnv(a.cfg.DatasetDB, a.cfg.DatasetURL, a.cfg.DatasetFile))
	if err != nil {
		return nil, nil, nil, err
	}
	cat, err := catalog.Default()
	if err != nil {
		return nil, nil, nil, err
	}
	answers := make([]string, 0, idx.Len())
	for _, r := range idx.Rows() {
		answers = append(answers, r.Language)
	}
	for _, m := range cat.Missing(answers) {
		log.Warn().Str("language", m).Msg("dataset answer missing from catalog; puzzle is unsolvable")
	}
	return idx, cat, daily.NewSelector(idx, a.cfg.Strategy, a.cfg.Salt), nil
}

func (a *app) serve(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	idx, cat, sel, err := a.loadGame(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load game data")
	}

	srv := httpserver.New(httpserver.Deps{
		Store:    store.NewMemoryStore(),
		Index:    idx,
		Selector: sel,
		Catalog:  cat,
		Config:   a.cfg,
	})
	log.Info().Str("port", a.cfg.Port).Msg("starting go-server")
	return srv.Start(ctx, ":"+a.cfg.Port)
}

func newDatesCmd(a *app) *cobra.Command {
	var until string
	cmd := &cobra.Command{
		Use:   "dates",
		Short: "List dataset dates up to a day (default today)",
		RunE: func(cmd *cobra.Command, args []string) error {
			idx, err := dataset.Load(cmd.Context(), dataset.FromEnv(a.cfg.DatasetDB, a.cfg.DatasetURL, a.cfg.DatasetFile))
			if err != nil {
				return err
			}
			if until == "" {
				until = daily.Today(a.cfg.Location)
			}
			for _, d := range idx.DatesAtOrBefore(until) {
				fmt.Fprintln(cmd.OutOrStdout(), d)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&until, "until", "", "last date to include (YYYY-MM-DD)")
	return cmd
}

func newImportCmd(a *app) *cobra.Command {
	var csvPath, dbPath string
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import a delimited dataset file into SQLite",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if dbPath == "" {
				dbPath = config.GetEnv("DATASET_DB", "./data/langr.db")
			}
			rows, err := dataset.FileSource{Path: csvPath}.Load(ctx)
			if err != nil {
				return fmt.Errorf("%w: %w", dataset.ErrLoad, err)
			}
			db, err := openDB(dbPath)
			if err != nil {
				return err
			}
			defer db.Close()
			if err := migrate(ctx, db, assets.Migrations()); err != nil {
				return err
			}
			n, err := dataset.Save(ctx, db, rows)
			if err != nil {
				return err
			}
			log.Info().Int("rows", n).Str("db", dbPath).Msg("dataset imported")
			return nil
		},
	}
	cmd.Flags().StringVar(&csvPath, "csv", "", "delimited dataset file")
	cmd.Flags().StringVar(&dbPath, "db", "", "SQLite file (default $DATASET_DB or ./data/langr.db)")
	_ = cmd.MarkFlagRequired("csv")
	return cmd
}
