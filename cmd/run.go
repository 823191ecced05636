package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/keleoz/quizpath/internal/app"
	"github.com/keleoz/quizpath/internal/catalog"
	"github.com/keleoz/quizpath/internal/config"
	"github.com/keleoz/quizpath/internal/engine"
	"github.com/keleoz/quizpath/internal/knowledge"
	"github.com/keleoz/quizpath/internal/logging"
	"github.com/keleoz/quizpath/internal/store"
)

// buildEngine loads config, catalog, graph and the attempt store, and
// assembles the engine every command works through. The caller must
// Close the returned store.
func buildEngine(cmd *cobra.Command) (*engine.Engine, *store.Store, *zap.Logger, *config.Config, error) {
	cfgPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("load config: %w", err)
	}
	if u, _ := cmd.Flags().GetString("user"); u != "" {
		cfg.User = u
	}
	if d, _ := cmd.Flags().GetString("data"); d != "" {
		cfg.DataDir = d
	}

	verbose, _ := cmd.Flags().GetBool("verbose")
	log := logging.New(verbose)

	cat, err := catalog.LoadFile(cfg.CatalogPath(), log)
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("load catalog: %w", err)
	}

	graph, err := knowledge.ParseFile(cfg.GraphPath(), log)
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("load prerequisite graph: %w", err)
	}

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("open store: %w", err)
	}

	repo, err := st.AttemptRepo()
	if err != nil {
		st.Close()
		return nil, nil, nil, nil, fmt.Errorf("init attempt repo: %w", err)
	}

	eng := &engine.Engine{
		Catalog: cat,
		Graph:   graph,
		Repo:    repo,
		User:    cfg.User,
		Count:   cfg.RecommendCount,
	}
	return eng, st, log, cfg, nil
}

// runApp builds the engine and launches the TUI.
func runApp(cmd *cobra.Command) error {
	eng, st, log, _, err := buildEngine(cmd)
	if err != nil {
		return err
	}
	defer st.Close()
	defer log.Sync()

	return app.Run(eng)
}
