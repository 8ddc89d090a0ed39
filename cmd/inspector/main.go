package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/jask/inspector/internal/config"
	"github.com/jask/inspector/internal/database"
	"github.com/jask/inspector/internal/database/repository"
	"github.com/jask/inspector/internal/demo"
	"github.com/jask/inspector/internal/host"
	"github.com/jask/inspector/internal/logging"
	"github.com/jask/inspector/internal/scaffold"
	"github.com/jask/inspector/widgets"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("config", "err", err)
	}

	if len(os.Args) > 1 && os.Args[1] == "scaffold" {
		os.Exit(runScaffold(cfg, os.Args[2:]))
	}

	logger, closer, err := logging.New(cfg.Log.Level, cfg.Log.File)
	if err != nil {
		log.Fatal("logging", "err", err)
	}
	err = run(cfg, logger)
	if err != nil {
		logger.Error("exit", "err", err)
	}
	_ = closer.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg config.Config, logger *log.Logger) error {
	ctx := context.Background()

	db, err := openStore(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer db.Close()

	scene := host.NewScene(ctx, repository.NewEntityRepo(db), logger)
	reg := host.NewRegistry()
	demo.Register(reg, scene.Playing)
	if err := scene.Load(reg.New); err != nil {
		return err
	}
	// one scene instance, refused by the asset-only spawner panel when selected
	scene.Add("Loose Spawner", &demo.Spawner{Name: "Loose Spawner", Rate: 1})

	m := host.NewModel(host.Options{
		Scene:        scene,
		Registry:     reg,
		Styles:       widgets.NewStyleCache(cfg.Theme.Palette(), widgets.WithLogger(logger)),
		Logger:       logger,
		Width:        cfg.UI.Width,
		LabelWidth:   cfg.UI.LabelWidth,
		TickInterval: cfg.UI.TickInterval,
	})
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}

// openStore migrates the database, checks the schema and seeds the default assets.
func openStore(ctx context.Context, cfg config.Config, logger *log.Logger) (*sql.DB, error) {
	if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), 0o755); err != nil {
		return nil, fmt.Errorf("mkdir db dir: %w", err)
	}
	if err := database.RunMigrations(cfg.Database.Path, cfg.Database.Migrations); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	version, dirty, err := database.SchemaVersion(cfg.Database.Path, cfg.Database.Migrations)
	if err != nil {
		return nil, fmt.Errorf("schema version: %w", err)
	}
	if dirty {
		return nil, fmt.Errorf("schema version %d is dirty", version)
	}
	logger.Info("schema ready", "version", version, "db", cfg.Database.Path)
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		return nil, err
	}
	if err := database.SeedDefaults(ctx, db, demo.Defaults()); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("seed defaults: %w", err)
	}
	return db, nil
}

func runScaffold(cfg config.Config, files []string) int {
	if len(files) == 0 {
		fmt.Fprintln(os.Stderr, "usage: inspector scaffold <file.go>...")
		return 2
	}
	logger := logging.NewWriter(os.Stderr, log.InfoLevel)
	g := scaffold.Generator{Dir: cfg.Scaffold.Dir, Log: logger}
	code := 0
	for _, f := range files {
		if _, err := g.Generate(f); err != nil {
			logger.Error("cannot create panel", "file", f, "err", err)
			code = 1
		}
	}
	return code
}
