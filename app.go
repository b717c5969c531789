package main

import (
	"fmt"

	"leadcomposer/internal/catalog"
	"leadcomposer/internal/config"
	"leadcomposer/internal/database"
	"leadcomposer/internal/leads"
	"leadcomposer/internal/models"
	"leadcomposer/pkg/logging"
)

// app is the core shared by both frontends.
type app struct {
	db      *database.DB
	catalog *catalog.Catalog
	editor  *catalog.Editor
	list    *leads.List
}

func newApp(cfg *config.Config, logger *logging.Logger) (*app, error) {
	db, err := database.New(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := catalog.NewStore(models.NewKeyValueRepository(db), logger.Component("catalog"))
	custom := store.LoadAll()
	cat := catalog.New(custom)
	logger.Info().Str("db_path", cfg.DBPath).Int("custom_templates", len(custom)).Msg("template catalog loaded")

	list := leads.New(cat, leads.Settings{
		Language:  cfg.DefaultLanguage,
		AgentName: cfg.AgentName,
	})

	return &app{
		db:      db,
		catalog: cat,
		editor:  catalog.NewEditor(cat, store, logger.Component("editor")),
		list:    list,
	}, nil
}

func (a *app) Close() error {
	return a.db.Close()
}
