package main

import (
	"github.com/lil-brisket/Alicard-sub001/internal/config"
	"github.com/lil-brisket/Alicard-sub001/internal/logging"
	"github.com/lil-brisket/Alicard-sub001/internal/storage"
)

func loadConfigOrExit(path string) *config.LoadedConfig {
	cfg, err := config.LoadConfig(path)
	if err != nil {
		logging.Fatal("Missing or invalid alicard configuration", err, logging.Fields{
			"config_path": path,
			"hint":        "create an alicard_config.json with 'monster_list' and 'action_list' arrays and optional keys: skill_list, server.address, engine, starting",
		})
	}
	return cfg
}

func createRepositoryOrExit(dbPath string, cfg *config.LoadedConfig) storage.Repository {
	db, err := storage.OpenAndMigrate(dbPath)
	if err != nil {
		logging.Fatal("Failed to initialize database", err, nil)
	}
	return storage.NewSQLiteRepository(db, cfg)
}
