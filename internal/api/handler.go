package api

import (
	"github.com/lil-brisket/Alicard-sub001/internal/config"
	"github.com/lil-brisket/Alicard-sub001/internal/service"
	"github.com/lil-brisket/Alicard-sub001/internal/storage"
)

// GameHandler groups all game-related HTTP handlers.
type GameHandler struct {
	repo    storage.Repository
	cfg     *config.LoadedConfig
	respawn service.RespawnPolicy
}

// NewGameHandler creates a GameHandler with the given repository and loaded
// configuration. The respawn policy is the configured fraction restore.
func NewGameHandler(repo storage.Repository, cfg *config.LoadedConfig) *GameHandler {
	return &GameHandler{
		repo: repo,
		cfg:  cfg,
		respawn: service.FractionRespawn{
			HPFraction: cfg.Engine.RespawnHPFraction,
			SPFraction: cfg.Engine.RespawnSPFraction,
		},
	}
}
