package main

import (
	"github.com/lil-brisket/Alicard-sub001/internal/api"
	"github.com/lil-brisket/Alicard-sub001/internal/config"
	"github.com/lil-brisket/Alicard-sub001/internal/constants"
	"github.com/lil-brisket/Alicard-sub001/internal/logging"

	"github.com/gin-gonic/gin"
)

func main() {
	// File locations and the optional bind-address override come from the
	// environment; all game content and tuning comes from the config file.
	envCfg, err := config.ParseEnv()
	if err != nil {
		logging.Fatal("Failed to parse environment", err, nil)
	}

	cfg := loadConfigOrExit(envCfg.ConfigPath)
	if envCfg.Address != "" {
		cfg.ServerAddress = envCfg.Address
	}

	repo := createRepositoryOrExit(envCfg.DBPath, cfg)
	handler := api.NewGameHandler(repo, cfg)

	// Background scanner: battles abandoned past the idle timeout are
	// expired as fled so a stale row never blocks the next StartBattle.
	startBattleExpiryScanner(repo, cfg.Engine.BattleIdleTimeout)

	router := gin.Default()

	apiRoutes := router.Group(constants.RouteAPIPrefix)
	{
		// Public endpoints
		apiRoutes.GET(constants.RouteVersion, api.Version)
		apiRoutes.GET(constants.RouteMonsters, handler.ListMonsters)
		apiRoutes.GET(constants.RouteActions, handler.ListActions)
		apiRoutes.GET(constants.RouteSkills, handler.ListSkills)
		apiRoutes.GET(constants.RouteLeaderboard, handler.ListLeaderboard)

		apiRoutes.POST(constants.RouteAuthGuest, handler.GuestLogin)
		apiRoutes.POST(constants.RouteAuthLogout, handler.Logout)

		// Authenticated endpoints
		protected := apiRoutes.Group("")
		protected.Use(api.AuthRequired())

		protected.GET(constants.RouteCharacterMe, handler.GetMe)

		protected.POST(constants.RouteBattles, handler.StartBattle)
		protected.GET(constants.RouteBattles, handler.GetBattle)
		protected.POST(constants.RouteBattleAction, handler.SubmitBattleAction)

		protected.POST(constants.RouteTraining, handler.StartTraining)
		protected.GET(constants.RouteTraining, handler.ObserveTraining)
		protected.DELETE(constants.RouteTraining, handler.StopTraining)
		protected.POST(constants.RouteTrainingComplete, handler.CompleteTraining)
	}

	addr := cfg.ServerAddress
	logging.Info("Server started", logging.Fields{constants.LogFieldAddr: addr})
	if err := router.Run(addr); err != nil {
		logging.Fatal("Failed to start server", err, nil)
	}
}
