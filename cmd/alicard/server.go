package main

import (
	"time"

	"github.com/lil-brisket/Alicard-sub001/internal/logging"
	"github.com/lil-brisket/Alicard-sub001/internal/service"
	"github.com/lil-brisket/Alicard-sub001/internal/storage"
)

// startBattleExpiryScanner periodically marks battles idle past the timeout
// as fled via service.ExpireIdleBattles.
func startBattleExpiryScanner(repo storage.Repository, idleTimeout time.Duration) {
	go func() {
		ticker := time.NewTicker(30 * time.Second)
		defer ticker.Stop()
		for range ticker.C {
			cutoff := time.Now().Add(-idleTimeout)
			battles, err := repo.FindIdleBattles(cutoff)
			if err != nil {
				logging.Error("battle expiry scanner failed to list battles", err, nil)
				continue
			}
			if len(battles) == 0 {
				continue
			}
			service.ExpireIdleBattles(repo, cutoff, battles)
		}
	}()
}
