package storage

import (
	"os"
	"path/filepath"

	"github.com/lil-brisket/Alicard-sub001/internal/game"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// OpenAndMigrate opens (creating directories as needed) the SQLite database
// and keeps the schema updated via AutoMigrate.
func OpenAndMigrate(dataSourceName string) (*gorm.DB, error) {
	if dir := filepath.Dir(dataSourceName); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}
	db, err := gorm.Open(sqlite.Open(dataSourceName), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	err = db.AutoMigrate(
		&game.Character{},
		&game.EquipmentItem{},
		&game.InventoryItem{},
		&game.Job{},
		&game.Battle{},
		&game.Training{},
	)
	if err != nil {
		return nil, err
	}
	return db, nil
}
