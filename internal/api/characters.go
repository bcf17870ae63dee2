package api

import (
	"net/http"
	"time"

	"github.com/lil-brisket/Alicard-sub001/internal/constants"
	"github.com/lil-brisket/Alicard-sub001/internal/service"
	"github.com/gin-gonic/gin"
)

// GetMe returns the session character with vitals brought current through
// the regeneration clock, plus the fully aggregated combat stats.
func (h *GameHandler) GetMe(c *gin.Context) {
	char, err := service.RefreshVitals(h.repo, sessionCharacterUUID(c), time.Now())
	if err == service.ErrCharacterNotFound {
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrCharacterNotFound})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchCharacter})
		return
	}
	stats := service.CharacterStats(char)
	c.JSON(http.StatusOK, gin.H{
		"character": char,
		"stats": gin.H{
			"max_hp":    stats.MaxHP,
			"max_sp":    stats.MaxSP,
			"strength":  stats.Strength,
			"speed":     stats.Speed,
			"dexterity": stats.Dexterity,
			"defense":   stats.Defense,
		},
	})
}

// ListLeaderboard returns the characters with the most kills.
func (h *GameHandler) ListLeaderboard(c *gin.Context) {
	chars, err := h.repo.TopKillers(10)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchLeaderbord})
		return
	}
	type entry struct {
		Name   string `json:"name"`
		Level  int    `json:"level"`
		Kills  int    `json:"kills"`
		Deaths int    `json:"deaths"`
	}
	out := make([]entry, 0, len(chars))
	for _, ch := range chars {
		out = append(out, entry{Name: ch.Name, Level: ch.Level, Kills: ch.Kills, Deaths: ch.Deaths})
	}
	c.JSON(http.StatusOK, out)
}
