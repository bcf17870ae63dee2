package api

import (
	"net/http"
	"time"

	"github.com/lil-brisket/Alicard-sub001/internal/constants"
	"github.com/lil-brisket/Alicard-sub001/internal/engine"
	"github.com/lil-brisket/Alicard-sub001/internal/service"
	"github.com/gin-gonic/gin"
)

type startBattleRequest struct {
	MonsterKey string `json:"monster_key"`
	Level      int    `json:"level"`
}

// StartBattle opens a combat session against one monster.
func (h *GameHandler) StartBattle(c *gin.Context) {
	var req startBattleRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.MonsterKey == "" {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}

	b, msgs, err := service.StartBattle(h.repo, sessionCharacterUUID(c), req.MonsterKey, req.Level, time.Now())
	if err != nil {
		switch err {
		case service.ErrCharacterNotFound:
			c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrCharacterNotFound})
		case service.ErrMonsterNotFound:
			c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrMonsterNotFound})
		case service.ErrBattleActive:
			c.JSON(http.StatusConflict, gin.H{constants.JSONKeyError: constants.ErrBattleAlreadyActive})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedStartBattle})
		}
		return
	}
	c.JSON(http.StatusCreated, gin.H{"battle": b, "messages": msgs})
}

// GetBattle returns the character's current battle, if any.
func (h *GameHandler) GetBattle(c *gin.Context) {
	char, err := h.repo.GetCharacterByUUID(sessionCharacterUUID(c))
	if err != nil || char == nil {
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrCharacterNotFound})
		return
	}
	b, err := h.repo.GetBattle(char.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchCharacter})
		return
	}
	if b == nil {
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrBattleNotFound})
		return
	}
	c.JSON(http.StatusOK, b)
}

type battleActionRequest struct {
	Action   string `json:"action"`
	SkillKey string `json:"skill_key"`
}

var validBattleActions = map[engine.BattleAction]bool{
	engine.ActionAttack: true,
	engine.ActionSkill:  true,
	engine.ActionDefend: true,
	engine.ActionEscape: true,
	engine.ActionItem:   true,
}

// SubmitBattleAction resolves one turn of the current battle.
func (h *GameHandler) SubmitBattleAction(c *gin.Context) {
	var req battleActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	action := engine.BattleAction(req.Action)
	if !validBattleActions[action] {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}

	b, msgs, err := service.SubmitBattleAction(h.repo, engine.DefaultRng, sessionCharacterUUID(c), action, req.SkillKey, time.Now(), h.cfg.Engine.XPCurve, h.respawn)
	if err != nil {
		switch err {
		case service.ErrCharacterNotFound:
			c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrCharacterNotFound})
		case service.ErrBattleNotFound:
			c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrBattleNotFound})
		case service.ErrBattleFinished:
			c.JSON(http.StatusConflict, gin.H{constants.JSONKeyError: constants.ErrBattleFinished})
		case service.ErrSkillNotFound:
			c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrSkillNotFound})
		case service.ErrNotEnoughSP:
			c.JSON(http.StatusConflict, gin.H{constants.JSONKeyError: constants.ErrNotEnoughSP})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedResolveTurn})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"battle": b, "messages": msgs})
}
