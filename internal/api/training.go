package api

import (
	"net/http"
	"time"

	"github.com/lil-brisket/Alicard-sub001/internal/constants"
	"github.com/lil-brisket/Alicard-sub001/internal/dedupe"
	"github.com/lil-brisket/Alicard-sub001/internal/engine"
	"github.com/lil-brisket/Alicard-sub001/internal/game"
	"github.com/lil-brisket/Alicard-sub001/internal/service"
	"github.com/gin-gonic/gin"
)

type startTrainingRequest struct {
	ActionKey string `json:"action_key"`
}

// StartTraining commits the character to a repeatable action.
func (h *GameHandler) StartTraining(c *gin.Context) {
	var req startTrainingRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ActionKey == "" {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}

	t, err := service.StartTraining(h.repo, sessionCharacterUUID(c), req.ActionKey, time.Now())
	if err != nil {
		switch err {
		case service.ErrCharacterNotFound:
			c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrCharacterNotFound})
		case service.ErrActionNotFound:
			c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrActionNotFound})
		case service.ErrTrainingActive:
			c.JSON(http.StatusConflict, gin.H{constants.JSONKeyError: constants.ErrTrainingAlreadyActive})
		case service.ErrJobLevelTooLow:
			c.JSON(http.StatusForbidden, gin.H{constants.JSONKeyError: constants.ErrJobLevelTooLow})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedStartTraining})
		}
		return
	}
	c.JSON(http.StatusCreated, t)
}

// StopTraining ends the current commitment.
func (h *GameHandler) StopTraining(c *gin.Context) {
	err := service.StopTraining(h.repo, sessionCharacterUUID(c), time.Now())
	if err != nil {
		switch err {
		case service.ErrCharacterNotFound:
			c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrCharacterNotFound})
		case service.ErrTrainingNotFound:
			c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrTrainingNotFound})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedStopTraining})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{constants.JSONKeyMessage: "Training stopped"})
}

type trainingObservation struct {
	Training *game.Training           `json:"training"`
	Events   []engine.CompletionEvent `json:"events"`
}

// ObserveTraining is the read-path catch-up. Concurrent observations for the
// same character collapse into one run: completions consume resources
// sequentially, so a duplicate run must never process the same tick twice.
func (h *GameHandler) ObserveTraining(c *gin.Context) {
	charUUID := sessionCharacterUUID(c)
	v, err, _ := dedupe.TrainingGroup.Do(charUUID, func() (interface{}, error) {
		t, events, err := service.ObserveTraining(h.repo, engine.DefaultRng, charUUID, time.Now(), h.cfg.Engine)
		if err != nil {
			return nil, err
		}
		return trainingObservation{Training: t, Events: events}, nil
	})
	if err != nil {
		switch err {
		case service.ErrCharacterNotFound:
			c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrCharacterNotFound})
		case service.ErrActionNotFound:
			c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrActionNotFound})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedObserveTraining})
		}
		return
	}
	c.JSON(http.StatusOK, v.(trainingObservation))
}

// CompleteTraining is the explicit single-completion trigger.
func (h *GameHandler) CompleteTraining(c *gin.Context) {
	ev, err := service.CompleteTraining(h.repo, engine.DefaultRng, sessionCharacterUUID(c), time.Now(), h.cfg.Engine)
	if err != nil {
		switch err {
		case service.ErrCharacterNotFound:
			c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrCharacterNotFound})
		case service.ErrTrainingNotFound:
			c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrTrainingNotFound})
		case service.ErrActionNotFound:
			c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrActionNotFound})
		case service.ErrTrainingNotReady:
			c.JSON(http.StatusConflict, gin.H{constants.JSONKeyError: constants.ErrTrainingNotReady})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedObserveTraining})
		}
		return
	}
	c.JSON(http.StatusOK, ev)
}
