package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/lil-brisket/Alicard-sub001/internal/constants"
	"github.com/lil-brisket/Alicard-sub001/internal/service"
	"github.com/gin-gonic/gin"
)

const sessionTTL = 7 * 24 * time.Hour

type guestRequest struct {
	Name string `json:"name"`
}

// GuestLogin creates a new character and issues a session cookie for it.
// Full account login lives in a separate identity service; the game server
// only needs a validated character identity per request.
func (h *GameHandler) GuestLogin(c *gin.Context) {
	var req guestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	name := strings.TrimSpace(req.Name)
	if name == "" || len(name) > 32 {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}

	char, err := service.CreateCharacter(h.repo, name, h.cfg.Starting, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedCreateCharacter})
		return
	}

	token, err := createSessionToken(char.UUID, char.Name, sessionTTL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedCreateCharacter})
		return
	}
	setSessionCookie(c, token, sessionTTL)
	c.JSON(http.StatusCreated, char)
}

// Logout clears the session cookie.
func (h *GameHandler) Logout(c *gin.Context) {
	clearSessionCookie(c)
	c.JSON(http.StatusOK, gin.H{constants.JSONKeyMessage: "Logged out"})
}
