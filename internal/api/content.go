package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ListMonsters returns every monster template at base (level 1) stats.
func (h *GameHandler) ListMonsters(c *gin.Context) {
	c.JSON(http.StatusOK, h.repo.ListMonsters())
}

// ListActions returns every training action template.
func (h *GameHandler) ListActions(c *gin.Context) {
	c.JSON(http.StatusOK, h.repo.ListActions())
}

// ListSkills returns every skill template.
func (h *GameHandler) ListSkills(c *gin.Context) {
	c.JSON(http.StatusOK, h.repo.ListSkills())
}
