package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ListPersonalities handles GET /api/v1/personalities: every known
// personality, system ones included.
func (s *Server) ListPersonalities(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"personalities": s.personalities.All()})
}

// ListDebatePersonalities handles GET /api/v1/personalities/debate: only the
// personalities a debate request may use.
func (s *Server) ListDebatePersonalities(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"personalities": s.personalities.Debate()})
}
