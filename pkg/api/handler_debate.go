package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/roundtable-ai/roundtable/pkg/models"
)

// CreateDebate handles POST /api/v1/debates.
func (s *Server) CreateDebate(c *gin.Context) {
	var req models.CreateDebateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	d, err := s.debates.Create(c.Request.Context(), userID(c), &req)
	if err != nil {
		s.renderServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, d)
}

// GetDebate handles GET /api/v1/debates/:id.
func (s *Server) GetDebate(c *gin.Context) {
	detail, err := s.debates.Get(c.Request.Context(), userID(c), c.Param("id"))
	if err != nil {
		s.renderServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// ListDebates handles GET /api/v1/debates.
func (s *Server) ListDebates(c *gin.Context) {
	params := models.ListDebatesParams{
		Page:     intQuery(c, "page"),
		PageSize: intQuery(c, "page_size"),
		Status:   c.Query("status"),
		Search:   c.Query("search"),
	}

	list, err := s.debates.List(c.Request.Context(), userID(c), params)
	if err != nil {
		s.renderServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// CancelDebate handles POST /api/v1/debates/:id/cancel.
func (s *Server) CancelDebate(c *gin.Context) {
	if err := s.debates.Cancel(c.Request.Context(), userID(c), c.Param("id")); err != nil {
		s.renderServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cancelled"})
}

// DeleteDebate handles DELETE /api/v1/debates/:id.
func (s *Server) DeleteDebate(c *gin.Context) {
	if err := s.debates.Delete(c.Request.Context(), userID(c), c.Param("id")); err != nil {
		s.renderServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// intQuery parses an integer query parameter, zero when absent or invalid.
// The service layer normalizes paging values.
func intQuery(c *gin.Context, name string) int {
	n, _ := strconv.Atoi(c.Query(name))
	return n
}
