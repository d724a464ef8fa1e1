package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/roundtable-ai/roundtable/pkg/models"
)

// UsageSummary handles GET /api/v1/usage/summary. Without from/to the
// summary covers the current calendar month in UTC.
func (s *Server) UsageSummary(c *gin.Context) {
	rng, err := timeRangeQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	summary, err := s.usage.Summary(c.Request.Context(), userID(c), rng)
	if err != nil {
		s.renderServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// UsageHistory handles GET /api/v1/usage/history.
func (s *Server) UsageHistory(c *gin.Context) {
	rng, err := timeRangeQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	records, err := s.usage.History(c.Request.Context(), userID(c), intQuery(c, "limit"), intQuery(c, "offset"), rng)
	if err != nil {
		s.renderServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"records": records})
}

// timeRangeQuery parses optional RFC 3339 from/to query parameters.
func timeRangeQuery(c *gin.Context) (models.TimeRange, error) {
	var rng models.TimeRange
	if from := c.Query("from"); from != "" {
		t, err := time.Parse(time.RFC3339, from)
		if err != nil {
			return rng, err
		}
		rng.From = t
	}
	if to := c.Query("to"); to != "" {
		t, err := time.Parse(time.RFC3339, to)
		if err != nil {
			return rng, err
		}
		rng.To = t
	}
	return rng, nil
}
