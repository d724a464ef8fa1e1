// Package api exposes the debate service over HTTP: JSON endpoints for
// debate lifecycle and usage queries, and an SSE endpoint for live debate
// streams.
package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/roundtable-ai/roundtable/ent"
	"github.com/roundtable-ai/roundtable/pkg/config"
	"github.com/roundtable-ai/roundtable/pkg/database"
	"github.com/roundtable-ai/roundtable/pkg/debate"
	"github.com/roundtable-ai/roundtable/pkg/models"
	"github.com/roundtable-ai/roundtable/pkg/personality"
)

// DebateAPI is the slice of the debate service the HTTP layer uses.
type DebateAPI interface {
	Create(ctx context.Context, userID string, req *models.CreateDebateRequest) (*models.Debate, error)
	Get(ctx context.Context, userID, debateID string) (*models.DebateDetail, error)
	List(ctx context.Context, userID string, params models.ListDebatesParams) (*models.DebateList, error)
	Cancel(ctx context.Context, userID, debateID string) error
	Delete(ctx context.Context, userID, debateID string) error
	StartStream(ctx context.Context, userID, debateID string, emit debate.EmitFunc) error
}

// UsageAPI is the slice of the usage service the HTTP layer uses.
type UsageAPI interface {
	Summary(ctx context.Context, userID string, rng models.TimeRange) (*models.UsageSummary, error)
	History(ctx context.Context, userID string, limit, offset int, rng models.TimeRange) ([]*ent.UsageRecord, error)
}

// Server wires handlers, middleware, and routes.
type Server struct {
	cfg           *config.Config
	db            *database.Client
	debates       DebateAPI
	usage         UsageAPI
	personalities *personality.Registry
	jwtSecret     []byte
	logger        *slog.Logger
}

// NewServer creates the API server. The JWT secret is resolved from the
// environment variable named in the auth config; an empty secret is a
// startup error, not a per-request one.
func NewServer(cfg *config.Config, db *database.Client, debates DebateAPI, usage UsageAPI, personalities *personality.Registry, logger *slog.Logger) (*Server, error) {
	if logger == nil {
		logger = slog.Default()
	}
	secret := os.Getenv(cfg.Auth.JWTSecretEnv)
	if secret == "" {
		return nil, fmt.Errorf("auth: environment variable %s is not set", cfg.Auth.JWTSecretEnv)
	}
	return &Server{
		cfg:           cfg,
		db:            db,
		debates:       debates,
		usage:         usage,
		personalities: personalities,
		jwtSecret:     []byte(secret),
		logger:        logger,
	}, nil
}

// Router builds the gin engine with all routes and middleware attached.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(s.requestLogger())
	r.Use(s.corsMiddleware())

	r.GET("/health", s.Health)

	v1 := r.Group("/api/v1")
	v1.Use(s.requireAuth())
	{
		v1.POST("/debates", s.CreateDebate)
		v1.GET("/debates", s.ListDebates)
		v1.GET("/debates/:id", s.GetDebate)
		v1.POST("/debates/:id/cancel", s.CancelDebate)
		v1.DELETE("/debates/:id", s.DeleteDebate)
		v1.GET("/debates/:id/stream", s.StreamDebate)

		v1.GET("/usage/summary", s.UsageSummary)
		v1.GET("/usage/history", s.UsageHistory)

		v1.GET("/personalities", s.ListPersonalities)
		v1.GET("/personalities/debate", s.ListDebatePersonalities)
	}

	return r
}

// Health handles GET /health.
func (s *Server) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if s.db == nil {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
		return
	}

	dbHealth, err := database.Health(ctx, s.db.DB())
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "unhealthy",
			"database": dbHealth,
			"error":    err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"database": dbHealth,
	})
}
