// Package api exposes the punchd HTTP surface: observed sessions and their
// punches, punch-card management and validation, and governor status.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/punchd-io/punchd/pkg/daemon"
	"github.com/punchd-io/punchd/pkg/database"
	"github.com/punchd-io/punchd/pkg/governorworker"
	"github.com/punchd-io/punchd/pkg/punchcard"
	"github.com/punchd-io/punchd/pkg/services"
	"github.com/punchd-io/punchd/pkg/version"
)

// StateReporter exposes the daemon's lifecycle state.
type StateReporter interface {
	State() daemon.State
}

// GovernorStats exposes the governor pool's activity counters.
type GovernorStats interface {
	Snapshot() governorworker.Stats
}

// Server is the punchd HTTP API.
type Server struct {
	db        *database.Client
	writer    *services.Writer
	validator *punchcard.Validator
	daemon    StateReporter
	governor  GovernorStats
	httpSrv   *http.Server
}

// NewServer creates the API server. daemon and governor may be nil when the
// corresponding subsystem is disabled.
func NewServer(db *database.Client, writer *services.Writer, validator *punchcard.Validator, d StateReporter, g GovernorStats) *Server {
	return &Server{
		db:        db,
		writer:    writer,
		validator: validator,
		daemon:    d,
		governor:  g,
	}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/api/v1/health", s.Health)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/sessions", s.ListSessions)
		v1.GET("/sessions/:session_id", s.GetSession)
		v1.GET("/sessions/:session_id/punches", s.ListPunches)

		v1.PUT("/cards/:card_id", s.PutCard)
		v1.POST("/cards/:card_id/validate", s.ValidateCard)

		v1.GET("/governor/status", s.GovernorStatus)
	}

	return router
}

// Start begins serving on addr. Blocks until the listener fails or Shutdown
// is called.
func (s *Server) Start(addr string) error {
	s.httpSrv = &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s.httpSrv.ListenAndServe()
}

// Shutdown drains in-flight requests and stops the listener.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpSrv == nil {
		return nil
	}
	return s.httpSrv.Shutdown(ctx)
}

// Health handles GET /api/v1/health.
func (s *Server) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	dbHealth, err := database.Health(ctx, s.db.DB())
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "unhealthy",
			"version":  version.Version,
			"database": dbHealth,
			"error":    err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"version":  version.Version,
		"database": dbHealth,
	})
}

// GovernorStatus handles GET /api/v1/governor/status.
func (s *Server) GovernorStatus(c *gin.Context) {
	resp := gin.H{"enabled": s.governor != nil}
	if s.daemon != nil {
		resp["daemon_state"] = s.daemon.State().String()
	}
	if s.governor != nil {
		resp["pipeline"] = s.governor.Snapshot()
	}
	c.JSON(http.StatusOK, resp)
}
