package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	defaultPageSize = 50
	maxPageSize     = 200
)

// ListSessions handles GET /api/v1/sessions.
func (s *Server) ListSessions(c *gin.Context) {
	limit := queryInt(c, "limit", defaultPageSize)
	if limit > maxPageSize {
		limit = maxPageSize
	}
	offset := queryInt(c, "offset", 0)

	sessions, err := s.writer.Sessions.List(c.Request.Context(), limit, offset)
	if err != nil {
		abortServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"sessions": sessions,
		"limit":    limit,
		"offset":   offset,
	})
}

// GetSession handles GET /api/v1/sessions/:session_id. The response pairs
// the session row with its aggregated punch snapshot.
func (s *Server) GetSession(c *gin.Context) {
	sessionID := c.Param("session_id")

	session, err := s.writer.Sessions.Get(c.Request.Context(), sessionID)
	if err != nil {
		abortServiceError(c, err)
		return
	}
	snapshot, err := s.writer.Sessions.Snapshot(c.Request.Context(), sessionID)
	if err != nil {
		abortServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"session":  session,
		"snapshot": snapshot,
	})
}

// ListPunches handles GET /api/v1/sessions/:session_id/punches.
func (s *Server) ListPunches(c *gin.Context) {
	sessionID := c.Param("session_id")

	punches, err := s.writer.Punches.ListForTask(c.Request.Context(), sessionID)
	if err != nil {
		abortServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"session_id": sessionID,
		"punches":    punches,
		"count":      len(punches),
	})
}

func queryInt(c *gin.Context, key string, defaultVal int) int {
	if raw := c.Query(key); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n >= 0 {
			return n
		}
	}
	return defaultVal
}
