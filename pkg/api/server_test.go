package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/punchd-io/punchd/pkg/daemon"
	"github.com/punchd-io/punchd/pkg/governorworker"
	"github.com/punchd-io/punchd/pkg/models"
	"github.com/punchd-io/punchd/pkg/punchcard"
	"github.com/punchd-io/punchd/pkg/services"
	testdb "github.com/punchd-io/punchd/test/database"
)

type fakeDaemonState struct{ state daemon.State }

func (f fakeDaemonState) State() daemon.State { return f.state }

type fakeGovernorStats struct{ stats governorworker.Stats }

func (f fakeGovernorStats) Snapshot() governorworker.Stats { return f.stats }

func newTestServer(t *testing.T) (*Server, *services.Writer) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	client := testdb.NewTestClient(t)
	writer := services.NewWriter(client.Client)
	validator := punchcard.NewValidator(writer.Punches, writer.Cards, writer.ChildRels)
	srv := NewServer(client, writer, validator,
		fakeDaemonState{state: daemon.StateStreaming},
		fakeGovernorStats{stats: governorworker.Stats{KillsCompleted: 3}})
	return srv, writer
}

func doRequest(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestHealthEndpoint(t *testing.T) {
	srv, _ := newTestServer(t)
	router := srv.Router()

	rec := doRequest(t, router, http.MethodGet, "/api/v1/health", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "healthy", body["status"])
	assert.Contains(t, body["version"], "punchd/")
	assert.NotNil(t, body["database"])
}

func TestSessionEndpoints(t *testing.T) {
	srv, writer := newTestServer(t)
	router := srv.Router()
	ctx := context.Background()

	require.NoError(t, writer.UpsertSession(ctx, models.UpsertSessionRequest{
		SessionID: "sess-api", Status: "running", Mode: "code",
	}))
	_, err := writer.Punches.WritePunch(ctx, &models.Punch{
		TaskID:     "sess-api",
		PunchType:  models.PunchTypeToolCall,
		PunchKey:   "read_file",
		ObservedAt: time.Now().UTC(),
		SourceHash: "api-punch-1",
	})
	require.NoError(t, err)

	t.Run("list sessions", func(t *testing.T) {
		rec := doRequest(t, router, http.MethodGet, "/api/v1/sessions", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody(t, rec)
		assert.Len(t, body["sessions"], 1)
		assert.Equal(t, float64(defaultPageSize), body["limit"])
	})

	t.Run("list sessions caps page size", func(t *testing.T) {
		rec := doRequest(t, router, http.MethodGet, "/api/v1/sessions?limit=10000", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, float64(maxPageSize), body["limit"])
	})

	t.Run("get session with snapshot", func(t *testing.T) {
		rec := doRequest(t, router, http.MethodGet, "/api/v1/sessions/sess-api", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody(t, rec)
		snapshot, ok := body["snapshot"].(map[string]any)
		require.True(t, ok)
		counts, ok := snapshot["punch_counts"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, float64(1), counts["tool_call"])
	})

	t.Run("get unknown session is 404", func(t *testing.T) {
		rec := doRequest(t, router, http.MethodGet, "/api/v1/sessions/nope", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("list punches", func(t *testing.T) {
		rec := doRequest(t, router, http.MethodGet, "/api/v1/sessions/sess-api/punches", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, float64(1), body["count"])
	})
}

func TestCardEndpoints(t *testing.T) {
	srv, writer := newTestServer(t)
	router := srv.Router()
	ctx := context.Background()

	_, err := writer.Punches.WritePunch(ctx, &models.Punch{
		TaskID:     "task-api",
		PunchType:  models.PunchTypeToolCall,
		PunchKey:   "read_file",
		ObservedAt: time.Now().UTC(),
		SourceHash: "api-card-punch",
	})
	require.NoError(t, err)

	t.Run("put card", func(t *testing.T) {
		rec := doRequest(t, router, http.MethodPut, "/api/v1/cards/card-api", PutCardRequest{
			Requirements: []CardRequirementBody{
				{PunchType: "tool_call", PunchKeyPattern: "read_file%"},
			},
		})
		require.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, float64(1), body["requirements"])
	})

	t.Run("put card with unknown punch type is 400", func(t *testing.T) {
		rec := doRequest(t, router, http.MethodPut, "/api/v1/cards/card-api", PutCardRequest{
			Requirements: []CardRequirementBody{
				{PunchType: "bogus", PunchKeyPattern: "x"},
			},
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("put card without body is 400", func(t *testing.T) {
		rec := doRequest(t, router, http.MethodPut, "/api/v1/cards/card-api", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("validate passes", func(t *testing.T) {
		rec := doRequest(t, router, http.MethodPost, "/api/v1/cards/card-api/validate", ValidateCardRequest{
			TaskID: "task-api",
		})
		require.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody(t, rec)
		result, ok := body["result"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "pass", result["status"])
	})

	t.Run("validate with tool range", func(t *testing.T) {
		toolRange := [2]int{0, 0}
		rec := doRequest(t, router, http.MethodPost, "/api/v1/cards/card-api/validate", ValidateCardRequest{
			TaskID:    "task-api",
			ToolRange: &toolRange,
		})
		require.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody(t, rec)
		result := body["result"].(map[string]any)
		adherence, ok := result["tool_adherence"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, true, adherence["within_range"])
	})

	t.Run("validate with child card", func(t *testing.T) {
		_, err := writer.ChildRels.WriteChildRelation(ctx, "task-api", "child-api")
		require.NoError(t, err)

		rec := doRequest(t, router, http.MethodPost, "/api/v1/cards/card-api/validate", ValidateCardRequest{
			TaskID:      "task-api",
			ChildCardID: "card-api",
		})
		require.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody(t, rec)
		subtasks, ok := body["subtasks"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, false, subtasks["all_children_valid"])
	})

	t.Run("validate without task id is 400", func(t *testing.T) {
		rec := doRequest(t, router, http.MethodPost, "/api/v1/cards/card-api/validate", map[string]any{})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestGovernorStatusEndpoint(t *testing.T) {
	srv, _ := newTestServer(t)
	router := srv.Router()

	rec := doRequest(t, router, http.MethodGet, "/api/v1/governor/status", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, true, body["enabled"])
	assert.Equal(t, "streaming", body["daemon_state"])
	pipeline, ok := body["pipeline"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(3), pipeline["kills_completed"])
}
