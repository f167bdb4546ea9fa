package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/PulchraScientia/BDAstudio-demo2/internal/appcontext"
	"github.com/PulchraScientia/BDAstudio-demo2/internal/catalog"
	"github.com/PulchraScientia/BDAstudio-demo2/internal/session"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// client drives the API in tests, carrying the session cookie between calls
// the way a browser would.
type client struct {
	t       *testing.T
	service *APIService
	cookies []*http.Cookie
}

func newClient(t *testing.T) *client {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctx := &appcontext.Context{
		Logger:   zap.NewNop(),
		Sessions: session.NewManager(),
		Catalog:  catalog.New(),
	}
	return &client{t: t, service: NewHTTPService(ctx)}
}

func (c *client) do(method, path string, body any) (*httptest.ResponseRecorder, map[string]any) {
	c.t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(c.t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for _, cookie := range c.cookies {
		req.AddCookie(cookie)
	}

	recorder := httptest.NewRecorder()
	c.service.Engine().ServeHTTP(recorder, req)

	if cookies := recorder.Result().Cookies(); len(cookies) > 0 {
		c.cookies = cookies
	}

	var decoded map[string]any
	if recorder.Body.Len() > 0 {
		require.NoError(c.t, json.Unmarshal(recorder.Body.Bytes(), &decoded))
	}
	return recorder, decoded
}

func TestSessionCookieIsReused(t *testing.T) {
	c := newClient(t)

	rec, first := c.do(http.MethodGet, "/api/v1/session/me", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotEmpty(t, c.cookies, "first request sets the session cookie")

	rec, second := c.do(http.MethodGet, "/api/v1/session/me", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, first["sessionId"], second["sessionId"])
}

func TestSeparateClientsGetSeparateSessions(t *testing.T) {
	a := newClient(t)
	b := newClient(t)

	_, infoA := a.do(http.MethodGet, "/api/v1/session/me", nil)
	_, infoB := b.do(http.MethodGet, "/api/v1/session/me", nil)
	assert.NotEqual(t, infoA["sessionId"], infoB["sessionId"])

	rec, _ := a.do(http.MethodPost, "/api/v1/workspaces/", gin.H{"name": "mine"})
	require.Equal(t, http.StatusOK, rec.Code)

	_, listB := b.do(http.MethodGet, "/api/v1/workspaces/", nil)
	assert.Empty(t, listB["workspaces"], "workspaces never leak across sessions")
}

func TestWorkspaceScopedRoutesConflictWithoutWorkspace(t *testing.T) {
	c := newClient(t)

	rec, body := c.do(http.MethodGet, "/api/v1/datasets/", nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, body["missing"], "workspace")

	rec, _ = c.do(http.MethodPost, "/api/v1/experiments/", gin.H{})
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestWorkspaceCreateFlow(t *testing.T) {
	c := newClient(t)

	rec, body := c.do(http.MethodPost, "/api/v1/workspaces/", gin.H{
		"name":        "Analytics",
		"description": "team workspace",
		"teamMembers": []string{"a@example.com"},
	})
	require.Equal(t, http.StatusOK, rec.Code)
	workspace := body["workspace"].(map[string]any)
	assert.Equal(t, "Analytics", workspace["name"])

	rec, body = c.do(http.MethodGet, "/api/v1/workspaces/", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, body["workspaces"], 1)
	assert.Equal(t, workspace["id"], body["currentWorkspaceId"])

	// missing name is rejected at binding
	rec, _ = c.do(http.MethodPost, "/api/v1/workspaces/", gin.H{"description": "no name"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCatalogBrowsing(t *testing.T) {
	c := newClient(t)

	rec, body := c.do(http.MethodGet, "/api/v1/catalog/projects", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, body["projects"], 3)

	rec, body = c.do(http.MethodGet, "/api/v1/catalog/projects/my-gcp-project/datasets", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, body["datasets"], "sales_data")

	rec, _ = c.do(http.MethodGet, "/api/v1/catalog/projects/nope/datasets", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec, body = c.do(http.MethodGet, "/api/v1/catalog/projects/my-gcp-project/datasets/sales_data/tables", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, body["tables"], 3)

	// a real dataset without table metadata comes back empty, not 404
	rec, body = c.do(http.MethodGet, "/api/v1/catalog/projects/customer-insights/datasets/user_journey/tables", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, body["tables"])
}

func TestFullStudioFlow(t *testing.T) {
	c := newClient(t)

	rec, _ := c.do(http.MethodPost, "/api/v1/workspaces/", gin.H{"name": "Flow"})
	require.Equal(t, http.StatusOK, rec.Code)

	rec, body := c.do(http.MethodPost, "/api/v1/datasets/", gin.H{
		"project": "my-gcp-project",
		"dataset": "sales_data",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	datasetID := body["dataset"].(map[string]any)["id"].(string)

	rec, body = c.do(http.MethodGet, "/api/v1/datasets/"+datasetID+"/schema", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "my-gcp-project.sales_data", body["dataset"])
	assert.Len(t, body["columns"], 4)

	rec, body = c.do(http.MethodPost, "/api/v1/materials/", gin.H{
		"name":         "Sales",
		"training_set": []gin.H{{"nl": "count rows", "sql": "SELECT COUNT(*) FROM t"}},
		"test_set":     []gin.H{{"nl": "list rows", "sql": "SELECT * FROM t WHERE id=1"}},
	})
	require.Equal(t, http.StatusOK, rec.Code, "body: %v", body)

	// experiment falls back to the session's selections
	rec, body = c.do(http.MethodPost, "/api/v1/experiments/", gin.H{"name": "E"})
	require.Equal(t, http.StatusOK, rec.Code, "body: %v", body)
	experiment := body["experiment"].(map[string]any)
	assert.Equal(t, "completed", experiment["status"])
	experimentID := experiment["id"].(string)

	// the run left a pending transition to the experiment list
	rec, body = c.do(http.MethodPost, "/api/v1/navigation/intent", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	intent := body["intent"].(map[string]any)
	assert.Equal(t, "experiment", intent["screen"])

	rec, body = c.do(http.MethodPost, "/api/v1/navigation/intent", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, body["intent"], "intents fire once")

	rec, body = c.do(http.MethodGet, "/api/v1/experiments/"+experimentID+"/results/0/diff?mode=token", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, body["segments"])

	rec, _ = c.do(http.MethodGet, "/api/v1/experiments/"+experimentID+"/results/9/diff", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// chat is blocked until an assistant is deployed and selected
	rec, _ = c.do(http.MethodPost, "/api/v1/chat/messages", gin.H{"content": "hi"})
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec, body = c.do(http.MethodPost, "/api/v1/experiments/"+experimentID+"/deploy", gin.H{"name": "Helper"})
	require.Equal(t, http.StatusOK, rec.Code)
	assistant := body["assistant"].(map[string]any)
	assert.EqualValues(t, 1, assistant["version"])
	assistantID := assistant["id"].(string)

	rec, _ = c.do(http.MethodPost, "/api/v1/assistants/"+assistantID+"/select", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec, body = c.do(http.MethodPost, "/api/v1/chat/messages", gin.H{"content": "how many sales?"})
	require.Equal(t, http.StatusOK, rec.Code)
	reply := body["reply"].(map[string]any)
	assert.Contains(t, reply["sql"], "SELECT COUNT(*)")

	rec, body = c.do(http.MethodGet, "/api/v1/chat/messages", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, body["messages"], 2)

	rec, _ = c.do(http.MethodDelete, "/api/v1/chat/messages", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	rec, body = c.do(http.MethodGet, "/api/v1/chat/messages", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, body["messages"])
}

func TestScreenStateAndTabs(t *testing.T) {
	c := newClient(t)

	rec, body := c.do(http.MethodGet, "/api/v1/screens/chat", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, body["blocked"])

	rec, _ = c.do(http.MethodGet, "/api/v1/screens/bogus", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec, body = c.do(http.MethodPut, "/api/v1/screens/workspace/tab", gin.H{"tab": "create"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "create", body["tab"])

	rec, body = c.do(http.MethodPut, "/api/v1/screens/workspace/tab", gin.H{"tab": "bogus"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "list", body["tab"], "unknown tabs fall back to the default")
}

func TestSessionResetAndDemoSeed(t *testing.T) {
	c := newClient(t)

	rec, _ := c.do(http.MethodPost, "/api/v1/session/demo", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec, body := c.do(http.MethodGet, "/api/v1/session/dashboard", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	metrics := body["metrics"].(map[string]any)
	assert.EqualValues(t, 1, metrics["workspaces"])
	assert.EqualValues(t, 1, metrics["assistants"])
	assert.NotNil(t, body["currentWorkspace"])

	rec, _ = c.do(http.MethodPost, "/api/v1/session/reset", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec, body = c.do(http.MethodGet, "/api/v1/session/dashboard", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	metrics = body["metrics"].(map[string]any)
	assert.EqualValues(t, 0, metrics["workspaces"])
}
