package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"iot-site-backend/config"
	"iot-site-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	cfg := config.LoadConfig()
	cfg.Chat.RandomSeed = 1

	srv, err := NewServer(cfg)
	require.NoError(t, err)
	return srv
}

func TestServer_Routes(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		name           string
		method         string
		path           string
		body           []byte
		expectedStatus int
	}{
		{"health", "GET", "/api/v1/health", nil, http.StatusOK},
		{"metrics exposition", "GET", "/metrics", nil, http.StatusOK},
		{"documents", "GET", "/api/v1/documents", nil, http.StatusOK},
		{"documents filtered", "GET", "/api/v1/documents?query=x9000&category=4G%2F5G+Products", nil, http.StatusOK},
		{"categories", "GET", "/api/v1/documents/categories", nil, http.StatusOK},
		{"products", "GET", "/api/v1/products", nil, http.StatusOK},
		{"product detail", "GET", "/api/v1/products/x9000", nil, http.StatusOK},
		{"unknown product", "GET", "/api/v1/products/nope", nil, http.StatusNotFound},
		{"careers", "GET", "/api/v1/careers", nil, http.StatusOK},
		{
			"inquiry submission", "POST", "/api/v1/inquiries",
			[]byte(`{"name":"Dana","email":"dana@example.com","message":"Quote please"}`),
			http.StatusCreated,
		},
		{
			"invalid inquiry", "POST", "/api/v1/inquiries",
			[]byte(`{"email":"dana@example.com"}`),
			http.StatusBadRequest,
		},
		{"unknown route", "GET", "/api/v1/nope", nil, http.StatusNotFound},
		{"wrong method", "DELETE", "/api/v1/documents", nil, http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, bytes.NewBuffer(tt.body))
			w := httptest.NewRecorder()

			srv.router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestServer_ChatFlow(t *testing.T) {
	srv := newTestServer(t)

	do := func(method, path string, body []byte) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, path, bytes.NewBuffer(body))
		w := httptest.NewRecorder()
		srv.router.ServeHTTP(w, req)
		return w
	}

	// Open a session on the downloads page.
	w := do("POST", "/api/v1/chat/sessions", []byte(`{"page_path":"/downloads"}`))
	require.Equal(t, http.StatusCreated, w.Code)

	var session models.ChatSession
	require.NoError(t, json.NewDecoder(w.Body).Decode(&session))
	require.NotEmpty(t, session.ID)
	require.Len(t, session.Messages, 1)

	// Send a turn; the reply is typed out asynchronously.
	w = do("POST", "/api/v1/chat/sessions/"+session.ID+"/messages", []byte(`{"text":"x9000"}`))
	require.Equal(t, http.StatusAccepted, w.Code)

	var sent models.SendMessageResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&sent))
	assert.True(t, sent.IsTyping)
	assert.Equal(t, models.MessageSenderUser, sent.Message.Sender)

	// A second turn while typing is rejected.
	w = do("POST", "/api/v1/chat/sessions/"+session.ID+"/messages", []byte(`{"text":"hello?"}`))
	assert.Equal(t, http.StatusConflict, w.Code)

	// Polling shows the typing indicator.
	w = do("GET", "/api/v1/chat/sessions/"+session.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var polled models.ChatSession
	require.NoError(t, json.NewDecoder(w.Body).Decode(&polled))
	assert.Equal(t, models.ChatStateOpenTyping, polled.State)
	assert.True(t, polled.IsTyping)

	// Reopening the same session is a 200, not a second create.
	w = do("POST", "/api/v1/chat/sessions", []byte(`{"session_id":"`+session.ID+`","page_path":"/downloads"}`))
	require.Equal(t, http.StatusOK, w.Code)

	var reopened models.ChatSession
	require.NoError(t, json.NewDecoder(w.Body).Decode(&reopened))
	assert.Equal(t, session.ID, reopened.ID)

	// Close the widget.
	w = do("DELETE", "/api/v1/chat/sessions/"+session.ID, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = do("GET", "/api/v1/chat/sessions/"+session.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.NewDecoder(w.Body).Decode(&polled))
	assert.Equal(t, models.ChatStateClosed, polled.State)

	// Unknown sessions are a 404.
	w = do("GET", "/api/v1/chat/sessions/nope", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestServer_CORS(t *testing.T) {
	srv := newTestServer(t)

	t.Run("preflight", func(t *testing.T) {
		req := httptest.NewRequest("OPTIONS", "/api/v1/health", nil)
		req.Header.Set("Origin", "https://example.com")
		w := httptest.NewRecorder()

		srv.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.NotEmpty(t, w.Header().Get("Access-Control-Allow-Origin"))
		assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "POST")
	})

	t.Run("headers on normal requests", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/v1/documents", nil)
		req.Header.Set("Origin", "https://example.com")
		w := httptest.NewRecorder()

		srv.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.NotEmpty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})
}

func TestServer_HealthPayload(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest("GET", "/api/v1/health", nil)
	w := httptest.NewRecorder()

	srv.router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var health struct {
		Status     string                 `json:"status"`
		Version    string                 `json:"version"`
		Components map[string]interface{} `json:"components"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&health))

	assert.Equal(t, "healthy", health.Status)
	assert.NotEmpty(t, health.Version)
	assert.Contains(t, health.Components, "content")
	assert.Contains(t, health.Components, "chat")
}
