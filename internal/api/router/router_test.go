package router

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hotelmadagascar/concierge/internal/catalog"
	"github.com/hotelmadagascar/concierge/internal/chatbot"
	"github.com/hotelmadagascar/concierge/internal/session"
	"github.com/hotelmadagascar/concierge/internal/webchat"
	"github.com/hotelmadagascar/concierge/pkg/logging"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	store := catalog.NewStore(nil, nil)
	engine := chatbot.NewEngine(store)
	sessions := session.New(client, time.Hour)
	chatHandler := webchat.NewHandler(engine, sessions, nil, store, nil, logging.Default())

	return New(&Config{
		Logger:         logging.Default(),
		WebchatHandler: chatHandler,
	})
}

func TestHealthEndpoint(t *testing.T) {
	r := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status": "ok"}`, rec.Body.String())
}

func TestChatMessageRoute(t *testing.T) {
	r := newTestRouter(t)

	body, err := json.Marshal(map[string]string{"text": "hello"})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/chat/message", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp webchat.MessageResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.SessionID)
	assert.NotEmpty(t, resp.Reply)
}

func TestChatHistoryRoute(t *testing.T) {
	r := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/chat/history?session=s1", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"messages": []}`, rec.Body.String())
}

func TestChatRateLimit(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	store := catalog.NewStore(nil, nil)
	sessions := session.New(client, time.Hour)
	chatHandler := webchat.NewHandler(chatbot.NewEngine(store), sessions, nil, store, nil, nil)

	r := New(&Config{
		WebchatHandler: chatHandler,
		ChatRateLimit:  1,
		ChatRateBurst:  1,
	})

	req := httptest.NewRequest(http.MethodGet, "/chat/suggestions", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/chat/suggestions", nil))
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}

func TestUnknownRoute(t *testing.T) {
	r := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
