package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weikanglim/OrderBot/pkg/adapters/catalog"
	"github.com/weikanglim/OrderBot/pkg/adapters/memory"
	"github.com/weikanglim/OrderBot/pkg/adapters/nlu"
	"github.com/weikanglim/OrderBot/pkg/bot"
	"github.com/weikanglim/OrderBot/pkg/domain"
)

func newTestHandler(t *testing.T) http.Handler {
	t.Helper()
	store := memory.NewStore()
	c := catalog.NewStatic()
	b, err := bot.New(store, c, nlu.NewKeyword(c))
	require.NoError(t, err)
	return NewHandler(b, store, c, prometheus.NewRegistry())
}

func postMessage(t *testing.T, handler http.Handler, conversationID, text string) TurnResponse {
	t.Helper()
	body := `{"text": ` + jsonString(text) + `}`
	req := httptest.NewRequest("POST", "/v1/conversations/"+conversationID+"/messages", strings.NewReader(body))
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp TurnResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	return resp
}

func jsonString(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}

func TestPostMessage_RunsTurn(t *testing.T) {
	handler := newTestHandler(t)

	resp := postMessage(t, handler, "conv-1", "order")
	require.Len(t, resp.Replies, 1)
	assert.Equal(t, "What would you like to order?", resp.Replies[0].Text)

	resp = postMessage(t, handler, "conv-1", "Cheeseburger")
	require.Len(t, resp.Replies, 2)
	assert.Equal(t, "Added `Cheeseburger` to your order; your total is $2.50.", resp.Replies[0].Text)
}

func TestPostMessage_ConversationUpdate(t *testing.T) {
	handler := newTestHandler(t)

	body := `{"type": "conversation_update", "recipient": "bot", "members_added": [{"id": "bot"}, {"id": "u1", "name": "Alex"}]}`
	req := httptest.NewRequest("POST", "/v1/conversations/conv-1/messages", strings.NewReader(body))
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp TurnResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	require.Len(t, resp.Replies, 1)
	assert.Equal(t, "Welcome, Alex. I can help you with the following things:", resp.Replies[0].Text)
}

func TestPostMessage_InvalidBody(t *testing.T) {
	handler := newTestHandler(t)

	req := httptest.NewRequest("POST", "/v1/conversations/conv-1/messages", strings.NewReader("{not json"))
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetConversation(t *testing.T) {
	handler := newTestHandler(t)

	req := httptest.NewRequest("GET", "/v1/conversations/missing", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)

	postMessage(t, handler, "conv-1", "order")

	req = httptest.NewRequest("GET", "/v1/conversations/conv-1", nil)
	w = httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var state domain.ConversationState
	require.NoError(t, json.NewDecoder(w.Body).Decode(&state))
	assert.True(t, state.ActiveDialog())
}

func TestDeleteConversation(t *testing.T) {
	handler := newTestHandler(t)
	postMessage(t, handler, "conv-1", "order")

	req := httptest.NewRequest("DELETE", "/v1/conversations/conv-1", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)

	req = httptest.NewRequest("GET", "/v1/conversations/conv-1", nil)
	w = httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListConversations(t *testing.T) {
	handler := newTestHandler(t)
	postMessage(t, handler, "conv-a", "order")
	postMessage(t, handler, "conv-b", "order")

	req := httptest.NewRequest("GET", "/v1/conversations", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string][]string
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.ElementsMatch(t, []string{"conv-a", "conv-b"}, resp["conversations"])
}

func TestGetProducts(t *testing.T) {
	handler := newTestHandler(t)

	req := httptest.NewRequest("GET", "/v1/products", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string][]domain.Product
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	require.Len(t, resp["products"], 4)
	assert.Equal(t, "Hamburger", resp["products"][0].Name)
}

func TestGetHealth(t *testing.T) {
	handler := newTestHandler(t)

	req := httptest.NewRequest("GET", "/healthz", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}

func TestMetricsEndpoint(t *testing.T) {
	handler := newTestHandler(t)

	req := httptest.NewRequest("GET", "/metrics", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
