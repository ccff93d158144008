// Package http exposes the bot over a REST surface: message turns, state
// inspection, the product catalog, health and metrics.
package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/weikanglim/OrderBot/internal/logging"
	"github.com/weikanglim/OrderBot/pkg/bot"
	"github.com/weikanglim/OrderBot/pkg/domain"
	"github.com/weikanglim/OrderBot/pkg/ports"
)

// Server routes REST requests to the bot.
type Server struct {
	bot     *bot.Bot
	store   ports.StateStore
	catalog ports.Catalog
	logger  *slog.Logger
}

// Option configures the server.
type Option func(*Server)

// WithLogger sets the server logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) { s.logger = logger }
}

// NewHandler creates the HTTP handler for the bot. When registry is non-nil,
// /metrics serves it.
func NewHandler(b *bot.Bot, store ports.StateStore, catalog ports.Catalog, registry *prometheus.Registry, opts ...Option) http.Handler {
	s := &Server{
		bot:     b,
		store:   store,
		catalog: catalog,
		logger:  logging.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()
	r.Route("/v1", func(r chi.Router) {
		r.Get("/conversations", s.listConversations)
		r.Post("/conversations/{id}/messages", s.postMessage)
		r.Get("/conversations/{id}", s.getConversation)
		r.Delete("/conversations/{id}", s.deleteConversation)
		r.Get("/products", s.getProducts)
	})
	r.Get("/healthz", s.getHealth)
	if registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	}
	return r
}

// TurnRequest is the body of a message turn. Type defaults to "message".
type TurnRequest struct {
	Type         domain.ActivityType `json:"type,omitempty"`
	Text         string              `json:"text,omitempty"`
	MembersAdded []domain.Member     `json:"members_added,omitempty"`
	Recipient    string              `json:"recipient,omitempty"`
}

// TurnResponse carries the replies one turn produced, in send order.
type TurnResponse struct {
	Replies []domain.Reply `json:"replies"`
}

func (s *Server) postMessage(w http.ResponseWriter, r *http.Request) {
	conversationID := chi.URLParam(r, "id")

	var body TurnRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		s.logger.Warn("postMessage: invalid request body", "error", err)
		return
	}
	if body.Type == "" {
		body.Type = domain.ActivityMessage
	}

	collector := &bot.ReplyCollector{}
	err := s.bot.OnTurn(r.Context(), conversationID, domain.Activity{
		Type:         body.Type,
		Text:         body.Text,
		MembersAdded: body.MembersAdded,
		Recipient:    body.Recipient,
	}, collector)
	if err != nil {
		http.Error(w, fmt.Sprintf("Turn error: %v", err), http.StatusInternalServerError)
		s.logger.Error("turn failed", "conversation_id", conversationID, "error", err)
		return
	}

	replies := collector.Replies()
	if replies == nil {
		replies = []domain.Reply{}
	}
	s.writeJSON(w, TurnResponse{Replies: replies})
}

func (s *Server) getConversation(w http.ResponseWriter, r *http.Request) {
	conversationID := chi.URLParam(r, "id")

	state, err := s.store.Load(r.Context(), conversationID)
	if err != nil {
		if errors.Is(err, domain.ErrConversationNotFound) {
			http.Error(w, "Conversation not found", http.StatusNotFound)
			return
		}
		http.Error(w, fmt.Sprintf("Load error: %v", err), http.StatusInternalServerError)
		s.logger.Error("load failed", "conversation_id", conversationID, "error", err)
		return
	}
	s.writeJSON(w, state)
}

func (s *Server) deleteConversation(w http.ResponseWriter, r *http.Request) {
	conversationID := chi.URLParam(r, "id")

	if err := s.store.Delete(r.Context(), conversationID); err != nil {
		http.Error(w, fmt.Sprintf("Delete error: %v", err), http.StatusInternalServerError)
		s.logger.Error("delete failed", "conversation_id", conversationID, "error", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) listConversations(w http.ResponseWriter, r *http.Request) {
	ids, err := s.store.List(r.Context())
	if err != nil {
		http.Error(w, fmt.Sprintf("List error: %v", err), http.StatusInternalServerError)
		s.logger.Error("list failed", "error", err)
		return
	}
	if ids == nil {
		ids = []string{}
	}
	s.writeJSON(w, map[string][]string{"conversations": ids})
}

func (s *Server) getProducts(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string][]domain.Product{"products": s.catalog.ListProducts()})
}

func (s *Server) getHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]string{"status": "ok"})
}

func (s *Server) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("response encode failed", "error", err)
	}
}
