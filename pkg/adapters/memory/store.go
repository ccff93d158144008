// Package memory provides an in-memory conversation state store.
package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/weikanglim/OrderBot/pkg/domain"
)

// Store implements ports.StateStore in memory.
// Safe for concurrent use.
type Store struct {
	data map[string][]byte
	mu   sync.RWMutex
}

// NewStore creates a new in-memory store.
func NewStore() *Store {
	return &Store{
		data: make(map[string][]byte),
	}
}

// Save persists the state in memory. State is serialized on write so callers
// cannot mutate stored state through retained pointers, mirroring what a real
// backend does.
func (s *Store) Save(ctx context.Context, conversationID string, state *domain.ConversationState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to marshal state: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[conversationID] = data
	return nil
}

// Load retrieves the state from memory.
func (s *Store) Load(ctx context.Context, conversationID string) (*domain.ConversationState, error) {
	s.mu.RLock()
	data, ok := s.data[conversationID]
	s.mu.RUnlock()

	if !ok {
		return nil, domain.ErrConversationNotFound
	}

	var state domain.ConversationState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("failed to unmarshal state: %w", err)
	}
	return &state, nil
}

// Delete removes the state.
func (s *Store) Delete(ctx context.Context, conversationID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, conversationID)
	return nil
}

// List returns conversations with persisted state.
func (s *Store) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	conversations := make([]string, 0, len(s.data))
	for id := range s.data {
		conversations = append(conversations, id)
	}
	return conversations, nil
}
