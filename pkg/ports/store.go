package ports

import (
	"context"

	"github.com/weikanglim/OrderBot/pkg/domain"
)

// StateStore defines the interface for persisting conversation state between
// turns. Each inbound message is a stateless invocation; the store is how the
// bot reconstructs where a conversation was.
//
// Writes are last-write-wins per conversation. Callers needing stronger
// ordering must serialize turns upstream.
type StateStore interface {
	// Save persists the state for a given conversation ID.
	Save(ctx context.Context, conversationID string, state *domain.ConversationState) error

	// Load retrieves the state for a given conversation ID.
	// Returns domain.ErrConversationNotFound if the conversation does not exist.
	Load(ctx context.Context, conversationID string) (*domain.ConversationState, error)

	// Delete removes the state for a given conversation ID.
	Delete(ctx context.Context, conversationID string) error

	// List returns the IDs of conversations with persisted state.
	List(ctx context.Context) ([]string, error)
}
