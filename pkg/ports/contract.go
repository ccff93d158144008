package ports

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weikanglim/OrderBot/pkg/domain"
)

// RunStateStoreContract runs a suite of tests verifying that a StateStore
// implementation adheres to the interface contract.
func RunStateStoreContract(t *testing.T, store StateStore) {
	ctx := context.Background()
	conversationID := "contract-test-" + time.Now().Format("20060102150405")

	t.Run("Save and Load", func(t *testing.T) {
		state := domain.NewConversationState()
		state.Stack = []domain.Frame{{Dialog: "order", Step: 1, Prompt: &domain.PromptState{
			Text:    "What would you like to order?",
			Choices: []string{"Fries", "Cancel"},
		}}}
		state.Order = domain.NewOrder()
		state.Order.AddItem(domain.Product{Name: "Fries", Price: 1.00})

		err := store.Save(ctx, conversationID, state)
		require.NoError(t, err, "Save should not return error")

		loaded, err := store.Load(ctx, conversationID)
		require.NoError(t, err, "Load should not return error")
		require.Len(t, loaded.Stack, 1)
		assert.Equal(t, "order", loaded.Stack[0].Dialog)
		assert.Equal(t, 1, loaded.Stack[0].Step)
		require.NotNil(t, loaded.Stack[0].Prompt)
		assert.Equal(t, []string{"Fries", "Cancel"}, loaded.Stack[0].Prompt.Choices)
		require.NotNil(t, loaded.Order)
		assert.InDelta(t, 1.00, loaded.Order.Total, 1e-9)
	})

	t.Run("Isolation", func(t *testing.T) {
		state := domain.NewConversationState()
		state.Order = domain.NewOrder()
		require.NoError(t, store.Save(ctx, conversationID, state))

		// Mutating the saved pointer must not leak into the store.
		state.Order.AddItem(domain.Product{Name: "Drink", Price: 1.00})

		loaded, err := store.Load(ctx, conversationID)
		require.NoError(t, err)
		assert.Empty(t, loaded.Order.Items)
	})

	t.Run("Load Non-Existent", func(t *testing.T) {
		_, err := store.Load(ctx, "non-existent-"+conversationID)
		assert.ErrorIs(t, err, domain.ErrConversationNotFound)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, conversationID, domain.NewConversationState()))

		err := store.Delete(ctx, conversationID)
		require.NoError(t, err, "Delete should not return error")

		_, err = store.Load(ctx, conversationID)
		assert.ErrorIs(t, err, domain.ErrConversationNotFound, "Load after Delete should return ErrConversationNotFound")
	})

	t.Run("List", func(t *testing.T) {
		id1 := conversationID + "-1"
		id2 := conversationID + "-2"
		_ = store.Save(ctx, id1, domain.NewConversationState())
		_ = store.Save(ctx, id2, domain.NewConversationState())

		defer func() {
			_ = store.Delete(ctx, id1)
			_ = store.Delete(ctx, id2)
		}()

		conversations, err := store.List(ctx)
		require.NoError(t, err)
		assert.Contains(t, conversations, id1)
		assert.Contains(t, conversations, id2)
	})
}
