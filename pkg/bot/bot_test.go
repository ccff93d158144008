package bot_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weikanglim/OrderBot/pkg/adapters/catalog"
	"github.com/weikanglim/OrderBot/pkg/adapters/memory"
	"github.com/weikanglim/OrderBot/pkg/adapters/nlu"
	"github.com/weikanglim/OrderBot/pkg/bot"
	"github.com/weikanglim/OrderBot/pkg/domain"
	"github.com/weikanglim/OrderBot/pkg/ports"
)

// recognizerFunc adapts a function to ports.Recognizer.
type recognizerFunc func(ctx context.Context, text string) (domain.Recognition, error)

func (f recognizerFunc) Recognize(ctx context.Context, text string) (domain.Recognition, error) {
	return f(ctx, text)
}

func noneRecognizer() ports.Recognizer {
	return recognizerFunc(func(ctx context.Context, text string) (domain.Recognition, error) {
		return domain.Recognition{TopIntent: domain.IntentNone, Confidence: 0.5}, nil
	})
}

func fixedRecognizer(rec domain.Recognition) ports.Recognizer {
	return recognizerFunc(func(ctx context.Context, text string) (domain.Recognition, error) {
		return rec, nil
	})
}

func newTestBot(t *testing.T, rec ports.Recognizer) (*bot.Bot, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	b, err := bot.New(store, catalog.NewStatic(), rec)
	require.NoError(t, err)
	return b, store
}

// sendMessage runs one message turn and returns the replies it produced.
func sendMessage(t *testing.T, b *bot.Bot, conversationID, text string) []domain.Reply {
	t.Helper()
	collector := &bot.ReplyCollector{}
	err := b.OnTurn(context.Background(), conversationID, domain.Activity{
		Type: domain.ActivityMessage,
		Text: text,
	}, collector)
	require.NoError(t, err)
	return collector.Replies()
}

func loadState(t *testing.T, store *memory.Store, conversationID string) *domain.ConversationState {
	t.Helper()
	state, err := store.Load(context.Background(), conversationID)
	require.NoError(t, err)
	return state
}

func TestNew_RequiresCollaborators(t *testing.T) {
	c := catalog.NewStatic()
	rec := noneRecognizer()
	store := memory.NewStore()

	_, err := bot.New(nil, c, rec)
	assert.ErrorIs(t, err, domain.ErrConfiguration)

	_, err = bot.New(store, nil, rec)
	assert.ErrorIs(t, err, domain.ErrConfiguration)

	_, err = bot.New(store, c, nil)
	assert.ErrorIs(t, err, domain.ErrConfiguration)
}

func TestOnTurn_LiteralOrderTrigger(t *testing.T) {
	b, store := newTestBot(t, noneRecognizer())

	replies := sendMessage(t, b, "conv", "  ORDER  ")
	require.Len(t, replies, 1)
	assert.Equal(t, "What would you like to order?", replies[0].Text)

	// The menu offers the catalog plus the interrupt commands.
	var labels []string
	for _, a := range replies[0].SuggestedActions {
		labels = append(labels, a.Title)
	}
	assert.Equal(t, []string{
		"Hamburger", "Cheeseburger", "Fries", "Drink",
		"More info", "Process order", "Help", "Cancel",
	}, labels)

	state := loadState(t, store, "conv")
	assert.True(t, state.ActiveDialog())
}

func TestOnTurn_HelpOnNoneIntent(t *testing.T) {
	b, _ := newTestBot(t, noneRecognizer())

	replies := sendMessage(t, b, "conv", "tell me a joke")
	require.Len(t, replies, 1)
	assert.Equal(t, "I'm sorry. I didn't quite understand that. Here are the list of things I can help you with:", replies[0].Text)
	require.Len(t, replies[0].SuggestedActions, 2)
	assert.Equal(t, "Order", replies[0].SuggestedActions[0].Value)
}

func TestOnTurn_ProductsIntent(t *testing.T) {
	b, store := newTestBot(t, fixedRecognizer(domain.Recognition{
		TopIntent:  domain.IntentProducts,
		Confidence: 0.9,
		Entities:   map[string][]string{domain.EntityProduct: {"Cheeseburger"}},
	}))

	replies := sendMessage(t, b, "conv", "how much is a cheeseburger?")
	require.Len(t, replies, 1)
	assert.Equal(t, "The price of Cheeseburger is $2.50.", replies[0].Text)

	// One-shot dialog: nothing left on the stack.
	state := loadState(t, store, "conv")
	assert.False(t, state.ActiveDialog())
}

func TestOnTurn_ProductsIntentUnknownItem(t *testing.T) {
	b, _ := newTestBot(t, fixedRecognizer(domain.Recognition{
		TopIntent: domain.IntentProducts,
		Entities:  map[string][]string{domain.EntityProduct: {"Sushi"}},
	}))

	replies := sendMessage(t, b, "conv", "how much is sushi?")
	require.Len(t, replies, 1)
	assert.Equal(t, "I'm sorry. Sushi does not match an existing item.", replies[0].Text)
}

func TestOnTurn_ProductsIntentWithoutEntityFallsBackToHelp(t *testing.T) {
	b, _ := newTestBot(t, fixedRecognizer(domain.Recognition{
		TopIntent: domain.IntentProducts,
	}))

	replies := sendMessage(t, b, "conv", "prices?")
	require.Len(t, replies, 1)
	assert.Contains(t, replies[0].Text, "I didn't quite understand")
}

func TestOnTurn_WelcomeOnMemberJoin(t *testing.T) {
	b, _ := newTestBot(t, noneRecognizer())

	collector := &bot.ReplyCollector{}
	err := b.OnTurn(context.Background(), "conv", domain.Activity{
		Type:      domain.ActivityConversationUpdate,
		Recipient: "bot-id",
		MembersAdded: []domain.Member{
			{ID: "bot-id", Name: "OrderBot"},
			{ID: "user-1", Name: "Alex"},
		},
	}, collector)
	require.NoError(t, err)

	replies := collector.Replies()
	require.Len(t, replies, 1, "the bot's own join must not trigger a welcome")
	assert.Equal(t, "Welcome, Alex. I can help you with the following things:", replies[0].Text)
	require.Len(t, replies[0].SuggestedActions, 2)
}

func TestOnTurn_RecognizerFailureSendsApologyAndSaves(t *testing.T) {
	failing := recognizerFunc(func(ctx context.Context, text string) (domain.Recognition, error) {
		return domain.Recognition{}, errors.New("service unavailable")
	})
	b, store := newTestBot(t, failing)

	collector := &bot.ReplyCollector{}
	err := b.OnTurn(context.Background(), "conv", domain.Activity{
		Type: domain.ActivityMessage,
		Text: "hello",
	}, collector)
	require.NoError(t, err, "turn errors are recovered, not surfaced")

	replies := collector.Replies()
	require.Len(t, replies, 1)
	assert.Contains(t, replies[0].Text, "something went wrong")

	// State was still persisted.
	_, err = store.Load(context.Background(), "conv")
	assert.NoError(t, err)
}

func TestOnTurn_FastPathShortCircuit(t *testing.T) {
	// Classifier already identified the product: the reply acknowledges the
	// add without first issuing the menu prompt.
	b, _ := newTestBot(t, fixedRecognizer(domain.Recognition{
		TopIntent:  domain.IntentOrder,
		Confidence: 0.9,
		Entities:   map[string][]string{domain.EntityProduct: {"Fries"}},
	}))

	replies := sendMessage(t, b, "conv", "I want fries")
	require.NotEmpty(t, replies)
	assert.Equal(t, "Added `Fries` to your order; your total is $1.00.", replies[0].Text)
	// The menu prompt follows the acknowledgment, never precedes it.
	require.Len(t, replies, 2)
	assert.Equal(t, "Would you like to add something else?", replies[1].Text)
}

func TestOnTurn_KeywordRecognizerWiring(t *testing.T) {
	store := memory.NewStore()
	c := catalog.NewStatic()
	b, err := bot.New(store, c, nlu.NewKeyword(c))
	require.NoError(t, err)

	collector := &bot.ReplyCollector{}
	err = b.OnTurn(context.Background(), "conv", domain.Activity{
		Type: domain.ActivityMessage,
		Text: "What is the price of a cheeseburger?",
	}, collector)
	require.NoError(t, err)

	replies := collector.Replies()
	require.Len(t, replies, 1)
	assert.Equal(t, "The price of Cheeseburger is $2.50.", replies[0].Text)
}
