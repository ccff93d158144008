// Package bot implements the OrderBot: the per-turn router and the dialogs
// that drive order-taking conversations.
package bot

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/weikanglim/OrderBot/internal/logging"
	"github.com/weikanglim/OrderBot/pkg/dialog"
	"github.com/weikanglim/OrderBot/pkg/domain"
	"github.com/weikanglim/OrderBot/pkg/observability"
	"github.com/weikanglim/OrderBot/pkg/ports"
)

// Dialog IDs registered by the bot.
const (
	OrderDialogID        = "order"
	ProductQueryDialogID = "productQuery"
)

// apologyText is sent when a turn hits the top-level error handler.
const apologyText = "I'm sorry, something went wrong on my end. Let's try that again."

// Bot routes inbound activities: it resumes the active dialog when one is
// waiting, otherwise starts a dialog from the classified intent. State is
// loaded at turn start and saved unconditionally at turn end.
type Bot struct {
	set        *dialog.Set
	store      ports.StateStore
	catalog    ports.Catalog
	recognizer ports.Recognizer
	logger     *slog.Logger
	metrics    *observability.Metrics
	now        func() time.Time
}

// Option configures the Bot.
type Option func(*Bot)

// WithLogger sets the bot's logger.
func WithLogger(logger *slog.Logger) Option {
	return func(b *Bot) {
		b.logger = logger
	}
}

// WithMetrics enables metric recording.
func WithMetrics(m *observability.Metrics) Option {
	return func(b *Bot) {
		b.metrics = m
	}
}

// WithClock overrides the time source used to stamp placed orders.
func WithClock(now func() time.Time) Option {
	return func(b *Bot) {
		b.now = now
	}
}

// New wires a Bot from its collaborators. Every collaborator is required; a
// missing one is a configuration error that prevents handling any turn.
func New(store ports.StateStore, catalog ports.Catalog, recognizer ports.Recognizer, opts ...Option) (*Bot, error) {
	if store == nil {
		return nil, fmt.Errorf("state store is required: %w", domain.ErrConfiguration)
	}
	if catalog == nil {
		return nil, fmt.Errorf("catalog is required: %w", domain.ErrConfiguration)
	}
	if recognizer == nil {
		return nil, fmt.Errorf("recognizer is required: %w", domain.ErrConfiguration)
	}

	b := &Bot{
		store:      store,
		catalog:    catalog,
		recognizer: recognizer,
		logger:     logging.NewNop(),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(b)
	}

	b.set = dialog.NewSet()
	b.set.Add(b.orderDialog())
	b.set.Add(b.productQueryDialog())
	return b, nil
}

// OnTurn processes one inbound activity for a conversation. State is saved
// before returning, even when turn processing failed and was converted into
// an apology reply.
func (b *Bot) OnTurn(ctx context.Context, conversationID string, activity domain.Activity, responder ports.Responder) error {
	state, err := b.store.Load(ctx, conversationID)
	if err != nil {
		if err != domain.ErrConversationNotFound {
			return fmt.Errorf("failed to load conversation %s: %w", conversationID, err)
		}
		state = domain.NewConversationState()
	}

	tc := dialog.NewTurnContext(conversationID, activity.Text, state, responder)

	if err := b.processTurn(ctx, tc, activity); err != nil {
		// Recover locally: apologize, keep the conversation usable.
		b.logger.Error("turn processing failed", "conversation_id", conversationID, "error", err)
		b.metrics.ObserveTurnFailure()
		if sendErr := tc.SendText(ctx, apologyText); sendErr != nil {
			b.logger.Error("failed to send apology", "conversation_id", conversationID, "error", sendErr)
		}
	}

	if err := b.store.Save(ctx, conversationID, state); err != nil {
		return fmt.Errorf("failed to save conversation %s: %w", conversationID, err)
	}
	return nil
}

func (b *Bot) processTurn(ctx context.Context, tc *dialog.TurnContext, activity domain.Activity) error {
	switch activity.Type {
	case domain.ActivityMessage:
		return b.onMessage(ctx, tc, activity)
	case domain.ActivityConversationUpdate:
		return b.onConversationUpdate(ctx, tc, activity)
	default:
		b.logger.Debug("ignoring activity", "type", activity.Type)
		return nil
	}
}

func (b *Bot) onMessage(ctx context.Context, tc *dialog.TurnContext, activity domain.Activity) error {
	dc := b.set.CreateContext(tc)
	utterance := strings.ToLower(strings.TrimSpace(activity.Text))

	// Literal trigger bypasses classification when no dialog is active.
	if utterance == "order" && !tc.State.ActiveDialog() {
		b.metrics.ObserveTurn(domain.IntentOrder)
		b.metrics.ObserveDialogBegin(OrderDialogID)
		_, err := dc.Begin(ctx, OrderDialogID, nil)
		return err
	}

	rec, err := b.recognizer.Recognize(ctx, activity.Text)
	if err != nil {
		return fmt.Errorf("failed to recognize intent: %w", err)
	}
	b.metrics.ObserveTurn(rec.TopIntent)
	b.stageOrderEntity(tc.State, rec)

	res, err := dc.Continue(ctx)
	if err != nil {
		return err
	}

	if !tc.Responded {
		switch res.Status {
		case dialog.StatusEmpty:
			return b.beginFromIntent(ctx, dc, tc, rec)

		case dialog.StatusWaiting:
			// The active dialog is waiting for a response from the user.

		case dialog.StatusComplete:
			return dc.End(ctx)

		default:
			b.logger.Warn("unexpected dialog status, resetting stack", "status", res.Status)
			return dc.CancelAll(ctx)
		}
	}
	return nil
}

// beginFromIntent starts a dialog for a turn no active dialog consumed.
func (b *Bot) beginFromIntent(ctx context.Context, dc *dialog.Context, tc *dialog.TurnContext, rec domain.Recognition) error {
	switch rec.TopIntent {
	case domain.IntentOrder:
		b.metrics.ObserveDialogBegin(OrderDialogID)
		_, err := dc.Begin(ctx, OrderDialogID, nil)
		return err

	case domain.IntentProducts:
		name, ok := rec.Entity(domain.EntityProduct)
		if !ok {
			return b.sendHelp(ctx, tc)
		}
		b.metrics.ObserveDialogBegin(ProductQueryDialogID)
		_, err := dc.Begin(ctx, ProductQueryDialogID, ProductQuery{ProductName: name})
		return err

	default:
		return b.sendHelp(ctx, tc)
	}
}

// stageOrderEntity stores a recognized product name on the order so the next
// order-dialog step can consume it without re-prompting.
func (b *Bot) stageOrderEntity(state *domain.ConversationState, rec domain.Recognition) {
	if rec.TopIntent != domain.IntentOrder {
		return
	}
	name, ok := rec.Entity(domain.EntityProduct)
	if !ok {
		return
	}
	if state.Order == nil {
		state.Order = domain.NewOrder()
	}
	state.Order.PendingItem = name
}

func (b *Bot) onConversationUpdate(ctx context.Context, tc *dialog.TurnContext, activity domain.Activity) error {
	for _, member := range activity.MembersAdded {
		if member.ID == activity.Recipient {
			continue
		}
		if err := b.sendWelcome(ctx, tc, member); err != nil {
			return err
		}
	}
	return nil
}

func (b *Bot) sendWelcome(ctx context.Context, tc *dialog.TurnContext, member domain.Member) error {
	name := member.Name
	if name == "" {
		name = member.ID
	}
	return tc.Send(ctx, domain.Reply{
		Text:             fmt.Sprintf("Welcome, %s. I can help you with the following things:", name),
		SuggestedActions: defaultActions(),
	})
}

func (b *Bot) sendHelp(ctx context.Context, tc *dialog.TurnContext) error {
	return tc.Send(ctx, domain.Reply{
		Text:             "I'm sorry. I didn't quite understand that. Here are the list of things I can help you with:",
		SuggestedActions: defaultActions(),
	})
}

func defaultActions() []domain.SuggestedAction {
	return []domain.SuggestedAction{
		{Title: "Order", Value: "Order"},
		{Title: "Ask for the price of an item", Value: "What is the price of a cheeseburger?"},
	}
}

// ProductsReply renders the catalog as a reply with one quick action per
// product, each submitting an order for it.
func (b *Bot) ProductsReply() domain.Reply {
	reply := domain.Reply{Text: "Here are the products available:"}
	for _, p := range b.catalog.ListProducts() {
		reply.SuggestedActions = append(reply.SuggestedActions, domain.SuggestedAction{
			Title: p.String(),
			Value: "Order " + p.Name,
		})
	}
	return reply
}
