package dialog

import (
	"context"
	"strings"

	"github.com/weikanglim/OrderBot/pkg/domain"
	"github.com/weikanglim/OrderBot/pkg/ports"
)

// TurnContext binds one inbound message to the conversation state it operates
// on and the responder that delivers replies. It is discarded at turn end;
// only State survives, through the store.
type TurnContext struct {
	// ConversationID keys the persisted state this turn mutates.
	ConversationID string

	// State is the loaded conversation state. Steps mutate it in place; the
	// router saves it unconditionally at turn end.
	State *domain.ConversationState

	// Responded reports whether any reply has been sent this turn.
	Responded bool

	input         string
	inputConsumed bool
	responder     ports.Responder
}

// NewTurnContext builds the context for one turn.
func NewTurnContext(conversationID, input string, state *domain.ConversationState, responder ports.Responder) *TurnContext {
	return &TurnContext{
		ConversationID: conversationID,
		State:          state,
		input:          input,
		responder:      responder,
	}
}

// Input returns the raw turn input without consuming it.
func (tc *TurnContext) Input() string {
	return tc.input
}

// takeInput hands the turn input to a continuation exactly once. A second
// continuation in the same turn sees no input, which makes resuming a waiting
// dialog twice a no-op.
func (tc *TurnContext) takeInput() (string, bool) {
	if tc.inputConsumed {
		return "", false
	}
	tc.inputConsumed = true
	if strings.TrimSpace(tc.input) == "" {
		return "", false
	}
	return tc.input, true
}

// Send delivers a reply and marks the turn as responded.
func (tc *TurnContext) Send(ctx context.Context, reply domain.Reply) error {
	if err := tc.responder.Send(ctx, reply); err != nil {
		return err
	}
	tc.Responded = true
	return nil
}

// SendText delivers a plain text reply.
func (tc *TurnContext) SendText(ctx context.Context, text string) error {
	return tc.Send(ctx, domain.TextReply(text))
}
