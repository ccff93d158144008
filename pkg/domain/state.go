package domain

// PromptState records the prompt a suspended dialog step issued, so the next
// turn can validate the answer and re-issue the retry text on a mismatch.
type PromptState struct {
	Text    string   `json:"text"`
	Retry   string   `json:"retry,omitempty"`
	Choices []string `json:"choices,omitempty"`
}

// Frame is one activation record on the dialog stack: which dialog is active,
// which step index last ran, and the prompt it is waiting on (if any).
type Frame struct {
	Dialog string       `json:"dialog"`
	Step   int          `json:"step"`
	Prompt *PromptState `json:"prompt,omitempty"`
}

// ConversationState is the durable unit persisted per conversation: the dialog
// stack plus the cart. It is loaded at turn start and saved at turn end.
type ConversationState struct {
	Stack []Frame `json:"stack,omitempty"`
	Order *Order  `json:"order,omitempty"`
}

// NewConversationState creates an empty state: no active dialog, no cart.
func NewConversationState() *ConversationState {
	return &ConversationState{}
}

// ActiveDialog reports whether a dialog is currently on the stack.
func (s *ConversationState) ActiveDialog() bool {
	return len(s.Stack) > 0
}
