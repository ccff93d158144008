package domain

import "errors"

// ErrConversationNotFound is returned when a conversation ID has no persisted state.
var ErrConversationNotFound = errors.New("conversation not found")

// ErrUnknownDialog is returned when a begin/replace references an unregistered
// dialog ID. This is a programming error in the wiring, not a user error.
var ErrUnknownDialog = errors.New("unknown dialog")

// ErrStepProtocol is returned when a dialog step returns no recognized action.
// It indicates a bug in the dialog definition.
var ErrStepProtocol = errors.New("dialog step returned no action")

// ErrProductNotFound is returned when a product lookup matches nothing.
// Dialogs recover from it locally; it never reaches the caller.
var ErrProductNotFound = errors.New("product not found")

// ErrConfiguration is returned when a required service or setting is missing
// at startup. The bot cannot handle any turn in that case.
var ErrConfiguration = errors.New("invalid configuration")
