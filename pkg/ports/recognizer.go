package ports

import (
	"context"

	"github.com/weikanglim/OrderBot/pkg/domain"
)

// Recognizer classifies a user utterance into an intent plus extracted
// entities. The router consumes the Order, Products and None intents.
type Recognizer interface {
	Recognize(ctx context.Context, text string) (domain.Recognition, error)
}

// Responder delivers replies to the user for the current turn.
type Responder interface {
	Send(ctx context.Context, reply domain.Reply) error
}
