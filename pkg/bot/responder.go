package bot

import (
	"context"

	"github.com/weikanglim/OrderBot/pkg/domain"
)

// ReplyCollector is a ports.Responder that buffers replies for transports
// that answer a turn with the full set of replies at once (HTTP, MCP).
type ReplyCollector struct {
	replies []domain.Reply
}

// Send buffers the reply.
func (c *ReplyCollector) Send(ctx context.Context, reply domain.Reply) error {
	c.replies = append(c.replies, reply)
	return nil
}

// Replies returns the buffered replies in send order.
func (c *ReplyCollector) Replies() []domain.Reply {
	return c.replies
}
