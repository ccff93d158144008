package domain

// ActivityType distinguishes the inbound events the bot handles.
type ActivityType string

const (
	// ActivityMessage is a user utterance.
	ActivityMessage ActivityType = "message"

	// ActivityConversationUpdate signals membership changes (e.g. user joined).
	ActivityConversationUpdate ActivityType = "conversation_update"
)

// Member identifies a conversation participant.
type Member struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
}

// Activity is one inbound event for a conversation turn.
type Activity struct {
	Type ActivityType `json:"type"`
	Text string       `json:"text,omitempty"`

	// MembersAdded lists participants that joined (conversation_update only).
	MembersAdded []Member `json:"members_added,omitempty"`

	// Recipient is the bot's own member ID, used to skip self-join events.
	Recipient string `json:"recipient,omitempty"`
}

// SuggestedAction is a quick-reply rendered alongside a message: a label the
// user sees and the value submitted when it is picked.
type SuggestedAction struct {
	Title string `json:"title"`
	Value string `json:"value"`
}

// Reply is one outbound message.
type Reply struct {
	Text             string            `json:"text"`
	SuggestedActions []SuggestedAction `json:"suggested_actions,omitempty"`
}

// TextReply builds a plain reply with no suggested actions.
func TextReply(text string) Reply {
	return Reply{Text: text}
}

// Recognizer intents consumed by the turn router.
const (
	IntentOrder    = "Order"
	IntentProducts = "Products"
	IntentNone     = "None"

	// EntityProduct is the entity key carrying extracted product names.
	EntityProduct = "product"
)

// Recognition is the result of intent classification for one utterance.
type Recognition struct {
	TopIntent  string              `json:"top_intent"`
	Confidence float64             `json:"confidence"`
	Entities   map[string][]string `json:"entities,omitempty"`
}

// Entity returns the first value extracted for the given entity key.
func (r Recognition) Entity(key string) (string, bool) {
	values := r.Entities[key]
	if len(values) == 0 {
		return "", false
	}
	return values[0], true
}
