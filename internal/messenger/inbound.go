// Package messenger holds the wire types exchanged with the Messenger Platform.
package messenger

// ObjectPage is the object value of callbacks delivered for a page subscription.
const ObjectPage = "page"

// Callback is the body of a POST to the webhook.
type Callback struct {
	// Object is the subscription type the callback originates from.
	Object string `json:"object"`
	// Entry holds one item per page the batch carries events for.
	Entry []Entry `json:"entry"`
}

// Entry groups the events delivered for a single page.
type Entry struct {
	ID        string           `json:"id"`
	Time      int64            `json:"time"`
	Messaging []MessagingEvent `json:"messaging"`
}

// MessagingEvent is one message or postback notification.
// Exactly one of Message and Postback is expected to be set.
type MessagingEvent struct {
	Sender    Participant `json:"sender"`
	Recipient Participant `json:"recipient"`
	Timestamp int64       `json:"timestamp"`
	Message   *Message    `json:"message,omitempty"`
	Postback  *Postback   `json:"postback,omitempty"`
}

// Participant identifies a user (PSID) or a page.
type Participant struct {
	ID string `json:"id"`
}

// Message is a message sent by the user to the page.
type Message struct {
	MID         string       `json:"mid"`
	// IsEcho is set on copies of messages the page itself sent.
	IsEcho      bool         `json:"is_echo,omitempty"`
	Text        string       `json:"text,omitempty"`
	Attachments []Attachment `json:"attachments,omitempty"`
	NLP         *NLP         `json:"nlp,omitempty"`
}

// Attachment is a file, image, audio, video or location sent by the user.
type Attachment struct {
	Type    string            `json:"type"`
	Payload AttachmentPayload `json:"payload"`
}

type AttachmentPayload struct {
	URL string `json:"url,omitempty"`
}

// NLP is the built-in NLP annotation the platform attaches to text messages.
type NLP struct {
	Entities map[string][]Entity `json:"entities"`
}

// Entity is a single detection for an intent, ordered by the platform.
type Entity struct {
	Confidence float64 `json:"confidence"`
	Value      any     `json:"value,omitempty"`
}

// FirstEntity returns the first entity detected for name, if any.
func (n *NLP) FirstEntity(name string) (Entity, bool) {
	if n == nil || n.Entities == nil {
		return Entity{}, false
	}
	entities := n.Entities[name]
	if len(entities) == 0 {
		return Entity{}, false
	}
	return entities[0], true
}

// Postback is sent when the user taps a postback button.
type Postback struct {
	Title   string `json:"title,omitempty"`
	Payload string `json:"payload"`
}
