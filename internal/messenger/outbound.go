package messenger

const (
	AttachmentTypeTemplate = "template"
	TemplateTypeGeneric    = "generic"
	ButtonTypePostback     = "postback"
)

// SendRequest is the body of a Send API call.
type SendRequest struct {
	Recipient Participant `json:"recipient"`
	Message   *Reply      `json:"message"`
}

// Reply is the message the page sends back: either plain text or a template attachment.
type Reply struct {
	Text       string           `json:"text,omitempty"`
	Attachment *ReplyAttachment `json:"attachment,omitempty"`
}

type ReplyAttachment struct {
	Type    string          `json:"type"`
	Payload TemplatePayload `json:"payload"`
}

type TemplatePayload struct {
	TemplateType string    `json:"template_type"`
	Elements     []Element `json:"elements"`
}

// Element is a single card of a generic template.
type Element struct {
	Title    string   `json:"title"`
	Subtitle string   `json:"subtitle"`
	ImageURL string   `json:"image_url"`
	Buttons  []Button `json:"buttons,omitempty"`
}

// Button is a template button. Payload is the opaque token returned in the postback.
type Button struct {
	Type    string `json:"type"`
	Title   string `json:"title"`
	Payload string `json:"payload"`
}

// TextReply builds a plain text reply.
func TextReply(text string) *Reply {
	return &Reply{Text: text}
}
