package replies

import "github.com/DIMO-Network/ecobot/internal/messenger"

// NewMenu builds a single-element generic template. Buttons are copied in order,
// keeping only their type, title and payload. The buttons key is omitted when
// no buttons are given.
func NewMenu(title, subtitle, imageURL string, buttons []messenger.Button) *messenger.Reply {
	element := messenger.Element{
		Title:    title,
		Subtitle: subtitle,
		ImageURL: imageURL,
	}

	if len(buttons) > 0 {
		element.Buttons = make([]messenger.Button, 0, len(buttons))
		for _, b := range buttons {
			element.Buttons = append(element.Buttons, messenger.Button{
				Type:    b.Type,
				Title:   b.Title,
				Payload: b.Payload,
			})
		}
	}

	return &messenger.Reply{
		Attachment: &messenger.ReplyAttachment{
			Type: messenger.AttachmentTypeTemplate,
			Payload: messenger.TemplatePayload{
				TemplateType: messenger.TemplateTypeGeneric,
				Elements:     []messenger.Element{element},
			},
		},
	}
}

func postbackButton(title, payload string) messenger.Button {
	return messenger.Button{
		Type:    messenger.ButtonTypePostback,
		Title:   title,
		Payload: payload,
	}
}
