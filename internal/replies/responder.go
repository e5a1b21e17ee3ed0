package replies

import (
	"context"
	"fmt"
	"strings"

	"github.com/DIMO-Network/ecobot/internal/messenger"
	"github.com/rs/zerolog"
)

const (
	GreetingTitle    = "¡Hello! How can I help you?"
	GreetingSubtitle = "Choose an option."
	GreetingImageURL = "https://cdn3.iconfinder.com/data/icons/customer-support-7/32/40_robot_bot_customer_help_support_automatic_reply-512.png"

	GoodbyeText         = "Good Bye my friend!"
	NotUnderstoodFormat = "Sorry I didn't get that: \n  \"%s\"."

	FileReceivedText   = "Thanks! We'll contact you shortly.\n*Welcome to EcoBOT!*"
	ResendResumeText   = "Please re-send us your resume on PDF or on a DOC format."
	AttachmentTypeFile = "file"

	ServicesText         = "*Team Enhacement:* Some inspiring text"
	AboutUsText          = "More inspiring text"
	OpenPositionsTitle   = "Open Positions"
	OpenPositionsSubtitle = "Choose an option"
	OpenPositionFormat   = "Open Position:%s. If you're intersted on this open position attach your resume to this conversation, write your phone and email and we'll contact you to start the process."
	UnknownOptionText    = "Sorry, I can't help you with that option yet."
)

// Postback payloads carried by the menu buttons.
const (
	PayloadServices      = "servicios"
	PayloadAboutUs       = "quees"
	PayloadOpenPositions = "trabajo"
	// PayloadPositionPrefix is followed by the index of the selected position.
	PayloadPositionPrefix = PayloadOpenPositions + "."

	openPositionCount = 3
)

// Responder picks the canned reply for an inbound event.
type Responder struct {
	intents *IntentMatcher
}

// NewResponder creates a Responder that classifies text with the given matcher.
func NewResponder(intents *IntentMatcher) *Responder {
	return &Responder{intents: intents}
}

// Respond returns the reply for event, or nil when the event needs no answer.
func (r *Responder) Respond(ctx context.Context, event *messenger.MessagingEvent) *messenger.Reply {
	switch {
	case event.Message != nil:
		return r.ForMessage(ctx, event.Message)
	case event.Postback != nil:
		return r.ForPostback(event.Postback)
	default:
		return nil
	}
}

// ForMessage answers text by intent and attachments by their type.
// A message with neither gets no reply.
func (r *Responder) ForMessage(ctx context.Context, msg *messenger.Message) *messenger.Reply {
	logger := zerolog.Ctx(ctx)

	if msg.Text != "" {
		intent, err := r.intents.Match(msg.NLP)
		if err != nil {
			logger.Warn().Err(err).Msg("Failed to match intent, falling back to default reply")
		}
		logger.Debug().Str("intent", intent).Msg("Classified text message")

		switch intent {
		case IntentGreeting:
			return GreetingMenu()
		case IntentGoodbye:
			return messenger.TextReply(GoodbyeText)
		default:
			return messenger.TextReply(fmt.Sprintf(NotUnderstoodFormat, msg.Text))
		}
	}

	if len(msg.Attachments) > 0 {
		attachment := msg.Attachments[0]
		logger.Debug().
			Str("type", attachment.Type).
			Str("url", attachment.Payload.URL).
			Msg("Received attachment")
		if attachment.Type == AttachmentTypeFile {
			return messenger.TextReply(FileReceivedText)
		}
		return messenger.TextReply(ResendResumeText)
	}

	return nil
}

// ForPostback resolves a button payload. Unknown payloads get UnknownOptionText.
func (r *Responder) ForPostback(postback *messenger.Postback) *messenger.Reply {
	payload := postback.Payload
	switch {
	case payload == PayloadOpenPositions:
		return OpenPositionsMenu()
	case payload == PayloadServices:
		return messenger.TextReply(ServicesText)
	case payload == PayloadAboutUs:
		return messenger.TextReply(AboutUsText)
	case strings.HasPrefix(payload, PayloadPositionPrefix):
		index := strings.TrimPrefix(payload, PayloadPositionPrefix)
		if i := strings.IndexByte(index, '.'); i >= 0 {
			index = index[:i]
		}
		return messenger.TextReply(fmt.Sprintf(OpenPositionFormat, index))
	default:
		return messenger.TextReply(UnknownOptionText)
	}
}

// GreetingMenu is the main menu shown when the user says hello.
func GreetingMenu() *messenger.Reply {
	buttons := []messenger.Button{
		postbackButton("Services", PayloadServices),
		postbackButton("About Us", PayloadAboutUs),
		postbackButton("Open Positions", PayloadOpenPositions),
	}
	return NewMenu(GreetingTitle, GreetingSubtitle, GreetingImageURL, buttons)
}

// OpenPositionsMenu lists the open positions, one button per position index.
func OpenPositionsMenu() *messenger.Reply {
	buttons := make([]messenger.Button, 0, openPositionCount)
	for i := range openPositionCount {
		buttons = append(buttons, postbackButton(
			fmt.Sprintf("Open position-%d", i),
			fmt.Sprintf("%s%d", PayloadPositionPrefix, i),
		))
	}
	return NewMenu(OpenPositionsTitle, OpenPositionsSubtitle, "", buttons)
}
