package callback

import (
	"github.com/line/line-bot-sdk-go/v8/linebot/webhook"
)

// Source types of an inbound event.
const (
	SourceUser  = "user"
	SourceGroup = "group"
	SourceRoom  = "room"
)

// InboundEvent is a text message received through the webhook.
type InboundEvent struct {
	// EventID is the webhookEventId, stable across redeliveries.
	EventID string
	// SenderID is the user that wrote the message, if LINE disclosed it.
	SenderID string
	// SourceType is one of SourceUser, SourceGroup or SourceRoom.
	SourceType string
	// ReplyToken addresses a single reply to this event. It expires quickly and cannot be reused.
	ReplyToken string
	// Text is the message text as sent by the user.
	Text string
}

// eventType names an event for logs and metrics.
func eventType(event webhook.EventInterface) string {
	switch event.(type) {
	case webhook.MessageEvent:
		return "message"
	case webhook.FollowEvent:
		return "follow"
	case webhook.UnfollowEvent:
		return "unfollow"
	case webhook.JoinEvent:
		return "join"
	case webhook.LeaveEvent:
		return "leave"
	case webhook.PostbackEvent:
		return "postback"
	default:
		return "other"
	}
}

// textEvent extracts an InboundEvent from event when it is a plain text message.
func textEvent(event webhook.EventInterface) (InboundEvent, bool) {
	msgEvent, ok := event.(webhook.MessageEvent)
	if !ok {
		return InboundEvent{}, false
	}
	text, ok := msgEvent.Message.(webhook.TextMessageContent)
	if !ok {
		return InboundEvent{}, false
	}
	inbound := InboundEvent{
		EventID:    msgEvent.WebhookEventId,
		ReplyToken: msgEvent.ReplyToken,
		Text:       text.Text,
	}
	switch source := msgEvent.Source.(type) {
	case webhook.UserSource:
		inbound.SourceType = SourceUser
		inbound.SenderID = source.UserId
	case webhook.GroupSource:
		inbound.SourceType = SourceGroup
		inbound.SenderID = source.UserId
	case webhook.RoomSource:
		inbound.SourceType = SourceRoom
		inbound.SenderID = source.UserId
	}
	return inbound, true
}
