package domain

import "time"

// MessageKind represents the kind of inbound message the conversation understands
type MessageKind string

const (
	// MessageKindText - Free text typed by the user
	MessageKindText MessageKind = "text"
	// MessageKindButtonReply - Tap on an interactive reply button
	MessageKindButtonReply MessageKind = "button_reply"
)

// InboundMessage is either a text body or a button reply id
type InboundMessage struct {
	Kind     MessageKind
	Body     string // For text
	ButtonID string // For button_reply
}

// TextMessage builds a text inbound message
func TextMessage(body string) InboundMessage {
	return InboundMessage{Kind: MessageKindText, Body: body}
}

// ButtonReplyMessage builds a button reply inbound message
func ButtonReplyMessage(id string) InboundMessage {
	return InboundMessage{Kind: MessageKindButtonReply, ButtonID: id}
}

// Value returns the text body or the button id, whichever the message carries
func (m InboundMessage) Value() string {
	if m.Kind == MessageKindButtonReply {
		return m.ButtonID
	}
	return m.Body
}

// InboundEvent represents a single parsed message delivered by the webhook
type InboundEvent struct {
	UserID        string // Sender wa_id
	MessageID     string // wamid, used for read receipts
	PhoneNumberID string // Business phone number that received the message
	ReceivedAt    time.Time
	Message       InboundMessage
}
