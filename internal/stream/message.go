package stream

import (
	"time"

	"github.com/preston-bernstein/team-scores-service/internal/domain/cards"
)

// MessageType tags frames sent to dashboard clients.
type MessageType string

const (
	MessageTypeCard MessageType = "card"
)

// Message is the JSON frame written to websocket clients.
type Message struct {
	Type      MessageType `json:"type"`
	Card      *cards.Card `json:"card,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

func cardMessage(card cards.Card) Message {
	c := card
	return Message{Type: MessageTypeCard, Card: &c, Timestamp: card.UpdatedAt}
}
