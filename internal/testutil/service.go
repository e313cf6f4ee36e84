package testutil

import (
	appcards "github.com/preston-bernstein/team-scores-service/internal/app/cards"
	"github.com/preston-bernstein/team-scores-service/internal/domain/cards"
	"github.com/preston-bernstein/team-scores-service/internal/store"
)

// NewServiceWithCards builds a card service backed by an in-memory store preloaded with cards.
// Listing order follows the order the cards are given in.
func NewServiceWithCards(c ...cards.Card) (*appcards.Service, *store.MemoryStore) {
	ms := store.NewMemoryStore()
	order := make([]string, 0, len(c))
	for _, card := range c {
		ms.SetCard(card)
		order = append(order, card.ViewKey)
	}
	return appcards.NewService(ms, order), ms
}
