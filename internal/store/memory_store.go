package store

import (
	"context"
	"sync"

	"github.com/preston-bernstein/team-scores-service/internal/domain/cards"
)

// MemoryStore keeps the latest card per view key in memory.
type MemoryStore struct {
	mu    sync.RWMutex
	cards map[string]cards.Card
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		cards: make(map[string]cards.Card),
	}
}

// ListCards returns a copy of the current cards.
func (s *MemoryStore) ListCards() []cards.Card {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]cards.Card, 0, len(s.cards))
	for _, c := range s.cards {
		result = append(result, c)
	}
	return result
}

// GetCard retrieves a card by view key.
func (s *MemoryStore) GetCard(viewKey string) (cards.Card, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.cards[viewKey]
	return c, ok
}

// SetCard replaces the card for its view key.
func (s *MemoryStore) SetCard(card cards.Card) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cards[card.ViewKey] = card
}

// Publish stores the card; it satisfies view.Sink.
func (s *MemoryStore) Publish(ctx context.Context, card cards.Card) error {
	_ = ctx
	s.SetCard(card)
	return nil
}
