package cards

import (
	"sort"

	domaincards "github.com/preston-bernstein/team-scores-service/internal/domain/cards"
)

// Store defines the contract for reading the latest card per view.
type Store interface {
	ListCards() []domaincards.Card
	GetCard(viewKey string) (domaincards.Card, bool)
}

// Service exposes the latest cards to the HTTP layer.
type Service struct {
	store Store
	order map[string]int
}

// NewService constructs a Service. viewOrder fixes the listing order; keys
// not in it sort after, alphabetically.
func NewService(store Store, viewOrder []string) *Service {
	order := make(map[string]int, len(viewOrder))
	for i, key := range viewOrder {
		if _, ok := order[key]; !ok {
			order[key] = i
		}
	}
	return &Service{store: store, order: order}
}

// Cards returns the current cards in display order.
func (s *Service) Cards() []domaincards.Card {
	list := s.store.ListCards()
	sort.SliceStable(list, func(i, j int) bool {
		oi, iok := s.order[list[i].ViewKey]
		oj, jok := s.order[list[j].ViewKey]
		switch {
		case iok && jok:
			return oi < oj
		case iok != jok:
			return iok
		default:
			return list[i].ViewKey < list[j].ViewKey
		}
	})
	return list
}

// CardByKey returns a single card if present.
func (s *Service) CardByKey(viewKey string) (domaincards.Card, bool) {
	return s.store.GetCard(viewKey)
}
