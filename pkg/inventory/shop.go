package inventory

import (
	"github.com/arthur-debert/gildedrose/pkg/logging"
	"github.com/rs/zerolog"
)

// Shop owns a stock list and advances it one day at a time
type Shop struct {
	items  []Item
	logger zerolog.Logger
}

// NewShop takes ownership of items; callers should not mutate the slice
// concurrently with Advance.
func NewShop(items []Item) *Shop {
	return &Shop{
		items:  items,
		logger: logging.GetLogger("inventory.shop"),
	}
}

// Items returns the shop's stock. The slice is shared, not copied.
func (s *Shop) Items() []Item {
	return s.items
}

// Advance runs a single aging pass over the shop's stock
func (s *Shop) Advance() {
	done := logging.LogOperationStart(s.logger, "advance")
	defer done()

	Advance(s.items)

	for _, item := range s.items {
		s.logger.Trace().
			Str("name", item.Name).
			Str("category", item.Category().String()).
			Int("sellIn", item.SellIn).
			Int("quality", item.Quality).
			Msg("Item aged")
	}
	s.logger.Debug().Int("items", len(s.items)).Msg("Stock advanced")
}
