package inventory

// Advance runs one aging pass over items, mutating each in place.
func Advance(items []Item) {
	for i := range items {
		age(&items[i])
	}
}

func age(item *Item) {
	switch item.Category() {
	case Legendary:
		item.increaseQuality()

	case AgedBrie:
		item.SellIn--
		item.increaseQuality()
		if item.SellIn < 0 {
			item.increaseQuality()
		}

	case BackstagePass:
		item.SellIn--
		if item.SellIn < 0 {
			item.Quality = 0
			return
		}
		item.Quality = min(MaxQuality, item.Quality+backstageStep(item.SellIn))

	default:
		item.SellIn--
		item.decreaseQuality()
		if item.SellIn < 0 {
			item.decreaseQuality()
		}
	}
}

// backstageStep is the daily gain for a pass with sellIn days left
func backstageStep(sellIn int) int {
	switch {
	case sellIn < 5:
		return 3
	case sellIn < 10:
		return 2
	default:
		return 1
	}
}
