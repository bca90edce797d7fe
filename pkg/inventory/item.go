package inventory

import "fmt"

// Quality bounds enforced by the adjustment primitives
const (
	MinQuality = 0
	MaxQuality = 50
)

// Item is a single line of stock
type Item struct {
	Name    string `json:"name" yaml:"name" toml:"name"`
	SellIn  int    `json:"sell_in" yaml:"sell_in" toml:"sell_in"`
	Quality int    `json:"quality" yaml:"quality" toml:"quality"`
}

// NewItem builds an item as given. No validation is performed.
func NewItem(name string, sellIn, quality int) Item {
	return Item{Name: name, SellIn: sellIn, Quality: quality}
}

// Category resolves the item's category from its current name
func (i Item) Category() Category {
	return Classify(i.Name)
}

// String renders the item as "name, sellIn, quality"
func (i Item) String() string {
	return fmt.Sprintf("%s, %d, %d", i.Name, i.SellIn, i.Quality)
}

// increaseQuality adds one unless the item is already at or above the ceiling
func (i *Item) increaseQuality() {
	if i.Quality < MaxQuality {
		i.Quality++
	}
}

// decreaseQuality removes one unless the item is already at or below the floor
func (i *Item) decreaseQuality() {
	if i.Quality > MinQuality {
		i.Quality--
	}
}
