package report

import (
	"github.com/arthur-debert/gildedrose/pkg/inventory"
)

// Row is one item as it stood when a snapshot was taken
type Row struct {
	Name     string `json:"name" yaml:"name" toml:"name"`
	SellIn   int    `json:"sell_in" yaml:"sell_in" toml:"sell_in"`
	Quality  int    `json:"quality" yaml:"quality" toml:"quality"`
	Category string `json:"category" yaml:"category" toml:"category"`
}

// String renders the row the same way as inventory.Item
func (r Row) String() string {
	return inventory.NewItem(r.Name, r.SellIn, r.Quality).String()
}

// StyleName picks the terminal style for the row
func (r Row) StyleName() string {
	if r.SellIn < 0 {
		return "Expired"
	}
	switch inventory.Classify(r.Name) {
	case inventory.AgedBrie:
		return "AgedBrie"
	case inventory.BackstagePass:
		return "BackstagePass"
	case inventory.Legendary:
		return "Legendary"
	default:
		return "Normal"
	}
}

// Snapshot is the whole stock on a given day
type Snapshot struct {
	Day   int   `json:"day" yaml:"day" toml:"day"`
	Items []Row `json:"items" yaml:"items" toml:"items"`
}

// Capture copies items into a snapshot so later passes do not alter it
func Capture(day int, items []inventory.Item) Snapshot {
	rows := make([]Row, 0, len(items))
	for i := range items {
		rows = append(rows, Row{
			Name:     items[i].Name,
			SellIn:   items[i].SellIn,
			Quality:  items[i].Quality,
			Category: items[i].Category().String(),
		})
	}
	return Snapshot{Day: day, Items: rows}
}
