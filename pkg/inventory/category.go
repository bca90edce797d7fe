package inventory

// Item names that select a non-default category. Matching is exact.
const (
	NameAgedBrie      = "Aged Brie"
	NameBackstagePass = "Backstage passes to a TAFKAL80ETC concert"
	NameSulfuras      = "Sulfuras, Hand of Ragnaros"
)

// Category decides which aging rule applies to an item
type Category int

const (
	// Normal items lose quality over time
	Normal Category = iota
	// AgedBrie gains quality over time
	AgedBrie
	// BackstagePass gains quality up to the event, then is worthless
	BackstagePass
	// Legendary items never have to be sold
	Legendary
)

// Categories lists every category in declaration order
var Categories = []Category{Normal, AgedBrie, BackstagePass, Legendary}

// String returns the kebab-case name used in reports and styles
func (c Category) String() string {
	switch c {
	case AgedBrie:
		return "aged-brie"
	case BackstagePass:
		return "backstage-pass"
	case Legendary:
		return "legendary"
	default:
		return "normal"
	}
}

// Classify resolves an item name to its category. Unknown names are Normal.
func Classify(name string) Category {
	switch name {
	case NameAgedBrie:
		return AgedBrie
	case NameBackstagePass:
		return BackstagePass
	case NameSulfuras:
		return Legendary
	default:
		return Normal
	}
}
