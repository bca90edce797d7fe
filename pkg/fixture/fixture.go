// Package fixture provides the built-in demo stock used by the CLI.
package fixture

import (
	_ "embed"

	"github.com/arthur-debert/gildedrose/pkg/errors"
	"github.com/arthur-debert/gildedrose/pkg/inventory"
	toml "github.com/pelletier/go-toml/v2"
)

//go:embed stock.toml
var defaultStock []byte

type document struct {
	Items []inventory.Item `toml:"items"`
}

// Default returns a fresh copy of the built-in stock
func Default() ([]inventory.Item, error) {
	return Decode(defaultStock)
}

// MustDefault is Default for callers that cannot recover from a broken build
func MustDefault() []inventory.Item {
	items, err := Default()
	if err != nil {
		panic(err)
	}
	return items
}

// Decode reads a stock document of [[items]] tables
func Decode(data []byte) ([]inventory.Item, error) {
	var doc document
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, errors.ErrFixtureLoad, "failed to decode stock")
	}
	return doc.Items, nil
}
