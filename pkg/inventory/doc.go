// Package inventory implements the nightly aging pass over a shop's stock.
//
// Every item carries a name, a sell-in countdown and a quality score. The
// name selects one of a closed set of categories, and the category decides
// how a single pass moves both numbers:
//
//   - Normal: sell-in drops by one, quality drops by one, twice as fast once
//     the sell-by date has passed. Quality never goes below zero.
//   - Aged Brie: quality rises by one, twice as fast once expired. Quality
//     never goes above fifty.
//   - Backstage passes: quality rises by one, two or three as the concert
//     gets closer, and drops to zero once it has happened.
//   - Legendary (Sulfuras): sell-in never moves; quality only creeps up to
//     fifty and is otherwise left as supplied.
//
// Names that match none of the above are treated as Normal items.
//
// The pass itself (Advance) is a pure in-memory transformation. Shop wraps a
// collection for callers that want logging around each pass.
package inventory
