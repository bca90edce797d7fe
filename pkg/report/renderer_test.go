package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/arthur-debert/gildedrose/pkg/errors"
	"github.com/arthur-debert/gildedrose/pkg/inventory"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func twoDays() []Snapshot {
	items := []inventory.Item{
		inventory.NewItem("+5 Dexterity Vest", 10, 20),
		inventory.NewItem(inventory.NameAgedBrie, 0, 48),
		inventory.NewItem(inventory.NameSulfuras, 0, 80),
	}
	before := Capture(0, items)
	inventory.Advance(items)
	after := Capture(1, items)
	return []Snapshot{before, after}
}

func TestCaptureCopies(t *testing.T) {
	items := []inventory.Item{inventory.NewItem(inventory.NameBackstagePass, 5, 49)}
	snap := Capture(3, items)
	inventory.Advance(items)

	assert.Equal(t, 3, snap.Day)
	assert.Equal(t, []Row{{
		Name:     inventory.NameBackstagePass,
		SellIn:   5,
		Quality:  49,
		Category: "backstage-pass",
	}}, snap.Items)
}

func TestRowStyleName(t *testing.T) {
	tests := []struct {
		row  Row
		want string
	}{
		{Row{Name: "foo", SellIn: 1}, "Normal"},
		{Row{Name: inventory.NameAgedBrie, SellIn: 1}, "AgedBrie"},
		{Row{Name: inventory.NameBackstagePass, SellIn: 1}, "BackstagePass"},
		{Row{Name: inventory.NameSulfuras, SellIn: 1}, "Legendary"},
		{Row{Name: inventory.NameAgedBrie, SellIn: -1}, "Expired"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.row.StyleName())
		})
	}
}

func TestRenderText(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf, Options{Format: FormatText})

	require.NoError(t, r.Render(twoDays()...))

	want := strings.Join([]string{
		"-------- day 0 --------",
		"name, sellIn, quality",
		"+5 Dexterity Vest, 10, 20",
		"Aged Brie, 0, 48",
		"Sulfuras, Hand of Ragnaros, 0, 80",
		"",
		"-------- day 1 --------",
		"name, sellIn, quality",
		"+5 Dexterity Vest, 9, 19",
		"Aged Brie, -1, 50",
		"Sulfuras, Hand of Ragnaros, 0, 80",
		"",
		"",
	}, "\n")
	assert.Equal(t, want, buf.String())
}

func TestRenderTextWithCategory(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf, Options{Format: FormatText, ShowCategory: true})

	require.NoError(t, r.Render(twoDays()[0]))

	assert.Contains(t, buf.String(), "Aged Brie, 0, 48 [aged-brie]\n")
	assert.Contains(t, buf.String(), "+5 Dexterity Vest, 10, 20 [normal]\n")
}

func TestRenderTextEmpty(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf, Options{Format: FormatText})

	require.NoError(t, r.Render())
	assert.Empty(t, buf.String())
}

func TestRenderTerminal(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf, Options{Format: FormatTerminal})
	require.Equal(t, FormatTerminal, r.Format())

	require.NoError(t, r.Render(twoDays()...))

	out := buf.String()
	assert.Contains(t, out, "-------- day 1 --------")
	assert.Contains(t, out, "Aged Brie, -1, 50")
	assert.Contains(t, out, "\x1b[", "terminal output should carry ANSI styling")
}

func TestRenderNoColorDowngradesTerminal(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf, Options{Format: FormatTerminal, NoColor: true})

	assert.Equal(t, FormatText, r.Format())
	require.NoError(t, r.Render(twoDays()...))
	assert.NotContains(t, buf.String(), "\x1b[")
}

func TestRenderAutoOnBufferIsText(t *testing.T) {
	r := NewRenderer(&bytes.Buffer{}, Options{})
	assert.Equal(t, FormatText, r.Format())
}

func TestRenderJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewRenderer(&buf, Options{Format: FormatJSON}).Render(twoDays()...))

	var got document
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got.Days, 2)
	assert.Equal(t, Row{Name: inventory.NameAgedBrie, SellIn: -1, Quality: 50, Category: "aged-brie"}, got.Days[1].Items[1])
	assert.Contains(t, buf.String(), `"sell_in": -1`)
}

func TestRenderYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewRenderer(&buf, Options{Format: FormatYAML}).Render(twoDays()...))

	var got document
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got.Days, 2)
	assert.Equal(t, 1, got.Days[1].Day)
	assert.Equal(t, 19, got.Days[1].Items[0].Quality)
}

func TestRenderTOML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewRenderer(&buf, Options{Format: FormatTOML}).Render(twoDays()...))

	var got document
	require.NoError(t, toml.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got.Days, 2)
	assert.Equal(t, "legendary", got.Days[0].Items[2].Category)
	assert.Contains(t, buf.String(), "[[days.items]]")
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, assert.AnError
}

func TestRenderWriteFailure(t *testing.T) {
	err := NewRenderer(failingWriter{}, Options{Format: FormatJSON}).Render(twoDays()...)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrRender))
	assert.ErrorIs(t, err, assert.AnError)
}
