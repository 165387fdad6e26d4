package tui

import (
	"fmt"
	"math/rand"
)

// Item is one row of the demo dataset: a title line plus zero or more
// detail lines, so rendered heights vary from item to item the way real
// feeds (logs, commit lists, chat transcripts) do.
type Item struct {
	// Index is the item's position at generation time, embedded in the
	// rendered output so windowing bugs are visible at a glance.
	Index int

	// Title is the single-line summary.
	Title string

	// Details are extra rendered lines under the title.
	Details []string
}

// detailPhrases seeds the generated detail lines.
var detailPhrases = []string{
	"measured after first render",
	"estimated until visible",
	"offsets served from the position index",
	"anchor held during remeasure",
	"window computed in log time",
}

// GenerateItems builds a deterministic synthetic dataset of count items
// with variable heights: roughly two thirds are single-line, the rest
// carry one to four detail lines.
func GenerateItems(count int, seed int64) []Item {
	rng := rand.New(rand.NewSource(seed))
	items := make([]Item, count)
	for i := range items {
		items[i] = Item{
			Index: i,
			Title: fmt.Sprintf("item %d", i),
		}
		if rng.Intn(3) == 0 {
			n := 1 + rng.Intn(4)
			details := make([]string, n)
			for j := range details {
				details[j] = detailPhrases[rng.Intn(len(detailPhrases))]
			}
			items[i].Details = details
		}
	}
	return items
}
