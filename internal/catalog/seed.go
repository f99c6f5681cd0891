package catalog

import (
	"context"
	"strings"
)

// Names of the lists SeedDefaults writes.
const (
	ListFruits    = "fruits"
	ListPeople    = "people"
	ListCountries = "countries"
)

var defaultLists = map[string][]string{
	ListFruits: {
		"Apple", "Banana", "Cherry", "Dragon fruit", "Elderberry", "Fig", "Grape",
	},
	ListPeople: {
		"Ada Lovelace", "Alan Turing", "Barbara Liskov", "Dennis Ritchie",
		"Edsger Dijkstra", "Frances Allen", "Grace Hopper", "Ken Thompson",
		"Margaret Hamilton", "Rob Pike",
	},
	ListCountries: {
		"Argentina", "Australia", "Brazil", "Canada", "Chile", "Denmark",
		"Egypt", "Finland", "France", "Germany", "India", "Japan", "Kenya",
		"Mexico", "Netherlands", "New Zealand", "Norway", "Portugal", "Spain",
		"Sweden",
	},
}

// DefaultItems returns the built-in sample lists.
func DefaultItems() []Item {
	var items []Item
	for _, list := range []string{ListFruits, ListPeople, ListCountries} {
		for i, label := range defaultLists[list] {
			items = append(items, Item{
				List:     list,
				ID:       Slug(label),
				Label:    label,
				Position: i,
			})
		}
	}
	return items
}

// SeedDefaults replaces the built-in lists with their default content.
func (db *DB) SeedDefaults(ctx context.Context) error {
	for list := range defaultLists {
		if err := db.DeleteList(ctx, list); err != nil {
			return err
		}
	}
	return db.Put(ctx, DefaultItems()...)
}

// Slug derives an item id from its label.
func Slug(s string) string {
	return strings.ReplaceAll(strings.ToLower(s), " ", "-")
}
