package cards

import "sort"

// Deck is the ordered in-memory card list. Only the Controller mutates it.
type Deck struct {
	cards []Card
}

// Add appends a card.
func (d *Deck) Add(c Card) {
	d.cards = append(d.cards, c)
}

// Delete removes the card with the given id.
func (d *Deck) Delete(id string) bool {
	for i, c := range d.cards {
		if c.ID == id {
			d.cards = append(d.cards[:i:i], d.cards[i+1:]...)
			return true
		}
	}
	return false
}

// Get returns the card with the given id.
func (d *Deck) Get(id string) (Card, bool) {
	for _, c := range d.cards {
		if c.ID == id {
			return c, true
		}
	}
	return Card{}, false
}

// Len returns the number of cards.
func (d *Deck) Len() int {
	return len(d.cards)
}

// All returns the cards in insertion order.
func (d *Deck) All() []Card {
	return append([]Card(nil), d.cards...)
}

// Sorted returns the cards by descending priority; ties keep insertion order.
func (d *Deck) Sorted() []Card {
	return SortByPriority(d.cards)
}

// SortByPriority returns a stably sorted copy, highest priority first.
func SortByPriority(in []Card) []Card {
	out := append([]Card(nil), in...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Priority > out[j].Priority
	})
	return out
}
