package content

import "sort"

type Direction string

// Id prefixes of records owned by a lesson or a quiz.
const (
	CardIDPrefix     = "card_"
	QuestionIDPrefix = "question_"
)

const (
	DirectionUp   Direction = "up"
	DirectionDown Direction = "down"
)

// DefaultCardStyling is applied to new cards.
func DefaultCardStyling() CardStyling {
	return CardStyling{
		BackgroundColor: "#FFFFFF",
		TextColor:       "#1F2937",
		FontSize:        "medium",
		TextAlign:       "left",
		Padding:         "medium",
		BorderRadius:    "medium",
		Shadow:          "small",
		FontFamily:      "inter",
	}
}

// SortedCards returns a copy of cards ordered by order_index.
func SortedCards(cards []LessonCard) []LessonCard {
	sorted := append([]LessonCard{}, cards...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].OrderIndex < sorted[j].OrderIndex })
	return sorted
}

// AddCard appends card at the end of the deck. Styling fields left empty get the defaults.
func AddCard(cards []LessonCard, card LessonCard) []LessonCard {
	card.Styling = card.Styling.Over(DefaultCardStyling())
	if card.Type == "" {
		card.Type = CardText
	}
	card.OrderIndex = len(cards) + 1
	return append(append([]LessonCard{}, cards...), card)
}

// ReplaceCard swaps the card with the same id, keeping its position.
// Styling fields left empty keep the replaced card's values.
// The second result is false when no card matches.
func ReplaceCard(cards []LessonCard, card LessonCard) ([]LessonCard, bool) {
	out := append([]LessonCard{}, cards...)
	for i := range out {
		if out[i].ID == card.ID {
			card.OrderIndex = out[i].OrderIndex
			card.Styling = card.Styling.Over(out[i].Styling.Over(DefaultCardStyling()))
			out[i] = card
			return out, true
		}
	}
	return out, false
}

// DuplicateCard appends a copy of the card under newID.
func DuplicateCard(cards []LessonCard, id, newID string) ([]LessonCard, bool) {
	for _, c := range cards {
		if c.ID == id {
			c.ID = newID
			c.Title += " (Copy)"
			c.OrderIndex = len(cards) + 1
			return append(append([]LessonCard{}, cards...), c), true
		}
	}
	return append([]LessonCard{}, cards...), false
}

// RemoveCard drops the card and renumbers the rest 1..n in their current order.
func RemoveCard(cards []LessonCard, id string) ([]LessonCard, bool) {
	out := make([]LessonCard, 0, len(cards))
	var found bool
	for _, c := range cards {
		if c.ID == id {
			found = true
			continue
		}
		c.OrderIndex = len(out) + 1
		out = append(out, c)
	}
	return out, found
}

// MoveCard swaps the card with its neighbour in display order and renumbers the deck.
// Moving past either end leaves the order as is.
func MoveCard(cards []LessonCard, id string, dir Direction) ([]LessonCard, bool) {
	sorted := SortedCards(cards)
	idx := -1
	for i := range sorted {
		if sorted[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return sorted, false
	}

	switch {
	case dir == DirectionUp && idx > 0:
		sorted[idx], sorted[idx-1] = sorted[idx-1], sorted[idx]
	case dir == DirectionDown && idx < len(sorted)-1:
		sorted[idx], sorted[idx+1] = sorted[idx+1], sorted[idx]
	}
	for i := range sorted {
		sorted[i].OrderIndex = i + 1
	}
	return sorted, true
}
