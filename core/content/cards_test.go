package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func deck(ids ...string) []LessonCard {
	cards := make([]LessonCard, 0, len(ids))
	for i, id := range ids {
		cards = append(cards, LessonCard{ID: id, Title: "Card " + id, Type: CardText, OrderIndex: i + 1})
	}
	return cards
}

func order(cards []LessonCard) []string {
	ids := make([]string, 0, len(cards))
	for _, c := range SortedCards(cards) {
		ids = append(ids, c.ID)
	}
	return ids
}

func assertNumbered(t *testing.T, cards []LessonCard) {
	t.Helper()
	for i, c := range SortedCards(cards) {
		assert.Equal(t, i+1, c.OrderIndex, "card %s", c.ID)
	}
}

func TestAddCard(t *testing.T) {
	cards := AddCard(deck("a", "b"), LessonCard{ID: "c", Content: "hello"})
	require.Len(t, cards, 3)
	assert.Equal(t, 3, cards[2].OrderIndex)
	assert.Equal(t, CardText, cards[2].Type)
	assert.Equal(t, DefaultCardStyling(), cards[2].Styling)

	styled := LessonCard{ID: "d", Type: CardImage, Styling: CardStyling{BackgroundColor: "#000000"}}
	cards = AddCard(cards, styled)
	assert.Equal(t, "#000000", cards[3].Styling.BackgroundColor)
	assert.Equal(t, "#1F2937", cards[3].Styling.TextColor)
	assert.Equal(t, "medium", cards[3].Styling.FontSize)
}

func TestReplaceCard(t *testing.T) {
	cards, ok := ReplaceCard(deck("a", "b"), LessonCard{ID: "b", Title: "New", OrderIndex: 9})
	require.True(t, ok)
	assert.Equal(t, "New", cards[1].Title)
	assert.Equal(t, 2, cards[1].OrderIndex)

	_, ok = ReplaceCard(deck("a"), LessonCard{ID: "x"})
	assert.False(t, ok)
}

func TestReplaceCard_partialStyling(t *testing.T) {
	orig := deck("a")
	orig[0].Styling = DefaultCardStyling()
	orig[0].Styling.BackgroundColor = "#000000"

	cards, ok := ReplaceCard(orig, LessonCard{ID: "a", Styling: CardStyling{FontSize: "large"}})
	require.True(t, ok)

	want := DefaultCardStyling()
	want.BackgroundColor = "#000000"
	want.FontSize = "large"
	assert.Equal(t, want, cards[0].Styling)
	assert.Equal(t, "#000000", orig[0].Styling.BackgroundColor)
	assert.Equal(t, "medium", orig[0].Styling.FontSize)
}

func TestDuplicateCard(t *testing.T) {
	orig := deck("a", "b")
	cards, ok := DuplicateCard(orig, "a", "a2")
	require.True(t, ok)
	require.Len(t, cards, 3)
	assert.Equal(t, "a2", cards[2].ID)
	assert.Equal(t, "Card a (Copy)", cards[2].Title)
	assert.Equal(t, 3, cards[2].OrderIndex)
	assert.Len(t, orig, 2)

	_, ok = DuplicateCard(orig, "x", "x2")
	assert.False(t, ok)
}

func TestRemoveCard(t *testing.T) {
	cards, ok := RemoveCard(deck("a", "b", "c", "d"), "b")
	require.True(t, ok)
	assert.Equal(t, []string{"a", "c", "d"}, order(cards))
	assertNumbered(t, cards)

	_, ok = RemoveCard(deck("a"), "x")
	assert.False(t, ok)
}

func TestMoveCard(t *testing.T) {
	tests := []struct {
		name string
		id   string
		dir  Direction
		want []string
		ok   bool
	}{
		{"up", "c", DirectionUp, []string{"a", "c", "b"}, true},
		{"down", "a", DirectionDown, []string{"b", "a", "c"}, true},
		{"top stays", "a", DirectionUp, []string{"a", "b", "c"}, true},
		{"bottom stays", "c", DirectionDown, []string{"a", "b", "c"}, true},
		{"unknown", "x", DirectionUp, []string{"a", "b", "c"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := MoveCard(deck("a", "b", "c"), tt.id, tt.dir)
			if ok != tt.ok {
				t.Errorf("MoveCard() ok = %v, want %v", ok, tt.ok)
			}
			assert.Equal(t, tt.want, order(got))
			assertNumbered(t, got)
		})
	}
}

func TestMoveCard_unsortedInput(t *testing.T) {
	cards := []LessonCard{{ID: "b", OrderIndex: 5}, {ID: "a", OrderIndex: 2}}
	got, ok := MoveCard(cards, "b", DirectionUp)
	require.True(t, ok)
	assert.Equal(t, []string{"b", "a"}, order(got))
	assertNumbered(t, got)
}

func TestCardStyling_CSS(t *testing.T) {
	tests := []struct {
		name    string
		styling CardStyling
		want    string
	}{
		{
			name:    "defaults",
			styling: DefaultCardStyling(),
			want:    "background-color: #FFFFFF; color: #1F2937; font-size: 16px; text-align: left; padding: 16px; border-radius: 8px; box-shadow: 0 1px 2px 0 rgb(0 0 0 / 0.05); font-family: inter;",
		},
		{
			name: "large, no shadow, custom css",
			styling: CardStyling{
				BackgroundColor: "#000000", TextColor: "#FFFFFF", FontSize: "large", TextAlign: "center",
				Padding: "small", BorderRadius: "none", Shadow: "none", CustomCSS: "letter-spacing: 1px;",
			},
			want: "background-color: #000000; color: #FFFFFF; font-size: 18px; text-align: center; padding: 8px; border-radius: 0px; box-shadow: none; font-family: inter; letter-spacing: 1px;",
		},
		{
			name:    "unknown values fall back to medium",
			styling: CardStyling{FontSize: "huge", Padding: "?", BorderRadius: "round", Shadow: "deep"},
			want:    "background-color: #FFFFFF; color: #1F2937; font-size: 16px; text-align: left; padding: 16px; border-radius: 8px; box-shadow: 0 4px 6px -1px rgb(0 0 0 / 0.1); font-family: inter;",
		},
		{
			name:    "empty fields render the defaults",
			styling: CardStyling{FontSize: "large"},
			want:    "background-color: #FFFFFF; color: #1F2937; font-size: 18px; text-align: left; padding: 16px; border-radius: 8px; box-shadow: 0 1px 2px 0 rgb(0 0 0 / 0.05); font-family: inter;",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.styling.CSS(); got != tt.want {
				t.Errorf("CSS() = %v, want %v", got, tt.want)
			}
		})
	}
}
