package poker

import (
	"fmt"
	"slices"
	"strings"
)

// Rank is the numeric value of a card, 2 through 14 (Ace high).
type Rank uint8

// NoRank marks the absence of a rank. It is never the rank of a real card.
const NoRank Rank = 0

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

const rankChars = "??23456789TJQKA"

// String returns the single character used for the rank in card notation.
func (r Rank) String() string {
	if r < Two || r > Ace {
		return "?"
	}
	return string(rankChars[r])
}

// Suit is one of the four card suits.
type Suit uint8

const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

const suitChars = "CDHS"

// String returns the single character used for the suit in card notation.
func (s Suit) String() string {
	if s > Spades {
		return "?"
	}
	return string(suitChars[s])
}

// Color returns the colour the suit belongs to.
func (s Suit) Color() Color {
	if s == Hearts || s == Diamonds {
		return Red
	}
	return Black
}

// Color groups suits: black is clubs and spades, red is hearts and diamonds.
type Color uint8

const (
	Black Color = iota
	Red
)

// String returns the joker letter for the colour.
func (c Color) String() string {
	switch c {
	case Black:
		return "B"
	case Red:
		return "R"
	default:
		return "?"
	}
}

// Suits returns the two suits of the colour in substitution order.
func (c Color) Suits() [2]Suit {
	if c == Red {
		return [2]Suit{Hearts, Diamonds}
	}
	return [2]Suit{Spades, Clubs}
}

// Card is a playing card or a joker. Jokers carry a colour but no rank or
// suit. Cards are comparable and can be used as map keys.
type Card struct {
	rank  Rank
	suit  Suit
	color Color
	joker bool
}

// The two jokers in the deck.
var (
	BlackJoker = NewJoker(Black)
	RedJoker   = NewJoker(Red)
)

// NewCard creates a concrete card.
func NewCard(rank Rank, suit Suit) Card {
	return Card{rank: rank, suit: suit, color: suit.Color()}
}

// NewJoker creates the joker of the given colour.
func NewJoker(color Color) Card {
	return Card{color: color, joker: true}
}

// Rank returns the card's rank, or NoRank for a joker.
func (c Card) Rank() Rank { return c.rank }

// Suit returns the card's suit. It is meaningless for a joker.
func (c Card) Suit() Suit { return c.suit }

// Color returns the colour of the card's suit, or the joker's colour.
func (c Card) Color() Color { return c.color }

// IsJoker reports whether the card is a wildcard.
func (c Card) IsJoker() bool { return c.joker }

// String returns the two character token, e.g. "TC" or "?R".
func (c Card) String() string {
	if c.joker {
		return "?" + c.color.String()
	}
	return c.rank.String() + c.suit.String()
}

// ParseCard parses a token like "AS", "7h" or "?B" into a Card.
func ParseCard(s string) (Card, error) {
	if len(s) != 2 {
		return Card{}, fmt.Errorf("%w: %q must be 2 characters", ErrMalformedCard, s)
	}

	if s[0] == '?' {
		switch s[1] {
		case 'B', 'b':
			return BlackJoker, nil
		case 'R', 'r':
			return RedJoker, nil
		default:
			return Card{}, fmt.Errorf("%w: %q has unknown joker colour '%c'", ErrMalformedCard, s, s[1])
		}
	}

	rank, ok := parseRank(s[0])
	if !ok {
		return Card{}, fmt.Errorf("%w: %q has unknown rank '%c'", ErrMalformedCard, s, s[0])
	}
	suit, ok := parseSuit(s[1])
	if !ok {
		return Card{}, fmt.Errorf("%w: %q has unknown suit '%c'", ErrMalformedCard, s, s[1])
	}
	return NewCard(rank, suit), nil
}

// ParseCards parses each token into a Card.
func ParseCards(tokens []string) ([]Card, error) {
	cards := make([]Card, 0, len(tokens))
	for i, tok := range tokens {
		card, err := ParseCard(tok)
		if err != nil {
			return nil, fmt.Errorf("card %d: %w", i+1, err)
		}
		cards = append(cards, card)
	}
	return cards, nil
}

// ParseHand parses whitespace separated card tokens, e.g. "6C 7C 8C 9C TC 5C ?B".
func ParseHand(s string) ([]Card, error) {
	return ParseCards(strings.Fields(s))
}

// MustParseHand parses a hand and panics on error (for tests)
func MustParseHand(s string) []Card {
	cards, err := ParseHand(s)
	if err != nil {
		panic(fmt.Sprintf("failed to parse hand '%s': %v", s, err))
	}
	return cards
}

// Strings converts cards back to their tokens.
func Strings(cards []Card) []string {
	out := make([]string, len(cards))
	for i, c := range cards {
		out[i] = c.String()
	}
	return out
}

// RankList returns the ranks of the cards sorted from highest to lowest.
func RankList(cards []Card) []Rank {
	ranks := make([]Rank, len(cards))
	for i, c := range cards {
		ranks[i] = c.rank
	}
	slices.SortFunc(ranks, func(a, b Rank) int { return int(b) - int(a) })
	return ranks
}

// Substitutes lists every concrete card a joker of the given colour may
// stand for, leaving out any card already in present. Ranks run from Ace
// down to Two and, within a rank, suits follow Color.Suits.
func Substitutes(color Color, present []Card) []Card {
	suits := color.Suits()
	out := make([]Card, 0, 26)
	for rank := Ace; rank >= Two; rank-- {
		for _, suit := range suits {
			card := NewCard(rank, suit)
			if !slices.Contains(present, card) {
				out = append(out, card)
			}
		}
	}
	return out
}

func parseRank(c byte) (Rank, bool) {
	switch c {
	case 'A', 'a':
		return Ace, true
	case 'K', 'k':
		return King, true
	case 'Q', 'q':
		return Queen, true
	case 'J', 'j':
		return Jack, true
	case 'T', 't':
		return Ten, true
	}
	if c >= '2' && c <= '9' {
		return Rank(c - '0'), true
	}
	return NoRank, false
}

func parseSuit(c byte) (Suit, bool) {
	switch c {
	case 'C', 'c':
		return Clubs, true
	case 'D', 'd':
		return Diamonds, true
	case 'H', 'h':
		return Hearts, true
	case 'S', 's':
		return Spades, true
	default:
		return 0, false
	}
}
