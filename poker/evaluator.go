package poker

import (
	"fmt"
	"strings"
)

// HandType enumerates the categories of poker hands ordered from weakest to strongest.
type HandType uint8

const (
	HighCard HandType = iota
	Pair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
)

// String returns a human-readable category name.
func (t HandType) String() string {
	switch t {
	case HighCard:
		return "High Card"
	case Pair:
		return "Pair"
	case TwoPair:
		return "Two Pair"
	case ThreeOfAKind:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	case StraightFlush:
		return "Straight Flush"
	default:
		return "Unknown"
	}
}

// Score is the strength of a 5-card hand. Higher values are stronger.
//
// The category sits in the top nibble and the tie-break ranks follow, one
// nibble each, most significant first:
//
//	StraightFlush  high
//	FourOfAKind    quad, kicker
//	FullHouse      trip, pair
//	Flush          r1..r5
//	Straight       high
//	ThreeOfAKind   trip, r1..r5
//	TwoPair        high pair, low pair, r1..r5
//	Pair           pair, r1..r5
//	HighCard       r1..r5
//
// r1..r5 is the full rank list, highest first. Every score in a category
// has the same number of fields, so comparing two Scores as integers is
// the same as comparing their (category, fields...) tuples.
type Score uint32

const maxFields = 7

var fieldCounts = [...]int{
	HighCard:      5,
	Pair:          6,
	TwoPair:       7,
	ThreeOfAKind:  6,
	Straight:      1,
	Flush:         5,
	FullHouse:     2,
	FourOfAKind:   2,
	StraightFlush: 1,
}

func newScore(t HandType, fields ...Rank) Score {
	s := Score(t) << (4 * maxFields)
	for i, f := range fields {
		s |= Score(f&0xF) << (4 * (maxFields - 1 - i))
	}
	return s
}

// Type returns the hand category.
func (s Score) Type() HandType {
	return HandType(s >> (4 * maxFields))
}

// Fields returns the tie-break ranks in comparison order.
func (s Score) Fields() []Rank {
	t := s.Type()
	if int(t) >= len(fieldCounts) {
		return nil
	}
	fields := make([]Rank, fieldCounts[t])
	for i := range fields {
		fields[i] = Rank(s>>(4*(maxFields-1-i))) & 0xF
	}
	return fields
}

// Tuple returns the score as (category, fields...).
func (s Score) Tuple() []int {
	fields := s.Fields()
	out := make([]int, 0, len(fields)+1)
	out = append(out, int(s.Type()))
	for _, f := range fields {
		out = append(out, int(f))
	}
	return out
}

// Compare returns 1 if s is stronger than other, -1 if weaker, 0 for a tie.
func (s Score) Compare(other Score) int {
	if s > other {
		return 1
	} else if s < other {
		return -1
	}
	return 0
}

// String returns the category followed by its tie-break ranks, e.g. "Full House (T 8)".
func (s Score) String() string {
	fields := s.Fields()
	parts := make([]string, len(fields))
	for i, f := range fields {
		parts[i] = f.String()
	}
	return fmt.Sprintf("%s (%s)", s.Type(), strings.Join(parts, " "))
}

// Evaluate scores exactly five distinct concrete cards.
func Evaluate(cards []Card) (Score, error) {
	if err := validate(cards, FiveCards, false); err != nil {
		return 0, err
	}
	var five [5]Card
	copy(five[:], cards)
	return score5(&five), nil
}

// score5 ranks five concrete cards by testing categories from strongest to
// weakest and returning the first match.
func score5(cards *[5]Card) Score {
	ranks := RankList(cards[:])
	flush := IsFlush(cards[:])
	straight := IsStraight(ranks)

	if straight && flush {
		return newScore(StraightFlush, ranks[0])
	}
	if quad, kicker, ok := KindPair(4, 1, ranks); ok {
		return newScore(FourOfAKind, quad, kicker)
	}
	if trip, pair, ok := KindPair(3, 2, ranks); ok {
		return newScore(FullHouse, trip, pair)
	}
	if flush {
		return newScore(Flush, ranks...)
	}
	if straight {
		return newScore(Straight, ranks[0])
	}
	if trip, ok := Kind(3, ranks, NoRank); ok {
		return newScore(ThreeOfAKind, append([]Rank{trip}, ranks...)...)
	}
	if high, low, ok := KindPair(2, 2, ranks); ok {
		return newScore(TwoPair, append([]Rank{high, low}, ranks...)...)
	}
	if pair, ok := Kind(2, ranks, NoRank); ok {
		return newScore(Pair, append([]Rank{pair}, ranks...)...)
	}
	return newScore(HighCard, ranks...)
}
