package poker

import (
	"errors"
	"fmt"
)

// Errors returned when input is rejected. They are wrapped with details,
// so match them with errors.Is.
var (
	ErrMalformedCard   = errors.New("malformed card")
	ErrInvalidHandSize = errors.New("invalid hand size")
	ErrDuplicateCard   = errors.New("duplicate card")
	ErrUnexpectedJoker = errors.New("joker not allowed")
)

// HandError reports which hand of a batch failed. Index is the position
// in the slice given to EvaluateAll.
type HandError struct {
	Index int
	Err   error
}

func (e *HandError) Error() string {
	return fmt.Sprintf("hand %d: %v", e.Index, e.Err)
}

func (e *HandError) Unwrap() error { return e.Err }

const (
	// HandSize is the number of cards BestHand and BestWildHand take.
	HandSize = 7
	// FiveCards is the size of a ranked poker hand.
	FiveCards = 5
)

// validate checks size, duplicates and (optionally) jokers before any
// search starts.
func validate(cards []Card, size int, allowJokers bool) error {
	if len(cards) != size {
		return fmt.Errorf("%w: got %d cards, need exactly %d", ErrInvalidHandSize, len(cards), size)
	}

	seen := make(map[Card]struct{}, len(cards))
	for _, c := range cards {
		if c.joker && !allowJokers {
			return fmt.Errorf("%w: %s", ErrUnexpectedJoker, c)
		}
		if c.joker && c.color > Red {
			return fmt.Errorf("%w: joker colour %d", ErrMalformedCard, c.color)
		}
		if !c.joker && (c.rank < Two || c.rank > Ace || c.suit > Spades) {
			return fmt.Errorf("%w: rank %d suit %d", ErrMalformedCard, c.rank, c.suit)
		}
		if _, dup := seen[c]; dup {
			return fmt.Errorf("%w: %s", ErrDuplicateCard, c)
		}
		seen[c] = struct{}{}
	}
	return nil
}
