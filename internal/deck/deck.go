// Package deck deals random hands for demos and property tests. The
// evaluator never deals; it only ranks the cards it is given.
package deck

import (
	rand "math/rand/v2"

	"github.com/lox/besthand/poker"
)

// Deck represents a 52-card deck, optionally with the two jokers
type Deck struct {
	cards []poker.Card
	next  int
	rng   *rand.Rand
}

// New creates a shuffled deck. With jokers set the black and red jokers are
// added, giving 54 cards.
func New(rng *rand.Rand, jokers bool) *Deck {
	d := &Deck{
		cards: make([]poker.Card, 0, 54),
		rng:   rng,
	}

	for suit := poker.Clubs; suit <= poker.Spades; suit++ {
		for rank := poker.Two; rank <= poker.Ace; rank++ {
			d.cards = append(d.cards, poker.NewCard(rank, suit))
		}
	}
	if jokers {
		d.cards = append(d.cards, poker.BlackJoker, poker.RedJoker)
	}

	d.Shuffle()
	return d
}

// Shuffle shuffles the whole deck using Fisher-Yates and starts dealing
// from the top again
func (d *Deck) Shuffle() {
	d.next = 0
	for i := len(d.cards) - 1; i > 0; i-- {
		j := d.rng.IntN(i + 1)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// Deal deals n cards from the deck. It returns nil when fewer than n remain.
func (d *Deck) Deal(n int) []poker.Card {
	if n < 0 || d.next+n > len(d.cards) {
		return nil
	}
	cards := make([]poker.Card, n)
	copy(cards, d.cards[d.next:d.next+n])
	d.next += n
	return cards
}

// CardsRemaining returns the number of cards left in the deck
func (d *Deck) CardsRemaining() int {
	return len(d.cards) - d.next
}

// Hands deals count hands of size cards, reshuffling before each one so
// every hand comes from a full deck. A negative count yields nil.
func (d *Deck) Hands(count, size int) [][]poker.Card {
	if count < 0 {
		return nil
	}
	hands := make([][]poker.Card, 0, count)
	for range count {
		d.Shuffle()
		hands = append(hands, d.Deal(size))
	}
	return hands
}
