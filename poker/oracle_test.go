package poker_test

import (
	"cmp"
	"slices"
	"testing"

	ph "github.com/paulhankin/poker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/besthand/internal/deck"
	"github.com/lox/besthand/internal/randutil"
	"github.com/lox/besthand/poker"
)

func toPH(t *testing.T, c poker.Card) ph.Card {
	t.Helper()
	var s ph.Suit
	switch c.Suit() {
	case poker.Clubs:
		s = ph.Club
	case poker.Diamonds:
		s = ph.Diamond
	case poker.Hearts:
		s = ph.Heart
	case poker.Spades:
		s = ph.Spade
	}
	r := ph.Rank(c.Rank())
	if c.Rank() == poker.Ace {
		r = ph.Rank(1)
	}
	card, err := ph.MakeCard(s, r)
	require.NoError(t, err)
	return card
}

func phEval5(t *testing.T, cards []poker.Card) int16 {
	t.Helper()
	var five [5]ph.Card
	for i, c := range cards {
		five[i] = toPH(t, c)
	}
	return ph.Eval5(&five)
}

// phDirection is +1 when a larger library score means a stronger hand.
func phDirection(t *testing.T) int {
	t.Helper()
	royal := phEval5(t, poker.MustParseHand("AS KS QS JS TS"))
	junk := phEval5(t, poker.MustParseHand("2C 4D 6H 8S TC"))
	require.NotEqual(t, royal, junk)
	if royal > junk {
		return 1
	}
	return -1
}

// hasWheel reports whether A 2 3 4 5 can be formed from the cards. The
// library counts the wheel as a straight, this package does not.
func hasWheel(cards []poker.Card) bool {
	for _, r := range []poker.Rank{poker.Ace, poker.Two, poker.Three, poker.Four, poker.Five} {
		if !slices.ContainsFunc(cards, func(c poker.Card) bool { return c.Rank() == r }) {
			return false
		}
	}
	return true
}

func TestEvaluateAgreesWithLibrary(t *testing.T) {
	t.Parallel()
	dir := phDirection(t)
	d := deck.New(randutil.New(42), false)

	checked := 0
	for range 20000 {
		d.Shuffle()
		a, b := d.Deal(5), d.Deal(5)
		if hasWheel(a) || hasWheel(b) {
			continue
		}

		sa, err := poker.Evaluate(a)
		require.NoError(t, err)
		sb, err := poker.Evaluate(b)
		require.NoError(t, err)

		want := dir * cmp.Compare(phEval5(t, a), phEval5(t, b))
		require.Equal(t, want, sa.Compare(sb), "%v (%s) vs %v (%s)",
			poker.Strings(a), sa, poker.Strings(b), sb)
		checked++
	}
	assert.Greater(t, checked, 19000)
}

func TestBestHandAgreesWithLibrary(t *testing.T) {
	t.Parallel()
	d := deck.New(randutil.New(7), false)

	for _, hand := range d.Hands(5000, poker.HandSize) {
		if hasWheel(hand) {
			continue
		}
		res, err := poker.BestHand(hand)
		require.NoError(t, err)

		var seven [7]ph.Card
		for i, c := range hand {
			seven[i] = toPH(t, c)
		}
		want := ph.Eval7(&seven)
		got := phEval5(t, res.Cards[:])
		require.Equal(t, want, got, "%v best %v", poker.Strings(hand), res.Strings())

		for _, c := range res.Cards {
			assert.Contains(t, hand, c)
		}
	}
}

func TestBestWildHandBeatsEveryReplacement(t *testing.T) {
	t.Parallel()
	rng := randutil.New(99)
	d := deck.New(rng, true)

	for _, hand := range d.Hands(300, poker.HandSize) {
		res, err := poker.BestWildHand(hand)
		require.NoError(t, err)

		score, err := poker.Evaluate(res.Cards[:])
		require.NoError(t, err)
		require.Equal(t, res.Score, score)

		// Swap each joker for a random legal card and check the wild
		// result is never beaten.
		for range 5 {
			concrete := slices.Clone(hand)
			for i, c := range concrete {
				if !c.IsJoker() {
					continue
				}
				subs := poker.Substitutes(c.Color(), concrete)
				concrete[i] = subs[rng.IntN(len(subs))]
			}
			plain, err := poker.BestHand(concrete)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, res.Score.Compare(plain.Score), 0,
				"%v: wild %s, replaced %v gives %s",
				poker.Strings(hand), res, poker.Strings(concrete), plain)
		}
	}
}
