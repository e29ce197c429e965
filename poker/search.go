package poker

import "strings"

// Result is the best 5-card hand found and its score.
type Result struct {
	Cards [5]Card
	Score Score
}

// Strings returns the result's cards as tokens.
func (r Result) Strings() []string {
	return Strings(r.Cards[:])
}

// String returns a human-readable description, e.g. "Straight Flush (T) [6C 7C 8C 9C TC]".
func (r Result) String() string {
	return r.Score.String() + " [" + strings.Join(r.Strings(), " ") + "]"
}

// subsets7 lists every 5-card selection from a 7-card hand as index sets,
// in lexicographic order.
var subsets7 = combinations(HandSize, FiveCards)

// combinations returns all k-element index sets drawn from 0..n-1 in
// lexicographic order.
func combinations(n, k int) [][]int {
	if k < 0 || k > n {
		return nil
	}
	var out [][]int
	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}
	for {
		out = append(out, append([]int(nil), idx...))

		// Advance the rightmost index that still has room.
		i := k - 1
		for i >= 0 && idx[i] == n-k+i {
			i--
		}
		if i < 0 {
			return out
		}
		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}

// BestHand returns the strongest 5-card hand within a 7-card hand that
// holds no jokers. When several subsets share the top score the first one
// in index order is returned.
func BestHand(hand []Card) (Result, error) {
	if err := validate(hand, HandSize, false); err != nil {
		return Result{}, err
	}

	var best Result
	found := false
	var five [5]Card
	for _, subset := range subsets7 {
		for i, idx := range subset {
			five[i] = hand[idx]
		}
		if score := score5(&five); !found || score > best.Score {
			best = Result{Cards: five, Score: score}
			found = true
		}
	}
	return best, nil
}
