package poker

// IsFlush reports whether every card shares one suit.
func IsFlush(cards []Card) bool {
	if len(cards) == 0 {
		return false
	}
	suit := cards[0].suit
	for _, c := range cards[1:] {
		if c.suit != suit {
			return false
		}
	}
	return true
}

// IsStraight reports whether descending ranks form one contiguous run.
// A-2-3-4-5 is not a straight here: the run must descend from the top card.
func IsStraight(ranks []Rank) bool {
	if len(ranks) == 0 {
		return false
	}
	for i, r := range ranks {
		if int(r) != int(ranks[0])-i {
			return false
		}
	}
	return true
}

// Kind returns the rank of the first window of n equal ranks whose rank is
// not exclude. Ranks must be sorted high to low, so the result is the
// highest qualifying n-of-a-kind. Pass NoRank to exclude nothing.
func Kind(n int, ranks []Rank, exclude Rank) (Rank, bool) {
	if n <= 0 {
		return NoRank, false
	}
	for i := 0; i+n <= len(ranks); i++ {
		r := ranks[i]
		if r == exclude && exclude != NoRank {
			continue
		}
		if allEqual(ranks[i : i+n]) {
			return r, true
		}
	}
	return NoRank, false
}

// KindPair finds an n-of-a-kind and a separate m-of-a-kind. The longer run
// is located first and returned first.
func KindPair(n, m int, ranks []Rank) (Rank, Rank, bool) {
	long, short := max(n, m), min(n, m)
	first, ok := Kind(long, ranks, NoRank)
	if !ok {
		return NoRank, NoRank, false
	}
	second, ok := Kind(short, ranks, first)
	if !ok {
		return NoRank, NoRank, false
	}
	return first, second, true
}

func allEqual(ranks []Rank) bool {
	for _, r := range ranks[1:] {
		if r != ranks[0] {
			return false
		}
	}
	return true
}
