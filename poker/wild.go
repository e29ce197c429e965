package poker

// BestWildHand returns the strongest 5-card hand within a 7-card hand that
// may hold the black and/or red joker. Each joker in a candidate subset is
// replaced by every card of its colour that is not already among the
// subset's other cards. The returned cards never include a joker.
//
// Ties keep the first candidate: subsets in index order, then substitutes
// in Substitutes order with the black joker varying slowest.
func BestWildHand(hand []Card) (Result, error) {
	if err := validate(hand, HandSize, true); err != nil {
		return Result{}, err
	}

	var best Result
	found := false
	consider := func(five *[5]Card) {
		if score := score5(five); !found || score > best.Score {
			best = Result{Cards: *five, Score: score}
			found = true
		}
	}

	fixed := make([]Card, 0, FiveCards)
	for _, subset := range subsets7 {
		fixed = fixed[:0]
		var black, red bool
		for _, idx := range subset {
			switch c := hand[idx]; c {
			case BlackJoker:
				black = true
			case RedJoker:
				red = true
			default:
				fixed = append(fixed, c)
			}
		}
		expandJokers(fixed, black, red, consider)
	}
	return best, nil
}

// expandJokers fills the slots left by jokers with each legal substitute and
// hands every resolved candidate to visit. Concrete cards keep their order
// and are followed by the black substitute, then the red one.
func expandJokers(fixed []Card, black, red bool, visit func(*[5]Card)) {
	var five [5]Card
	n := copy(five[:], fixed)

	switch {
	case black && red:
		reds := Substitutes(Red, fixed)
		for _, b := range Substitutes(Black, fixed) {
			five[n] = b
			for _, r := range reds {
				five[n+1] = r
				visit(&five)
			}
		}
	case black:
		for _, b := range Substitutes(Black, fixed) {
			five[n] = b
			visit(&five)
		}
	case red:
		for _, r := range Substitutes(Red, fixed) {
			five[n] = r
			visit(&five)
		}
	default:
		visit(&five)
	}
}
