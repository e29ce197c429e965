package main

import (
	"fmt"
	"strings"

	"github.com/lox/besthand/internal/report"
	"github.com/lox/besthand/poker"
)

// BestCmd ranks a joker-free 7-card hand.
type BestCmd struct {
	Cards []string `arg:"" help:"Seven cards, e.g. '6C 7C 8C 9C TC 5C JS'"`
}

func (c *BestCmd) Run(g *Globals) error {
	return evalHand(g, c.Cards, poker.BestHand)
}

// WildCmd ranks a 7-card hand that may include jokers.
type WildCmd struct {
	Cards []string `arg:"" help:"Seven cards, jokers as ?B and ?R, e.g. 'TD TC 5H 5C 7C ?R ?B'"`
}

func (c *WildCmd) Run(g *Globals) error {
	return evalHand(g, c.Cards, poker.BestWildHand)
}

func evalHand(g *Globals, args []string, best func([]poker.Card) (poker.Result, error)) error {
	e, err := g.setup()
	if err != nil {
		return err
	}

	hand, err := parseArgs(args)
	if err != nil {
		return err
	}

	res, err := best(hand)
	if err != nil {
		return err
	}
	e.logger.Debug("Best hand", "input", strings.Join(poker.Strings(hand), " "), "best", res)

	return e.write(report.Report{Hands: []report.Record{report.NewRecord(hand, res)}})
}

// RankCmd scores exactly five cards.
type RankCmd struct {
	Cards []string `arg:"" help:"Five cards, e.g. 'TC TD TH 8C 8S'"`
}

func (c *RankCmd) Run(g *Globals) error {
	e, err := g.setup()
	if err != nil {
		return err
	}

	cards, err := parseArgs(c.Cards)
	if err != nil {
		return err
	}
	score, err := poker.Evaluate(cards)
	if err != nil {
		return err
	}
	e.logger.Debug("Scored hand", "cards", strings.Join(poker.Strings(cards), " "), "score", score)

	var res poker.Result
	copy(res.Cards[:], cards)
	res.Score = score
	return e.write(report.Report{Hands: []report.Record{report.NewRecord(cards, res)}})
}

// parseArgs accepts cards as separate arguments or as one quoted string.
func parseArgs(args []string) ([]poker.Card, error) {
	cards, err := poker.ParseHand(strings.Join(args, " "))
	if err != nil {
		return nil, fmt.Errorf("parsing cards: %w", err)
	}
	return cards, nil
}
