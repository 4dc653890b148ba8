package main

import (
	"fmt"
	"strings"

	"github.com/lox/showdown/poker"
)

func parseHands(handStrings []string) ([][2]poker.Card, error) {
	hands := make([][2]poker.Card, 0, len(handStrings))
	for i, handStr := range handStrings {
		hand, err := poker.ParseCards(strings.TrimSpace(handStr))
		if err != nil {
			return nil, fmt.Errorf("hand %d: %w", i+1, err)
		}
		if len(hand) != 2 {
			return nil, fmt.Errorf("hand %d: %w: must contain exactly 2 cards, got %d", i+1, poker.ErrCardCount, len(hand))
		}
		hands = append(hands, [2]poker.Card(hand))
	}
	return hands, nil
}

func validateNoDuplicates(hands [][2]poker.Card, board []poker.Card) error {
	all := append([]poker.Card(nil), board...)
	for _, h := range hands {
		all = append(all, h[:]...)
	}
	return poker.CheckDistinct(all...)
}
