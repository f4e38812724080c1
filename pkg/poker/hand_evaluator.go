package poker

import (
	"fmt"
	"sort"
)

// HandRank is one of the ten hand categories, ordered weakest to strongest.
type HandRank int

const (
	HighCard HandRank = iota + 1
	Pair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	RoyalFlush
)

// String returns the conventional name of the category.
func (r HandRank) String() string {
	switch r {
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
	case RoyalFlush:
		return "Royal Flush"
	default:
		return "Unknown"
	}
}

// HandResult is the evaluation of a hand: its category, the tiebreak values
// that order hands within the category, and the five cards that made it.
type HandResult struct {
	Rank        HandRank `json:"rank"`
	Tiebreaks   []int    `json:"tiebreaks"`
	BestHand    []Card   `json:"bestHand,omitempty"`
	Description string   `json:"description"`
}

// EvaluateHand finds the best 5-card hand from 5 to 7 cards by evaluating
// every 5-card subset and keeping the maximum under CompareHands. With fewer
// than 5 cards it returns a degenerate high-card result.
func EvaluateHand(cards []Card) HandResult {
	if len(cards) < 5 {
		return HandResult{Rank: HighCard, Description: "Not enough cards"}
	}

	var best HandResult
	for _, combo := range combinations(cards, 5) {
		hand := evaluate5(combo)
		if best.Rank == 0 || CompareHands(hand, best) > 0 {
			best = hand
		}
	}
	return best
}

// CompareHands orders two evaluated hands. It returns a positive value when
// a is stronger, negative when b is stronger, and 0 on an exact tie (equal
// hands split the pot).
func CompareHands(a, b HandResult) int {
	if a.Rank != b.Rank {
		return int(a.Rank) - int(b.Rank)
	}
	for i := 0; i < len(a.Tiebreaks) && i < len(b.Tiebreaks); i++ {
		if a.Tiebreaks[i] != b.Tiebreaks[i] {
			return a.Tiebreaks[i] - b.Tiebreaks[i]
		}
	}
	return 0
}

// combinations returns every k-card subset of cards.
func combinations(cards []Card, k int) [][]Card {
	var result [][]Card
	var recurse func(start int, chosen []Card)
	recurse = func(start int, chosen []Card) {
		if len(chosen) == k {
			combo := make([]Card, k)
			copy(combo, chosen)
			result = append(result, combo)
			return
		}
		for i := start; i <= len(cards)-(k-len(chosen)); i++ {
			recurse(i+1, append(chosen, cards[i]))
		}
	}
	recurse(0, nil)
	return result
}

// evaluate5 ranks exactly five cards.
func evaluate5(cards []Card) HandResult {
	sorted := make([]Card, 5)
	copy(sorted, cards)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Value() > sorted[j].Value()
	})

	counts := make(map[int]int, 5)
	for _, c := range sorted {
		counts[c.Value()]++
	}

	// Distinct values ordered by group size first, value second, so the
	// defining cards (quads, trips, pairs) come before kickers.
	tiebreaks := make([]int, 0, len(counts))
	for v := range counts {
		tiebreaks = append(tiebreaks, v)
	}
	sort.Slice(tiebreaks, func(i, j int) bool {
		if counts[tiebreaks[i]] != counts[tiebreaks[j]] {
			return counts[tiebreaks[i]] > counts[tiebreaks[j]]
		}
		return tiebreaks[i] > tiebreaks[j]
	})

	groupSizes := make([]int, len(tiebreaks))
	for i, v := range tiebreaks {
		groupSizes[i] = counts[v]
	}

	isFlush := true
	for _, c := range sorted {
		if c.Suit() != sorted[0].Suit() {
			isFlush = false
			break
		}
	}

	isStraight := false
	if len(tiebreaks) == 5 {
		if tiebreaks[0]-tiebreaks[4] == 4 {
			isStraight = true
		} else if tiebreaks[0] == 14 && tiebreaks[1] == 5 {
			// The wheel: A-2-3-4-5 plays as a 5-high straight, so the
			// ace sorts low in the tiebreaks.
			isStraight = true
			tiebreaks = []int{5, 4, 3, 2, 1}
		}
	}

	result := HandResult{Tiebreaks: tiebreaks, BestHand: sorted}

	switch {
	case isStraight && isFlush && tiebreaks[0] == 14:
		result.Rank = RoyalFlush
		result.Description = "Royal Flush"
	case isStraight && isFlush:
		result.Rank = StraightFlush
		result.Description = fmt.Sprintf("Straight Flush, %s high", rankForValue(tiebreaks[0]))
	case groupSizes[0] == 4:
		result.Rank = FourOfAKind
		result.Description = fmt.Sprintf("Four of a Kind, %ss", rankForValue(tiebreaks[0]))
	case groupSizes[0] == 3 && groupSizes[1] == 2:
		result.Rank = FullHouse
		result.Description = fmt.Sprintf("Full House, %ss over %ss",
			rankForValue(tiebreaks[0]), rankForValue(tiebreaks[1]))
	case isFlush:
		result.Rank = Flush
		result.Description = fmt.Sprintf("Flush, %s high", rankForValue(tiebreaks[0]))
	case isStraight:
		result.Rank = Straight
		result.Description = fmt.Sprintf("Straight, %s high", rankForValue(tiebreaks[0]))
	case groupSizes[0] == 3:
		result.Rank = ThreeOfAKind
		result.Description = fmt.Sprintf("Three of a Kind, %ss", rankForValue(tiebreaks[0]))
	case groupSizes[0] == 2 && groupSizes[1] == 2:
		result.Rank = TwoPair
		result.Description = fmt.Sprintf("Two Pair, %ss and %ss",
			rankForValue(tiebreaks[0]), rankForValue(tiebreaks[1]))
	case groupSizes[0] == 2:
		result.Rank = Pair
		result.Description = fmt.Sprintf("Pair of %ss", rankForValue(tiebreaks[0]))
	default:
		result.Rank = HighCard
		result.Description = fmt.Sprintf("High Card, %s", rankForValue(tiebreaks[0]))
	}

	return result
}
