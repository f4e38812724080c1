package poker

import "sort"

// Pot is a main or side pot: an amount of chips and the ids of the players
// who can win it. Folded players' contributions count toward Amount but
// never appear in EligiblePlayerIDs.
type Pot struct {
	Amount            int64    `json:"amount"`
	EligiblePlayerIDs []string `json:"eligiblePlayers"`
}

// buildSidePots partitions the current-round contributions into a main pot
// and side pots. For each distinct bet level L (ascending), every remaining
// contributor pays L minus the previous level into that pot; contributors
// whose bet is exactly L are capped there and drop out of later pots. The
// pot amounts always sum to the total contributed, chip for chip.
func buildSidePots(players []*Player) []Pot {
	var contributors []*Player
	for _, p := range players {
		if p.Bet > 0 {
			contributors = append(contributors, p)
		}
	}
	if len(contributors) == 0 {
		return nil
	}

	seen := make(map[int64]bool, len(contributors))
	var levels []int64
	for _, p := range contributors {
		if !seen[p.Bet] {
			seen[p.Bet] = true
			levels = append(levels, p.Bet)
		}
	}
	sort.Slice(levels, func(i, j int) bool { return levels[i] < levels[j] })

	var pots []Pot
	remaining := contributors
	var prev int64
	for _, level := range levels {
		amount := (level - prev) * int64(len(remaining))
		if amount > 0 {
			var eligible []string
			for _, p := range remaining {
				if !p.Folded {
					eligible = append(eligible, p.ID)
				}
			}
			pots = append(pots, Pot{Amount: amount, EligiblePlayerIDs: eligible})
		}

		next := remaining[:0:0]
		for _, p := range remaining {
			if p.Bet > level {
				next = append(next, p)
			}
		}
		remaining = next
		prev = level
	}

	return pots
}

// totalPotAmount sums the amounts across pots.
func totalPotAmount(pots []Pot) int64 {
	var total int64
	for _, pot := range pots {
		total += pot.Amount
	}
	return total
}
