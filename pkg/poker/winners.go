package poker

import "sort"

// Winner is one player's payout at settlement. Hand is nil when the pot
// was won without a showdown.
type Winner struct {
	Player    *Player     `json:"player"`
	Hand      *HandResult `json:"hand"`
	WinAmount int64       `json:"winAmount"`
}

type evaluatedHand struct {
	player *Player
	hand   HandResult
}

// DetermineWinners settles the hand: it builds the side pots from the
// current bets, evaluates every non-folded player's best hand, and pays
// each pot to the strongest eligible hand(s), tied hands splitting the pot
// by floor division. Chips are credited to the winners' stacks and the
// payouts are returned, one combined entry per winning player.
func (g *Game) DetermineWinners() []Winner {
	g.pots = buildSidePots(g.players)

	var active []*Player
	for _, p := range g.players {
		if !p.Folded {
			active = append(active, p)
		}
	}
	if len(active) == 0 {
		return nil
	}

	// Uncontested: everything goes to the last player standing, no
	// evaluation needed.
	if len(active) == 1 {
		winner := active[0]
		total := totalPotAmount(g.pots)
		if total == 0 {
			total = g.pot
		}
		winner.Chips += total
		g.log.Infof("table %s: %s wins %d uncontested", g.tableID, winner.Name, total)
		return []Winner{{Player: winner, WinAmount: total}}
	}

	if len(g.pots) == 0 {
		return g.determineWinnersSimple(active)
	}

	hands := make([]evaluatedHand, 0, len(active))
	for _, p := range active {
		all := make([]Card, 0, len(p.Hand)+len(g.communityCards))
		all = append(all, p.Hand...)
		all = append(all, g.communityCards...)
		hands = append(hands, evaluatedHand{player: p, hand: EvaluateHand(all)})
	}

	var winners []Winner
	slot := make(map[string]int)

	// Side pots settle last-to-first, main pot last.
	for i := len(g.pots) - 1; i >= 0; i-- {
		pot := g.pots[i]

		var eligible []evaluatedHand
		for _, eh := range hands {
			for _, id := range pot.EligiblePlayerIDs {
				if eh.player.ID == id {
					eligible = append(eligible, eh)
					break
				}
			}
		}
		if len(eligible) == 0 {
			continue
		}

		sort.SliceStable(eligible, func(a, b int) bool {
			return CompareHands(eligible[a].hand, eligible[b].hand) > 0
		})

		potWinners := []evaluatedHand{eligible[0]}
		for _, eh := range eligible[1:] {
			if CompareHands(eh.hand, eligible[0].hand) != 0 {
				break
			}
			potWinners = append(potWinners, eh)
		}

		share := pot.Amount / int64(len(potWinners))
		for _, pw := range potWinners {
			pw.player.Chips += share
			if j, ok := slot[pw.player.ID]; ok {
				winners[j].WinAmount += share
			} else {
				hand := pw.hand
				slot[pw.player.ID] = len(winners)
				winners = append(winners, Winner{Player: pw.player, Hand: &hand, WinAmount: share})
			}
			g.log.Infof("table %s: %s wins %d from pot %d with %s",
				g.tableID, pw.player.Name, share, i, pw.hand.Description)
		}
	}

	return winners
}

// determineWinnersSimple settles the single running pot when no side pots
// were computed, using the same tie and split rules.
func (g *Game) determineWinnersSimple(active []*Player) []Winner {
	hands := make([]evaluatedHand, 0, len(active))
	for _, p := range active {
		all := make([]Card, 0, len(p.Hand)+len(g.communityCards))
		all = append(all, p.Hand...)
		all = append(all, g.communityCards...)
		hands = append(hands, evaluatedHand{player: p, hand: EvaluateHand(all)})
	}

	sort.SliceStable(hands, func(a, b int) bool {
		return CompareHands(hands[a].hand, hands[b].hand) > 0
	})

	potWinners := []evaluatedHand{hands[0]}
	for _, eh := range hands[1:] {
		if CompareHands(eh.hand, hands[0].hand) != 0 {
			break
		}
		potWinners = append(potWinners, eh)
	}

	share := g.pot / int64(len(potWinners))
	winners := make([]Winner, 0, len(potWinners))
	for _, pw := range potWinners {
		pw.player.Chips += share
		hand := pw.hand
		winners = append(winners, Winner{Player: pw.player, Hand: &hand, WinAmount: share})
		g.log.Infof("table %s: %s wins %d with %s", g.tableID, pw.player.Name, share, pw.hand.Description)
	}
	return winners
}
