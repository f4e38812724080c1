package poker

// Action is a betting action a player may take on their turn.
type Action int

const (
	ActionFold Action = iota
	ActionCheck
	ActionCall
	ActionRaise
	ActionAllIn
)

// String returns the wire name of the action.
func (a Action) String() string {
	switch a {
	case ActionFold:
		return "fold"
	case ActionCheck:
		return "check"
	case ActionCall:
		return "call"
	case ActionRaise:
		return "raise"
	case ActionAllIn:
		return "all-in"
	default:
		return "unknown"
	}
}

// ParseAction maps a wire action name to its Action. It reports false for
// names that are not actions.
func ParseAction(s string) (Action, bool) {
	switch s {
	case "fold":
		return ActionFold, true
	case "check":
		return ActionCheck, true
	case "call":
		return ActionCall, true
	case "raise":
		return ActionRaise, true
	case "all-in":
		return ActionAllIn, true
	default:
		return 0, false
	}
}

// ActionResult reports the outcome of one player action.
type ActionResult struct {
	Success         bool    `json:"success"`
	Message         string  `json:"message,omitempty"`
	HandComplete    bool    `json:"handComplete,omitempty"`
	SinglePlayerWin bool    `json:"singlePlayerWin,omitempty"`
	Winner          *Winner `json:"winner,omitempty"`
}

func reject(msg string) ActionResult {
	return ActionResult{Success: false, Message: msg}
}

// HandleAction applies one action by the acting player. Rejected actions
// (wrong player, out of turn, illegal check, short raise) leave the table
// untouched. After a successful action the turn advances, and when the
// betting round is closed the next street is dealt; on the river, or when
// everyone else has folded, the result flags the hand complete so the
// caller can settle it.
func (g *Game) HandleAction(playerID string, action Action, amount int64) ActionResult {
	if !g.inProgress {
		return reject("no hand in progress")
	}
	player := g.playerByID(playerID)
	if player == nil || player.Folded || player.AllIn {
		return reject("invalid player or player cannot act")
	}
	if g.players[g.currentIndex].ID != playerID {
		return reject("not your turn")
	}

	switch action {
	case ActionFold:
		player.Folded = true

	case ActionCheck:
		if player.Bet < g.currentBet {
			return reject("cannot check, must call or raise")
		}

	case ActionCall:
		call := min64(g.currentBet-player.Bet, player.Chips)
		player.Chips -= call
		player.Bet += call
		g.pot += call
		if player.Chips == 0 {
			player.AllIn = true
		}

	case ActionRaise:
		paid := min64(amount, player.Chips)
		if paid < g.currentBet-player.Bet {
			return reject("raise amount too small")
		}
		player.Chips -= paid
		player.Bet += paid
		g.pot += paid
		g.currentBet = player.Bet
		if player.Chips == 0 {
			player.AllIn = true
		}
		g.reopenAction(player)

	case ActionAllIn:
		allIn := player.Chips
		player.Chips = 0
		player.Bet += allIn
		g.pot += allIn
		player.AllIn = true
		if player.Bet > g.currentBet {
			g.currentBet = player.Bet
			g.reopenAction(player)
		}

	default:
		return reject("invalid action")
	}

	player.HasActed = true
	g.log.Debugf("table %s: %s %s (bet %d, pot %d)", g.tableID, player.Name, action, player.Bet, g.pot)

	if winner := g.checkSinglePlayerWin(); winner != nil {
		g.inProgress = false
		return ActionResult{Success: true, HandComplete: true, SinglePlayerWin: true, Winner: winner}
	}

	g.moveToNextPlayer()

	if g.bettingRoundComplete() {
		return g.advanceBettingRound()
	}
	return ActionResult{Success: true}
}

// reopenAction clears the acted flag of every other live player after a
// raise, so they get another turn against the new price.
func (g *Game) reopenAction(raiser *Player) {
	for _, p := range g.players {
		if p != raiser && p.CanAct() {
			p.HasActed = false
		}
	}
}

// checkSinglePlayerWin settles the hand immediately when only one player
// is left unfolded. The survivor takes everything without a showdown.
func (g *Game) checkSinglePlayerWin() *Winner {
	var last *Player
	active := 0
	for _, p := range g.players {
		if !p.Folded {
			active++
			last = p
		}
	}
	if active != 1 {
		return nil
	}

	g.pots = buildSidePots(g.players)
	total := totalPotAmount(g.pots)
	if total == 0 {
		total = g.pot
	}
	last.Chips += total

	g.log.Infof("table %s: %s wins %d uncontested", g.tableID, last.Name, total)
	return &Winner{Player: last, WinAmount: total}
}

// moveToNextPlayer advances the acting seat to the next player who can
// still act, scanning at most one full lap.
func (g *Game) moveToNextPlayer() {
	count := 0
	for {
		g.currentIndex = (g.currentIndex + 1) % len(g.players)
		count++
		if count > len(g.players) {
			break
		}
		if g.players[g.currentIndex].CanAct() {
			break
		}
	}
}

// bettingRoundComplete reports whether the current round is closed: at
// most one player can still act, or every live player has acted and
// matched the current bet.
func (g *Game) bettingRoundComplete() bool {
	active := 0
	matched := true
	for _, p := range g.players {
		if !p.CanAct() {
			continue
		}
		active++
		if !p.HasActed || p.Bet != g.currentBet {
			matched = false
		}
	}
	if active <= 1 {
		return true
	}
	return matched
}

// advanceBettingRound closes the current street: it retires the per-round
// bets into the running pot state, then either deals the next street and
// hands the action to the first eligible seat after the dealer, or, after
// the river, flags the hand complete for showdown. The reset must happen
// in the river case too, so settlement pays the full running pot rather
// than rebuilding pots from the last street's bets alone. When fewer than
// two players can still act the loop deals out the remaining streets with
// no further betting.
func (g *Game) advanceBettingRound() ActionResult {
	for {
		for _, p := range g.players {
			p.Bet = 0
			p.HasActed = false
		}
		g.currentBet = 0

		if g.round == River {
			g.log.Infof("table %s: river betting complete, going to showdown", g.tableID)
			return ActionResult{Success: true, HandComplete: true}
		}

		g.streets.Step()

		g.currentIndex = g.dealerIndex
		g.moveToNextPlayer()

		if !g.bettingRoundComplete() {
			return ActionResult{Success: true}
		}
	}
}
