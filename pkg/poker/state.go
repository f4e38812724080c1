package poker

// PlayerState is a player's entry in a game snapshot. Hole cards are
// included for every player; redacting opponents' cards for a particular
// viewer is the relaying layer's job.
type PlayerState struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
	Chips  int64  `json:"chips"`
	Bet    int64  `json:"bet"`
	Hand   []Card `json:"hand"`
	Folded bool   `json:"folded"`
	AllIn  bool   `json:"allIn"`
}

// GameState is a serializable snapshot of one table.
type GameState struct {
	TableID            string        `json:"tableId"`
	Players            []PlayerState `json:"players"`
	CommunityCards     []Card        `json:"communityCards"`
	Pot                int64         `json:"pot"`
	Pots               []Pot         `json:"pots"`
	CurrentBet         int64         `json:"currentBet"`
	BettingRound       string        `json:"bettingRound"`
	DealerIndex        int           `json:"dealerIndex"`
	CurrentPlayerIndex int           `json:"currentPlayerIndex"`
	CurrentPlayerID    string        `json:"currentPlayerId"`
	GameInProgress     bool          `json:"gameInProgress"`
	SmallBlind         int64         `json:"smallBlind"`
	BigBlind           int64         `json:"bigBlind"`
}

// Snapshot captures the table's current state for relaying to clients.
func (g *Game) Snapshot() GameState {
	players := make([]PlayerState, 0, len(g.players))
	for _, p := range g.players {
		hand := p.Hand
		if hand == nil {
			hand = []Card{}
		}
		players = append(players, PlayerState{
			ID:     p.ID,
			Name:   p.Name,
			Avatar: p.Avatar,
			Chips:  p.Chips,
			Bet:    p.Bet,
			Hand:   hand,
			Folded: p.Folded,
			AllIn:  p.AllIn,
		})
	}

	community := g.communityCards
	if community == nil {
		community = []Card{}
	}
	pots := g.pots
	if pots == nil {
		pots = []Pot{}
	}

	currentPlayerID := ""
	if g.currentIndex >= 0 && g.currentIndex < len(g.players) {
		currentPlayerID = g.players[g.currentIndex].ID
	}

	return GameState{
		TableID:            g.tableID,
		Players:            players,
		CommunityCards:     community,
		Pot:                g.pot,
		Pots:               pots,
		CurrentBet:         g.currentBet,
		BettingRound:       g.round.String(),
		DealerIndex:        g.dealerIndex,
		CurrentPlayerIndex: g.currentIndex,
		CurrentPlayerID:    currentPlayerID,
		GameInProgress:     g.inProgress,
		SmallBlind:         g.smallBlind,
		BigBlind:           g.bigBlind,
	}
}
