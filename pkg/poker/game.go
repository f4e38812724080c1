package poker

import (
	"math/rand"
	"time"

	"github.com/decred/slog"
	"github.com/google/uuid"

	"github.com/NextLevel333/PokeR/pkg/statemachine"
)

// BettingRound identifies the street being bet.
type BettingRound int

const (
	PreFlop BettingRound = iota
	Flop
	Turn
	River
)

// String returns the wire name of the round.
func (r BettingRound) String() string {
	switch r {
	case PreFlop:
		return "pre-flop"
	case Flop:
		return "flop"
	case Turn:
		return "turn"
	case River:
		return "river"
	default:
		return "unknown"
	}
}

// Config holds the settings for a new table.
type Config struct {
	TableID       string
	MaxPlayers    int
	SmallBlind    int64
	BigBlind      int64
	StartingChips int64
	Seed          int64 // non-zero for deterministic shuffles
	Log           slog.Logger
}

// Game is one table's Texas Hold'em engine. It is synchronous: every
// exported method is a single atomic state transition, and the caller is
// responsible for serializing calls to the same Game (a per-table lock or
// a single dispatch goroutine). Distinct Games share no state.
type Game struct {
	log slog.Logger

	tableID    string
	maxPlayers int

	players []*Player
	deck    *Deck

	communityCards []Card
	pot            int64
	pots           []Pot
	currentBet     int64
	round          BettingRound
	dealerIndex    int
	currentIndex   int
	inProgress     bool

	smallBlind    int64
	bigBlind      int64
	startingChips int64

	// streets deals the remaining community cards in order as betting
	// rounds close.
	streets *statemachine.Machine[Game]
}

// NewGame creates a table with the given configuration. Zero-value config
// fields get defaults: 10 seats, 10/20 blinds, 1000 starting chips, a
// time-seeded shuffle, a generated table id, and a disabled logger.
func NewGame(cfg Config) *Game {
	if cfg.TableID == "" {
		cfg.TableID = uuid.NewString()
	}
	if cfg.MaxPlayers == 0 {
		cfg.MaxPlayers = 10
	}
	if cfg.SmallBlind == 0 {
		cfg.SmallBlind = 10
	}
	if cfg.BigBlind == 0 {
		cfg.BigBlind = 20
	}
	if cfg.StartingChips == 0 {
		cfg.StartingChips = DefaultStartingChips
	}
	if cfg.Log == nil {
		cfg.Log = slog.Disabled
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &Game{
		log:           cfg.Log,
		tableID:       cfg.TableID,
		maxPlayers:    cfg.MaxPlayers,
		deck:          NewDeck(rand.New(rand.NewSource(seed))),
		smallBlind:    cfg.SmallBlind,
		bigBlind:      cfg.BigBlind,
		startingChips: cfg.StartingChips,
	}
}

// TableID returns the table's identifier.
func (g *Game) TableID() string { return g.tableID }

// InProgress reports whether a hand is being played.
func (g *Game) InProgress() bool { return g.inProgress }

// Round returns the current betting round.
func (g *Game) Round() BettingRound { return g.round }

// AddPlayer seats a new player, or returns nil when the table is full.
// Seating order is join order.
func (g *Game) AddPlayer(id, name, avatar string) *Player {
	if len(g.players) >= g.maxPlayers {
		return nil
	}
	p := NewPlayer(id, name, avatar, g.startingChips)
	g.players = append(g.players, p)
	g.log.Infof("player %s (%s) joined table %s with %d chips", name, id, g.tableID, p.Chips)
	return p
}

// RemovePlayer unseats a player. The dealer and current-player indices are
// re-wrapped modulo the new seat count so an in-progress hand keeps a valid
// acting seat.
func (g *Game) RemovePlayer(id string) {
	index := -1
	for i, p := range g.players {
		if p.ID == id {
			index = i
			break
		}
	}
	if index == -1 {
		return
	}

	g.players = append(g.players[:index], g.players[index+1:]...)
	g.log.Infof("player %s left table %s", id, g.tableID)

	if len(g.players) == 0 {
		return
	}
	if g.inProgress && index <= g.currentIndex {
		g.currentIndex = g.currentIndex % len(g.players)
	}
	if index <= g.dealerIndex {
		g.dealerIndex = g.dealerIndex % len(g.players)
	}
}

// PlayerCount returns the number of seated players.
func (g *Game) PlayerCount() int {
	return len(g.players)
}

// SetPlayerReady marks a seated player as ready for the next hand. It
// reports whether the player was found.
func (g *Game) SetPlayerReady(id string) bool {
	for _, p := range g.players {
		if p.ID == id {
			p.Ready = true
			return true
		}
	}
	return false
}

// ResetReadyStates clears every player's ready flag.
func (g *Game) ResetReadyStates() {
	for _, p := range g.players {
		p.Ready = false
	}
}

// AllPlayersReady reports whether at least two players are seated and all
// of them are ready.
func (g *Game) AllPlayersReady() bool {
	if len(g.players) < 2 {
		return false
	}
	for _, p := range g.players {
		if !p.Ready {
			return false
		}
	}
	return true
}

// PlayerReadiness is one player's entry in the lobby readiness list.
type PlayerReadiness struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Ready bool   `json:"ready"`
}

// ReadinessState lists each seated player's ready flag.
func (g *Game) ReadinessState() []PlayerReadiness {
	out := make([]PlayerReadiness, 0, len(g.players))
	for _, p := range g.players {
		out = append(out, PlayerReadiness{ID: p.ID, Name: p.Name, Ready: p.Ready})
	}
	return out
}

// StartNewHand resets the table for a fresh hand: reshuffled deck, cleared
// board and pots, advanced dealer button, posted blinds, and two hole cards
// per player. With fewer than two players it marks the game not in progress
// and deals nothing.
func (g *Game) StartNewHand() {
	if len(g.players) < 2 {
		g.inProgress = false
		return
	}

	g.deck.Reset()
	g.communityCards = nil
	g.pot = 0
	g.pots = nil
	g.currentBet = 0
	g.round = PreFlop
	g.inProgress = true

	for _, p := range g.players {
		p.ResetForNewHand()
	}

	g.dealerIndex = (g.dealerIndex + 1) % len(g.players)

	g.postBlinds()
	g.dealHoleCards()

	// Heads-up the small blind (the dealer's neighbor, effectively the
	// dealer seat) acts first pre-flop; otherwise the seat after the big
	// blind does.
	offset := 3
	if len(g.players) == 2 {
		offset = 1
	}
	g.currentIndex = (g.dealerIndex + offset) % len(g.players)
	if !g.players[g.currentIndex].CanAct() {
		g.moveToNextPlayer()
	}

	g.streets = statemachine.New(g, dealFlop)

	g.log.Infof("table %s: new hand, dealer seat %d, %d players", g.tableID, g.dealerIndex, len(g.players))
}

// postBlinds collects the forced bets from the two seats after the dealer.
// A short stack posts what it has and is all-in.
func (g *Game) postBlinds() {
	n := len(g.players)
	sb := g.players[(g.dealerIndex+1)%n]
	bb := g.players[(g.dealerIndex+2)%n]

	sbAmount := min64(g.smallBlind, sb.Chips)
	sb.Chips -= sbAmount
	sb.Bet = sbAmount
	g.pot += sbAmount

	bbAmount := min64(g.bigBlind, bb.Chips)
	bb.Chips -= bbAmount
	bb.Bet = bbAmount
	g.pot += bbAmount
	g.currentBet = bbAmount

	if sb.Chips == 0 {
		sb.AllIn = true
	}
	if bb.Chips == 0 {
		bb.AllIn = true
	}

	g.log.Debugf("blinds posted: %s %d, %s %d", sb.Name, sbAmount, bb.Name, bbAmount)
}

// dealHoleCards gives each player two cards, one at a time across two
// passes around the table.
func (g *Game) dealHoleCards() {
	for i := 0; i < 2; i++ {
		for _, p := range g.players {
			p.Hand = append(p.Hand, g.mustDeal())
		}
	}
}

// mustDeal draws the next card. The deck always covers a full hand, so an
// empty deck here is a broken invariant.
func (g *Game) mustDeal() Card {
	card, ok := g.deck.Deal()
	if !ok {
		panic("poker: deck exhausted mid-hand")
	}
	return card
}

// Street states. Each burns one card, deals its street, and marks the new
// round; the chain parks on the next street until betting closes again.

func dealFlop(g *Game) statemachine.StateFn[Game] {
	g.mustDeal()
	for i := 0; i < 3; i++ {
		g.communityCards = append(g.communityCards, g.mustDeal())
	}
	g.round = Flop
	g.log.Debugf("table %s: flop %v", g.tableID, g.communityCards)
	return dealTurn
}

func dealTurn(g *Game) statemachine.StateFn[Game] {
	g.mustDeal()
	g.communityCards = append(g.communityCards, g.mustDeal())
	g.round = Turn
	g.log.Debugf("table %s: turn %v", g.tableID, g.communityCards[3])
	return dealRiver
}

func dealRiver(g *Game) statemachine.StateFn[Game] {
	g.mustDeal()
	g.communityCards = append(g.communityCards, g.mustDeal())
	g.round = River
	g.log.Debugf("table %s: river %v", g.tableID, g.communityCards[4])
	return nil
}

// playerByID finds a seated player.
func (g *Game) playerByID(id string) *Player {
	for _, p := range g.players {
		if p.ID == id {
			return p
		}
	}
	return nil
}

func min64(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}
