package poker

// DefaultStartingChips is the stack a player sits down with unless the
// table configures otherwise.
const DefaultStartingChips int64 = 1000

// Player holds one seat's state. Chips persist across hands; the per-hand
// fields are cleared by ResetForNewHand. The zero bet/fold/all-in flags are
// maintained exclusively by the Game that owns the seat.
type Player struct {
	ID     string
	Name   string
	Avatar string

	Chips int64
	Bet   int64 // contribution in the current betting round
	Hand  []Card

	Folded   bool
	AllIn    bool
	HasActed bool
	Ready    bool
}

// NewPlayer seats a player with the given starting stack.
func NewPlayer(id, name, avatar string, chips int64) *Player {
	return &Player{
		ID:     id,
		Name:   name,
		Avatar: avatar,
		Chips:  chips,
		Hand:   make([]Card, 0, 2),
	}
}

// ResetForNewHand clears the per-hand state. Chips and readiness persist.
func (p *Player) ResetForNewHand() {
	p.Bet = 0
	p.Hand = make([]Card, 0, 2)
	p.Folded = false
	p.AllIn = false
	p.HasActed = false
}

// CanAct reports whether the player may still take betting actions this hand.
func (p *Player) CanAct() bool {
	return !p.Folded && !p.AllIn
}
