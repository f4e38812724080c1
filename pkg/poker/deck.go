package poker

import (
	"encoding/json"
	"fmt"
	"math/rand"
)

// Suit represents a card suit.
type Suit string

const (
	Hearts   Suit = "hearts"
	Diamonds Suit = "diamonds"
	Clubs    Suit = "clubs"
	Spades   Suit = "spades"
)

// Rank represents a card rank.
type Rank string

const (
	Two   Rank = "2"
	Three Rank = "3"
	Four  Rank = "4"
	Five  Rank = "5"
	Six   Rank = "6"
	Seven Rank = "7"
	Eight Rank = "8"
	Nine  Rank = "9"
	Ten   Rank = "10"
	Jack  Rank = "J"
	Queen Rank = "Q"
	King  Rank = "K"
	Ace   Rank = "A"
)

var suits = []Suit{Hearts, Diamonds, Clubs, Spades}

var ranks = []Rank{Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King, Ace}

// Card is an immutable playing card.
type Card struct {
	rank Rank
	suit Suit
}

// NewCard creates a card with the given rank and suit.
func NewCard(rank Rank, suit Suit) Card {
	return Card{rank: rank, suit: suit}
}

// Rank returns the card's rank.
func (c Card) Rank() Rank { return c.rank }

// Suit returns the card's suit.
func (c Card) Suit() Suit { return c.suit }

// Value returns the card's numeric value, 2 through 14 (Ace high).
func (c Card) Value() int {
	switch c.rank {
	case Ace:
		return 14
	case King:
		return 13
	case Queen:
		return 12
	case Jack:
		return 11
	case Ten:
		return 10
	case Nine:
		return 9
	case Eight:
		return 8
	case Seven:
		return 7
	case Six:
		return 6
	case Five:
		return 5
	case Four:
		return 4
	case Three:
		return 3
	case Two:
		return 2
	default:
		return 0
	}
}

// rankForValue is the inverse of Card.Value.
func rankForValue(v int) Rank {
	switch v {
	case 14:
		return Ace
	case 13:
		return King
	case 12:
		return Queen
	case 11:
		return Jack
	case 10:
		return Ten
	case 9:
		return Nine
	case 8:
		return Eight
	case 7:
		return Seven
	case 6:
		return Six
	case 5:
		return Five
	case 4:
		return Four
	case 3:
		return Three
	case 2:
		return Two
	default:
		return ""
	}
}

// String returns a short representation such as "Ah" or "10s".
func (c Card) String() string {
	if c.rank == "" || c.suit == "" {
		return "??"
	}
	return fmt.Sprintf("%s%c", c.rank, c.suit[0])
}

// CardJSON is the wire shape of a card.
type CardJSON struct {
	Rank  string `json:"rank"`
	Suit  string `json:"suit"`
	Value int    `json:"value"`
}

// MarshalJSON implements json.Marshaler.
func (c Card) MarshalJSON() ([]byte, error) {
	return json.Marshal(CardJSON{
		Rank:  string(c.rank),
		Suit:  string(c.suit),
		Value: c.Value(),
	})
}

// UnmarshalJSON implements json.Unmarshaler.
func (c *Card) UnmarshalJSON(data []byte) error {
	var cj CardJSON
	if err := json.Unmarshal(data, &cj); err != nil {
		return err
	}

	switch Suit(cj.Suit) {
	case Hearts, Diamonds, Clubs, Spades:
		c.suit = Suit(cj.Suit)
	default:
		return fmt.Errorf("invalid suit: %q", cj.Suit)
	}

	switch Rank(cj.Rank) {
	case Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King, Ace:
		c.rank = Rank(cj.Rank)
	default:
		return fmt.Errorf("invalid rank: %q", cj.Rank)
	}

	return nil
}

// Deck is an ordered sequence of the 52 unique cards, owned by one table.
type Deck struct {
	cards []Card
	rng   *rand.Rand
}

// NewDeck creates a full, shuffled deck using the given random source.
func NewDeck(rng *rand.Rand) *Deck {
	d := &Deck{
		cards: make([]Card, 0, 52),
		rng:   rng,
	}
	d.Reset()
	return d
}

// Reset repopulates the deck with all 52 cards and shuffles.
func (d *Deck) Reset() {
	d.cards = d.cards[:0]
	for _, suit := range suits {
		for _, rank := range ranks {
			d.cards = append(d.cards, Card{rank: rank, suit: suit})
		}
	}
	d.Shuffle()
}

// Shuffle randomizes the order of the remaining cards.
func (d *Deck) Shuffle() {
	d.rng.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}

// Deal removes and returns the top card. It reports false when the deck is
// empty; a 52-card deck covers any realistic hand, so an empty deck mid-hand
// is an invariant violation on the caller's side.
func (d *Deck) Deal() (Card, bool) {
	if len(d.cards) == 0 {
		return Card{}, false
	}
	card := d.cards[0]
	d.cards = d.cards[1:]
	return card, true
}

// Size returns the number of cards remaining.
func (d *Deck) Size() int {
	return len(d.cards)
}
