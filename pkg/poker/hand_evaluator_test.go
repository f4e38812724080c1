package poker

import (
	"math/rand"
	"testing"

	chehsunliu "github.com/chehsunliu/poker"
	paulhankin "github.com/paulhankin/poker"
)

func TestEvaluateHandCategories(t *testing.T) {
	tests := []struct {
		name     string
		cards    []Card
		wantRank HandRank
		wantHigh int
		wantDesc string
	}{
		{
			name: "royal flush",
			cards: []Card{
				NewCard(Ace, Hearts), NewCard(King, Hearts), NewCard(Queen, Hearts),
				NewCard(Jack, Hearts), NewCard(Ten, Hearts), NewCard(Two, Clubs), NewCard(Three, Diamonds),
			},
			wantRank: RoyalFlush,
			wantHigh: 14,
			wantDesc: "Royal Flush",
		},
		{
			name: "straight flush",
			cards: []Card{
				NewCard(Nine, Spades), NewCard(Eight, Spades), NewCard(Seven, Spades),
				NewCard(Six, Spades), NewCard(Five, Spades), NewCard(Ace, Hearts), NewCard(Two, Diamonds),
			},
			wantRank: StraightFlush,
			wantHigh: 9,
			wantDesc: "Straight Flush, 9 high",
		},
		{
			name: "four of a kind",
			cards: []Card{
				NewCard(Queen, Hearts), NewCard(Queen, Diamonds), NewCard(Queen, Clubs),
				NewCard(Queen, Spades), NewCard(King, Hearts), NewCard(Two, Clubs), NewCard(Seven, Diamonds),
			},
			wantRank: FourOfAKind,
			wantHigh: 12,
			wantDesc: "Four of a Kind, Qs",
		},
		{
			name: "full house",
			cards: []Card{
				NewCard(King, Hearts), NewCard(King, Diamonds), NewCard(King, Clubs),
				NewCard(Nine, Spades), NewCard(Nine, Hearts), NewCard(Two, Clubs), NewCard(Three, Diamonds),
			},
			wantRank: FullHouse,
			wantHigh: 13,
			wantDesc: "Full House, Ks over 9s",
		},
		{
			name: "flush",
			cards: []Card{
				NewCard(King, Hearts), NewCard(Jack, Hearts), NewCard(Nine, Hearts),
				NewCard(Five, Hearts), NewCard(Two, Hearts), NewCard(Three, Spades), NewCard(Four, Clubs),
			},
			wantRank: Flush,
			wantHigh: 13,
			wantDesc: "Flush, K high",
		},
		{
			name: "straight",
			cards: []Card{
				NewCard(Ten, Hearts), NewCard(Nine, Spades), NewCard(Eight, Diamonds),
				NewCard(Seven, Clubs), NewCard(Six, Hearts), NewCard(Ace, Hearts), NewCard(Two, Spades),
			},
			wantRank: Straight,
			wantHigh: 10,
			wantDesc: "Straight, 10 high",
		},
		{
			name: "three of a kind",
			cards: []Card{
				NewCard(Seven, Hearts), NewCard(Seven, Diamonds), NewCard(Seven, Clubs),
				NewCard(King, Spades), NewCard(Queen, Hearts), NewCard(Two, Clubs), NewCard(Four, Diamonds),
			},
			wantRank: ThreeOfAKind,
			wantHigh: 7,
			wantDesc: "Three of a Kind, 7s",
		},
		{
			name: "two pair",
			cards: []Card{
				NewCard(Jack, Hearts), NewCard(Jack, Diamonds), NewCard(Four, Clubs),
				NewCard(Four, Spades), NewCard(Ace, Hearts), NewCard(Two, Clubs), NewCard(Seven, Diamonds),
			},
			wantRank: TwoPair,
			wantHigh: 11,
			wantDesc: "Two Pair, Js and 4s",
		},
		{
			name: "pair",
			cards: []Card{
				NewCard(Eight, Hearts), NewCard(Eight, Diamonds), NewCard(Ace, Clubs),
				NewCard(King, Spades), NewCard(Three, Hearts), NewCard(Four, Clubs), NewCard(Nine, Diamonds),
			},
			wantRank: Pair,
			wantHigh: 8,
			wantDesc: "Pair of 8s",
		},
		{
			name: "high card",
			cards: []Card{
				NewCard(Ace, Hearts), NewCard(King, Spades), NewCard(Nine, Diamonds),
				NewCard(Seven, Clubs), NewCard(Five, Hearts), NewCard(Four, Spades), NewCard(Two, Diamonds),
			},
			wantRank: HighCard,
			wantHigh: 14,
			wantDesc: "High Card, A",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := EvaluateHand(tt.cards)
			if result.Rank != tt.wantRank {
				t.Fatalf("rank = %s, want %s", result.Rank, tt.wantRank)
			}
			if result.Tiebreaks[0] != tt.wantHigh {
				t.Errorf("top tiebreak = %d, want %d", result.Tiebreaks[0], tt.wantHigh)
			}
			if result.Description != tt.wantDesc {
				t.Errorf("description = %q, want %q", result.Description, tt.wantDesc)
			}
			if len(result.BestHand) != 5 {
				t.Errorf("best hand has %d cards, want 5", len(result.BestHand))
			}
		})
	}
}

// An ace-to-five straight ranks as a 5-high straight, not ace-high.
func TestWheelStraight(t *testing.T) {
	cards := []Card{
		NewCard(Ace, Hearts), NewCard(Two, Diamonds), NewCard(Three, Clubs),
		NewCard(Four, Spades), NewCard(Five, Hearts), NewCard(Nine, Clubs), NewCard(King, Diamonds),
	}

	result := EvaluateHand(cards)
	if result.Rank != Straight {
		t.Fatalf("rank = %s, want %s", result.Rank, Straight)
	}
	if result.Tiebreaks[0] != 5 {
		t.Fatalf("wheel high card = %d, want 5", result.Tiebreaks[0])
	}

	sixHigh := EvaluateHand([]Card{
		NewCard(Two, Hearts), NewCard(Three, Diamonds), NewCard(Four, Clubs),
		NewCard(Five, Spades), NewCard(Six, Hearts), NewCard(Nine, Clubs), NewCard(King, Diamonds),
	})
	if CompareHands(sixHigh, result) <= 0 {
		t.Fatal("six-high straight should beat the wheel")
	}
}

func TestEvaluateHandTooFewCards(t *testing.T) {
	result := EvaluateHand([]Card{NewCard(Ace, Hearts), NewCard(King, Spades)})
	if result.Rank != HighCard {
		t.Fatalf("rank = %s, want %s", result.Rank, HighCard)
	}
	if result.Description != "Not enough cards" {
		t.Fatalf("description = %q", result.Description)
	}
}

func TestCompareHands(t *testing.T) {
	flush := EvaluateHand([]Card{
		NewCard(King, Hearts), NewCard(Jack, Hearts), NewCard(Nine, Hearts),
		NewCard(Five, Hearts), NewCard(Two, Hearts),
	})
	straight := EvaluateHand([]Card{
		NewCard(Ten, Hearts), NewCard(Nine, Spades), NewCard(Eight, Diamonds),
		NewCard(Seven, Clubs), NewCard(Six, Hearts),
	})

	if CompareHands(flush, straight) <= 0 {
		t.Fatal("flush should beat straight")
	}
	if CompareHands(straight, flush) >= 0 {
		t.Fatal("comparison should be antisymmetric")
	}

	// Same ranks in different suits with no flush are a dead tie.
	a := EvaluateHand([]Card{
		NewCard(Ace, Hearts), NewCard(King, Spades), NewCard(Nine, Diamonds),
		NewCard(Seven, Clubs), NewCard(Five, Hearts),
	})
	b := EvaluateHand([]Card{
		NewCard(Ace, Spades), NewCard(King, Hearts), NewCard(Nine, Clubs),
		NewCard(Seven, Diamonds), NewCard(Five, Spades),
	})
	if CompareHands(a, b) != 0 {
		t.Fatal("suit-only differences should tie")
	}

	// Kicker decides between equal pairs.
	highKicker := EvaluateHand([]Card{
		NewCard(Eight, Hearts), NewCard(Eight, Diamonds), NewCard(Ace, Clubs),
		NewCard(Four, Spades), NewCard(Three, Hearts),
	})
	lowKicker := EvaluateHand([]Card{
		NewCard(Eight, Spades), NewCard(Eight, Clubs), NewCard(King, Hearts),
		NewCard(Four, Diamonds), NewCard(Three, Spades),
	})
	if CompareHands(highKicker, lowKicker) <= 0 {
		t.Fatal("ace kicker should beat king kicker")
	}
}

func toChehsunliu(cards []Card) []chehsunliu.Card {
	rankChars := map[int]byte{
		2: '2', 3: '3', 4: '4', 5: '5', 6: '6', 7: '7', 8: '8',
		9: '9', 10: 'T', 11: 'J', 12: 'Q', 13: 'K', 14: 'A',
	}
	suitChars := map[Suit]byte{Spades: 's', Hearts: 'h', Diamonds: 'd', Clubs: 'c'}

	out := make([]chehsunliu.Card, len(cards))
	for i, c := range cards {
		out[i] = chehsunliu.NewCard(string([]byte{rankChars[c.Value()], suitChars[c.Suit()]}))
	}
	return out
}

func toPaulhankin(cards []Card) [7]paulhankin.Card {
	suits := map[Suit]paulhankin.Suit{
		Clubs: paulhankin.Club, Diamonds: paulhankin.Diamond,
		Hearts: paulhankin.Heart, Spades: paulhankin.Spade,
	}

	var out [7]paulhankin.Card
	for i, c := range cards {
		// Library ranks run 1..13 with ace low.
		r := c.Value()
		if r == 14 {
			r = 1
		}
		card, err := paulhankin.MakeCard(suits[c.Suit()], paulhankin.Rank(r))
		if err != nil {
			panic(err)
		}
		out[i] = card
	}
	return out
}

func sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	default:
		return 0
	}
}

// Cross-check ordering of random 7-card hands against two independent
// evaluators. chehsunliu scores lower-is-better; paulhankin Eval7 scores
// higher-is-better.
func TestEvaluateHandAgainstReferenceEvaluators(t *testing.T) {
	rng := rand.New(rand.NewSource(2024))
	deck := NewDeck(rng)

	for trial := 0; trial < 500; trial++ {
		deck.Reset()

		draw := func() []Card {
			cards := make([]Card, 7)
			for i := range cards {
				c, ok := deck.Deal()
				if !ok {
					t.Fatal("deck ran out")
				}
				cards[i] = c
			}
			return cards
		}
		handA, handB := draw(), draw()

		got := sign(CompareHands(EvaluateHand(handA), EvaluateHand(handB)))

		csA := chehsunliu.Evaluate(toChehsunliu(handA))
		csB := chehsunliu.Evaluate(toChehsunliu(handB))
		if want := sign(int(csB) - int(csA)); got != want {
			t.Fatalf("trial %d: compare %v vs %v = %d, chehsunliu says %d",
				trial, handA, handB, got, want)
		}

		phA, phB := toPaulhankin(handA), toPaulhankin(handB)
		if want := sign(int(paulhankin.Eval7(&phA)) - int(paulhankin.Eval7(&phB))); got != want {
			t.Fatalf("trial %d: compare %v vs %v = %d, paulhankin says %d",
				trial, handA, handB, got, want)
		}
	}
}

// Category agreement with chehsunliu on random hands. Their rank classes
// run 1 (straight flush) to 9 (high card) and fold royal flushes into
// straight flushes.
func TestHandRankMatchesReferenceClass(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	deck := NewDeck(rng)

	for trial := 0; trial < 500; trial++ {
		deck.Reset()

		cards := make([]Card, 7)
		for i := range cards {
			c, _ := deck.Deal()
			cards[i] = c
		}

		result := EvaluateHand(cards)
		want := int32(10 - result.Rank)
		if result.Rank == RoyalFlush {
			want = 1
		}

		got := chehsunliu.RankClass(chehsunliu.Evaluate(toChehsunliu(cards)))
		if got != want {
			t.Fatalf("trial %d: %v ranked %s (class %d), reference class %d",
				trial, cards, result.Rank, want, got)
		}
	}
}
