package poker

// HoleCardCategory represents the strength category of hole cards
type HoleCardCategory string

const (
	CategoryPremium HoleCardCategory = "Premium"
	CategoryStrong  HoleCardCategory = "Strong"
	CategoryMedium  HoleCardCategory = "Medium"
	CategoryWeak    HoleCardCategory = "Weak"
	CategoryTrash   HoleCardCategory = "Trash"
	CategoryUnknown HoleCardCategory = "Unknown"
)

// CategorizeHoleCards buckets a starting hand:
// Premium (JJ+, AK), Strong (TT, AQ, AJ), Medium (77-99, suited broadway),
// Weak (22-66, suited cards within two ranks), Trash (everything else).
func CategorizeHoleCards(c1, c2 Card) HoleCardCategory {
	if !validCard(c1) || !validCard(c2) || c1 == c2 {
		return CategoryUnknown
	}

	low, high := c1.Rank(), c2.Rank()
	if low > high {
		low, high = high, low
	}
	suited := c1.SuitBits() == c2.SuitBits()

	if low == high {
		switch {
		case low >= Jack:
			return CategoryPremium
		case low == Ten:
			return CategoryStrong
		case low >= Seven:
			return CategoryMedium
		default:
			return CategoryWeak
		}
	}

	switch {
	case high == Ace && low == King:
		return CategoryPremium
	case high == Ace && (low == Queen || low == Jack):
		return CategoryStrong
	case suited && low >= Ten:
		return CategoryMedium
	case suited && high-low <= 2:
		return CategoryWeak
	}
	return CategoryTrash
}

// CategorizeHoleCardsFromStrings categorizes hole cards given in "As" notation.
func CategorizeHoleCardsFromStrings(cards []string) HoleCardCategory {
	if len(cards) != 2 {
		return CategoryUnknown
	}

	c1, err1 := ParseCard(cards[0])
	c2, err2 := ParseCard(cards[1])
	if err1 != nil || err2 != nil {
		return CategoryUnknown
	}
	return CategorizeHoleCards(c1, c2)
}

func validCard(c Card) bool {
	return c.Rank() <= Ace && c.SuitBits() != 0 && c == NewCard(c.Rank(), c.Suit())
}
