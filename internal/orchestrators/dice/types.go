package dice

// RollDiceInput defines the request for rolling dice
type RollDiceInput struct {
	Notation    string
	Description string
}

// PoolRoll is the outcome of one dice pool within a roll
type PoolRoll struct {
	Notation string
	Dice     []int
	Total    int
}

// DiceRoll is a single itemized roll
type DiceRoll struct {
	RollID      string
	Notation    string // canonical form of the requested notation
	Pools       []PoolRoll
	Modifier    int
	Total       int
	Description string
}

// RollDiceOutput defines the response for rolling dice
type RollDiceOutput struct {
	Roll *DiceRoll
}
