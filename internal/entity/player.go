package entity

// Player - one seat at the board, either a human at the terminal or the engine.
type Player struct {
	Side Side
	Bot  bool
}

// Seats - both players of a round against the engine, indexed by Side.
func Seats(human Side) [2]Player {
	return [2]Player{
		SideCircle: {Side: SideCircle, Bot: human != SideCircle},
		SideCross:  {Side: SideCross, Bot: human != SideCross},
	}
}
