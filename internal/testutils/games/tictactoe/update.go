package tictactoe

// Update carries a rollout outcome computed from forPlayer's perspective.
// Folding it into an edge belonging to a different player's turn flips
// the value, since a win for one side is a loss for the other.
type Update struct {
	value     float64
	forPlayer int8
}

// NewUpdate constructs an update carrying value from forPlayer's point
// of view.
func NewUpdate(value float64, forPlayer int8) Update {
	return Update{value: value, forPlayer: forPlayer}
}

// ValueFor returns the value of this update as seen by turn: unchanged
// if turn is the player it was computed for, flipped otherwise.
func (u Update) ValueFor(turn int8) float64 {
	if u.forPlayer == turn {
		return u.value
	}
	return 1.0 - u.value
}
