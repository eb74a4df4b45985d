package sticks

// Update records which side lost a fully-played-out random rollout. The
// pile game is deterministic given its moves, so this is an exact
// outcome rather than an estimated probability.
type Update struct {
	loserSide int8
}

// NewUpdate constructs an update recording that loserSide ended up
// facing an empty pile.
func NewUpdate(loserSide int8) Update { return Update{loserSide: loserSide} }

// ValueFor returns 0.0 when side is the losing side, 1.0 otherwise.
func (u Update) ValueFor(side int8) float64 {
	if side == u.loserSide {
		return 0.0
	}
	return 1.0
}
