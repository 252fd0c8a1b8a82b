package rules

// Transition describes what happens to a single cell between two generations.
type Transition uint8

const (
	// Dies means a live cell does not survive into the next generation.
	Dies Transition = iota
	// StaysDead means a dead cell remains dead.
	StaysDead
	// Survives means a live cell remains alive.
	Survives
	// Born means a dead cell comes alive.
	Born
)

// MaxNeighbors is the largest possible number of live neighbors of a cell.
const MaxNeighbors = 8

// outcome is the B3/S23 decision table indexed by [alive][neighbors].
var outcome = [2][MaxNeighbors + 1]Transition{
	// dead
	{StaysDead, StaysDead, StaysDead, Born, StaysDead, StaysDead, StaysDead, StaysDead, StaysDead},
	// alive
	{Dies, Dies, Survives, Survives, Dies, Dies, Dies, Dies, Dies},
}

// Outcome looks up the transition of a cell with the given number of live
// neighbors. Counts outside [0, MaxNeighbors] cannot occur on a real grid and
// are treated as fatal for the cell.
func Outcome(neighbors int, alive bool) Transition {
	if neighbors < 0 || neighbors > MaxNeighbors {
		if alive {
			return Dies
		}
		return StaysDead
	}
	idx := 0
	if alive {
		idx = 1
	}
	return outcome[idx][neighbors]
}

// Alive reports whether the cell is alive after the transition.
func (t Transition) Alive() bool {
	return t == Survives || t == Born
}

func (t Transition) String() string {
	switch t {
	case Dies:
		return "dies"
	case StaysDead:
		return "stays dead"
	case Survives:
		return "survives"
	case Born:
		return "born"
	}
	return "unknown"
}

/*
ApplyConwayRules applies Conway's Game of Life rules to determine the next state of a cell.

Conway's Game of Life rules: B3/S23, a live cell survives with 2 or 3 live
neighbors and a dead cell is born with exactly 3.
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	return Outcome(neighbors, alive).Alive()
}
