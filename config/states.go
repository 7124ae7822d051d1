package config

// GameStatus is the state of the single game controller
type GameStatus int

const (
	StatusIdle GameStatus = iota
	StatusRunning
	StatusOver
)

func (s GameStatus) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusRunning:
		return "running"
	case StatusOver:
		return "over"
	}
	return "unknown"
}

// Collision categories, one bit per body kind.
const (
	CategoryBird  uint32 = 1 << 0
	CategoryPipe  uint32 = 1 << 1
	CategoryFloor uint32 = 1 << 2
	CategoryEdge  uint32 = 0xFFFFFFFF
)
