package entity

import "fmt"

type PlayerKind int

const (
	Human PlayerKind = iota
	Computer
)

func (k PlayerKind) String() string {
	if k == Computer {
		return "computer"
	}
	return "human"
}

type Player struct {
	Index int        `json:"index"`
	Mark  Mark       `json:"mark"`
	Kind  PlayerKind `json:"kind"`
}

// Number is the 1-based ordinal shown to users.
func (that Player) Number() int {
	return that.Index + 1
}

func (that Player) IsBot() bool {
	return that.Kind == Computer
}

func (that Player) String() string {
	return fmt.Sprintf("Player %d (%s)", that.Number(), that.Mark)
}
