package domain

import (
	"time"

	mapset "github.com/deckarep/golang-set/v2"
)

type Position string

const (
	Quarterback  Position = "QB"
	RunningBack  Position = "RB"
	WideReceiver Position = "WR"
	TightEnd     Position = "TE"
	Kicker       Position = "K"
	Defense      Position = "DEF"
)

var positions = mapset.NewSet[Position](Quarterback, RunningBack, WideReceiver, TightEnd, Kicker, Defense)

func (p Position) Valid() bool {
	return positions.Contains(p)
}

type Team struct {
	ID       int
	Name     string
	Division string
	Wins     int
	Losses   int
}

type Player struct {
	ID            int
	Name          string
	Position      Position
	FantasyPoints *float64
	Team          Team
}

// PlayerGame is one week of a player's rushing and receiving stats.
type PlayerGame struct {
	ID           int
	PlayerID     int
	Date         time.Time
	RushAttempts int
	RushYards    float64
	RushTDs      int
	Targets      int
	Receptions   int
	RecYards     float64
	RecTDs       int
}

// Projection is the expected stat line of a player's next game.
type Projection struct {
	PlayerID     int
	Games        int
	RushAttempts float64
	RushYards    float64
	RushTDs      float64
	Receptions   float64
	RecYards     float64
	RecTDs       float64
}
