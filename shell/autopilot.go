package shell

import "github.com/lguibr/pingpong/game"

// Autopilot steers the player paddle in headless runs. It reacts only while
// the ball comes towards it and only every few ticks, so it can be beaten.
type Autopilot struct {
	every     int
	tick      int
	lastBallX float64
	seen      bool
}

func NewAutopilot(every int) *Autopilot {
	if every < 1 {
		every = 1
	}
	return &Autopilot{every: every}
}

// Next picks the player's move for the frame in snap.
func (a *Autopilot) Next(snap game.Snapshot) game.Direction {
	approaching := a.seen && snap.Ball.X < a.lastBallX
	a.lastBallX, a.seen = snap.Ball.X, true
	a.tick++

	if snap.State != game.StatePlaying || !approaching || a.tick%a.every != 0 {
		return game.DirectionNone
	}

	deadZone := snap.Player.Height / 4
	switch ball := snap.Ball.CenterY(); {
	case ball < snap.Player.CenterY()-deadZone:
		return game.DirectionUp
	case ball > snap.Player.CenterY()+deadZone:
		return game.DirectionDown
	}
	return game.DirectionNone
}
