// File: game/paddle.go
package game

import (
	"github.com/lguibr/pingpong/utils"
)

// Direction is a vertical move intent for a paddle.
type Direction int

const (
	DirectionNone Direction = iota
	DirectionUp
	DirectionDown
)

func (d Direction) String() string {
	switch d {
	case DirectionUp:
		return "up"
	case DirectionDown:
		return "down"
	}
	return ""
}

type Paddle struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`

	spawnY float64
}

func NewPaddle(x, y, width, height float64) *Paddle {
	return &Paddle{
		X:      x,
		Y:      y,
		Width:  width,
		Height: height,
		spawnY: y,
	}
}

// Move shifts the paddle by delta and keeps it inside [0, screenHeight-Height].
func (paddle *Paddle) Move(delta, screenHeight float64) {
	paddle.Y = utils.Clamp(paddle.Y+delta, 0, screenHeight-paddle.Height)
}

// AutoTrack steps the paddle center towards the ball center by at most step.
// The paddle never overshoots the ball center.
func (paddle *Paddle) AutoTrack(ball *Ball, step, screenHeight float64) {
	gap := ball.Rect().CenterY() - paddle.Rect().CenterY()
	if gap == 0 {
		return
	}
	delta := utils.Min(step, utils.Abs(gap))
	if gap < 0 {
		delta = -delta
	}
	paddle.Move(delta, screenHeight)
}

// Reset returns the paddle to its spawn height.
func (paddle *Paddle) Reset() {
	paddle.Y = paddle.spawnY
}

func (paddle *Paddle) SpawnY() float64 { return paddle.spawnY }

func (paddle *Paddle) Rect() Rect {
	return Rect{X: paddle.X, Y: paddle.Y, Width: paddle.Width, Height: paddle.Height}
}
