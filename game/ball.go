package game

import (
	"github.com/lguibr/pingpong/utils"
)

type Ball struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Vx     float64 `json:"vx"`
	Vy     float64 `json:"vy"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`

	spawnX, spawnY float64
	screenHeight   float64
	verticalSpeeds []float64
	rng            utils.Random
}

// NewBall places a ball at its spawn point with a random serve direction.
// |vx| is speedX for the ball's whole life; vy is drawn from verticalSpeeds.
func NewBall(x, y, width, height, screenHeight, speedX float64, verticalSpeeds []float64, rng utils.Random) *Ball {
	ball := &Ball{
		X:              x,
		Y:              y,
		Width:          width,
		Height:         height,
		spawnX:         x,
		spawnY:         y,
		screenHeight:   screenHeight,
		verticalSpeeds: verticalSpeeds,
		rng:            rng,
	}
	ball.Vx = utils.Choice(rng, []float64{-speedX, speedX})
	ball.Vy = utils.Choice(rng, verticalSpeeds)
	return ball
}

// Move advances the ball one tick and reports whether it bounced off the top or bottom wall.
// Y is left as is after a bounce; the reversed vy carries the ball back next tick.
func (ball *Ball) Move() bool {
	ball.X += ball.Vx
	ball.Y += ball.Vy

	if ball.Y <= 0 || ball.Y+ball.Height >= ball.screenHeight {
		ball.Vy = -ball.Vy
		return true
	}
	return false
}

// CheckCollision bounces the ball off the paddle it is travelling towards.
// The left paddle is only tested while vx < 0 and the right one while vx > 0,
// so a bounce is never processed twice.
func (ball *Ball) CheckCollision(left, right *Paddle) bool {
	collided := false

	if ball.Vx < 0 && ball.Rect().Intersects(left.Rect()) {
		ball.Vx = -ball.Vx
		ball.X = left.X + left.Width
		collided = true
	}

	if ball.Vx > 0 && ball.Rect().Intersects(right.Rect()) {
		ball.Vx = -ball.Vx
		ball.X = right.X - ball.Width
		collided = true
	}

	return collided
}

// Reset serves the ball again from its spawn point towards the other side.
func (ball *Ball) Reset() {
	ball.X = ball.spawnX
	ball.Y = ball.spawnY
	ball.Vx = -ball.Vx
	ball.Vy = utils.Choice(ball.rng, ball.verticalSpeeds)
}

func (ball *Ball) Spawn() (x, y float64) { return ball.spawnX, ball.spawnY }

func (ball *Ball) Rect() Rect {
	return Rect{X: ball.X, Y: ball.Y, Width: ball.Width, Height: ball.Height}
}
