// File: game/paddle_test.go
package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaddle_Move(t *testing.T) {
	testCases := []struct {
		name      string
		initialY  float64
		delta     float64
		expectedY float64
	}{
		{"up", 250, -10, 240},
		{"down", 250, 10, 260},
		{"clamped at top", 5, -10, 0},
		{"clamped at bottom", 495, 10, 500},
		{"resting at top", 0, -10, 0},
		{"resting at bottom", 500, 10, 500},
		{"no move", 250, 0, 250},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			paddle := NewPaddle(10, tc.initialY, 10, 100)
			paddle.Move(tc.delta, testScreenHeight)
			assert.Equal(t, tc.expectedY, paddle.Y)
			assert.Equal(t, 10.0, paddle.X, "X never changes")
		})
	}
}

func TestPaddle_AutoTrack(t *testing.T) {
	// Paddle center starts at 300
	testCases := []struct {
		name      string
		initialY  float64
		ballY     float64 // ball top, ball is 7 high so its center is ballY+3.5
		expectedY float64
	}{
		{"ball far below", 250, 400, 255},
		{"ball far above", 250, 100, 245},
		{"ball slightly below", 250, 298.5, 252},
		{"ball slightly above", 250, 294.5, 248},
		{"ball level", 250, 296.5, 250},
		{"clamped at bottom", 498, 590, 500},
		{"clamped at top", 2, 0, 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			paddle := NewPaddle(780, tc.initialY, 10, 100)
			ball := newTestBall(400, tc.ballY, 5, 3)

			paddle.AutoTrack(ball, 5, testScreenHeight)

			assert.Equal(t, tc.expectedY, paddle.Y)
		})
	}
}

func TestPaddle_Reset(t *testing.T) {
	paddle := NewPaddle(10, 250, 10, 100)
	paddle.Move(-100, testScreenHeight)
	assert.Equal(t, 150.0, paddle.Y)

	paddle.Reset()
	assert.Equal(t, 250.0, paddle.Y)
	assert.Equal(t, 250.0, paddle.SpawnY())
}

func TestPaddle_Rect(t *testing.T) {
	paddle := NewPaddle(780, 250, 10, 100)
	assert.Equal(t, Rect{X: 780, Y: 250, Width: 10, Height: 100}, paddle.Rect())
}

func TestDirection_String(t *testing.T) {
	assert.Equal(t, "up", DirectionUp.String())
	assert.Equal(t, "down", DirectionDown.String())
	assert.Equal(t, "", DirectionNone.String())
}
