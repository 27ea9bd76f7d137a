package game

import (
	"testing"

	"github.com/lguibr/pingpong/utils"
	"github.com/stretchr/testify/require"
)

// seqRandom replays a fixed sequence of draws.
type seqRandom struct {
	draws []int
	next  int
}

func (s *seqRandom) Intn(n int) int {
	if len(s.draws) == 0 {
		return 0
	}
	v := s.draws[s.next%len(s.draws)]
	s.next++
	return v % n
}

func newTestEngine(t *testing.T, mutate func(cfg *utils.Config)) *MatchEngine {
	t.Helper()
	cfg := utils.DefaultConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	engine, err := NewMatchEngine(cfg, utils.NewRandom(1), nil)
	require.NoError(t, err)
	return engine
}

// placeBall puts the ball mid-flight somewhere no paddle can reach it.
func placeBall(e *MatchEngine, x, y, vx, vy float64) {
	e.ball.X, e.ball.Y = x, y
	e.ball.Vx, e.ball.Vy = vx, vy
}
