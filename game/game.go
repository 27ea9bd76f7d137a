// File: game/game.go
package game

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/lguibr/pingpong/utils"
)

// ErrInvalidWinningScore rejects a match length outside [1, utils.MaxWinningScore].
var ErrInvalidWinningScore = errors.New("invalid winning score")

// MatchEngine owns the ball, both paddles and the score, and advances them one tick at a time.
// It is not safe for concurrent use; the shell drives it from a single loop.
type MatchEngine struct {
	cfg    utils.Config
	width  float64
	height float64

	player *Paddle
	ai     *Paddle
	ball   *Ball

	playerScore  int
	aiScore      int
	winningScore int
	state        State
	winner       string

	matchID string
	logger  *log.Logger
}

// NewMatchEngine validates cfg and starts the first match at cfg.WinningScore.
// A nil logger discards.
func NewMatchEngine(cfg utils.Config, rng utils.Random, logger *log.Logger) (*MatchEngine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := checkWinningScore(cfg.WinningScore); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = utils.Discard()
	}

	width, height := float64(cfg.ScreenWidth), float64(cfg.ScreenHeight)
	paddleW, paddleH := float64(cfg.PaddleWidth), float64(cfg.PaddleHeight)
	margin := float64(cfg.PaddleMargin)
	paddleY := float64(cfg.ScreenHeight/2 - cfg.PaddleHeight/2)
	ballSize := float64(cfg.BallSize)

	engine := &MatchEngine{
		cfg:          cfg,
		width:        width,
		height:       height,
		player:       NewPaddle(margin, paddleY, paddleW, paddleH),
		ai:           NewPaddle(width-margin-paddleW, paddleY, paddleW, paddleH),
		ball:         NewBall(float64(cfg.ScreenWidth/2), float64(cfg.ScreenHeight/2), ballSize, ballSize, height, cfg.BallSpeedX, cfg.VerticalSpeeds, rng),
		winningScore: cfg.WinningScore,
		state:        StatePlaying,
		logger:       logger,
	}
	engine.newMatchID()
	engine.logger.Info("Match started", "match", engine.matchID, "winningScore", engine.winningScore)

	return engine, nil
}

func checkWinningScore(score int) error {
	if score < 1 || score > utils.MaxWinningScore {
		return fmt.Errorf("%w: %d", ErrInvalidWinningScore, score)
	}
	return nil
}

func (e *MatchEngine) newMatchID() {
	e.matchID = uuid.NewString()
}

// MovePlayer moves the human paddle one step. Ignored once the match is over.
func (e *MatchEngine) MovePlayer(dir Direction) {
	if e.state != StatePlaying {
		return
	}
	switch dir {
	case DirectionUp:
		e.player.Move(-e.cfg.PlayerStep, e.height)
	case DirectionDown:
		e.player.Move(e.cfg.PlayerStep, e.height)
	}
}

// Update runs one tick and returns the events it produced, in order.
// Nothing moves while the match is over.
func (e *MatchEngine) Update() []Event {
	if e.state != StatePlaying {
		return nil
	}

	var events []Event

	if e.ball.Move() {
		events = append(events, EventWallBounce)
	}

	if e.ball.CheckCollision(e.player, e.ai) {
		events = append(events, EventPaddleHit)
	}

	scored := false
	if e.ball.X <= 0 {
		e.aiScore++
		scored = true
	} else if e.ball.X >= e.width {
		e.playerScore++
		scored = true
	}

	if scored {
		events = append(events, EventScore)
		e.logger.Debug("Point scored", "match", e.matchID, "player", e.playerScore, "ai", e.aiScore)
		e.ball.Reset()
	}

	e.ai.AutoTrack(e.ball, e.cfg.AIStep, e.height)
	e.checkForWinner()

	return events
}

// checkForWinner favours the player when both scores qualify.
func (e *MatchEngine) checkForWinner() {
	switch {
	case e.playerScore >= e.winningScore:
		e.winner = utils.PlayerWinsLabel
	case e.aiScore >= e.winningScore:
		e.winner = utils.AIWinsLabel
	default:
		return
	}
	e.state = StateGameOver
	e.logger.Info("Match over", "match", e.matchID, "winner", e.winner, "player", e.playerScore, "ai", e.aiScore)
}

// Restart begins a new match to winningScore. Scores, ball and paddles go back to their spawn state.
func (e *MatchEngine) Restart(winningScore int) error {
	if err := checkWinningScore(winningScore); err != nil {
		return err
	}

	e.winningScore = winningScore
	e.playerScore = 0
	e.aiScore = 0
	e.winner = ""
	e.ball.Reset()
	e.player.Reset()
	e.ai.Reset()
	e.state = StatePlaying
	e.newMatchID()

	e.logger.Info("Match started", "match", e.matchID, "winningScore", winningScore)
	return nil
}

func (e *MatchEngine) State() State { return e.state }

// Winner is the winner label, empty while playing.
func (e *MatchEngine) Winner() string { return e.winner }

func (e *MatchEngine) Scores() (player, ai int) { return e.playerScore, e.aiScore }

func (e *MatchEngine) WinningScore() int { return e.winningScore }

func (e *MatchEngine) MatchID() string { return e.matchID }

func (e *MatchEngine) Snapshot() Snapshot {
	return Snapshot{
		MatchID:      e.matchID,
		Width:        e.width,
		Height:       e.height,
		Ball:         e.ball.Rect(),
		Player:       e.player.Rect(),
		AI:           e.ai.Rect(),
		PlayerScore:  e.playerScore,
		AIScore:      e.aiScore,
		WinningScore: e.winningScore,
		State:        e.state,
		Winner:       e.winner,
	}
}
