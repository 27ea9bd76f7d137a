// File: game/messages.go
package game

// Event is a side effect of one tick, consumed by the shell (audio, logs).
type Event int

const (
	EventWallBounce Event = iota + 1
	EventPaddleHit
	EventScore
)

func (e Event) String() string {
	switch e {
	case EventWallBounce:
		return "wallBounce"
	case EventPaddleHit:
		return "paddleHit"
	case EventScore:
		return "score"
	}
	return "unknown"
}

// State is the match state machine tag.
type State int

const (
	StatePlaying State = iota
	StateGameOver
)

func (s State) String() string {
	if s == StateGameOver {
		return "GAME_OVER"
	}
	return "PLAYING"
}

// Snapshot is a read-only copy of everything a renderer needs for one frame.
type Snapshot struct {
	MatchID      string  `json:"matchId"`
	Width        float64 `json:"width"`
	Height       float64 `json:"height"`
	Ball         Rect    `json:"ball"`
	Player       Rect    `json:"player"`
	AI           Rect    `json:"ai"`
	PlayerScore  int     `json:"playerScore"`
	AIScore      int     `json:"aiScore"`
	WinningScore int     `json:"winningScore"`
	State        State   `json:"state"`
	Winner       string  `json:"winner"` // Empty unless State is StateGameOver
}
