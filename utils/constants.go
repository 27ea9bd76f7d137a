package utils

const (
	WindowTitle  = "Ping Pong"
	ScreenWidth  = 800
	ScreenHeight = 600
	TickRate     = 60

	MaxWinningScore = 99

	PlayerWinsLabel = "Player Wins!"
	AIWinsLabel     = "AI Wins!"
)

// MatchLengths are the restart presets offered on the game over menu.
var MatchLengths = []int{3, 5, 7}

const (
	EnvWinningScore = "PINGPONG_WINNING_SCORE"
	EnvTickRate     = "PINGPONG_TICK_RATE"
	EnvSeed         = "PINGPONG_SEED"
	EnvMute         = "PINGPONG_MUTE"
	EnvLogFile      = "PINGPONG_LOG_FILE"
	EnvLogLevel     = "PINGPONG_LOG_LEVEL"
)
