package bollywood

// --- System Messages ---

// Started is the first message an actor receives.
type Started struct{}

// Stopping asks the actor to clean up. No user messages follow it.
type Stopping struct{}

// Stopped is the last message an actor receives.
type Stopped struct{}

type messageEnvelope struct {
	Sender  *PID
	Message interface{}
}

func isSystemMessage(message interface{}) bool {
	switch message.(type) {
	case Started, Stopping, Stopped:
		return true
	}
	return false
}
