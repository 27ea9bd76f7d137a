package bollywood

// Actor processes one message at a time through its Receive method.
type Actor interface {
	Receive(ctx Context)
}

// ReceiveFunc adapts a plain function to an Actor.
type ReceiveFunc func(ctx Context)

func (f ReceiveFunc) Receive(ctx Context) { f(ctx) }
