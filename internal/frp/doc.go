// Package frp implements a discrete-time functional reactive programming
// core: signal functions, the combinators that build them, and the driver
// loop that steps a signal-function graph forward in fixed time increments.
//
// The central type is [SF], a stateful transformer invoked once per step:
//
//   - [Constant], [Lift], [Integral]: primitive signal functions
//   - [Compose], [Pipe], [Fanout2], [FanoutN]: structural combinators
//   - [Feedback], [DSwitch]: stateful combinators
//   - [React], [ReactWith], [ReactSeq]: driver loops
//
// # Example
//
//	vel := frp.Compose[struct{}](frp.Constant[struct{}](-9.8), frp.Integral(0))
//	n, _ := frp.React(ctx, frp.Compose(vel, frp.Lift(func(v float64) bool {
//	    return v > -5
//	})), nil)
//
// # Thread Safety
//
// Signal functions are NOT thread-safe. Every SF instance owns its internal
// state exclusively and must be stepped by a single driver; stepping is
// strictly sequential, so no locking is needed or performed.
package frp
