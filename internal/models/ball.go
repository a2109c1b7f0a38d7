package models

import "github.com/tomaskol/sigflow/internal/frp"

// Ball is the sampled output of the ball models.
type Ball struct {
	Pos float64
	Vel float64
}

// BallParams collects the physical constants of the ball models.
type BallParams struct {
	Gravity     float64
	Restitution float64
	InitPos     float64
	InitVel     float64
}

func DefaultBallParams() BallParams {
	return BallParams{
		Gravity:     -9.8,
		Restitution: 0.9,
		InitPos:     10.0,
		InitVel:     0.0,
	}
}

func ballParams(params map[string]float64) BallParams {
	def := DefaultBallParams()
	return BallParams{
		Gravity:     param(params, "gravity", def.Gravity),
		Restitution: param(params, "restitution", def.Restitution),
		InitPos:     param(params, "pos", def.InitPos),
		InitVel:     param(params, "vel", def.InitVel),
	}
}

// FallingBall integrates constant gravity into velocity and velocity into
// position. The velocity stage is one shared instance: the position chain
// advances the same integral a second time within each outer step, so with
// dt=0.1 the first step reads {vel: -0.98, pos: 9.804}.
func FallingBall(p BallParams) frp.SF[struct{}, Ball] {
	vel := frp.Compose(frp.Constant[struct{}, float64](p.Gravity), frp.Integral(p.InitVel))
	pos := frp.Compose(vel, frp.Integral(p.InitPos))
	return frp.Fanout2(func(v, x float64) Ball {
		return Ball{Pos: x, Vel: v}
	}, vel, pos)
}

// BouncingBall wraps FallingBall in a delayed switch: when the ball crosses
// the floor, the fall restarts from the crossing point with the velocity
// reversed and scaled by the restitution coefficient. Each bounce installs a
// fresh switch, so the ball keeps bouncing.
func BouncingBall(p BallParams) frp.SF[struct{}, Ball] {
	return frp.DSwitch(FallingBall(p),
		func(b Ball) bool { return b.Pos <= 0 },
		func(b Ball) frp.SF[struct{}, Ball] {
			next := p
			next.InitPos = b.Pos
			next.InitVel = -p.Restitution * b.Vel
			return BouncingBall(next)
		},
	)
}

func sampleBall(b Ball) []float64 { return []float64{b.Pos, b.Vel} }

func newFallingBallModel() Model {
	return &graphModel[Ball]{
		name:    "falling_ball",
		columns: []string{"pos", "vel"},
		build: func(params map[string]float64) frp.SF[struct{}, Ball] {
			return FallingBall(ballParams(params))
		},
		sample: sampleBall,
	}
}

func newBouncingBallModel() Model {
	return &graphModel[Ball]{
		name:    "bouncing_ball",
		columns: []string{"pos", "vel"},
		build: func(params map[string]float64) frp.SF[struct{}, Ball] {
			return BouncingBall(ballParams(params))
		},
		sample: sampleBall,
	}
}
