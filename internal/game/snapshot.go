package game

import (
	"math"

	"github.com/ByteArena/box2d"
	"github.com/playmatatu/volleyball/internal/config"
)

// Snapshot is a copy of a body's kinematic state. It carries no shape or
// body type, so applying it to a body of a different kind is undefined.
// Capture and apply between steps, never from a contact handler.
type Snapshot struct {
	Position        Vec2    `json:"position"`
	LinearVelocity  Vec2    `json:"linear_velocity"`
	AngularVelocity float64 `json:"angular_velocity"`
}

func Capture(body *box2d.B2Body) Snapshot {
	return Snapshot{
		Position:        vec2FromB2(body.GetPosition()),
		LinearVelocity:  vec2FromB2(body.GetLinearVelocity()),
		AngularVelocity: body.GetAngularVelocity(),
	}
}

// Apply overwrites the body's position, linear velocity and angular
// velocity. The body's angle is left as it is.
func (s Snapshot) Apply(body *box2d.B2Body) {
	body.SetTransform(s.Position.B2(), body.GetAngle())
	body.SetLinearVelocity(s.LinearVelocity.B2())
	body.SetAngularVelocity(s.AngularVelocity)
}

// ServeSnapshot is the ball state for a serve over the given side: at the
// configured start height above that side, thrown straight up.
func ServeSnapshot(p config.Physics, side int) Snapshot {
	pos := NewVec2(math.Abs(p.BallStartX), p.BallStartY)
	if side == 0 {
		pos = pos.MirrorX()
	}
	return Snapshot{
		Position:       pos,
		LinearVelocity: NewVec2(0, p.BallStartVY),
	}
}
