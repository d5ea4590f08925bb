package game

import (
	"math"

	"github.com/ByteArena/box2d"
)

// Vec2 is a plain 2D vector that can be serialized alongside game state.
type Vec2 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func NewVec2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

func vec2FromB2(v box2d.B2Vec2) Vec2 {
	return Vec2{X: v.X, Y: v.Y}
}

// B2 converts to the physics engine's vector type.
func (v Vec2) B2() box2d.B2Vec2 {
	return box2d.MakeB2Vec2(v.X, v.Y)
}

func (v Vec2) Minus(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// MirrorX reflects the vector across the court midline (the y axis).
func (v Vec2) MirrorX() Vec2 {
	return Vec2{X: -v.X, Y: v.Y}
}

func (v Vec2) Magnitude() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// ApproxEqual reports whether both components differ by at most tol.
func (v Vec2) ApproxEqual(o Vec2, tol float64) bool {
	return math.Abs(v.X-o.X) <= tol && math.Abs(v.Y-o.Y) <= tol
}
