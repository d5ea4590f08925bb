package game

import (
	"math"

	"github.com/ByteArena/box2d"
	"github.com/playmatatu/volleyball/internal/config"
)

const playerDensity = 1.0

// PlayerStartX returns the starting x position for a side: negative for
// index 0, positive for index 1.
func PlayerStartX(p config.Physics, playerIndex int) float64 {
	if playerIndex == 0 {
		return -p.PlayerStartingPos
	}
	return p.PlayerStartingPos
}

// PlayerOutline samples the paddle dome: chainSize points on the upper half
// circle from (-radius, 0) over the top to (radius, 0). The diameter is
// closed by the loop joining the last point back to the first.
func PlayerOutline(radius float64, chainSize int) []box2d.B2Vec2 {
	points := make([]box2d.B2Vec2, chainSize)
	for i := 0; i < chainSize; i++ {
		angle := math.Pi * (1 - float64(i)/float64(chainSize-1))
		points[i] = box2d.MakeB2Vec2(radius*math.Cos(angle), radius*math.Sin(angle))
	}
	return points
}

// CreatePlayer adds the kinematic paddle for one side of the court.
// The index must be 0 or 1 and the chain size at least 3.
func CreatePlayer(world *box2d.B2World, p config.Physics, playerIndex int) *box2d.B2Body {
	def := box2d.MakeB2BodyDef()
	def.Type = box2d.B2BodyType.B2_kinematicBody
	def.Position = box2d.MakeB2Vec2(PlayerStartX(p, playerIndex), 0)
	def.UserData = PlayerTag(playerIndex)
	player := world.CreateBody(&def)

	outline := PlayerOutline(p.PlayerRadius, p.PlayerChainSize)
	shape := box2d.MakeB2ChainShape()
	shape.CreateLoop(outline, len(outline))

	// Same material as the ball so a bounce looks the same whichever body moves.
	fd := box2d.MakeB2FixtureDef()
	fd.Shape = &shape
	fd.Density = playerDensity
	fd.Restitution = p.BallRestitution
	fd.Friction = p.BallRestitution
	player.CreateFixtureFromDef(&fd)

	return player
}
