package game

import (
	"github.com/ByteArena/box2d"
	"github.com/playmatatu/volleyball/internal/config"
)

// ballDensity gives the ball a mass derived from its area.
const ballDensity = 1.0

// groundHalfWidthFactor oversizes the floor so nothing can leave it sideways.
const groundHalfWidthFactor = 5

// CreateWorld builds the court: gravity, ground, net and ball.
// Players are added afterwards with CreatePlayer. The ball is returned
// alongside the world so reset logic does not have to search for it.
//
// Invalid geometry is the caller's responsibility (see config.Physics.Validate).
func CreateWorld(p config.Physics) (*box2d.B2World, *box2d.B2Body) {
	w := box2d.MakeB2World(box2d.MakeB2Vec2(0, -p.Gravity))
	world := &w

	createGround(world, p)
	createNet(world, p)
	ball := createBall(world, p)

	return world, ball
}

func createGround(world *box2d.B2World, p config.Physics) *box2d.B2Body {
	def := box2d.MakeB2BodyDef()
	def.Type = box2d.B2BodyType.B2_staticBody
	def.Position = box2d.MakeB2Vec2(0, -p.GroundThickness/2)
	def.UserData = GroundTag()
	ground := world.CreateBody(&def)

	shape := box2d.MakeB2PolygonShape()
	shape.SetAsBox(p.CourtWidth*groundHalfWidthFactor, p.GroundThickness/2)
	ground.CreateFixture(&shape, 0)

	return ground
}

// createNet adds the untagged barrier at the midline. It only deflects the
// ball and never takes part in contact classification.
func createNet(world *box2d.B2World, p config.Physics) *box2d.B2Body {
	def := box2d.MakeB2BodyDef()
	def.Type = box2d.B2BodyType.B2_staticBody
	def.Position = box2d.MakeB2Vec2(0, p.NetHeight/2)
	net := world.CreateBody(&def)

	shape := box2d.MakeB2PolygonShape()
	shape.SetAsBox(p.NetThickness/2, p.NetHeight/2)

	fd := box2d.MakeB2FixtureDef()
	fd.Shape = &shape
	fd.Restitution = p.NetRestitution
	fd.Friction = p.NetRestitution
	net.CreateFixtureFromDef(&fd)

	return net
}

func createBall(world *box2d.B2World, p config.Physics) *box2d.B2Body {
	def := box2d.MakeB2BodyDef()
	def.Type = box2d.B2BodyType.B2_dynamicBody
	def.Position = box2d.MakeB2Vec2(p.BallStartX, p.BallStartY)
	def.LinearDamping = p.BallDamping
	def.UserData = BallTag()
	ball := world.CreateBody(&def)

	shape := box2d.MakeB2CircleShape()
	shape.M_radius = p.BallRadius

	fd := box2d.MakeB2FixtureDef()
	fd.Shape = &shape
	fd.Density = ballDensity
	fd.Restitution = p.BallRestitution
	fd.Friction = p.BallRestitution
	ball.CreateFixtureFromDef(&fd)

	return ball
}
