package game

import (
	"log"

	"github.com/ByteArena/box2d"
	"github.com/playmatatu/volleyball/internal/config"
)

// Court owns the simulated world for the length of a match: ground, net,
// ball and one paddle per side. Bodies are created once and never replaced.
type Court struct {
	World   *box2d.B2World
	Ball    *box2d.B2Body
	Players [NumPlayers]*box2d.B2Body

	physics    config.Physics
	dispatcher *Dispatcher
	frame      int
}

// NewCourt builds the world, adds both players and registers a Dispatcher
// that raises onPlayerBall and onBallGround during Step.
func NewCourt(p config.Physics, onPlayerBall func(playerIndex int), onBallGround func()) *Court {
	world, ball := CreateWorld(p)

	c := &Court{
		World:      world,
		Ball:       ball,
		physics:    p,
		dispatcher: NewDispatcher(onPlayerBall, onBallGround),
	}
	for i := 0; i < NumPlayers; i++ {
		c.Players[i] = CreatePlayer(world, p, i)
	}
	world.SetContactListener(c.dispatcher)

	log.Printf("[COURT] Court ready: %d bodies, step=%.4fs, iterations=%d/%d",
		world.GetBodyCount(), p.TimeStep, p.VelocityIterations, p.PositionIterations)
	return c
}

// Step advances the world by one fixed time slice. Contact handlers run
// before Step returns.
func (c *Court) Step() {
	c.World.Step(c.physics.TimeStep, c.physics.VelocityIterations, c.physics.PositionIterations)
	c.frame++
}

// Frame returns the number of steps taken so far.
func (c *Court) Frame() int {
	return c.frame
}

func (c *Court) Player(index int) *box2d.B2Body {
	return c.Players[index]
}

// Serve puts the ball back into play over the given side. Call it between
// steps only.
func (c *Court) Serve(side int) {
	ServeSnapshot(c.physics, side).Apply(c.Ball)
	log.Printf("[COURT] Serve over side %d at frame %d", side, c.frame)
}
