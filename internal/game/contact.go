package game

import "github.com/ByteArena/box2d"

// Contact is the part of an engine contact the classifier reads.
// box2d.B2ContactInterface satisfies it.
type Contact interface {
	GetFixtureA() *box2d.B2Fixture
	GetFixtureB() *box2d.B2Fixture
}

// ContactBodies is the classification of one contact. A field is nil when
// no participant carries that kind.
type ContactBodies struct {
	Player *box2d.B2Body
	Ball   *box2d.B2Body
	Ground *box2d.B2Body
}

// PlayerIndex returns the side of the player involved, if any.
func (cb ContactBodies) PlayerIndex() (int, bool) {
	if cb.Player == nil {
		return 0, false
	}
	return TagOf(cb.Player).PlayerIndex, true
}

// Classify reports which player, ball and ground bodies take part in a
// contact. The engine does not keep a stable A/B order, so matching never
// depends on position. If both participants carry the same kind (two
// players touching) that kind is left empty.
func Classify(contact Contact) ContactBodies {
	a := fixtureBody(contact.GetFixtureA())
	b := fixtureBody(contact.GetFixtureB())

	return ContactBodies{
		Player: matchKind(a, b, KindPlayer),
		Ball:   matchKind(a, b, KindBall),
		Ground: matchKind(a, b, KindGround),
	}
}

func fixtureBody(f *box2d.B2Fixture) *box2d.B2Body {
	if f == nil {
		return nil
	}
	return f.GetBody()
}

func matchKind(a, b *box2d.B2Body, kind BodyKind) *box2d.B2Body {
	aMatch, bMatch := Is(a, kind), Is(b, kind)
	switch {
	case aMatch && !bMatch:
		return a
	case bMatch && !aMatch:
		return b
	default:
		return nil
	}
}

// Dispatcher turns contact-begin events into the two game signals.
// It is registered as the world's contact listener and runs inside
// World.Step, so handlers must not create or destroy bodies.
type Dispatcher struct {
	OnPlayerBall func(playerIndex int)
	OnBallGround func()
}

var _ box2d.B2ContactListenerInterface = (*Dispatcher)(nil)

func NewDispatcher(onPlayerBall func(playerIndex int), onBallGround func()) *Dispatcher {
	return &Dispatcher{OnPlayerBall: onPlayerBall, OnBallGround: onBallGround}
}

// Dispatch classifies a contact and raises every signal it matches.
// Repeated begin events for a sustained touch are all forwarded.
func (d *Dispatcher) Dispatch(contact Contact) {
	bodies := Classify(contact)

	if bodies.Ball == nil {
		return
	}
	if index, ok := bodies.PlayerIndex(); ok && d.OnPlayerBall != nil {
		d.OnPlayerBall(index)
	}
	if bodies.Ground != nil && d.OnBallGround != nil {
		d.OnBallGround()
	}
}

func (d *Dispatcher) BeginContact(contact box2d.B2ContactInterface) {
	d.Dispatch(contact)
}

func (d *Dispatcher) EndContact(contact box2d.B2ContactInterface) {}

func (d *Dispatcher) PreSolve(contact box2d.B2ContactInterface, oldManifold box2d.B2Manifold) {}

func (d *Dispatcher) PostSolve(contact box2d.B2ContactInterface, impulse *box2d.B2ContactImpulse) {}
