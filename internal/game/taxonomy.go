package game

import "github.com/ByteArena/box2d"

// BodyKind identifies the role a body plays on the court.
type BodyKind string

const (
	KindGround BodyKind = "GROUND"
	KindBall   BodyKind = "BALL"
	KindPlayer BodyKind = "PLAYER"
)

// NumPlayers is the number of paddles on a court, one per side.
const NumPlayers = 2

// BodyTag is stored as the user data of every tagged body.
// PlayerIndex is only meaningful when Kind is KindPlayer:
// 0 is the left (negative x) side, 1 the right.
type BodyTag struct {
	Kind        BodyKind `json:"kind"`
	PlayerIndex int      `json:"player_index,omitempty"`
}

func GroundTag() BodyTag { return BodyTag{Kind: KindGround} }

func BallTag() BodyTag { return BodyTag{Kind: KindBall} }

func PlayerTag(index int) BodyTag { return BodyTag{Kind: KindPlayer, PlayerIndex: index} }

// TagOf returns the tag attached to a body. Untagged bodies (the net) and
// nil bodies yield the zero tag.
func TagOf(body *box2d.B2Body) BodyTag {
	if body == nil {
		return BodyTag{}
	}
	tag, ok := body.GetUserData().(BodyTag)
	if !ok {
		return BodyTag{}
	}
	return tag
}

// Is reports whether the body is tagged with the given kind.
func Is(body *box2d.B2Body, kind BodyKind) bool {
	return TagOf(body).Kind == kind
}
