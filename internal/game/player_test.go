package game

import (
	"math"
	"testing"

	"github.com/ByteArena/box2d"
)

const tolerance = 1e-9

func TestCreatePlayerStartingPosition(t *testing.T) {
	p := defaultPhysics()
	world, _ := CreateWorld(p)

	for index := 0; index < NumPlayers; index++ {
		player := CreatePlayer(world, p, index)

		wantX := math.Pow(-1, float64(index+1)) * p.PlayerStartingPos
		pos := player.GetPosition()
		if pos.X != wantX || pos.Y != 0 {
			t.Errorf("player %d at (%v, %v), want (%v, 0)", index, pos.X, pos.Y, wantX)
		}
		if tag := TagOf(player); tag.Kind != KindPlayer || tag.PlayerIndex != index {
			t.Errorf("player %d tagged %+v", index, tag)
		}
		if player.GetType() != box2d.B2BodyType.B2_kinematicBody {
			t.Errorf("player %d should be kinematic, got type %d", index, player.GetType())
		}
	}
}

func TestPlayerOutlineShape(t *testing.T) {
	p := defaultPhysics()
	outline := PlayerOutline(p.PlayerRadius, p.PlayerChainSize)

	if len(outline) != p.PlayerChainSize {
		t.Fatalf("outline has %d vertices, want %d", len(outline), p.PlayerChainSize)
	}

	first, last := vec2FromB2(outline[0]), vec2FromB2(outline[len(outline)-1])
	if !first.ApproxEqual(NewVec2(-p.PlayerRadius, 0), tolerance) {
		t.Errorf("outline starts at %+v, want (-r, 0)", first)
	}
	if !last.ApproxEqual(NewVec2(p.PlayerRadius, 0), tolerance) {
		t.Errorf("outline ends at %+v, want (r, 0)", last)
	}

	for i, v := range outline {
		if r := vec2FromB2(v).Magnitude(); math.Abs(r-p.PlayerRadius) > tolerance {
			t.Errorf("vertex %d at distance %v from centre, want %v", i, r, p.PlayerRadius)
		}
		if v.Y < -tolerance {
			t.Errorf("vertex %d below the diameter: %+v", i, v)
		}
	}
}

func TestPlayerOutlineIsSymmetric(t *testing.T) {
	for _, n := range []int{3, 4, 20, 33} {
		outline := PlayerOutline(1.8, n)
		for i := range outline {
			v := vec2FromB2(outline[i])
			mirror := vec2FromB2(outline[n-1-i])
			if !v.ApproxEqual(mirror.MirrorX(), tolerance) {
				t.Errorf("n=%d: vertex %d %+v does not mirror vertex %d %+v", n, i, v, n-1-i, mirror)
			}
		}
	}
}

func TestCreatePlayerFixtureIsClosedLoop(t *testing.T) {
	p := defaultPhysics()
	world, _ := CreateWorld(p)
	player := CreatePlayer(world, p, 1)

	fixture := player.GetFixtureList()
	chain, ok := fixture.GetShape().(*box2d.B2ChainShape)
	if !ok {
		t.Fatalf("player shape is %T, want chain", fixture.GetShape())
	}
	// A loop stores the first vertex again at the end.
	if chain.M_count != p.PlayerChainSize+1 {
		t.Fatalf("chain has %d vertices, want %d", chain.M_count, p.PlayerChainSize+1)
	}
	if chain.M_vertices[0] != chain.M_vertices[chain.M_count-1] {
		t.Errorf("loop not closed: %+v vs %+v", chain.M_vertices[0], chain.M_vertices[chain.M_count-1])
	}

	if fixture.GetRestitution() != p.BallRestitution || fixture.GetFriction() != p.BallRestitution {
		t.Errorf("player material = %v/%v, want %v", fixture.GetRestitution(), fixture.GetFriction(), p.BallRestitution)
	}
	if fixture.GetDensity() != 1 {
		t.Errorf("player density = %v, want 1", fixture.GetDensity())
	}
}
