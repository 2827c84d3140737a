package systems

import (
	"testing"

	"github.com/mlowery2/embervale/components"
	cfg "github.com/mlowery2/embervale/config"
	"github.com/mlowery2/embervale/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// newTestECS builds a world with a collision space and no sprites; level
// logic never needs images.
func newTestECS() *ecs.ECS {
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateSpace(e, 640, 480, cfg.C.TileSize, cfg.C.TileSize)
	return e
}

func TestCollision_MovingRightSnapsToLeftFace(t *testing.T) {
	e := newTestECS()
	player := factory.CreatePlayer(e, 0, 0)
	block := factory.CreateBlock(e, 33, 0)

	phys := components.Physics.Get(player)
	phys.SpeedX = cfg.Player.MoveSpeed

	UpdateCollisions(e)

	obj := components.Object.Get(player)
	blockObj := components.Object.Get(block)
	if phys.SpeedX != 0 {
		t.Errorf("horizontal speed = %v, want 0", phys.SpeedX)
	}
	if got, want := obj.X+obj.W, blockObj.X; got != want {
		t.Errorf("player right edge = %v, want flush with block left edge %v", got, want)
	}
}

func TestCollision_MovingLeftSnapsToRightFace(t *testing.T) {
	e := newTestECS()
	player := factory.CreatePlayer(e, 66, 0)
	block := factory.CreateBlock(e, 33, 0)

	phys := components.Physics.Get(player)
	phys.SpeedX = -cfg.Player.MoveSpeed

	UpdateCollisions(e)

	obj := components.Object.Get(player)
	blockObj := components.Object.Get(block)
	if phys.SpeedX != 0 {
		t.Errorf("horizontal speed = %v, want 0", phys.SpeedX)
	}
	if got, want := obj.X, blockObj.X+blockObj.W; got != want {
		t.Errorf("player left edge = %v, want flush with block right edge %v", got, want)
	}
}

func TestCollision_FallingLandsOnTopFace(t *testing.T) {
	e := newTestECS()
	player := factory.CreatePlayer(e, 0, 0)
	block := factory.CreateBlock(e, 0, 34)

	phys := components.Physics.Get(player)
	phys.SpeedY = 3

	UpdateCollisions(e)

	obj := components.Object.Get(player)
	blockObj := components.Object.Get(block)
	if phys.SpeedY != 0 {
		t.Errorf("vertical speed = %v, want 0", phys.SpeedY)
	}
	if !phys.OnGround {
		t.Error("player not grounded after landing on a solid")
	}
	if got, want := obj.Y+obj.H, blockObj.Y; got != want {
		t.Errorf("player bottom edge = %v, want flush with block top edge %v", got, want)
	}
}

func TestCollision_CeilingStopsRiseWithoutGrounding(t *testing.T) {
	e := newTestECS()
	player := factory.CreatePlayer(e, 0, 36)
	block := factory.CreateBlock(e, 0, 2)

	phys := components.Physics.Get(player)
	phys.SpeedY = -3

	UpdateCollisions(e)

	obj := components.Object.Get(player)
	blockObj := components.Object.Get(block)
	if phys.SpeedY != 0 {
		t.Errorf("vertical speed = %v, want 0", phys.SpeedY)
	}
	if phys.OnGround {
		t.Error("ceiling contact must not ground the player")
	}
	if got, want := obj.Y, blockObj.Y+blockObj.H; got != want {
		t.Errorf("player top edge = %v, want flush with block bottom edge %v", got, want)
	}
}

func TestCollision_GroundingResetEveryFrame(t *testing.T) {
	e := newTestECS()
	player := factory.CreatePlayer(e, 0, 0)

	phys := components.Physics.Get(player)
	phys.OnGround = true

	// Nothing below the player: grounding must be re-earned, not kept.
	UpdateCollisions(e)

	if phys.OnGround {
		t.Error("player still grounded with no solid contact")
	}
}

func TestCollision_HazardsAndExitsDoNotBlock(t *testing.T) {
	e := newTestECS()
	player := factory.CreatePlayer(e, 0, 0)
	factory.CreateHazard(e, 33, 0, cfg.KindFire)
	factory.CreateExit(e, 66, 0)

	phys := components.Physics.Get(player)
	phys.SpeedX = 40

	UpdateCollisions(e)

	obj := components.Object.Get(player)
	if obj.X != 40 {
		t.Errorf("player X = %v, want 40; only solids block movement", obj.X)
	}
	if phys.SpeedX != 40 {
		t.Errorf("horizontal speed = %v, want unchanged", phys.SpeedX)
	}
}

func TestPhysics_GravityOnlyWhileAirborne(t *testing.T) {
	e := newTestECS()
	player := factory.CreatePlayer(e, 0, 0)
	phys := components.Physics.Get(player)

	UpdatePhysics(e)
	if phys.SpeedY != cfg.Player.FallAcceleration {
		t.Errorf("airborne SpeedY = %v, want %v", phys.SpeedY, cfg.Player.FallAcceleration)
	}
	UpdatePhysics(e)
	if phys.SpeedY != 2*cfg.Player.FallAcceleration {
		t.Errorf("fall speed must accumulate while airborne, got %v", phys.SpeedY)
	}

	phys.OnGround = true
	phys.SpeedY = 0
	UpdatePhysics(e)
	if phys.SpeedY != 0 {
		t.Errorf("grounded SpeedY = %v, want 0", phys.SpeedY)
	}
}

func TestCollision_FallThenLandFullFrame(t *testing.T) {
	e := newTestECS()
	player := factory.CreatePlayer(e, 0, 0)
	factory.CreateBlock(e, 0, 64)

	// Run full frames (collision then gravity, as the scene orders them)
	// until the player rests on the block.
	phys := components.Physics.Get(player)
	for i := 0; i < 300 && !phys.OnGround; i++ {
		UpdateCollisions(e)
		UpdatePhysics(e)
	}

	if !phys.OnGround {
		t.Fatal("player never landed")
	}
	obj := components.Object.Get(player)
	if got := obj.Y + obj.H; got != 64 {
		t.Errorf("player bottom edge = %v, want 64", got)
	}
	if phys.SpeedY != 0 {
		t.Errorf("vertical speed at rest = %v, want 0", phys.SpeedY)
	}
}
