package systems

import (
	"github.com/mlowery2/embervale/components"
	"github.com/mlowery2/embervale/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCollisions resolves player movement against the solid objects,
// horizontal axis first, then vertical. Each axis moves the box by its
// velocity and snaps back to the touching edge of every overlapping solid;
// grounding is reset up front and re-earned only by an actual downward
// contact. Hazards and exits are not solid and never resolved here.
func UpdateCollisions(ecs *ecs.ECS) {
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		physics := components.Physics.Get(e)
		obj := components.Object.Get(e)

		physics.OnGround = false
		resolveHorizontal(physics, obj.Object)
		resolveVertical(physics, obj.Object)
		obj.Update()
	})
}

func resolveHorizontal(physics *components.PhysicsData, object *resolv.Object) {
	dx := physics.SpeedX
	check := object.Check(dx, 0, tags.ResolvSolid)
	object.X += dx
	if check == nil {
		return
	}

	// Check returns cell neighbors; each actually overlapping solid snaps
	// the box to its facing edge. With valid level geometry (no mutually
	// overlapping solids on this axis) the processing order is irrelevant.
	for _, solid := range check.ObjectsByTags(tags.ResolvSolid) {
		if !overlaps(object, solid) {
			continue
		}
		if dx > 0 && object.X+object.W >= solid.X {
			physics.SpeedX = 0
			object.X = solid.X - object.W
		} else if dx < 0 && object.X <= solid.X+solid.W {
			physics.SpeedX = 0
			object.X = solid.X + solid.W
		}
	}
}

func resolveVertical(physics *components.PhysicsData, object *resolv.Object) {
	dy := physics.SpeedY
	check := object.Check(0, dy, tags.ResolvSolid)
	object.Y += dy
	if check == nil {
		return
	}

	for _, solid := range check.ObjectsByTags(tags.ResolvSolid) {
		if !overlaps(object, solid) {
			continue
		}
		if dy > 0 && object.Y+object.H > solid.Y {
			physics.SpeedY = 0
			physics.OnGround = true
			object.Y = solid.Y - object.H
		} else if dy < 0 && object.Y <= solid.Y+solid.H {
			// Ceiling contact stops the rise but never grounds.
			physics.SpeedY = 0
			object.Y = solid.Y + solid.H
		}
	}
}

// overlaps reports strict AABB overlap; boxes that only share an edge do
// not overlap.
func overlaps(a, b *resolv.Object) bool {
	return a.X < b.X+b.W && a.X+a.W > b.X &&
		a.Y < b.Y+b.H && a.Y+a.H > b.Y
}
