package systems

import (
	"github.com/mlowery2/embervale/components"
	cfg "github.com/mlowery2/embervale/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePhysics integrates gravity. It runs after UpdateCollisions so the
// grounding decided by this frame's resolution gates the acceleration:
// airborne entities fall faster every frame, resting ones stay at zero.
func UpdatePhysics(ecs *ecs.ECS) {
	components.Physics.Each(ecs.World, func(e *donburi.Entry) {
		physics := components.Physics.Get(e)
		if !physics.OnGround {
			physics.SpeedY += cfg.Player.FallAcceleration
		}
	})
}
