package systems

import (
	"time"

	"github.com/mlowery2/embervale/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateAnimations advances every entity's animation against the wall
// clock. Runs every frame regardless of phase so hazards keep burning
// behind the banner overlays.
func UpdateAnimations(ecs *ecs.ECS) {
	now := time.Now().UnixMilli()
	components.Animation.Each(ecs.World, func(e *donburi.Entry) {
		anim := components.Animation.Get(e)
		anim.Update(now)
	})
}
