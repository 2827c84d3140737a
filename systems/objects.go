package systems

import (
	"github.com/mlowery2/embervale/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateObjects re-registers every collision object with the space after
// the frame's movement.
func UpdateObjects(ecs *ecs.ECS) {
	components.Object.Each(ecs.World, func(e *donburi.Entry) {
		obj := components.Object.Get(e)
		obj.Update()
	})
}
