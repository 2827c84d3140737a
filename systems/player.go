package systems

import (
	"github.com/mlowery2/embervale/components"
	cfg "github.com/mlowery2/embervale/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayer derives the player's velocity from the held inputs and the
// previous frame's grounding. Horizontal speed never carries over; vertical
// speed only changes here when jumping from the ground. Runs after
// UpdateInput and before UpdateCollisions.
func UpdatePlayer(ecs *ecs.ECS) {
	components.Player.Each(ecs.World, func(playerEntry *donburi.Entry) {
		input := getOrCreateInput(ecs)
		player := components.Player.Get(playerEntry)
		physics := components.Physics.Get(playerEntry)

		physics.SpeedX = 0

		if input.Current[cfg.ActionJump] && physics.OnGround {
			physics.SpeedY = -cfg.Player.JumpSpeed
		}
		if input.Current[cfg.ActionMoveLeft] {
			player.FacingLeft = true
			physics.SpeedX = -cfg.Player.MoveSpeed
		}
		// Checked last: right wins when both directions are held.
		if input.Current[cfg.ActionMoveRight] {
			player.FacingLeft = false
			physics.SpeedX = cfg.Player.MoveSpeed
		}
	})
}
