package components

import "github.com/yohamta/donburi"

type PhysicsData struct {
	SpeedX float64
	SpeedY float64
	// OnGround is recomputed by every collision pass: true only when the
	// entity's bottom edge landed on a solid this frame.
	OnGround bool
}

var Physics = donburi.NewComponentType[PhysicsData]()
