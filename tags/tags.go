package tags

import "github.com/yohamta/donburi"

var (
	Player = donburi.NewTag().SetName("Player")
	Block  = donburi.NewTag().SetName("Block")
	Hazard = donburi.NewTag().SetName("Hazard")
	Exit   = donburi.NewTag().SetName("Exit")
)

// Resolv tags for physics collision and overlap queries
const (
	ResolvSolid  = "solid"
	ResolvHazard = "hazard"
	ResolvExit   = "exit"
	ResolvPlayer = "player"
)
