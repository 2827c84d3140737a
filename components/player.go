package components

import "github.com/yohamta/donburi"

type PlayerData struct {
	// FacingLeft selects the mirrored sprite variant. It changes when a
	// horizontal direction is held and keeps its value otherwise.
	FacingLeft bool
}

var Player = donburi.NewComponentType[PlayerData]()
