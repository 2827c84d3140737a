package components

import (
	"github.com/mlowery2/embervale/assets"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	CurrentLevel *assets.LevelMap
	LevelIndex   int
	Levels       []assets.LevelMap
}

var Level = donburi.NewComponentType[LevelData]()
