package factory

import (
	"github.com/mlowery2/embervale/archetypes"
	"github.com/mlowery2/embervale/assets"
	"github.com/mlowery2/embervale/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateLevelAtIndex(ecs *ecs.ECS, levelIndex int) *donburi.Entry {
	level := archetypes.Level.Spawn(ecs)

	levels := assets.MustLoadLevels()
	if levelIndex < 0 || levelIndex >= len(levels) {
		levelIndex = 0
	}

	levelData := &components.LevelData{
		Levels:       levels,
		LevelIndex:   levelIndex,
		CurrentLevel: &levels[levelIndex],
	}

	components.Level.Set(level, levelData)

	return level
}
