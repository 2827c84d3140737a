package systems

import (
	"fmt"

	"github.com/mlowery2/embervale/components"
	cfg "github.com/mlowery2/embervale/config"
	"github.com/mlowery2/embervale/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateOutcome tests the player's box against the exit and hazard
// collections and flips the phase accordingly. Pure overlap queries,
// independent of the physics resolution: neither collection blocks
// movement.
func UpdateOutcome(ecs *ecs.ECS) {
	phaseEntry, ok := components.Phase.First(ecs.World)
	if !ok {
		return
	}
	phase := components.Phase.Get(phaseEntry)
	if phase.Current != components.PhasePlaying {
		return
	}

	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	playerObj := components.Object.Get(playerEntry)

	levelName := ""
	if levelEntry, ok := components.Level.First(ecs.World); ok {
		levelName = components.Level.Get(levelEntry).CurrentLevel.Name
	}

	if overlapsAnyTagged(playerObj, tags.ResolvExit) {
		setPhase(phase, components.PhaseComplete,
			fmt.Sprintf("You've completed %s.", levelName),
			cfg.Banner.TextColor, cfg.Banner.CompleteFrames)
		return
	}

	if overlapsAnyTagged(playerObj, tags.ResolvHazard) {
		setPhase(phase, components.PhaseFailed,
			cfg.Banner.GameOverText,
			cfg.Banner.FailColor, cfg.Banner.FailedFrames)
	}
}

func overlapsAnyTagged(playerObj *components.ObjectData, tag string) bool {
	check := playerObj.Check(0, 0, tag)
	if check == nil {
		return false
	}
	for _, other := range check.ObjectsByTags(tag) {
		if overlaps(playerObj.Object, other) {
			return true
		}
	}
	return false
}
