package factory

import (
	"github.com/mlowery2/embervale/archetypes"
	"github.com/mlowery2/embervale/components"
	cfg "github.com/mlowery2/embervale/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePhase creates the attempt state singleton, starting in the intro
// phase with the level name on the banner.
func CreatePhase(ecs *ecs.ECS, levelName string) *donburi.Entry {
	phase := archetypes.Phase.Spawn(ecs)
	components.Phase.SetValue(phase, components.PhaseData{
		Current:     components.PhaseIntro,
		Timer:       cfg.Banner.IntroFrames,
		BannerText:  levelName,
		BannerColor: cfg.Banner.TextColor,
		Fade:        gween.New(0, 1, cfg.Banner.FadeSeconds, ease.Linear),
	})
	return phase
}
