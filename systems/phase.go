package systems

import (
	"image/color"

	"github.com/mlowery2/embervale/components"
	cfg "github.com/mlowery2/embervale/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// WithPhaseCheck wraps a gameplay system so it only runs while the attempt
// is in the playing phase; banner phases freeze the simulation.
func WithPhaseCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		phaseEntry, ok := components.Phase.First(e.World)
		if !ok {
			return
		}
		if components.Phase.Get(phaseEntry).Current != components.PhasePlaying {
			return
		}
		system(e)
	}
}

// UpdatePhase ticks the banner fade and the phase timer. The intro phase
// hands over to play when its timer runs out; the terminal phases just
// count down to zero and leave the scene to decide what happens next.
func UpdatePhase(ecs *ecs.ECS) {
	phaseEntry, ok := components.Phase.First(ecs.World)
	if !ok {
		return
	}
	phase := components.Phase.Get(phaseEntry)

	if phase.Fade != nil {
		alpha, finished := phase.Fade.Update(1.0 / 60.0)
		phase.FadeAlpha = alpha
		if finished {
			phase.Fade = nil
		}
	}

	if phase.Current == components.PhasePlaying || phase.Timer <= 0 {
		return
	}

	phase.Timer--
	if phase.Timer == 0 && phase.Current == components.PhaseIntro {
		phase.Current = components.PhasePlaying
		phase.BannerText = ""
		phase.FadeAlpha = 0
	}
}

// PhaseDone reports whether a terminal phase has finished its banner time.
func PhaseDone(e *ecs.ECS) (components.PhaseID, bool) {
	phaseEntry, ok := components.Phase.First(e.World)
	if !ok {
		return components.PhaseIntro, false
	}
	phase := components.Phase.Get(phaseEntry)
	terminal := phase.Current == components.PhaseComplete || phase.Current == components.PhaseFailed
	return phase.Current, terminal && phase.Timer <= 0
}

func setPhase(phase *components.PhaseData, id components.PhaseID, banner string, clr color.RGBA, frames int) {
	phase.Current = id
	phase.Timer = frames
	phase.BannerText = banner
	phase.BannerColor = clr
	phase.Fade = gween.New(0, 1, cfg.Banner.FadeSeconds, ease.Linear)
	phase.FadeAlpha = 0
}
