package components

import (
	"image/color"

	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// PhaseID is the state of one level attempt.
type PhaseID int

const (
	PhaseIntro PhaseID = iota // level name banner before play starts
	PhasePlaying
	PhaseComplete // player reached an exit
	PhaseFailed   // player touched a hazard
)

// PhaseData drives the attempt state machine and its banner overlay.
// Gameplay systems only run during PhasePlaying; the other phases count
// Timer down to zero, at which point the scene decides what comes next.
type PhaseData struct {
	Current PhaseID
	Timer   int

	BannerText  string
	BannerColor color.RGBA
	Fade        *gween.Tween
	FadeAlpha   float32
}

var Phase = donburi.NewComponentType[PhaseData]()
