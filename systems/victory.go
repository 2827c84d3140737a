package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	cfg "github.com/mlowery2/embervale/config"
	"github.com/mlowery2/embervale/fonts"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

// SceneChanger allows systems to trigger scene transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

var victoryFontFace font.Face
var victorySmallFace font.Face

// NewUpdateVictory creates the victory screen system: any bound action
// returns to the menu.
func NewUpdateVictory(sceneChanger SceneChanger, createMenuScene func() interface{}) ecs.System {
	return func(e *ecs.ECS) {
		input := getOrCreateInput(e)
		if GetAction(input, cfg.ActionJump).JustPressed ||
			GetAction(input, cfg.ActionBack).JustPressed {
			sceneChanger.ChangeScene(createMenuScene())
		}
	}
}

// DrawVictory renders the end-of-game screen.
func DrawVictory(e *ecs.ECS, screen *ebiten.Image) {
	if victoryFontFace == nil {
		victoryFontFace = fonts.Title.Get()
		victorySmallFace = fonts.Small.Get()
	}

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	msg := cfg.Banner.VictoryText
	bounds := text.BoundString(victoryFontFace, msg) //nolint:staticcheck // TODO: migrate to text/v2
	x := int((width - float64(bounds.Dx())) / 2)
	y := int(height / 2)
	text.Draw(screen, msg, victoryFontFace, x, y, cfg.Green)

	hint := "Press jump to return to the menu"
	hintBounds := text.BoundString(victorySmallFace, hint) //nolint:staticcheck
	hx := int((width - float64(hintBounds.Dx())) / 2)
	text.Draw(screen, hint, victorySmallFace, hx, y+48, cfg.White)
}
