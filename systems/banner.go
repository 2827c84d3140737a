package systems

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/mlowery2/embervale/components"
	cfg "github.com/mlowery2/embervale/config"
	"github.com/mlowery2/embervale/fonts"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

// Cached font face for banner rendering (lazy initialized)
var bannerFontFace font.Face

// DrawBanner renders the phase message centered on a black screen, fading
// in over the gameplay frame. Nothing is drawn while playing.
func DrawBanner(ecs *ecs.ECS, screen *ebiten.Image) {
	phaseEntry, ok := components.Phase.First(ecs.World)
	if !ok {
		return
	}
	phase := components.Phase.Get(phaseEntry)
	if phase.Current == components.PhasePlaying || phase.BannerText == "" {
		return
	}

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	overlay := cfg.Banner.OverlayColor
	overlay.A = uint8(float32(overlay.A) * phase.FadeAlpha)
	vector.DrawFilledRect(
		screen,
		0, 0,
		float32(width), float32(height),
		overlay,
		false,
	)

	if bannerFontFace == nil {
		bannerFontFace = fonts.Banner.Get()
	}

	clr := color.RGBA{
		R: phase.BannerColor.R,
		G: phase.BannerColor.G,
		B: phase.BannerColor.B,
		A: uint8(float32(phase.BannerColor.A) * phase.FadeAlpha),
	}

	bounds := text.BoundString(bannerFontFace, phase.BannerText) //nolint:staticcheck // TODO: migrate to text/v2
	x := int((width - float64(bounds.Dx())) / 2)
	y := int((height + float64(bounds.Dy())) / 2)
	text.Draw(screen, phase.BannerText, bannerFontFace, x, y, clr)
}
