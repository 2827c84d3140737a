package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/mlowery2/embervale/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	drawOp = &ebiten.DrawImageOptions{}
)

// DrawSprites renders every entity at its collision box using the frame
// its animation currently points at. The screen is fixed, so there is no
// camera transform; draw order over the unordered entity set is
// unspecified.
func DrawSprites(ecs *ecs.ECS, screen *ebiten.Image) {
	components.Sprite.Each(ecs.World, func(e *donburi.Entry) {
		sprite := components.Sprite.Get(e)
		if len(sprite.Frames) == 0 {
			return
		}

		frame := 0
		if anim := components.Animation.Get(e); anim.Animation != nil {
			frame = anim.Frame()
		}
		if frame >= len(sprite.Frames) {
			frame = 0
		}
		img := sprite.Frames[frame]

		obj := components.Object.Get(e)

		drawOp.GeoM.Reset()
		if e.HasComponent(components.Player) && components.Player.Get(e).FacingLeft {
			// Mirror around the sprite's vertical center line.
			drawOp.GeoM.Scale(-1, 1)
			drawOp.GeoM.Translate(obj.W, 0)
		}
		drawOp.GeoM.Translate(obj.X, obj.Y)
		screen.DrawImage(img, drawOp)
	})
}
