package components

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// SpriteData holds the frame images indexed by the entity's animation.
// It is attached separately from the rest of the entity so headless code
// (level logic, tests) never touches image data.
type SpriteData struct {
	Frames []*ebiten.Image
}

var Sprite = donburi.NewComponentType[SpriteData]()
