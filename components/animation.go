package components

import (
	"github.com/mlowery2/embervale/assets/animations"
	"github.com/yohamta/donburi"
)

type AnimationData struct {
	*animations.Animation
}

var Animation = donburi.NewComponentType[AnimationData]()
