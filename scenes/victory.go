package scenes

import (
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	cfg "github.com/mlowery2/embervale/config"
	"github.com/mlowery2/embervale/systems"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// VictoryScene displays the end-of-game screen after the last level
type VictoryScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	once         sync.Once
}

// NewVictoryScene creates a new victory scene
func NewVictoryScene(sc SceneChanger) *VictoryScene {
	return &VictoryScene{sceneChanger: sc}
}

func (vs *VictoryScene) Update() {
	vs.once.Do(vs.configure)
	vs.ecs.Update()
}

func (vs *VictoryScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if vs.ecs == nil {
		return
	}
	vs.ecs.Draw(screen)
}

func (vs *VictoryScene) configure() {
	vs.ecs = ecs.NewECS(donburi.NewWorld())

	createMenuScene := func() interface{} {
		return NewMenuScene(vs.sceneChanger)
	}

	vs.ecs.AddSystem(systems.UpdateInput)
	vs.ecs.AddSystem(systems.NewUpdateVictory(vs.sceneChanger, createMenuScene))

	vs.ecs.AddRenderer(cfg.Default, systems.DrawVictory)
}
