package scenes

import (
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	cfg "github.com/mlowery2/embervale/config"
	"github.com/mlowery2/embervale/ui"
)

// MenuScene displays the title menu
type MenuScene struct {
	menuUI       *ui.MenuUI
	sceneChanger SceneChanger
}

// NewMenuScene creates a new menu scene
func NewMenuScene(sc SceneChanger) *MenuScene {
	return &MenuScene{sceneChanger: sc}
}

func (ms *MenuScene) Update() {
	if ms.menuUI == nil {
		ms.menuUI = ui.NewMenuUI(
			func() {
				ms.sceneChanger.ChangeScene(NewWorldScene(ms.sceneChanger, 0))
			},
			func() {
				os.Exit(0)
			},
		)
	}
	ms.menuUI.Update()
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.Menu.BackgroundColor)

	if ms.menuUI == nil {
		return
	}
	ms.menuUI.UI.Draw(screen)
}
