package main

import (
	"image"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/mlowery2/embervale/assets"
	"github.com/mlowery2/embervale/config"
	"github.com/mlowery2/embervale/fonts"
	"github.com/mlowery2/embervale/scenes"
	"golang.org/x/image/font/gofont/goregular"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame() *Game {
	fonts.LoadFontWithSize(fonts.Banner, goregular.TTF, 30)
	fonts.LoadFontWithSize(fonts.Title, goregular.TTF, 36)
	fonts.LoadFontWithSize(fonts.Small, goregular.TTF, 16)

	g := &Game{
		bounds: image.Rectangle{},
	}
	g.scene = scenes.NewMenuScene(g)

	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	// Malformed level maps or missing sprite files abort before any
	// window appears.
	if _, err := assets.LoadLevels(); err != nil {
		log.Fatalf("invalid level data: %v", err)
	}
	if _, err := assets.LoadSprites(); err != nil {
		log.Fatalf("invalid sprite data: %v", err)
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.Menu.Title)

	if err := ebiten.RunGame(NewGame()); err != nil {
		log.Fatal(err)
	}
}
