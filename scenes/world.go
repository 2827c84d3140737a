package scenes

import (
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/mlowery2/embervale/assets"
	"github.com/mlowery2/embervale/components"
	cfg "github.com/mlowery2/embervale/config"
	"github.com/mlowery2/embervale/systems"
	"github.com/mlowery2/embervale/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// WorldScene runs one attempt at one level. Death discards the whole ECS
// world and rebuilds the same level fresh; completion moves on to the next
// level or to the victory screen after the last one.
type WorldScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	levelIndex   int
	once         sync.Once
}

// NewWorldScene creates a scene playing the level at the given index.
func NewWorldScene(sc SceneChanger, levelIndex int) *WorldScene {
	return &WorldScene{sceneChanger: sc, levelIndex: levelIndex}
}

func (ws *WorldScene) Update() {
	ws.once.Do(ws.configure)
	ws.ecs.Update()

	if systems.MenuBackPressed(ws.ecs) {
		ws.sceneChanger.ChangeScene(NewMenuScene(ws.sceneChanger))
		return
	}

	phase, done := systems.PhaseDone(ws.ecs)
	if !done {
		return
	}

	switch phase {
	case components.PhaseComplete:
		next := ws.levelIndex + 1
		if next >= len(assets.MustLoadLevels()) {
			ws.sceneChanger.ChangeScene(NewVictoryScene(ws.sceneChanger))
			return
		}
		ws.sceneChanger.ChangeScene(NewWorldScene(ws.sceneChanger, next))
	case components.PhaseFailed:
		// Fresh attempt at the same level.
		ws.sceneChanger.ChangeScene(NewWorldScene(ws.sceneChanger, ws.levelIndex))
	}
}

func (ws *WorldScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ws.ecs == nil {
		return
	}
	ws.ecs.Draw(screen)
}

func (ws *WorldScene) configure() {
	e := ecs.NewECS(donburi.NewWorld())

	e.AddSystem(systems.UpdateInput)

	// Gameplay systems frozen outside the playing phase
	e.AddSystem(systems.WithPhaseCheck(systems.UpdatePlayer))
	e.AddSystem(systems.WithPhaseCheck(systems.UpdateCollisions))
	e.AddSystem(systems.WithPhaseCheck(systems.UpdatePhysics))
	e.AddSystem(systems.WithPhaseCheck(systems.UpdateObjects))
	e.AddSystem(systems.UpdateOutcome)

	// Animations keep running behind the banner overlays
	e.AddSystem(systems.UpdateAnimations)
	e.AddSystem(systems.UpdatePhase)

	e.AddRenderer(cfg.Default, systems.DrawSprites)
	e.AddRenderer(cfg.Default, systems.DrawBanner)

	ws.ecs = e

	// Load the level data first, then build the collision space around its
	// extent before any object is created.
	levelEntry := factory.CreateLevelAtIndex(e, ws.levelIndex)
	level := components.Level.Get(levelEntry).CurrentLevel
	ws.levelIndex = components.Level.Get(levelEntry).LevelIndex

	spaceW := max(level.Width, cfg.C.Width)
	spaceH := max(level.Height, cfg.C.Height)
	factory.CreateSpace(e, spaceW, spaceH, cfg.C.TileSize, cfg.C.TileSize)

	lib := assets.MustLoadSprites()

	for _, b := range level.Blocks {
		factory.AttachSprites(factory.CreateBlock(e, b.X, b.Y), lib[cfg.KindBlock])
	}
	for _, h := range level.Hazards {
		factory.AttachSprites(factory.CreateHazard(e, h.X, h.Y, h.Kind), lib[h.Kind])
	}
	for _, x := range level.Exits {
		factory.AttachSprites(factory.CreateExit(e, x.X, x.Y), lib[cfg.KindExit])
	}
	factory.AttachSprites(factory.CreatePlayer(e, level.Player.X, level.Player.Y), lib[cfg.KindPlayer])

	factory.CreatePhase(e, level.Name)
}
