package factory

import (
	"time"

	"github.com/mlowery2/embervale/archetypes"
	"github.com/mlowery2/embervale/assets/animations"
	"github.com/mlowery2/embervale/components"
	cfg "github.com/mlowery2/embervale/config"
	"github.com/mlowery2/embervale/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateBlock creates one solid tile the player collides with.
func CreateBlock(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	block := archetypes.Block.Spawn(ecs)
	attachObject(ecs, block, x, y, tags.ResolvSolid)
	attachAnimation(block, cfg.KindBlock)
	return block
}

// CreateHazard creates one hazard tile (fire or blue fire). Hazards never
// block movement; overlap with the player fails the attempt.
func CreateHazard(ecs *ecs.ECS, x, y float64, kind cfg.Kind) *donburi.Entry {
	hazard := archetypes.Hazard.Spawn(ecs)
	attachObject(ecs, hazard, x, y, tags.ResolvHazard)
	attachAnimation(hazard, kind)
	return hazard
}

// CreateExit creates one exit tile; overlap with the player completes the
// level.
func CreateExit(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	exit := archetypes.Exit.Spawn(ecs)
	attachObject(ecs, exit, x, y, tags.ResolvExit)
	attachAnimation(exit, cfg.KindExit)
	return exit
}

// CreatePlayer creates the player at its start cell.
func CreatePlayer(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)
	attachObject(ecs, player, x, y, tags.ResolvPlayer)
	attachAnimation(player, cfg.KindPlayer)
	components.Player.SetValue(player, components.PlayerData{})
	components.Physics.SetValue(player, components.PhysicsData{})
	return player
}

// AttachSprites sets the frame images an entity is drawn with. Kept apart
// from entity creation so level logic and its tests never load images.
func AttachSprites(entry *donburi.Entry, frames []*ebiten.Image) {
	components.Sprite.SetValue(entry, components.SpriteData{Frames: frames})
}

func attachObject(ecs *ecs.ECS, entry *donburi.Entry, x, y float64, tag string) {
	size := float64(cfg.C.TileSize)
	obj := resolv.NewObject(x, y, size, size, tag)
	obj.SetShape(resolv.NewRectangle(0, 0, size, size))
	obj.Data = entry

	components.Object.SetValue(entry, components.ObjectData{Object: obj})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
}

func attachAnimation(entry *donburi.Entry, kind cfg.Kind) {
	ec := cfg.Entities[kind]
	anim := animations.New(len(ec.FrameFiles), ec.CadenceMs, cfg.Animation.JitterMs, time.Now().UnixMilli())
	components.Animation.SetValue(entry, components.AnimationData{Animation: anim})
}
