package archetypes

import (
	"github.com/mlowery2/embervale/components"
	cfg "github.com/mlowery2/embervale/config"
	"github.com/mlowery2/embervale/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Object,
		components.Physics,
		components.Animation,
		components.Sprite,
	)
	Block = newArchetype(
		tags.Block,
		components.Object,
		components.Animation,
		components.Sprite,
	)
	Hazard = newArchetype(
		tags.Hazard,
		components.Object,
		components.Animation,
		components.Sprite,
	)
	Exit = newArchetype(
		tags.Exit,
		components.Object,
		components.Animation,
		components.Sprite,
	)
	Space = newArchetype(
		components.Space,
	)
	Level = newArchetype(
		components.Level,
	)
	Phase = newArchetype(
		components.Phase,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
