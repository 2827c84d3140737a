package config

// Kind identifies one of the fixed entity variants a level grid cell can
// produce. Variants differ only in category and sprite frames; there is a
// single entity representation rather than a type per variant.
type Kind int

const (
	KindBlock Kind = iota
	KindFire
	KindBlueFire
	KindExit
	KindPlayer
)

func (k Kind) String() string {
	switch k {
	case KindBlock:
		return "block"
	case KindFire:
		return "fire"
	case KindBlueFire:
		return "bluefire"
	case KindExit:
		return "exit"
	case KindPlayer:
		return "player"
	}
	return "unknown"
}

// Category groups kinds by their gameplay role: solids block movement,
// hazards fail the level on contact, exits complete it.
type Category int

const (
	CategorySolid Category = iota
	CategoryHazard
	CategoryExit
	CategoryPlayer
)

// EntityConfig describes one entity variant: its role, its sprite frame
// files and how fast they cycle.
type EntityConfig struct {
	Category   Category
	FrameFiles []string
	CadenceMs  int64
}

// Entities maps each kind to its variant configuration.
var Entities map[Kind]EntityConfig

func init() {
	Entities = map[Kind]EntityConfig{
		KindBlock: {
			Category:   CategorySolid,
			FrameFiles: []string{"sprites/block.png"},
			CadenceMs:  Animation.CadenceMs,
		},
		KindFire: {
			Category: CategoryHazard,
			FrameFiles: []string{
				"sprites/fire.png", "sprites/fire1.png",
				"sprites/fire2.png", "sprites/fire3.png",
				"sprites/fire4.png", "sprites/fire5.png",
				"sprites/fire6.png",
			},
			CadenceMs: Animation.CadenceMs,
		},
		KindBlueFire: {
			Category: CategoryHazard,
			FrameFiles: []string{
				"sprites/bluefire.png", "sprites/bluefire1.png",
				"sprites/bluefire2.png", "sprites/bluefire3.png",
				"sprites/bluefire4.png", "sprites/bluefire5.png",
				"sprites/bluefire6.png",
			},
			CadenceMs: Animation.CadenceMs,
		},
		KindExit: {
			Category:   CategoryExit,
			FrameFiles: []string{"sprites/door.png"},
			CadenceMs:  Animation.CadenceMs,
		},
		KindPlayer: {
			Category: CategoryPlayer,
			FrameFiles: []string{
				"sprites/player.png", "sprites/player1.png",
				"sprites/player2.png", "sprites/player3.png",
			},
			CadenceMs: Animation.CadenceMs,
		},
	}
}
