package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Default is the render layer every entity is spawned on. The game draws a
// single fixed screen, so one layer is enough.
const Default ecs.LayerID = 0

type Config struct {
	Width    int
	Height   int
	TileSize int
}

// PlayerConfig contains all player movement configuration values
type PlayerConfig struct {
	// MoveSpeed is applied directly as horizontal velocity while a
	// direction is held; no momentum carries between frames.
	MoveSpeed float64
	// JumpSpeed is the instantaneous upward impulse, only available
	// while standing on a solid.
	JumpSpeed float64
	// FallAcceleration is added to vertical speed each airborne frame.
	FallAcceleration float64
}

// AnimationConfig contains sprite animation timing
type AnimationConfig struct {
	// CadenceMs is the time between animation frames.
	CadenceMs int64
	// JitterMs is the maximum random offset added to the first frame
	// change so identical entities don't animate in lockstep.
	JitterMs int64
}

// BannerConfig contains the between-phase message overlay configuration
type BannerConfig struct {
	IntroFrames    int // frames the level name is shown before play starts
	CompleteFrames int // frames the completion message is shown
	FailedFrames   int // frames the game over message is shown
	FadeSeconds    float32

	TextColor    color.RGBA
	FailColor    color.RGBA
	OverlayColor color.RGBA

	GameOverText string
	VictoryText  string
}

// MenuConfig contains the title menu configuration
type MenuConfig struct {
	Title           string
	BackgroundColor color.RGBA
}

// LevelRef names one bundled level map file
type LevelRef struct {
	Name string
	File string
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Animation AnimationConfig
var Banner BannerConfig
var Menu MenuConfig

// Levels is the ordered level sequence; the game advances through it
// front to back and shows the victory screen after the last entry.
var Levels []LevelRef

// Shared RGBA color constants
var (
	White = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Green = color.RGBA{R: 95, G: 133, B: 117, A: 255}
	Red   = color.RGBA{R: 255, G: 69, B: 0, A: 255}
)

func init() {
	C = &Config{
		Width:    1366,
		Height:   768,
		TileSize: 32,
	}

	Player = PlayerConfig{
		MoveSpeed:        2,
		JumpSpeed:        10,
		FallAcceleration: 0.3,
	}

	Animation = AnimationConfig{
		CadenceMs: 150,
		JitterMs:  500,
	}

	Banner = BannerConfig{
		IntroFrames:    120,
		CompleteFrames: 90,
		FailedFrames:   90,
		FadeSeconds:    0.5,
		TextColor:      Green,
		FailColor:      Red,
		OverlayColor:   color.RGBA{R: 0, G: 0, B: 0, A: 255},
		GameOverText:   "GAME OVER",
		VictoryText:    "VICTORY! You've finished the game.",
	}

	Menu = MenuConfig{
		Title:           "EMBERVALE",
		BackgroundColor: color.RGBA{R: 12, G: 16, B: 20, A: 255},
	}

	Levels = []LevelRef{
		{Name: "Level 1", File: "maps/level1.txt"},
		{Name: "Level 2", File: "maps/level2.txt"},
	}
}
