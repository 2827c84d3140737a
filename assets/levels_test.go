package assets

import (
	"strings"
	"testing"

	"github.com/mlowery2/embervale/config"
)

const tileSize = 32

func TestParseLevelMap_CellPositions(t *testing.T) {
	src := []byte("B\n P\n  E")

	lm, err := ParseLevelMap("test", src, tileSize)
	if err != nil {
		t.Fatalf("ParseLevelMap: %v", err)
	}

	if len(lm.Blocks) != 1 {
		t.Fatalf("blocks = %d, want 1", len(lm.Blocks))
	}
	if lm.Blocks[0].X != 0 || lm.Blocks[0].Y != 0 {
		t.Errorf("block at (%v, %v), want (0, 0)", lm.Blocks[0].X, lm.Blocks[0].Y)
	}

	if lm.Player.X != 1*tileSize || lm.Player.Y != 1*tileSize {
		t.Errorf("player at (%v, %v), want (%d, %d)", lm.Player.X, lm.Player.Y, tileSize, tileSize)
	}

	if len(lm.Exits) != 1 {
		t.Fatalf("exits = %d, want 1", len(lm.Exits))
	}
	if lm.Exits[0].X != 2*tileSize || lm.Exits[0].Y != 2*tileSize {
		t.Errorf("exit at (%v, %v), want (%d, %d)", lm.Exits[0].X, lm.Exits[0].Y, 2*tileSize, 2*tileSize)
	}
}

func TestParseLevelMap_HazardVariants(t *testing.T) {
	src := []byte("Tt\nP")

	lm, err := ParseLevelMap("test", src, tileSize)
	if err != nil {
		t.Fatalf("ParseLevelMap: %v", err)
	}
	if len(lm.Hazards) != 2 {
		t.Fatalf("hazards = %d, want 2", len(lm.Hazards))
	}
	if lm.Hazards[0].Kind != config.KindFire {
		t.Errorf("hazard 0 kind = %v, want fire", lm.Hazards[0].Kind)
	}
	if lm.Hazards[1].Kind != config.KindBlueFire {
		t.Errorf("hazard 1 kind = %v, want bluefire", lm.Hazards[1].Kind)
	}
	if lm.Hazards[1].X != tileSize || lm.Hazards[1].Y != 0 {
		t.Errorf("hazard 1 at (%v, %v), want (%d, 0)", lm.Hazards[1].X, lm.Hazards[1].Y, tileSize)
	}
}

func TestParseLevelMap_DuplicatePlayerFails(t *testing.T) {
	src := []byte("P\nP")

	lm, err := ParseLevelMap("test", src, tileSize)
	if err == nil {
		t.Fatal("duplicate player start accepted, want configuration error")
	}
	if !strings.Contains(err.Error(), "only one player") {
		t.Errorf("error = %q, want mention of only one player", err)
	}
	if lm != nil {
		t.Error("got a partially constructed level alongside the error")
	}
}

func TestParseLevelMap_MissingPlayerFails(t *testing.T) {
	src := []byte("BB\nBE")

	lm, err := ParseLevelMap("test", src, tileSize)
	if err == nil {
		t.Fatal("level without player start accepted, want configuration error")
	}
	if lm != nil {
		t.Error("got a level alongside the error")
	}
}

func TestParseLevelMap_UnrecognizedCharactersIgnored(t *testing.T) {
	src := []byte("x.#?!\nP")

	lm, err := ParseLevelMap("test", src, tileSize)
	if err != nil {
		t.Fatalf("ParseLevelMap: %v", err)
	}
	if n := len(lm.Blocks) + len(lm.Hazards) + len(lm.Exits); n != 0 {
		t.Errorf("unrecognized characters produced %d entities, want 0", n)
	}
}

func TestParseLevelMap_RaggedRowsAndTrailingWhitespace(t *testing.T) {
	src := []byte("B  \t\r\nBBBB\nP")

	lm, err := ParseLevelMap("test", src, tileSize)
	if err != nil {
		t.Fatalf("ParseLevelMap: %v", err)
	}
	if len(lm.Blocks) != 5 {
		t.Errorf("blocks = %d, want 5", len(lm.Blocks))
	}
	// Width comes from the longest row after trailing whitespace is
	// stripped, not from the padded first row.
	if lm.Width != 4*tileSize {
		t.Errorf("width = %d, want %d", lm.Width, 4*tileSize)
	}
	if lm.Height != 3*tileSize {
		t.Errorf("height = %d, want %d", lm.Height, 3*tileSize)
	}
}

func TestLoadLevels_BundledMapsAreValid(t *testing.T) {
	levels, err := LoadLevels()
	if err != nil {
		t.Fatalf("LoadLevels: %v", err)
	}
	if len(levels) != len(config.Levels) {
		t.Fatalf("levels = %d, want %d", len(levels), len(config.Levels))
	}
	for _, lm := range levels {
		if lm.Name == "" {
			t.Error("bundled level has no name")
		}
		if len(lm.Blocks) == 0 {
			t.Errorf("%s has no solid blocks", lm.Name)
		}
		if len(lm.Exits) == 0 {
			t.Errorf("%s has no exit", lm.Name)
		}
	}
}
