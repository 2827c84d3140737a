package assets

import (
	"fmt"
	"strings"
	"sync"

	"github.com/mlowery2/embervale/config"
)

// TileSpawn is the pixel position of one grid-cell entity.
type TileSpawn struct {
	X, Y float64
}

// HazardSpawn is a hazard position plus its variant (fire or blue fire).
type HazardSpawn struct {
	X, Y float64
	Kind config.Kind
}

// LevelMap is a fully parsed, validated level: every spawn list filled in
// and exactly one player start. It is immutable once returned; a play
// attempt instantiates entities from it and discards them on retry.
type LevelMap struct {
	Name     string
	TileSize int

	Blocks  []TileSpawn
	Hazards []HazardSpawn
	Exits   []TileSpawn
	Player  TileSpawn

	// Width and Height are the grid extent in pixels.
	Width  int
	Height int
}

// ParseLevelMap reads a plain-text grid, one row per line, one character per
// tile column. Recognized codes: 'B' block, 'T' fire, 't' blue fire, 'E'
// exit, 'P' player start. Every other character is an empty tile. Trailing
// whitespace is stripped from each row; rows may differ in length. The grid
// must contain exactly one 'P', otherwise a configuration error is returned
// and no level is produced.
func ParseLevelMap(name string, src []byte, tileSize int) (*LevelMap, error) {
	lm := &LevelMap{
		Name:     name,
		TileSize: tileSize,
	}

	playerFound := false
	rows := strings.Split(string(src), "\n")
	for rowNum, row := range rows {
		row = strings.TrimRight(row, " \t\r")
		if len(row) > lm.Width {
			lm.Width = len(row)
		}
		for colNum, cell := range []byte(row) {
			x := float64(colNum * tileSize)
			y := float64(rowNum * tileSize)

			switch cell {
			case 'B':
				lm.Blocks = append(lm.Blocks, TileSpawn{X: x, Y: y})
			case 'T':
				lm.Hazards = append(lm.Hazards, HazardSpawn{X: x, Y: y, Kind: config.KindFire})
			case 't':
				lm.Hazards = append(lm.Hazards, HazardSpawn{X: x, Y: y, Kind: config.KindBlueFire})
			case 'E':
				lm.Exits = append(lm.Exits, TileSpawn{X: x, Y: y})
			case 'P':
				if playerFound {
					return nil, fmt.Errorf("level %s: only one player allowed, second start at row %d col %d", name, rowNum, colNum)
				}
				playerFound = true
				lm.Player = TileSpawn{X: x, Y: y}
			}
		}
	}

	if !playerFound {
		return nil, fmt.Errorf("level %s: no player start cell", name)
	}

	lm.Width *= tileSize
	lm.Height = len(rows) * tileSize
	return lm, nil
}

var (
	levelsOnce sync.Once
	levels     []LevelMap
	levelsErr  error
)

// LoadLevels parses every bundled level in the configured order. The parse
// result is cached; all callers share the same immutable slice.
func LoadLevels() ([]LevelMap, error) {
	levelsOnce.Do(func() {
		for _, ref := range config.Levels {
			data, err := mapFS.ReadFile(ref.File)
			if err != nil {
				levelsErr = fmt.Errorf("reading level map %s: %w", ref.File, err)
				return
			}
			lm, err := ParseLevelMap(ref.Name, data, config.C.TileSize)
			if err != nil {
				levelsErr = err
				return
			}
			levels = append(levels, *lm)
		}
	})
	return levels, levelsErr
}

// MustLoadLevels is LoadLevels for callers past startup validation.
func MustLoadLevels() []LevelMap {
	lvls, err := LoadLevels()
	if err != nil {
		panic(err)
	}
	return lvls
}
