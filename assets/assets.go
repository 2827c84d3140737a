package assets

import (
	"bytes"
	"embed"
	"fmt"
	"image"
	_ "image/png"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/mlowery2/embervale/config"
)

var (
	//go:embed all:sprites
	spriteFS embed.FS

	//go:embed all:maps
	mapFS embed.FS
)

// SpriteLibrary holds the decoded frame images for every entity kind,
// keyed the same way as the config entity table.
type SpriteLibrary map[config.Kind][]*ebiten.Image

var (
	spritesOnce sync.Once
	sprites     SpriteLibrary
	spritesErr  error
)

// LoadSprites decodes the embedded frame files for all entity kinds.
// A missing or undecodable file is a fatal startup error for the caller.
// The decoded library is cached across level attempts.
func LoadSprites() (SpriteLibrary, error) {
	spritesOnce.Do(func() {
		lib := make(SpriteLibrary, len(config.Entities))
		for kind, ec := range config.Entities {
			frames := make([]*ebiten.Image, 0, len(ec.FrameFiles))
			for _, file := range ec.FrameFiles {
				img, err := loadImage(file)
				if err != nil {
					spritesErr = fmt.Errorf("loading %s frames: %w", kind, err)
					return
				}
				frames = append(frames, img)
			}
			lib[kind] = frames
		}
		sprites = lib
	})
	return sprites, spritesErr
}

// MustLoadSprites is LoadSprites for callers past startup validation.
func MustLoadSprites() SpriteLibrary {
	lib, err := LoadSprites()
	if err != nil {
		panic(err)
	}
	return lib
}

func loadImage(path string) (*ebiten.Image, error) {
	data, err := spriteFS.ReadFile(path)
	if err != nil {
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return ebiten.NewImageFromImage(img), nil
}
