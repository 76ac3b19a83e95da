// pkg/render/engo/assets.go
package engo

import (
	"fmt"
	"image"
	"image/color"

	"github.com/EngoEngine/engo/common"
)

type spriteKind int

const (
	kindGround spriteKind = iota
	kindTarget
	kindHowitzer
	kindBarrel
	kindShell
	kindTrail
)

// Sprite patterns, one string per row. '#' is an opaque pixel.
var patterns = map[spriteKind][]string{
	kindHowitzer: {
		"....####....",
		"...######...",
		".##########.",
		"############",
		"#.##.##.##.#",
		".#..#..#..#.",
	},
	kindTarget: {
		"..####..",
		".#....#.",
		"#..##..#",
		"#.####.#",
		"#.####.#",
		"#..##..#",
		".#....#.",
		"..####..",
	},
	kindShell: {
		".##.",
		"####",
		"####",
		".##.",
	},
}

// AssetManager builds the textures the renderer draws with. Ground columns,
// the barrel and trail dots use plain shapes.
type AssetManager struct {
	sprites map[spriteKind]common.Drawable
}

// NewAssetManager creates an empty asset manager
func NewAssetManager() *AssetManager {
	return &AssetManager{sprites: make(map[spriteKind]common.Drawable)}
}

// LoadAssets uploads the sprite textures. It needs a live GL context.
func (am *AssetManager) LoadAssets() error {
	for kind, rows := range patterns {
		img, err := patternImage(rows)
		if err != nil {
			return fmt.Errorf("sprite %d: %w", kind, err)
		}
		am.sprites[kind] = common.NewTextureSingle(common.NewImageObject(img))
	}
	am.sprites[kindGround] = common.Rectangle{}
	am.sprites[kindBarrel] = common.Rectangle{}
	am.sprites[kindTrail] = common.Circle{}
	return nil
}

// Get returns the drawable for kind, or nil before LoadAssets
func (am *AssetManager) Get(kind spriteKind) common.Drawable {
	return am.sprites[kind]
}

// patternImage rasterizes a pattern into a white-on-transparent image. All
// rows must be the same width.
func patternImage(rows []string) (*image.NRGBA, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("empty pattern")
	}
	width := len(rows[0])
	img := image.NewNRGBA(image.Rect(0, 0, width, len(rows)))
	for y, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("row %d is %d wide, want %d", y, len(row), width)
		}
		for x, px := range row {
			if px == '#' {
				img.SetNRGBA(x, y, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
			}
		}
	}
	return img, nil
}
