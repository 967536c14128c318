package level

import (
	"encoding/json"
	"fmt"
	"image/color"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/milk9111/platformer/common"
)

// levelFile mirrors the on-disk JSON schema. All spatial fields are in tile
// units; the loader converts to world pixels.
type levelFile struct {
	Name    string  `json:"name"`
	ParTime float64 `json:"par_time"`
	Width   int     `json:"width"`
	Height  int     `json:"height"`
	Spawn   struct {
		X int `json:"x"`
		Y int `json:"y"`
	} `json:"spawn"`
	Goal struct {
		X      int `json:"x"`
		Y      int `json:"y"`
		Width  int `json:"width"`
		Height int `json:"height"`
	} `json:"goal"`
	BackgroundColor []int   `json:"background_color"`
	Tiles           [][]int `json:"tiles"`
	Hazards         []struct {
		X      float64 `json:"x"`
		Y      float64 `json:"y"`
		Width  float64 `json:"width"`
		Height float64 `json:"height"`
	} `json:"hazards"`
}

// Load reads a level JSON file from disk.
func Load(path string) (*Level, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(b)
}

// LoadFS reads a level JSON from an fs.FS (e.g. the embedded levels).
func LoadFS(fsys fs.FS, path string) (*Level, error) {
	clean := strings.TrimPrefix(filepath.ToSlash(path), "levels/")
	b, err := fs.ReadFile(fsys, clean)
	if err != nil {
		return nil, err
	}
	return Parse(b)
}

// Parse decodes level JSON. Rows and cells beyond the declared dimensions are
// clipped, missing ones default to Empty. A decode failure or non-positive
// dimensions return an error; callers fall back to Default.
func Parse(b []byte) (*Level, error) {
	var lf levelFile
	if err := json.Unmarshal(b, &lf); err != nil {
		return nil, fmt.Errorf("parse level: %w", err)
	}
	if lf.Width <= 0 || lf.Height <= 0 {
		return nil, fmt.Errorf("invalid level dimensions: %dx%d", lf.Width, lf.Height)
	}

	lvl := New(lf.Width, lf.Height, nil)
	lvl.Name = lf.Name
	lvl.ParTime = float32(lf.ParTime)

	for y, row := range lf.Tiles {
		if y >= lf.Height {
			break
		}
		for x, v := range row {
			if x >= lf.Width {
				break
			}
			switch v {
			case int(TileSolid):
				lvl.tiles[y*lf.Width+x] = TileSolid
			case int(TilePlatform):
				lvl.tiles[y*lf.Width+x] = TilePlatform
			}
		}
	}

	lvl.SpawnX = float32(lf.Spawn.X*common.TileSize) + common.TileSize/2
	lvl.SpawnY = float32(lf.Spawn.Y*common.TileSize) + common.TileSize/2

	lvl.Goal = common.Rect{
		X:      float32(lf.Goal.X * common.TileSize),
		Y:      float32(lf.Goal.Y * common.TileSize),
		Width:  float32(lf.Goal.Width * common.TileSize),
		Height: float32(lf.Goal.Height * common.TileSize),
	}

	for _, h := range lf.Hazards {
		lvl.Hazards = append(lvl.Hazards, common.Rect{
			X:      float32(h.X * common.TileSize),
			Y:      float32(h.Y * common.TileSize),
			Width:  float32(h.Width * common.TileSize),
			Height: float32(h.Height * common.TileSize),
		})
	}

	if len(lf.BackgroundColor) == 3 {
		lvl.BackgroundColor = color.RGBA{
			R: clampByte(lf.BackgroundColor[0]),
			G: clampByte(lf.BackgroundColor[1]),
			B: clampByte(lf.BackgroundColor[2]),
			A: 0xff,
		}
	}

	return lvl, nil
}

func clampByte(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// FileSet loads levels by index from an ordered list of paths, trying the
// disk first and an optional fallback fs.FS second. It implements the
// session's level loader.
type FileSet struct {
	Paths []string
	FS    fs.FS
}

// Load returns the level at index i, or an error when i is out of range or
// the file cannot be read/parsed. The session handles wrapping on error.
func (f *FileSet) Load(i int) (*Level, error) {
	if i < 0 || i >= len(f.Paths) {
		return nil, fmt.Errorf("level index %d out of range (have %d)", i, len(f.Paths))
	}
	path := f.Paths[i]
	lvl, err := Load(path)
	if err == nil {
		return lvl, nil
	}
	if f.FS != nil {
		if lvl, fsErr := LoadFS(f.FS, filepath.Base(path)); fsErr == nil {
			return lvl, nil
		}
	}
	return nil, err
}

// Len reports how many levels the set holds.
func (f *FileSet) Len() int { return len(f.Paths) }
