package level

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleJSON = `{
	"name": "test map",
	"par_time": 12.5,
	"width": 3,
	"height": 2,
	"spawn": {"x": 3, "y": 19},
	"goal": {"x": 2, "y": 1, "width": 1, "height": 1},
	"background_color": [10, 20, 300],
	"tiles": [
		[0, 1, 2, 9],
		[1, 0],
		[1, 1, 1]
	],
	"hazards": [{"x": 1, "y": 0.5, "width": 2, "height": 0.5}]
}`

func TestParse(t *testing.T) {
	lvl, err := Parse([]byte(sampleJSON))
	require.NoError(t, err)

	assert.Equal(t, "test map", lvl.Name)
	assert.Equal(t, float32(12.5), lvl.ParTime)
	assert.Equal(t, 3, lvl.Width)
	assert.Equal(t, 2, lvl.Height)

	t.Run("tiles_clipped_and_defaulted", func(t *testing.T) {
		// extra cell in row 0 and extra row 2 are clipped
		assert.Equal(t, TileEmpty, lvl.TileAt(0, 0))
		assert.Equal(t, TileSolid, lvl.TileAt(1, 0))
		assert.Equal(t, TilePlatform, lvl.TileAt(2, 0))
		assert.Equal(t, TileSolid, lvl.TileAt(0, 1))
		// missing cell in row 1 defaults to Empty
		assert.Equal(t, TileEmpty, lvl.TileAt(2, 1))
		// unknown tile value stays Empty
		rows := lvl.MarshalTiles()
		assert.Equal(t, []int{0, 1, 2}, rows[0])
	})

	t.Run("world_unit_conversion", func(t *testing.T) {
		assert.Equal(t, float32(3*16+8), lvl.SpawnX)
		assert.Equal(t, float32(19*16+8), lvl.SpawnY)
		assert.Equal(t, float32(32), lvl.Goal.X)
		assert.Equal(t, float32(16), lvl.Goal.Y)
		assert.Equal(t, float32(16), lvl.Goal.Width)
		require.Len(t, lvl.Hazards, 1)
		assert.Equal(t, float32(16), lvl.Hazards[0].X)
		assert.Equal(t, float32(8), lvl.Hazards[0].Y)
		assert.Equal(t, float32(32), lvl.Hazards[0].Width)
		assert.Equal(t, float32(8), lvl.Hazards[0].Height)
	})

	t.Run("background_color_clamped", func(t *testing.T) {
		assert.Equal(t, uint8(10), lvl.BackgroundColor.R)
		assert.Equal(t, uint8(20), lvl.BackgroundColor.G)
		assert.Equal(t, uint8(255), lvl.BackgroundColor.B)
	})
}

func TestParseFailures(t *testing.T) {
	cases := []struct {
		name string
		json string
	}{
		{"malformed", `{"width": 3,`},
		{"zero_width", `{"width": 0, "height": 5}`},
		{"negative_height", `{"width": 5, "height": -2}`},
		{"not_json", `hello`},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			lvl, err := Parse([]byte(c.json))
			require.Error(t, err)
			assert.Nil(t, lvl)
		})
	}
}

func TestFileSet(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "one.json")
	require.NoError(t, os.WriteFile(path, []byte(sampleJSON), 0o644))

	t.Run("loads_from_disk", func(t *testing.T) {
		fs := &FileSet{Paths: []string{path}}
		lvl, err := fs.Load(0)
		require.NoError(t, err)
		assert.Equal(t, "test map", lvl.Name)
	})

	t.Run("out_of_range", func(t *testing.T) {
		fs := &FileSet{Paths: []string{path}}
		_, err := fs.Load(1)
		require.Error(t, err)
		_, err = fs.Load(-1)
		require.Error(t, err)
	})

	t.Run("falls_back_to_fs", func(t *testing.T) {
		fsys := fstest.MapFS{
			"missing.json": &fstest.MapFile{Data: []byte(sampleJSON)},
		}
		fs := &FileSet{
			Paths: []string{filepath.Join(dir, "missing.json")},
			FS:    fsys,
		}
		lvl, err := fs.Load(0)
		require.NoError(t, err)
		assert.Equal(t, "test map", lvl.Name)
	})

	t.Run("missing_everywhere", func(t *testing.T) {
		fs := &FileSet{Paths: []string{filepath.Join(dir, "nope.json")}}
		_, err := fs.Load(0)
		require.Error(t, err)
	})
}
