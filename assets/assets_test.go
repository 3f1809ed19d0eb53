package assets

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultManager(t *testing.T) {
	m, err := DefaultManager()
	require.NoError(t, err)

	for _, name := range []string{"command_center", "miner", "turret", "hub", "asteroid", "enemy", "link", "miner_laser"} {
		model, err := m.Model(name)
		require.NoError(t, err, name)
		assert.Equal(t, name, model.Name)
		assert.NoError(t, model.Validate())
	}

	link, _ := m.Model("link")
	assert.Equal(t, []mgl32.Vec3{{0, 0, 0}, {0, 1, 0}}, link.Vertices)

	hub, _ := m.Model("hub")
	assert.Len(t, hub.Vertices, 5)
	assert.InDelta(t, 0.8, hub.Bounds(), 1e-5)
}

func TestManagerModelNotFound(t *testing.T) {
	m := NewManager(nil)
	_, err := m.Model("ghost")
	assert.ErrorIs(t, err, ErrModelNotFound)
	assert.Contains(t, err.Error(), "ghost")
}

func TestManagerAdd(t *testing.T) {
	m := NewManager(nil)
	assert.ErrorIs(t, m.Add(&Model{Name: "empty"}), ErrInvalidModel)
	assert.ErrorIs(t, m.Add(&Model{
		Name:     "dangling",
		Vertices: []mgl32.Vec3{{0, 0, 0}},
		Lines:    [][2]int{{0, 1}},
	}), ErrInvalidModel)

	require.NoError(t, m.Add(&Model{Name: "b", Vertices: []mgl32.Vec3{{1, 0, 0}}}))
	require.NoError(t, m.Add(&Model{Name: "a", Vertices: []mgl32.Vec3{{1, 0, 0}}}))
	assert.Equal(t, []string{"a", "b"}, m.Names())
}

func TestParseCatalog(t *testing.T) {
	t.Run("polygon then explicit vertices", func(t *testing.T) {
		models, err := ParseCatalog(strings.NewReader(`
models:
  tri:
    color: "#102030"
    polygon: {sides: 3, radius: 2}
    vertices:
      - [0, 0, 0]
    lines:
      - [0, 3]
`))
		require.NoError(t, err)
		tri := models["tri"]
		require.NotNil(t, tri)
		assert.Len(t, tri.Vertices, 4)
		assert.Len(t, tri.Lines, 4)
		assert.Equal(t, color.RGBA{0x10, 0x20, 0x30, 0xff}, tri.Color)
		assert.InDelta(t, 2, tri.Vertices[0].X(), 1e-5)
	})

	t.Run("alpha and default color", func(t *testing.T) {
		models, err := ParseCatalog(strings.NewReader(`
models:
  a: {color: "#ffffff80", vertices: [[0, 0, 0]]}
  b: {vertices: [[0, 0, 0]]}
`))
		require.NoError(t, err)
		assert.Equal(t, uint8(0x80), models["a"].Color.A)
		assert.Equal(t, color.RGBA{255, 255, 255, 255}, models["b"].Color)
	})

	tests := []struct {
		name string
		yaml string
	}{
		{"bad color", `models: {a: {color: "#12", vertices: [[0, 0, 0]]}}`},
		{"bad polygon", `models: {a: {polygon: {sides: 2, radius: 1}}}`},
		{"dangling line", `models: {a: {vertices: [[0, 0, 0]], lines: [[0, 4]]}}`},
		{"no vertices", `models: {a: {color: "#ffffff"}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseCatalog(strings.NewReader(tt.yaml))
			assert.ErrorIs(t, err, ErrInvalidModel)
		})
	}

	t.Run("unknown field", func(t *testing.T) {
		_, err := ParseCatalog(strings.NewReader(`models: {a: {vertexes: [[0, 0, 0]]}}`))
		assert.Error(t, err)
	})
}

func TestLoadManagerFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "models.yaml")
	require.NoError(t, os.WriteFile(path, []byte("models:\n  dot: {vertices: [[0, 0, 0]]}\n"), 0o644))

	m, err := LoadManagerFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"dot"}, m.Names())

	_, err = LoadManagerFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	m, err = LoadManagerFile("")
	require.NoError(t, err)
	assert.Contains(t, m.Names(), "link")
}

func ExampleManager_Model() {
	m, err := DefaultManager()
	if err != nil {
		panic(err)
	}
	laser, _ := m.Model("miner_laser")
	fmt.Println(laser.Name, len(laser.Vertices), len(laser.Lines))

	_, err = m.Model("mothership")
	fmt.Println(err)
	// Output:
	// miner_laser 2 1
	// model not found: "mothership"
}
