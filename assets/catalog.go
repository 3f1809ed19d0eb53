package assets

import (
	"bytes"
	_ "embed"
	"fmt"
	"image/color"
	"io"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"
)

//go:embed data/models.yaml
var defaultCatalog []byte

type catalogFile struct {
	Models map[string]modelDef `yaml:"models"`
}

type polygonDef struct {
	Sides    int     `yaml:"sides"`
	Radius   float32 `yaml:"radius"`
	Rotation float32 `yaml:"rotation"` // degrees
}

type modelDef struct {
	Color    string       `yaml:"color"`
	Polygon  *polygonDef  `yaml:"polygon"`
	Vertices [][3]float32 `yaml:"vertices"`
	Lines    [][2]int     `yaml:"lines"`
}

// ParseCatalog decodes a YAML model catalog. Unknown keys are rejected.
func ParseCatalog(r io.Reader) (map[string]*Model, error) {
	var file catalogFile

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		return nil, fmt.Errorf("decode model catalog: %w", err)
	}

	models := make(map[string]*Model, len(file.Models))
	for name, def := range file.Models {
		model, err := def.build(name)
		if err != nil {
			return nil, err
		}
		models[name] = model
	}
	return models, nil
}

func (d modelDef) build(name string) (*Model, error) {
	model := &Model{Name: name}

	c, err := parseColor(d.Color)
	if err != nil {
		return nil, fmt.Errorf("%w: model %q: %v", ErrInvalidModel, name, err)
	}
	model.Color = c

	// A polygon ring comes first so that explicit vertices can index past it.
	if d.Polygon != nil {
		if d.Polygon.Sides < 3 || d.Polygon.Radius <= 0 {
			return nil, fmt.Errorf("%w: model %q: polygon needs at least 3 sides and a positive radius",
				ErrInvalidModel, name)
		}
		vertices, lines := polygon(d.Polygon.Sides, d.Polygon.Radius, mgl32.DegToRad(d.Polygon.Rotation))
		model.Vertices = append(model.Vertices, vertices...)
		model.Lines = append(model.Lines, lines...)
	}

	for _, v := range d.Vertices {
		model.Vertices = append(model.Vertices, mgl32.Vec3{v[0], v[1], v[2]})
	}
	model.Lines = append(model.Lines, d.Lines...)

	if err := model.Validate(); err != nil {
		return nil, err
	}
	return model, nil
}

func parseColor(s string) (color.RGBA, error) {
	if s == "" {
		return color.RGBA{255, 255, 255, 255}, nil
	}
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 && len(hex) != 8 {
		return color.RGBA{}, fmt.Errorf("color %q must be #rrggbb or #rrggbbaa", s)
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("color %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

func defaultCatalogReader() io.Reader {
	return bytes.NewReader(defaultCatalog)
}
