package assets

import (
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
)

// Manager resolves models by name. It is the resource-manager capability consumed by
// prefab initializers.
type Manager struct {
	models map[string]*Model
}

// NewManager creates a Manager over an already-built set of models.
func NewManager(models map[string]*Model) *Manager {
	if models == nil {
		models = make(map[string]*Model)
	}
	return &Manager{models: models}
}

// LoadManager parses a YAML catalog into a Manager.
func LoadManager(r io.Reader) (*Manager, error) {
	models, err := ParseCatalog(r)
	if err != nil {
		return nil, err
	}
	return NewManager(models), nil
}

// LoadManagerFile parses the catalog at path. An empty path loads the built-in catalog.
func LoadManagerFile(path string) (*Manager, error) {
	if path == "" {
		return DefaultManager()
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open model catalog %s: %w", path, err)
	}
	defer f.Close()
	return LoadManager(f)
}

// DefaultManager loads the catalog embedded in the binary.
func DefaultManager() (*Manager, error) {
	return LoadManager(defaultCatalogReader())
}

// Model returns the model registered under name.
func (m *Manager) Model(name string) (*Model, error) {
	model, ok := m.models[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrModelNotFound, name)
	}
	return model, nil
}

// Add registers or replaces a model.
func (m *Manager) Add(model *Model) error {
	if err := model.Validate(); err != nil {
		return err
	}
	m.models[model.Name] = model
	return nil
}

// Names returns all model names in sorted order.
func (m *Manager) Names() []string {
	return slices.Sorted(maps.Keys(m.models))
}
