package workspace

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/vellumtools/vellum/internal/atomicfile"
	"github.com/vellumtools/vellum/internal/model"
)

// entitiesFile is the entity store, relative to the workspace root.
const entitiesFile = MarkerDir + "/entities.yaml"

// entityStore is the on-disk shape of the entity store. Dates round-trip
// as ISO-8601 strings via the model's string-typed Date field.
type entityStore struct {
	Entities []model.TaggedEntity `yaml:"entities"`
}

// LoadEntities reads the workspace's entity store. A missing store file
// yields an empty list, not an error.
func LoadEntities(root string) ([]model.TaggedEntity, error) {
	path := filepath.Join(root, entitiesFile)
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read entity store: %w", err)
	}

	var store entityStore
	if err := yaml.Unmarshal(data, &store); err != nil {
		return nil, fmt.Errorf("failed to parse entity store: %w", err)
	}
	return store.Entities, nil
}

// SaveEntities writes the workspace's entity store wholesale.
func SaveEntities(root string, entities []model.TaggedEntity) error {
	if entities == nil {
		entities = []model.TaggedEntity{}
	}

	data, err := yaml.Marshal(entityStore{Entities: entities})
	if err != nil {
		return fmt.Errorf("failed to marshal entity store: %w", err)
	}

	path := filepath.Join(root, entitiesFile)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create store directory: %w", err)
	}
	if err := atomicfile.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write entity store: %w", err)
	}
	return nil
}

// FindEntity returns the entity with the given id, or false.
func FindEntity(entities []model.TaggedEntity, id string) (model.TaggedEntity, bool) {
	for _, e := range entities {
		if e.ID == id {
			return e, true
		}
	}
	return model.TaggedEntity{}, false
}

// HasEntity reports whether an entity with the given id exists.
func HasEntity(entities []model.TaggedEntity, id string) bool {
	_, ok := FindEntity(entities, id)
	return ok
}
