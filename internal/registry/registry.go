package registry

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"sync"

	"github.com/suisei-entertainment/sde/internal/errors"
	"github.com/suisei-entertainment/sde/internal/logging"
)

// Registry maps component IDs to their descriptors. It is constructed by
// the application context at startup, populated once while the component
// directory is scanned and read-only afterwards.
type Registry struct {
	components map[string]*ComponentDescriptor
	mutex      sync.RWMutex
}

// NewRegistry creates an empty component registry.
func NewRegistry() *Registry {
	return &Registry{
		components: make(map[string]*ComponentDescriptor),
	}
}

// Register adds a component descriptor to the registry. Registering the
// same ID twice replaces the earlier descriptor.
func (r *Registry) Register(desc *ComponentDescriptor) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	r.components[desc.ID] = desc
}

// Get retrieves a component descriptor by ID.
func (r *Registry) Get(id string) (*ComponentDescriptor, bool) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	desc, exists := r.components[id]
	return desc, exists
}

// Has returns whether the given component is configured.
func (r *Registry) Has(id string) bool {
	_, exists := r.Get(id)
	return exists
}

// All returns every registered descriptor sorted by component ID.
func (r *Registry) All() []*ComponentDescriptor {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	result := make([]*ComponentDescriptor, 0, len(r.components))
	for _, desc := range r.components {
		result = append(result, desc)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Count returns the number of registered components.
func (r *Registry) Count() int {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	return len(r.components)
}

// LoadDirectory scans a component directory and builds the registry from
// every descriptor file in it. A malformed descriptor is logged and
// skipped; the rest of the components still load. A missing or unreadable
// directory is a fatal configuration error.
func LoadDirectory(ctx context.Context, dir string, logger logging.Logger) (*Registry, error) {
	patterns := []string{"*.component", "*.component.yaml", "*.component.yml"}

	var files []string
	for _, pattern := range patterns {
		matches, err := filepath.Glob(filepath.Join(dir, pattern))
		if err != nil {
			return nil, errors.NewIOError("registry_scan",
				fmt.Sprintf("failed to scan component directory %s", dir), err)
		}
		files = append(files, matches...)
	}

	if len(files) == 0 {
		return nil, errors.NewConfigError("registry_no_components",
			fmt.Sprintf("no component configuration was found under %s", dir))
	}

	sort.Strings(files)

	registry := NewRegistry()

	for _, file := range files {
		logger.Debug(ctx, "Loading component descriptor", "file", file)

		desc, err := ParseComponentFile(file)
		if err != nil {
			logger.Error(ctx, err, "Failed to parse the component descriptor", "file", file)
			continue
		}

		registry.Register(desc)
		logger.Debug(ctx, "Component was added successfully", "component", desc.ID)
	}

	return registry, nil
}
