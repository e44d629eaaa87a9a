package persistence

import (
	"context"
	"encoding/json"
	"os"
	"sync"

	"tello-block-adapter/internal/domain/model"
)

type JSONConfigRepository struct {
	filepath string
	defaults *model.Config
	mu       sync.RWMutex
}

// NewJSONConfigRepository returns a repository backed by filepath. defaults is
// returned (as a copy) while the file does not exist yet.
func NewJSONConfigRepository(filepath string, defaults *model.Config) *JSONConfigRepository {
	if defaults == nil {
		defaults = &model.Config{Locale: string(model.LocaleEnglish)}
	}
	return &JSONConfigRepository{filepath: filepath, defaults: defaults}
}

func (r *JSONConfigRepository) Get(ctx context.Context) (*model.Config, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	data, err := os.ReadFile(r.filepath)
	if err != nil {
		if os.IsNotExist(err) {
			cfg := *r.defaults
			return &cfg, nil
		}
		return nil, err
	}

	// Start from defaults so fields missing in older files keep a value
	cfg := *r.defaults
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (r *JSONConfigRepository) Save(ctx context.Context, config *model.Config) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(r.filepath, data, 0644)
}
