package service

import (
	"context"
	"sync"

	"tello-block-adapter/internal/domain/model"
	"tello-block-adapter/internal/ports"
)

// ConfigService caches the persisted configuration for the ambient locale lookup.
type ConfigService struct {
	repo ports.ConfigRepository

	mu      sync.RWMutex
	current *model.Config
}

func NewConfigService(repo ports.ConfigRepository) *ConfigService {
	return &ConfigService{repo: repo}
}

func (s *ConfigService) GetConfig(ctx context.Context) (*model.Config, error) {
	s.mu.RLock()
	cfg := s.current
	s.mu.RUnlock()
	if cfg != nil {
		return cfg, nil
	}

	cfg, err := s.repo.Get(ctx)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	s.current = cfg
	s.mu.Unlock()
	return cfg, nil
}

func (s *ConfigService) UpdateConfig(ctx context.Context, cfg *model.Config) error {
	err := s.repo.Save(ctx, cfg)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.current = cfg
	s.mu.Unlock()
	return nil
}

// Locale is the configured ambient locale, empty when no configuration can be read.
func (s *ConfigService) Locale(ctx context.Context) string {
	cfg, err := s.GetConfig(ctx)
	if err != nil || cfg == nil {
		return ""
	}
	return cfg.Locale
}
