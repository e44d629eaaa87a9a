package ports

import (
	"context"
	"tello-block-adapter/internal/domain/model"
)

type BlockPort interface {
	GetInfo(ctx context.Context, locale string) *model.ExtensionInfo
	Dispatch(ctx context.Context, op model.Opcode, args map[string]interface{}) error
	Query(ctx context.Context, op model.Opcode) (string, error)
	Snapshot(ctx context.Context) map[model.Opcode]string

	// Config management
	GetConfig(ctx context.Context) (*model.Config, error)
	UpdateConfig(ctx context.Context, cfg *model.Config) error
}
