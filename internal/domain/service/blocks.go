package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"tello-block-adapter/internal/domain/catalog"
	"tello-block-adapter/internal/domain/locale"
	"tello-block-adapter/internal/domain/model"
	"tello-block-adapter/internal/domain/translator"
	"tello-block-adapter/internal/ports"
)

const (
	ExtensionID   = "tello"
	ExtensionName = "Tello"
)

var (
	ErrUnknownOpcode = errors.New("unknown opcode")
	ErrNotCommand    = errors.New("opcode is not a command")
	ErrNotReporter   = errors.New("opcode is not a reporter")
)

type BlockService struct {
	transport         ports.Transport
	config            *ConfigService
	translatorFactory *translator.Factory
	log               logrus.FieldLogger
}

func NewBlockService(transport ports.Transport, configRepo ports.ConfigRepository, log logrus.FieldLogger) *BlockService {
	return &BlockService{
		transport:         transport,
		config:            NewConfigService(configRepo),
		translatorFactory: translator.NewFactory(),
		log:               log,
	}
}

// GetInfo builds the block surface for a locale. An empty locale means the
// configured default. The result is rebuilt on every call.
func (s *BlockService) GetInfo(ctx context.Context, ambient string) *model.ExtensionInfo {
	if ambient == "" {
		ambient = s.config.Locale(ctx)
	}
	loc := locale.Resolve(ambient)

	specs := catalog.All()
	blocks := make([]model.BlockDescriptor, 0, len(specs))
	for _, spec := range specs {
		d := model.BlockDescriptor{
			Opcode:    spec.Opcode,
			BlockType: spec.Kind,
			Text:      locale.Label(spec.Opcode, loc),
		}
		if spec.HasArgument() {
			d.Arguments = map[string]model.ArgumentDescriptor{
				spec.ArgumentName: {
					Type:         spec.ArgumentType,
					DefaultValue: spec.DefaultValue,
					Menu:         spec.Menu,
				},
			}
		}
		blocks = append(blocks, d)
	}

	return &model.ExtensionInfo{
		ID:               ExtensionID,
		Name:             ExtensionName,
		Locale:           loc,
		ShowStatusButton: true,
		Blocks:           blocks,
		Menus:            catalog.Menus(),
	}
}

// Dispatch formats a command block and hands it to the transport without waiting
// for the vehicle. Errors only report misuse of the opcode.
func (s *BlockService) Dispatch(ctx context.Context, op model.Opcode, args map[string]interface{}) error {
	spec, ok := catalog.Lookup(op)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownOpcode, op)
	}
	if spec.Kind != model.BlockKindCommand {
		return fmt.Errorf("%w: %s", ErrNotCommand, op)
	}

	line := s.translatorFactory.Translate(spec, args)
	s.log.WithFields(logrus.Fields{"opcode": op, "command": line}).Debug("dispatching command")
	s.transport.Send(line)
	return nil
}

// Query returns the transport's current value for a reporter, as-is.
func (s *BlockService) Query(ctx context.Context, op model.Opcode) (string, error) {
	key, ok := catalog.TelemetryKey(op)
	if !ok {
		if _, known := catalog.Lookup(op); known {
			return "", fmt.Errorf("%w: %s", ErrNotReporter, op)
		}
		return "", fmt.Errorf("%w: %s", ErrUnknownOpcode, op)
	}
	return s.transport.State(key), nil
}

func (s *BlockService) Snapshot(ctx context.Context) map[model.Opcode]string {
	reporters := catalog.Reporters()
	out := make(map[model.Opcode]string, len(reporters))
	for _, op := range reporters {
		key, _ := catalog.TelemetryKey(op)
		out[op] = s.transport.State(key)
	}
	return out
}

func (s *BlockService) GetConfig(ctx context.Context) (*model.Config, error) {
	return s.config.GetConfig(ctx)
}

func (s *BlockService) UpdateConfig(ctx context.Context, cfg *model.Config) error {
	if err := s.config.UpdateConfig(ctx, cfg); err != nil {
		return err
	}
	s.log.WithField("locale", cfg.Locale).Info("configuration updated")
	return nil
}
