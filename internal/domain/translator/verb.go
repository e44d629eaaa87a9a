package translator

import (
	"tello-block-adapter/internal/domain/model"
)

// VerbStrategy handles commands without arguments: the opcode is the whole command.
type VerbStrategy struct{}

func (s *VerbStrategy) ToCommand(spec model.CommandSpec, _ model.Arguments) model.CommandLine {
	return model.CommandLine(spec.Opcode)
}
