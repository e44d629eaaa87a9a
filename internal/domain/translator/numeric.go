package translator

import (
	"tello-block-adapter/internal/domain/model"
)

// NumericStrategy emits "<verb> <N>". N is passed through without range checks;
// the vehicle rejects what it does not accept.
type NumericStrategy struct{}

func (s *NumericStrategy) ToCommand(spec model.CommandSpec, args model.Arguments) model.CommandLine {
	return model.CommandLine(string(spec.Opcode) + " " + args.Number)
}
