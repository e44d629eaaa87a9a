package translator

import (
	"tello-block-adapter/internal/domain/model"
)

var flipCodes = map[string]string{
	"Forward": "f",
	"Back":    "b",
	"Left":    "l",
	"Right":   "r",
}

// flipDefault is sent for any direction outside the menu, so an invalid value
// flips right. The vehicle sees no difference between the two.
const flipDefault = "r"

type FlipStrategy struct{}

func (s *FlipStrategy) ToCommand(spec model.CommandSpec, args model.Arguments) model.CommandLine {
	return model.CommandLine(string(spec.Opcode) + " " + FlipCode(args.Choice))
}

// FlipCode maps a flip menu value to its single-letter direction code.
func FlipCode(direction string) string {
	if code, ok := flipCodes[direction]; ok {
		return code
	}
	return flipDefault
}
