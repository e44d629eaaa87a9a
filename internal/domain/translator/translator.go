package translator

import (
	"tello-block-adapter/internal/domain/model"
)

// Translator turns a validated block invocation into the wire command the vehicle expects.
type Translator interface {
	ToCommand(spec model.CommandSpec, args model.Arguments) model.CommandLine
}

// ParseArguments validates a loosely typed argument bag against the opcode's schema.
// Numeric arguments fall back to the catalog default when absent; an absent
// enumerated argument stays empty.
func ParseArguments(spec model.CommandSpec, raw map[string]interface{}) model.Arguments {
	var args model.Arguments
	if !spec.HasArgument() {
		return args
	}

	v, ok := raw[spec.ArgumentName]
	switch spec.ArgumentType {
	case model.ArgumentTypeNumber:
		if !ok || v == nil {
			// the block default, rather than sending "undefined"
			v = spec.DefaultValue
		}
		args.Number = ToString(v)
	case model.ArgumentTypeString:
		if ok && v != nil {
			args.Choice = ToString(v)
		}
	}
	return args
}
