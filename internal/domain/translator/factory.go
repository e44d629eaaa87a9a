package translator

import (
	"tello-block-adapter/internal/domain/model"
)

type Factory struct {
	strategies map[model.ArgumentType]Translator
}

func NewFactory() *Factory {
	return &Factory{
		strategies: map[model.ArgumentType]Translator{
			model.ArgumentTypeNone:   &VerbStrategy{},
			model.ArgumentTypeNumber: &NumericStrategy{},
			model.ArgumentTypeString: &FlipStrategy{},
		},
	}
}

func (f *Factory) GetTranslator(argType model.ArgumentType) Translator {
	if t, ok := f.strategies[argType]; ok {
		return t
	}
	return f.strategies[model.ArgumentTypeNone]
}

// Translate validates raw and renders the command line for spec.
func (f *Factory) Translate(spec model.CommandSpec, raw map[string]interface{}) model.CommandLine {
	return f.GetTranslator(spec.ArgumentType).ToCommand(spec, ParseArguments(spec, raw))
}
