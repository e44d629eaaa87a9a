package locale

import "tello-block-adapter/internal/domain/model"

var supported = map[string]model.Locale{
	string(model.LocaleJapanese):          model.LocaleJapanese,
	string(model.LocaleJapaneseHiragana):  model.LocaleJapaneseHiragana,
	string(model.LocaleSimplifiedChinese): model.LocaleSimplifiedChinese,
}

// Resolve picks the display locale for an ambient locale setting.
// Only exact matches are honoured; anything else is English.
func Resolve(ambient string) model.Locale {
	if l, ok := supported[ambient]; ok {
		return l
	}
	return model.LocaleEnglish
}

// Supported lists every locale Resolve can return.
func Supported() []model.Locale {
	return []model.Locale{
		model.LocaleEnglish,
		model.LocaleJapanese,
		model.LocaleJapaneseHiragana,
		model.LocaleSimplifiedChinese,
	}
}
