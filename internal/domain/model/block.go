package model

type Locale string

const (
	LocaleEnglish           Locale = "en"
	LocaleJapanese          Locale = "ja"
	LocaleJapaneseHiragana  Locale = "ja-Hira"
	LocaleSimplifiedChinese Locale = "zh-cn"
)

type ArgumentDescriptor struct {
	Type         ArgumentType `json:"type"`
	DefaultValue interface{}  `json:"defaultValue"`
	Menu         string       `json:"menu,omitempty"`
}

// BlockDescriptor is one entry of the published block list.
type BlockDescriptor struct {
	Opcode    Opcode                        `json:"opcode"`
	BlockType BlockKind                     `json:"blockType"`
	Text      string                        `json:"text"`
	Arguments map[string]ArgumentDescriptor `json:"arguments,omitempty"`
}

type ExtensionInfo struct {
	ID               string              `json:"id"`
	Name             string              `json:"name"`
	Locale           Locale              `json:"locale"`
	ShowStatusButton bool                `json:"showStatusButton"`
	Blocks           []BlockDescriptor   `json:"blocks"`
	Menus            map[string][]string `json:"menus"`
}
