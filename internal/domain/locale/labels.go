package locale

import "tello-block-adapter/internal/domain/model"

type texts map[model.Locale]string

const (
	en   = model.LocaleEnglish
	ja   = model.LocaleJapanese
	hira = model.LocaleJapaneseHiragana
	zh   = model.LocaleSimplifiedChinese
)

var labels = map[model.Opcode]texts{
	model.OpTakeoff: {ja: "離陸する", hira: "りりくする", en: "takeoff", zh: "自动起飞"},
	model.OpLand:    {ja: "着陸する", hira: "ちゃくりくする", en: "land", zh: "自动降落"},
	model.OpUp:      {ja: "上に [X]cm 上がる", hira: "うえに [X] センチあがる", en: "up [X] cm", zh: "向上飞 [X] cm"},
	model.OpDown:    {ja: "下に [X]cm 下がる", hira: "したに [X] センチさがる", en: "down [X] cm", zh: "向下飞 [X] cm"},
	model.OpLeft:    {ja: "左に [X]cm 動く", hira: "ひだりに [X] センチうごく", en: "move left [X] cm", zh: "向左飞 [X] cm"},
	model.OpRight:   {ja: "右に [X]cm 動く", hira: "みぎに [X] センチうごく", en: "move right [X] cm", zh: "向右飞 [X] cm"},
	model.OpForward: {ja: "前に [X]cm 進む", hira: "まえに [X] センチすすむ", en: "move forward [X] cm", zh: "向前飞 [X] cm"},
	model.OpBack:    {ja: "後ろに [X]cm 下がる", hira: "うしろに [X] センチさがる", en: "move back [X] cm", zh: "向后飞 [X] cm"},
	model.OpCW:      {ja: "[X] 度右に回る", hira: "[X] どみぎにまわる", en: "rotate [X] degrees right", zh: "顺时针旋转 [X] 度"},
	model.OpCCW:     {ja: "[X] 度左に回る", hira: "[X] どひだりにまわる", en: "rotate [X] degrees left", zh: "逆时针旋转 [X] 度"},
	model.OpFlip:    {ja: "[TAKEPUT] 方向に転げ回る", hira: "[TAKEPUT] 方向に転げ回る", en: "flip [TAKEPUT]", zh: "朝 [TAKEPUT] 方向翻滚"},
	model.OpStop:    {ja: "ホバリング", hira: "ホバリング", en: "stop", zh: "悬停"},
	model.OpSpeed:   {ja: "速度を [X] cm/s に設定します", hira: "速度を [X] cm/s に設定します", en: "set speed to [X] cm/s", zh: "将速度设为 [X] cm/s"},

	model.OpPitch:  {ja: "ピッチ", hira: "ピッチ", en: "pitch", zh: "俯仰"},
	model.OpRoll:   {ja: "ロール", hira: "ロール", en: "roll", zh: "横滚"},
	model.OpYaw:    {ja: "ヨー", hira: "ヨー", en: "yaw", zh: "偏航"},
	model.OpVgx:    {ja: "x方向の速度", hira: "xほうこうのはやさ", en: "speed x", zh: "X 轴速度"},
	model.OpVgy:    {ja: "y方向の速度", hira: "yほうこうのはやさ", en: "speed y", zh: "Y 轴速度"},
	model.OpVgz:    {ja: "z方向の速度", hira: "zほうこうのはやさ", en: "speed z", zh: "Z 轴速度"},
	model.OpTof:    {ja: "地面からの高度", hira: "じめんからのたかさ", en: "height from ground", zh: "相对地面高度"},
	model.OpHeight: {ja: "離陸した場所からの高度", hira: "りりくしたばしょからのたかさ", en: "height from takeoff point", zh: "相对起飞点高度"},
	model.OpBat:    {ja: "バッテリー残量", hira: "バッテリーざんりょう", en: "battery remaining", zh: "当前电量百分比"},
	model.OpBaro:   {ja: "気圧計による高さ", hira: "きあつけいによるたかさ", en: "height by barometer", zh: "气压计测量高度"},
	model.OpTime:   {ja: "飛行時間", hira: "ひこうじかん", en: "flying time", zh: "电机运转时间"},
	model.OpAgx:    {ja: "x方向の加速度", hira: "xほうこうのかそくど", en: "acceleration x", zh: "X 轴加速度"},
	model.OpAgy:    {ja: "y方向の加速度", hira: "yほうこうのかそくど", en: "acceleration y", zh: "Y 轴加速度"},
	model.OpAgz:    {ja: "z方向の加速度", hira: "zほうこうのかそくど", en: "acceleration z", zh: "Z 轴加速度"},
}

// Label returns the block text for op in the given locale, falling back to English.
// Unknown opcodes yield the opcode itself.
func Label(op model.Opcode, l model.Locale) string {
	t, ok := labels[op]
	if !ok {
		return string(op)
	}
	if s := t[l]; s != "" {
		return s
	}
	return t[en]
}

// HasLabel reports whether op carries an English label.
func HasLabel(op model.Opcode) bool {
	return labels[op][en] != ""
}
