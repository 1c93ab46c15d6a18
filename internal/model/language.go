package model

// Language 文案语言变体
type Language string

const (
	LanguageHinglish Language = "hinglish" // 罗马字母书写的印地语 + 英语混合
	LanguageHindi    Language = "hindi"    // 天城文印地语
	LanguageEnglish  Language = "english"  // 英语（兜底）
)

// Languages 所有支持的语言，顺序即前端下拉框顺序
var Languages = []Language{LanguageHinglish, LanguageHindi, LanguageEnglish}

// ParseLanguage 解析请求中的语言字段
// 只精确匹配 hinglish / hindi，其余任何值（包括空串、大小写不同）都落到英语模板
func ParseLanguage(s string) Language {
	switch Language(s) {
	case LanguageHinglish:
		return LanguageHinglish
	case LanguageHindi:
		return LanguageHindi
	default:
		return LanguageEnglish
	}
}

// UsesHindi 是否面向印地语受众（Hinglish 与 Hindi）
func (l Language) UsesHindi() bool {
	return l == LanguageHinglish || l == LanguageHindi
}

func (l Language) String() string {
	return string(l)
}
