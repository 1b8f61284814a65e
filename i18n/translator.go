package i18n

import "strings"

// Message keys used by the context codec.
const (
	RegistrationMissing = "context.registration.missing"
	RegistrationInvalid = "context.registration.invalid"
	TeamNotGroup        = "context.team.not_group"
	NotAString          = "context.not_string"
	LanguageInvalid     = "context.language.invalid"
	DocumentNotObject   = "document.not_object"
	UnexpectedEntity    = "nested.unexpected_entity"
	UnsupportedKind     = "nested.unsupported_kind"
	ParseFailed         = "wire.parse_failed"
	DuplicateKey        = "wire.duplicate_key"
	TooLarge            = "wire.too_large"
	TooDeep             = "wire.too_deep"
)

// Translator retrieves localized messages for message keys.
// data provides values substituted for {name} placeholders in the message
// (for example "field" or "value").
type Translator interface {
	Message(key string, data map[string]string) string
}

var catalog = map[string]map[string]string{
	"en": {
		RegistrationMissing: "Missing registration in context.",
		RegistrationInvalid: "UUID for context registration is not valid.",
		TeamNotGroup:        `The "team" property is not a Group.`,
		NotAString:          `The "{field}" property is not a string.`,
		LanguageInvalid:     `Language code "{value}" is not valid.`,
		DocumentNotObject:   "Context must be an object.",
		UnexpectedEntity:    `Nested codec returned {got} for "{field}", expected {want}.`,
		UnsupportedKind:     "No codec registered for {kind}.",
		ParseFailed:         "Document could not be parsed.",
		DuplicateKey:        `Key "{key}" is duplicated.`,
		TooLarge:            "Document exceeds {max} bytes.",
		TooDeep:             "Document nesting exceeds {max} levels.",
	},
	"ja": {
		RegistrationMissing: "context の registration がありません。",
		RegistrationInvalid: "context の registration の UUID が不正です。",
		TeamNotGroup:        `"team" プロパティが Group ではありません。`,
		NotAString:          `"{field}" プロパティが文字列ではありません。`,
		LanguageInvalid:     `言語コード "{value}" は不正です。`,
		DocumentNotObject:   "context はオブジェクトである必要があります。",
		UnexpectedEntity:    `"{field}" に対してネストされたコーデックが {got} を返しました（期待値: {want}）。`,
		UnsupportedKind:     "{kind} 用のコーデックが登録されていません。",
		ParseFailed:         "解析エラー",
		DuplicateKey:        `キー "{key}" が重複しています。`,
		TooLarge:            "ドキュメントが {max} バイトを超えています。",
		TooDeep:             "ドキュメントのネストが {max} 階層を超えています。",
	},
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(key string, data map[string]string) string {
	msg, ok := catalog[t.lang][key]
	if !ok {
		msg, ok = catalog["en"][key]
	}
	if !ok {
		return key
	}
	return render(msg, data)
}

func render(msg string, data map[string]string) string {
	if len(data) == 0 || !strings.Contains(msg, "{") {
		return msg
	}
	pairs := make([]string, 0, len(data)*2)
	for k, v := range data {
		pairs = append(pairs, "{"+k+"}", v)
	}
	return strings.NewReplacer(pairs...).Replace(msg)
}

var currentTranslator Translator = dictTranslator{lang: "en"}

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	currentTranslator = dictTranslator{lang: lang}
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		currentTranslator = dictTranslator{lang: "en"}
		return
	}
	currentTranslator = tr
}

// T fetches a message for the given key using the current Translator.
func T(key string, data map[string]string) string { return currentTranslator.Message(key, data) }
