// Package i18n supplies the default failure messages for the built-in
// validator constructors. A custom message passed to a constructor always
// takes precedence; the catalog is consulted only for the default.
package i18n

// Message keys for the built-in constructors.
const (
	KeyString   = "string"
	KeyNumber   = "number"
	KeyBoolean  = "boolean"
	KeyLiteral  = "literal"
	KeySequence = "sequence"
	KeyRecord   = "record"
)

// Translator retrieves the default message for a message key.
type Translator interface {
	Message(key string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(key string) string {
	switch t.lang {
	case "ja":
		switch key {
		case KeyString:
			return "文字列が必要です"
		case KeyNumber:
			return "数値が必要です"
		case KeyBoolean:
			return "真偽値が必要です"
		case KeyLiteral:
			return "一致する値が必要です"
		case KeySequence:
			return "配列が必要です"
		case KeyRecord:
			return "オブジェクトが必要です"
		}
	default: // "en"
		switch key {
		case KeyString:
			return "Expected string"
		case KeyNumber:
			return "Expected number"
		case KeyBoolean:
			return "Expected boolean"
		case KeyLiteral:
			return "Expected literal value"
		case KeySequence:
			return "Expected sequence"
		case KeyRecord:
			return "Expected record"
		}
	}
	return key
}

var currentTranslator Translator = dictTranslator{lang: "en"}

// SetLanguage switches the built-in Translator language ("en"/"ja"). It
// affects validators constructed afterwards; messages are captured at
// construction time.
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

// T fetches the default message for the given key using the current
// Translator.
func T(key string) string { return currentTranslator.Message(key) }
