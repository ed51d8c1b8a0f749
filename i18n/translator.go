package i18n

// Translator retrieves localized messages for Issue codes.
// data provides optional metadata to embed in the message (for example,
// "kind" or "field").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	switch t.lang {
	case "ja":
		switch code {
		case "invalid_value":
			return "値が不正です" + kindSuffix(data, " (", ")")
		case "unknown_kind":
			return "未知のバリデータ種別です"
		case "missing_match":
			return "比較パラメータが不足しています"
		case "out_of_range":
			return "範囲外です"
		}
	default: // "en"
		switch code {
		case "invalid_value":
			return "invalid value" + kindSuffix(data, " for kind ", "")
		case "unknown_kind":
			return "unknown validator kind"
		case "missing_match":
			return "missing match parameter"
		case "out_of_range":
			return "out of range"
		}
	}
	return code
}

func kindSuffix(data map[string]string, pre, post string) string {
	if data == nil {
		return ""
	}
	if k := data["kind"]; k != "" {
		return pre + k + post
	}
	return ""
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

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string { return currentTranslator.Message(code, data) }
