package document

import "strings"

// Token は項目 ID に対応する差し込みトークンを返します。
func Token(fieldID string) string {
	return "{{" + fieldID + "}}"
}

// Placeholder は未入力項目の代わりに表示する文字列を返します。
func Placeholder(f Field) string {
	return "{" + f.Label + "}"
}

// Render は本文の前後空白を除き、各項目のトークンを入力値で置換します。
// 値が入力されていない項目は {ラベル} に置き換わります。置換は元の本文に対する
// 一回きりで、入力値に含まれるトークンが再度置換されることはありません。
func Render(t Template, values map[string]string) string {
	pairs := make([]string, 0, len(t.Fields)*2)
	for _, f := range t.Fields {
		value, ok := values[f.ID]
		if !ok {
			value = Placeholder(f)
		}
		pairs = append(pairs, Token(f.ID), value)
	}

	body := strings.TrimSpace(t.Body)
	if len(pairs) == 0 {
		return body
	}
	return strings.NewReplacer(pairs...).Replace(body)
}

// Missing は値が入力されていない項目を宣言順で返します。
func Missing(t Template, values map[string]string) []Field {
	var missing []Field
	for _, f := range t.Fields {
		if _, ok := values[f.ID]; !ok {
			missing = append(missing, f)
		}
	}
	return missing
}
