package document

// FieldType は入力欄の種類です。空の場合は text として扱います。
type FieldType string

const (
	FieldText     FieldType = "text"
	FieldTextarea FieldType = "textarea"
	FieldDate     FieldType = "date"
	FieldNumber   FieldType = "number"
)

// Field はテンプレートの差し込み項目です。
type Field struct {
	ID          string
	Label       string
	Placeholder string
	Type        FieldType
}

// InputType は HTML の input 要素に渡す type 属性値を返します。
func (f Field) InputType() string {
	switch f.Type {
	case FieldDate:
		return "date"
	case FieldNumber:
		return "number"
	case FieldText, FieldTextarea, "":
		return "text"
	default:
		return "text"
	}
}

// Multiline は複数行入力欄かを返します。
func (f Field) Multiline() bool {
	return f.Type == FieldTextarea
}

// Template は文書テンプレートです。Body 内の {{fieldId}} が差し込み位置です。
type Template struct {
	ID          string
	Name        string
	Description string
	Fields      []Field
	Body        string
}

// IsValidFieldType は定義済みの入力種別か判定します。
func IsValidFieldType(t FieldType) bool {
	switch t {
	case "", FieldText, FieldTextarea, FieldDate, FieldNumber:
		return true
	default:
		return false
	}
}
