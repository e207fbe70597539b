package document

// Draft は選択中のテンプレートと入力済みの値です。
type Draft struct {
	TemplateID string
	Values     map[string]string
}

// NewDraft は値が空の Draft を生成します。
func NewDraft(templateID string) Draft {
	return Draft{TemplateID: templateID, Values: map[string]string{}}
}

// Select はテンプレートを切り替えます。入力済みの値はすべて破棄されます。
func (d Draft) Select(templateID string) Draft {
	return NewDraft(templateID)
}

// Set は項目の値を設定した新しい Draft を返します。
func (d Draft) Set(fieldID, value string) Draft {
	values := make(map[string]string, len(d.Values)+1)
	for k, v := range d.Values {
		values[k] = v
	}
	values[fieldID] = value
	return Draft{TemplateID: d.TemplateID, Values: values}
}
