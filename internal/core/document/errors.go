package document

import "errors"

var (
	ErrInvalidTemplateID = errors.New("document: invalid template id")
	ErrTemplateNotFound  = errors.New("document: template not found")
	ErrNoTemplates       = errors.New("document: no templates")
)
