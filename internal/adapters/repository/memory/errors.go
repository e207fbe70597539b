package memory

import (
	"errors"
	"fmt"
)

// ErrDuplicateID は同じ ID のエンティティが既に存在する場合に返却されます。
var ErrDuplicateID = errors.New("memory: duplicate id")

func errDuplicateID(kind, id string) error {
	return fmt.Errorf("%s %s: %w", kind, id, ErrDuplicateID)
}
