package Trees

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// ErrDuplicateKey is matched by every error returned from Insert.
var ErrDuplicateKey = errors.New("duplicate key")

// DuplicateKeyError is returned by Insert when Key is already in the tree.
type DuplicateKeyError[T any] struct {
	Key T
}

func (e *DuplicateKeyError[T]) Error() string {
	return fmt.Sprintf("key %v is already in the tree", e.Key)
}

func (e *DuplicateKeyError[T]) Is(target error) bool {
	return target == ErrDuplicateKey
}
