package shopping

import "errors"

// Operation errors. All are recoverable by the caller: the operation is
// rejected and state is left unchanged.
var (
	ErrDuplicateName = errors.New("list name already in use")
	ErrLastList      = errors.New("cannot delete the last list")
	ErrUnknownList   = errors.New("no such list")
	ErrEmptyName     = errors.New("name is empty")
	ErrNotFound      = errors.New("item not found")
)
