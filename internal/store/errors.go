package store

import "errors"

// ErrNotFound is returned by update operations when no record matches the
// given id. Deletes do not return it; deleting a missing id is a no-op.
var ErrNotFound = errors.New("record not found")
