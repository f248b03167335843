package domain

import (
	"context"
	"errors"
)

// ErrTagNotFound is returned when a tag lookup misses.
var ErrTagNotFound = errors.New("tag not found")

// TagRepository persists the user's tag set. The on-disk representation is
// owned by the implementation; the logical shape is a set of Tag records.
type TagRepository interface {
	Load(ctx context.Context) ([]Tag, error)
	Save(ctx context.Context, tags []Tag) error
}
