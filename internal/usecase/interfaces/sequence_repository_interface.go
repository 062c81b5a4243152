package interfaces

import "context"

// ISequenceRepository hands out human friendly numbers ("budget", "job").
// Next is atomic: two callers never receive the same value for a name.
type ISequenceRepository interface {
	Next(ctx context.Context, name string) (int64, error)
}
