package repository

import "context"

// SlotStore is a persistent key/value slot. Get reports found=false for an
// absent key without an error.
type SlotStore interface {
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
	Set(ctx context.Context, key string, value []byte) error
}
