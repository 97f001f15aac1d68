package holder

import (
    "context"
    "errors"
)

var (
    // ErrHolderNotFound is returned when no holder is registered under a national id.
    ErrHolderNotFound = errors.New("holder not found")
    // ErrHolderExists is returned when registering a national id twice.
    ErrHolderExists = errors.New("holder exists")
)

// Repository stores holders keyed by national id.
type Repository interface {
    Create(ctx context.Context, holder *Holder) error
    FindByNationalID(ctx context.Context, nationalID string) (*Holder, error)
}
