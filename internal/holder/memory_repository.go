package holder

import (
    "context"
    "sync"
)

type memoryRepository struct {
    mu      sync.RWMutex
    holders map[string]*Holder
}

// NewMemoryRepository builds the in-process holder registry.
func NewMemoryRepository() Repository {
    return &memoryRepository{holders: make(map[string]*Holder)}
}

func (r *memoryRepository) Create(_ context.Context, holder *Holder) error {
    r.mu.Lock()
    defer r.mu.Unlock()
    if _, exists := r.holders[holder.NationalID]; exists {
        return ErrHolderExists
    }
    r.holders[holder.NationalID] = holder
    return nil
}

func (r *memoryRepository) FindByNationalID(_ context.Context, nationalID string) (*Holder, error) {
    r.mu.RLock()
    defer r.mu.RUnlock()
    holder, ok := r.holders[nationalID]
    if !ok {
        return nil, ErrHolderNotFound
    }
    return holder, nil
}
