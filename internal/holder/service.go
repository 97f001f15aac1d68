package holder

import (
    "context"
    "errors"
    "fmt"
    "regexp"
    "strings"
    "time"
)

var (
    // ErrInvalidNationalID reports a national id that is not 7-8 digits and a letter.
    ErrInvalidNationalID = errors.New("invalid national id")
    // ErrIncompleteHolder reports a missing name or surname.
    ErrIncompleteHolder = errors.New("holder name and surname are required")
)

var nationalIDPattern = regexp.MustCompile(`^[0-9]{7,8}[A-Z]$`)

// Service manages the holder registry.
type Service struct {
    repo Repository
}

// NewService creates a holder service.
func NewService(repo Repository) *Service {
    return &Service{repo: repo}
}

// Register validates and stores a new holder.
func (s *Service) Register(ctx context.Context, details Details) (*Holder, error) {
    details, err := normalize(details)
    if err != nil {
        return nil, err
    }

    holder := &Holder{
        Name:       details.Name,
        Surname:    details.Surname,
        NationalID: details.NationalID,
        CreatedAt:  time.Now().UTC(),
    }
    if err := s.repo.Create(ctx, holder); err != nil {
        return nil, err
    }
    return holder, nil
}

// Get returns the registered holder for a national id.
func (s *Service) Get(ctx context.Context, nationalID string) (*Holder, error) {
    return s.repo.FindByNationalID(ctx, strings.ToUpper(strings.TrimSpace(nationalID)))
}

// Resolve returns the holder already registered under the national id in
// details, registering it first when absent. Name and surname of an existing
// holder are left untouched.
func (s *Service) Resolve(ctx context.Context, details Details) (*Holder, error) {
    normalized, err := normalize(details)
    if err != nil {
        return nil, err
    }
    existing, err := s.repo.FindByNationalID(ctx, normalized.NationalID)
    if err == nil {
        return existing, nil
    }
    if !errors.Is(err, ErrHolderNotFound) {
        return nil, err
    }

    holder, err := s.Register(ctx, normalized)
    if errors.Is(err, ErrHolderExists) {
        // lost a race with a concurrent registration
        return s.repo.FindByNationalID(ctx, normalized.NationalID)
    }
    return holder, err
}

func normalize(details Details) (Details, error) {
    out := Details{
        Name:       strings.TrimSpace(details.Name),
        Surname:    strings.TrimSpace(details.Surname),
        NationalID: strings.ToUpper(strings.TrimSpace(details.NationalID)),
    }
    if out.Name == "" || out.Surname == "" {
        return Details{}, ErrIncompleteHolder
    }
    if !nationalIDPattern.MatchString(out.NationalID) {
        return Details{}, fmt.Errorf("%w: %q", ErrInvalidNationalID, details.NationalID)
    }
    return out, nil
}
