package holder

import (
    "context"
    "errors"
    "testing"
)

func TestRegisterAndGet(t *testing.T) {
    svc := NewService(NewMemoryRepository())
    ctx := context.Background()

    holder, err := svc.Register(ctx, Details{Name: " Ana ", Surname: "de la Fuente", NationalID: "12345678z"})
    if err != nil {
        t.Fatalf("register: %v", err)
    }
    if holder.NationalID != "12345678Z" {
        t.Fatalf("expected upper-cased national id, got %s", holder.NationalID)
    }
    if holder.Name != "Ana" {
        t.Fatalf("expected trimmed name, got %q", holder.Name)
    }

    fetched, err := svc.Get(ctx, "12345678z")
    if err != nil {
        t.Fatalf("get: %v", err)
    }
    if fetched != holder {
        t.Fatalf("expected the registered holder pointer to be returned")
    }

    if _, err := svc.Register(ctx, Details{Name: "Ana", Surname: "Otra", NationalID: "12345678Z"}); !errors.Is(err, ErrHolderExists) {
        t.Fatalf("expected ErrHolderExists, got %v", err)
    }
}

func TestRegisterValidation(t *testing.T) {
    svc := NewService(NewMemoryRepository())
    ctx := context.Background()

    if _, err := svc.Register(ctx, Details{Name: "Ana", Surname: "Ruiz", NationalID: "1234Z"}); !errors.Is(err, ErrInvalidNationalID) {
        t.Fatalf("expected ErrInvalidNationalID, got %v", err)
    }
    if _, err := svc.Register(ctx, Details{Name: "", Surname: "Ruiz", NationalID: "1234567A"}); !errors.Is(err, ErrIncompleteHolder) {
        t.Fatalf("expected ErrIncompleteHolder, got %v", err)
    }
    if _, err := svc.Get(ctx, "1234567A"); !errors.Is(err, ErrHolderNotFound) {
        t.Fatalf("expected ErrHolderNotFound, got %v", err)
    }
}

func TestResolveSharesHolder(t *testing.T) {
    svc := NewService(NewMemoryRepository())
    ctx := context.Background()

    first, err := svc.Resolve(ctx, Details{Name: "Luis", Surname: "Gil", NationalID: "7654321B"})
    if err != nil {
        t.Fatalf("resolve first: %v", err)
    }
    second, err := svc.Resolve(ctx, Details{Name: "Luis", Surname: "Gil Ramos", NationalID: "7654321b"})
    if err != nil {
        t.Fatalf("resolve second: %v", err)
    }
    if first != second {
        t.Fatalf("expected the same holder to be reused")
    }
    if second.Surname != "Gil" {
        t.Fatalf("existing holder must not be overwritten, got surname %q", second.Surname)
    }
}
