package holder

import "time"

// Holder is the person an account is opened for. A single Holder may back
// several accounts; accounts keep a pointer to the registry's copy.
type Holder struct {
    Name       string
    Surname    string
    NationalID string
    CreatedAt  time.Time
}

// Details is the caller-supplied identity used to register or resolve a holder.
type Details struct {
    Name       string
    Surname    string
    NationalID string
}
