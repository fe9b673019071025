package kernel

import (
	"strings"

	"provenance/internal/pkg/errs"
)

// ErrIdentityIsNotConstructed indicates that an Identity was not created through
// the NewIdentity constructor. This error is returned when validating a
// zero-value Identity.
var ErrIdentityIsNotConstructed = errs.NewValueIsRequiredError("Identity must be created via NewIdentity")

// Identity is a value object representing a participant in the supply chain:
// an originator, custodian, buyer, seller, or flag reporter. The hosting
// platform authenticates callers before requests reach this core, so Identity
// carries the already-trusted participant token as an opaque string.
//
// The zero value of Identity is invalid and must be constructed via
// NewIdentity. Identity is immutable and safe to use as a map key.
type Identity struct {
	value string
}

// NewIdentity creates an Identity from its string token.
// Surrounding whitespace is trimmed; a blank token is rejected.
func NewIdentity(value string) (Identity, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return Identity{}, errs.NewValueIsRequiredError("identity")
	}
	return Identity{value: trimmed}, nil
}

// String returns the identity token.
func (i Identity) String() string {
	return i.value
}

// IsEqual compares two identities for equality.
func (i Identity) IsEqual(other Identity) bool {
	return i.value == other.value
}

// IsZero reports whether the identity is the invalid zero value.
func (i Identity) IsZero() bool {
	return i.value == ""
}

// Validate checks that the Identity was properly constructed.
// Returns ErrIdentityIsNotConstructed for the zero value.
func (i Identity) Validate() error {
	if i.value == "" {
		return ErrIdentityIsNotConstructed
	}
	return nil
}
