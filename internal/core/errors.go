package core

import (
	"errors"
	"fmt"

	"jusgestor-backend-go/internal/db"
)

// Sentinel errors for the four failure classes every server action can
// surface. Handlers map these to HTTP statuses; nothing below this
// layer reaches the client verbatim.
var (
	// ErrInvalidInput marks a malformed or incomplete request.
	ErrInvalidInput = errors.New("invalid input")
	// ErrForbidden marks a role or ACL violation.
	ErrForbidden = errors.New("forbidden")
	// ErrNotFound marks a missing document. Cross-tenant lookups also
	// surface as not-found so callers learn nothing about documents in
	// other offices.
	ErrNotFound = errors.New("not found")
	// ErrUpstream marks a failure in the identity provider, document
	// store or another hosted dependency.
	ErrUpstream = errors.New("upstream service failure")

	// ErrEmailInUse is the invite-flow collision error.
	ErrEmailInUse = errors.New("email already registered")
	// ErrOfficeExists gates the public signup flow once a master exists.
	ErrOfficeExists = errors.New("office already exists")
)

// storeErr translates a repository error: a repo not-found becomes the
// service not-found, anything else is an upstream store failure.
func storeErr(err error, what string) error {
	if errors.Is(err, db.ErrNotFound) {
		return fmt.Errorf("%w: %s", ErrNotFound, what)
	}
	return fmt.Errorf("%w: %s: %v", ErrUpstream, what, err)
}
