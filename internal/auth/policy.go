package auth

import (
	"naija-aroma/internal/errs"
)

// Policy is the single access-control decision point invoked by every
// gated operation. Decisions are pure: the policy never touches storage
// and denial is reported through errs kinds.
type Policy struct{}

// NewPolicy creates the access policy.
func NewPolicy() *Policy {
	return &Policy{}
}

// RequireAuthenticated fails unless the caller presented a valid credential.
func (p *Policy) RequireAuthenticated(c Caller) error {
	if !c.Authenticated {
		return errs.Authentication("Authentication required")
	}
	return nil
}

// RequireAdmin fails with an authentication error for anonymous callers
// and a forbidden error for authenticated non-admins. The ordering
// matters: lack of credentials is never reported as lack of privilege.
func (p *Policy) RequireAdmin(c Caller) error {
	if err := p.RequireAuthenticated(c); err != nil {
		return err
	}
	if !c.IsAdmin {
		return errs.Forbidden("Admin access required")
	}
	return nil
}

// AuthorizeOwnerOrAdmin grants access to admins and to the resource
// owner. ownerEmail, when non-empty, additionally grants access to a
// caller whose account email matches it; catering inquiries use this
// because they may be created anonymously and later looked up by the
// same email address. Pass "" for resources without that fallback.
func (p *Policy) AuthorizeOwnerOrAdmin(c Caller, ownerID, ownerEmail string) error {
	if err := p.RequireAuthenticated(c); err != nil {
		return err
	}
	if c.IsAdmin {
		return nil
	}
	if ownerID != "" && c.UserID == ownerID {
		return nil
	}
	if ownerEmail != "" && c.Email == ownerEmail {
		return nil
	}
	return errs.Forbidden("Access denied")
}
