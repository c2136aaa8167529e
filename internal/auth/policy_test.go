package auth

import (
	"testing"

	"naija-aroma/internal/errs"
)

func TestRequireAdmin(t *testing.T) {
	policy := NewPolicy()

	tests := []struct {
		name     string
		caller   Caller
		wantCode errs.Code
	}{
		{
			name:     "anonymous caller gets authentication error not forbidden",
			caller:   Anonymous,
			wantCode: errs.CodeUnauthenticated,
		},
		{
			name:     "authenticated non-admin gets forbidden",
			caller:   Caller{Authenticated: true, UserID: "u1"},
			wantCode: errs.CodeForbidden,
		},
		{
			name:   "admin passes",
			caller: Caller{Authenticated: true, IsAdmin: true, UserID: "a1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := policy.RequireAdmin(tt.caller)
			if tt.wantCode == "" {
				if err != nil {
					t.Fatalf("RequireAdmin() error = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatal("RequireAdmin() expected error, got nil")
			}
			if got := errs.CodeOf(err); got != tt.wantCode {
				t.Errorf("error code = %s, want %s", got, tt.wantCode)
			}
		})
	}
}

func TestAuthorizeOwnerOrAdmin(t *testing.T) {
	policy := NewPolicy()

	owner := Caller{Authenticated: true, UserID: "owner-1", Email: "owner@example.com"}
	admin := Caller{Authenticated: true, IsAdmin: true, UserID: "admin-1"}
	stranger := Caller{Authenticated: true, UserID: "other-1", Email: "other@example.com"}

	tests := []struct {
		name       string
		caller     Caller
		ownerID    string
		ownerEmail string
		wantCode   errs.Code
	}{
		{
			name:     "anonymous gets authentication error",
			caller:   Anonymous,
			ownerID:  "owner-1",
			wantCode: errs.CodeUnauthenticated,
		},
		{
			name:    "admin always passes",
			caller:  admin,
			ownerID: "owner-1",
		},
		{
			name:    "owner ID match passes",
			caller:  owner,
			ownerID: "owner-1",
		},
		{
			name:       "email fallback grants access when no owner ID is linked",
			caller:     owner,
			ownerID:    "",
			ownerEmail: "owner@example.com",
		},
		{
			name:       "stranger is forbidden",
			caller:     stranger,
			ownerID:    "owner-1",
			ownerEmail: "owner@example.com",
			wantCode:   errs.CodeForbidden,
		},
		{
			name:     "empty owner email does not match empty caller email",
			caller:   Caller{Authenticated: true, UserID: "u9"},
			ownerID:  "owner-1",
			wantCode: errs.CodeForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := policy.AuthorizeOwnerOrAdmin(tt.caller, tt.ownerID, tt.ownerEmail)
			if tt.wantCode == "" {
				if err != nil {
					t.Fatalf("AuthorizeOwnerOrAdmin() error = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatal("AuthorizeOwnerOrAdmin() expected error, got nil")
			}
			if got := errs.CodeOf(err); got != tt.wantCode {
				t.Errorf("error code = %s, want %s", got, tt.wantCode)
			}
		})
	}
}
