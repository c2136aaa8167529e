package auth

import (
	"testing"
	"time"

	"naija-aroma/internal/errs"
	"naija-aroma/internal/models"
)

func TestTokenRoundTrip(t *testing.T) {
	manager, err := NewTokenManager("test-secret", time.Hour)
	if err != nil {
		t.Fatalf("NewTokenManager() error = %v", err)
	}

	user := &models.User{
		ID:    "user-1",
		Email: "ada@example.com",
		Role:  models.RoleAdmin,
	}

	token, err := manager.Generate(user)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	claims, err := manager.Verify(token)
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}
	if claims.Subject != user.ID {
		t.Errorf("Subject = %s, want %s", claims.Subject, user.ID)
	}
	if claims.Email != user.Email {
		t.Errorf("Email = %s, want %s", claims.Email, user.Email)
	}
	if claims.Role != models.RoleAdmin {
		t.Errorf("Role = %s, want %s", claims.Role, models.RoleAdmin)
	}
}

func TestVerify_Rejections(t *testing.T) {
	manager, err := NewTokenManager("test-secret", time.Hour)
	if err != nil {
		t.Fatalf("NewTokenManager() error = %v", err)
	}

	other, err := NewTokenManager("different-secret", time.Hour)
	if err != nil {
		t.Fatalf("NewTokenManager() error = %v", err)
	}

	expired, err := NewTokenManager("test-secret", time.Nanosecond)
	if err != nil {
		t.Fatalf("NewTokenManager() error = %v", err)
	}

	user := &models.User{ID: "user-1", Email: "ada@example.com", Role: models.RoleCustomer}

	foreignToken, err := other.Generate(user)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	expiredToken, err := expired.Generate(user)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	time.Sleep(10 * time.Millisecond)

	tests := []struct {
		name  string
		token string
	}{
		{name: "garbage token", token: "not-a-token"},
		{name: "wrong secret", token: foreignToken},
		{name: "expired token", token: expiredToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := manager.Verify(tt.token)
			if err == nil {
				t.Fatal("Verify() expected error, got nil")
			}
			if !errs.Is(err, errs.CodeUnauthenticated) {
				t.Errorf("error code = %s, want %s", errs.CodeOf(err), errs.CodeUnauthenticated)
			}
		})
	}
}

func TestNewTokenManager_RequiresSecret(t *testing.T) {
	if _, err := NewTokenManager("", time.Hour); err == nil {
		t.Fatal("NewTokenManager() with empty secret expected error")
	}
	if _, err := NewTokenManager("secret", 0); err == nil {
		t.Fatal("NewTokenManager() with zero ttl expected error")
	}
}
