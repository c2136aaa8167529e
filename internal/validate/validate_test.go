package validate

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestPhone(t *testing.T) {
	tests := []struct {
		name    string
		phone   string
		wantErr bool
	}{
		{name: "local format", phone: "08012345678"},
		{name: "international with plus", phone: "+2348012345678"},
		{name: "international without plus", phone: "2348012345678"},
		{name: "nine prefix", phone: "09112345678"},
		{name: "seven prefix", phone: "07012345678"},
		{name: "too short", phone: "0801234567", wantErr: true},
		{name: "too long", phone: "080123456789", wantErr: true},
		{name: "wrong leading digit", phone: "06012345678", wantErr: true},
		{name: "letters", phone: "0801234567a", wantErr: true},
		{name: "empty", phone: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Phone(tt.phone)
			if (err != nil) != tt.wantErr {
				t.Errorf("Phone(%q) error = %v, wantErr %v", tt.phone, err, tt.wantErr)
			}
		})
	}
}

func TestPassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{name: "valid", password: "Secret123"},
		{name: "too short", password: "Ab1", wantErr: true},
		{name: "no uppercase", password: "secret123", wantErr: true},
		{name: "no lowercase", password: "SECRET123", wantErr: true},
		{name: "no digit", password: "SecretPass", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Password(tt.password)
			if (err != nil) != tt.wantErr {
				t.Errorf("Password(%q) error = %v, wantErr %v", tt.password, err, tt.wantErr)
			}
		})
	}
}

func TestEmail(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		wantErr bool
	}{
		{name: "valid", email: "ada@example.com"},
		{name: "missing at", email: "ada.example.com", wantErr: true},
		{name: "missing domain dot", email: "ada@example", wantErr: true},
		{name: "whitespace", email: "ada @example.com", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Email(tt.email)
			if (err != nil) != tt.wantErr {
				t.Errorf("Email(%q) error = %v, wantErr %v", tt.email, err, tt.wantErr)
			}
		})
	}
}

func TestUsername(t *testing.T) {
	tests := []struct {
		name     string
		username string
		wantErr  bool
	}{
		{name: "valid", username: "ada99"},
		{name: "minimum length", username: "abc"},
		{name: "too short", username: "ab", wantErr: true},
		{name: "special characters", username: "ada_99", wantErr: true},
		{name: "too long", username: "a234567890123456789012345678901", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Username(tt.username)
			if (err != nil) != tt.wantErr {
				t.Errorf("Username(%q) error = %v, wantErr %v", tt.username, err, tt.wantErr)
			}
		})
	}
}

func TestID(t *testing.T) {
	if err := ID("550e8400-e29b-41d4-a716-446655440000", "order ID"); err != nil {
		t.Errorf("ID() valid uuid error = %v", err)
	}
	if err := ID("not-a-uuid", "order ID"); err == nil {
		t.Error("ID() invalid uuid expected error")
	}
}

func TestRangesAndAmounts(t *testing.T) {
	if err := IntRange(5, "rating", 1, 5); err != nil {
		t.Errorf("IntRange(5) error = %v", err)
	}
	if err := IntRange(0, "rating", 1, 5); err == nil {
		t.Error("IntRange(0) expected error")
	}
	if err := IntRange(11, "quantity", 1, 10); err == nil {
		t.Error("IntRange(11) expected error")
	}

	negative := decimal.NewFromInt(-1)
	zero := decimal.Zero
	positive := decimal.NewFromInt(1000)
	if err := PositiveAmount(&negative, "budget"); err == nil {
		t.Error("PositiveAmount(-1) expected error")
	}
	if err := PositiveAmount(&zero, "budget"); err == nil {
		t.Error("PositiveAmount(0) expected error")
	}
	if err := PositiveAmount(&positive, "budget"); err != nil {
		t.Errorf("PositiveAmount(1000) error = %v", err)
	}
	if err := PositiveAmount(nil, "budget"); err != nil {
		t.Errorf("PositiveAmount(nil) error = %v", err)
	}
}

func TestFutureTime(t *testing.T) {
	if err := FutureTime(time.Now().Add(time.Hour), "eventDate"); err != nil {
		t.Errorf("FutureTime(future) error = %v", err)
	}
	if err := FutureTime(time.Now().Add(-time.Hour), "eventDate"); err == nil {
		t.Error("FutureTime(past) expected error")
	}
}

func TestOneOf(t *testing.T) {
	if err := OneOf("food", "category", "food", "events", "restaurant"); err != nil {
		t.Errorf("OneOf(food) error = %v", err)
	}
	if err := OneOf("selfies", "category", "food", "events", "restaurant"); err == nil {
		t.Error("OneOf(selfies) expected error")
	}
}
