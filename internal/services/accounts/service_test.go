package accounts

import (
	"context"
	"testing"
	"time"

	"naija-aroma/internal/auth"
	"naija-aroma/internal/errs"
	"naija-aroma/internal/logger"
	"naija-aroma/internal/models"
)

type fakeRepo struct {
	users []*models.User
}

func (f *fakeRepo) CreateUser(_ context.Context, email, username, phone, passwordHash string) (*models.User, error) {
	user := &models.User{
		ID:       "user-1",
		Email:    email,
		Username: username,
		Phone:    phone,
		Password: passwordHash,
		Role:     models.RoleCustomer,
	}
	f.users = append(f.users, user)
	return user, nil
}

func (f *fakeRepo) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeRepo) FindUserByEmailOrUsername(_ context.Context, email, username string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email || u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeRepo) ListUsers(_ context.Context) ([]*models.User, error) {
	return f.users, nil
}

func newTestService(t *testing.T, repo *fakeRepo) *Service {
	t.Helper()
	tokens, err := auth.NewTokenManager("test-secret", time.Hour)
	if err != nil {
		t.Fatalf("NewTokenManager() error = %v", err)
	}
	return NewService(repo, auth.NewPolicy(), tokens, logger.New("test"))
}

func validRegister() RegisterInput {
	return RegisterInput{
		Email:    "ada@example.com",
		Username: "ada99",
		Phone:    "08012345678",
		Password: "Secret123",
	}
}

func TestRegisterAndLogin(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(t, repo)

	payload, err := svc.Register(context.Background(), validRegister(), "req-1")
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if payload.Token == "" {
		t.Error("Register() returned empty token")
	}
	if payload.User.Password == "Secret123" {
		t.Error("password stored in plain text")
	}
	if payload.User.Role != models.RoleCustomer {
		t.Errorf("Role = %s, want CUSTOMER", payload.User.Role)
	}

	login, err := svc.Login(context.Background(), LoginInput{Email: "ada@example.com", Password: "Secret123"}, "req-2")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if login.User.ID != payload.User.ID {
		t.Errorf("Login user = %s, want %s", login.User.ID, payload.User.ID)
	}
}

func TestRegister_Conflicts(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(t, repo)

	if _, err := svc.Register(context.Background(), validRegister(), "req-1"); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	dupEmail := validRegister()
	dupEmail.Username = "other1"
	_, err := svc.Register(context.Background(), dupEmail, "req-2")
	if !errs.Is(err, errs.CodeConflict) {
		t.Errorf("duplicate email error = %v, want conflict", err)
	}
	if err.Error() != "Email already registered" {
		t.Errorf("duplicate email message = %q", err.Error())
	}

	dupUsername := validRegister()
	dupUsername.Email = "other@example.com"
	_, err = svc.Register(context.Background(), dupUsername, "req-3")
	if !errs.Is(err, errs.CodeConflict) {
		t.Errorf("duplicate username error = %v, want conflict", err)
	}
	if err.Error() != "Username already taken" {
		t.Errorf("duplicate username message = %q", err.Error())
	}
}

func TestRegister_ValidationRejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*RegisterInput)
	}{
		{name: "bad email", mutate: func(in *RegisterInput) { in.Email = "nope" }},
		{name: "short username", mutate: func(in *RegisterInput) { in.Username = "ab" }},
		{name: "bad phone", mutate: func(in *RegisterInput) { in.Phone = "12345" }},
		{name: "weak password", mutate: func(in *RegisterInput) { in.Password = "password" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestService(t, &fakeRepo{})
			input := validRegister()
			tt.mutate(&input)

			_, err := svc.Register(context.Background(), input, "req-1")
			if !errs.Is(err, errs.CodeBadUserInput) {
				t.Errorf("Register() error = %v, want validation error", err)
			}
		})
	}
}

func TestLogin_SameMessageForUnknownEmailAndWrongPassword(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(t, repo)

	if _, err := svc.Register(context.Background(), validRegister(), "req-1"); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	_, unknownErr := svc.Login(context.Background(), LoginInput{Email: "ghost@example.com", Password: "Secret123"}, "req-2")
	_, wrongErr := svc.Login(context.Background(), LoginInput{Email: "ada@example.com", Password: "Wrong1234"}, "req-3")

	if unknownErr == nil || wrongErr == nil {
		t.Fatal("Login() expected errors for bad credentials")
	}
	if unknownErr.Error() != wrongErr.Error() {
		t.Errorf("messages differ: %q vs %q", unknownErr.Error(), wrongErr.Error())
	}
	if !errs.Is(unknownErr, errs.CodeUnauthenticated) || !errs.Is(wrongErr, errs.CodeUnauthenticated) {
		t.Error("Login() errors should be authentication errors")
	}
}

func TestUsers_AdminOnly(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(t, repo)

	_, err := svc.Users(context.Background(), auth.Caller{Authenticated: true, UserID: "u1"})
	if !errs.Is(err, errs.CodeForbidden) {
		t.Errorf("non-admin Users() error = %v, want forbidden", err)
	}

	admin := auth.Caller{Authenticated: true, IsAdmin: true, UserID: "a1"}
	if _, err := svc.Users(context.Background(), admin); err != nil {
		t.Errorf("admin Users() error = %v", err)
	}
}
