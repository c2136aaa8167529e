package auth

import (
	"context"
	"strings"

	"naija-aroma/internal/logger"
	"naija-aroma/internal/models"
)

// Caller is the resolved identity of an incoming request. It is built
// once per request from the bearer token and is immutable afterwards.
type Caller struct {
	Authenticated bool
	IsAdmin       bool
	UserID        string
	Email         string
	User          *models.User
}

// Anonymous is the caller used when no valid credential is presented.
var Anonymous = Caller{}

type callerKey struct{}

// WithCaller returns a context carrying the caller.
func WithCaller(ctx context.Context, c Caller) context.Context {
	return context.WithValue(ctx, callerKey{}, c)
}

// CallerFromContext extracts the caller, falling back to Anonymous.
func CallerFromContext(ctx context.Context) Caller {
	if c, ok := ctx.Value(callerKey{}).(Caller); ok {
		return c
	}
	return Anonymous
}

// UserFinder loads users for caller resolution.
type UserFinder interface {
	GetUserByID(ctx context.Context, id string) (*models.User, error)
}

// Resolver turns bearer tokens into Caller values.
type Resolver struct {
	tokens *TokenManager
	users  UserFinder
	log    *logger.Logger
}

// NewResolver creates a caller resolver.
func NewResolver(tokens *TokenManager, users UserFinder, log *logger.Logger) *Resolver {
	return &Resolver{tokens: tokens, users: users, log: log}
}

// ExtractBearerToken pulls the token out of an Authorization header.
// Returns "" when the header is absent or not a bearer credential.
func ExtractBearerToken(header string) string {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return parts[1]
}

// Resolve builds the caller for a request. An invalid or expired token
// degrades to the anonymous caller rather than failing the request;
// individual operations decide whether authentication is required.
func (r *Resolver) Resolve(ctx context.Context, authHeader, requestID string) Caller {
	token := ExtractBearerToken(authHeader)
	if token == "" {
		return Anonymous
	}

	claims, err := r.tokens.Verify(token)
	if err != nil {
		r.log.Warn("auth_token_rejected", requestID, "Rejected bearer token", map[string]interface{}{
			"reason": err.Error(),
		})
		return Anonymous
	}

	user, err := r.users.GetUserByID(ctx, claims.Subject)
	if err != nil || user == nil {
		r.log.Warn("auth_user_missing", requestID, "Token subject no longer exists", map[string]interface{}{
			"user_id": claims.Subject,
		})
		return Anonymous
	}

	return Caller{
		Authenticated: true,
		IsAdmin:       user.IsAdmin(),
		UserID:        user.ID,
		Email:         user.Email,
		User:          user,
	}
}
