package errs

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		err  *Error
		want int
	}{
		{Authentication("x"), http.StatusUnauthorized},
		{Forbidden("x"), http.StatusForbidden},
		{Validation("x"), http.StatusBadRequest},
		{NotFound("x"), http.StatusNotFound},
		{Conflict("x"), http.StatusConflict},
		{Internal("x"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(string(tt.err.Code), func(t *testing.T) {
			if got := tt.err.HTTPStatus(); got != tt.want {
				t.Errorf("HTTPStatus() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestExtensions(t *testing.T) {
	ext := ValidationField("email", "Please provide a valid email address").Extensions()
	if ext["code"] != string(CodeBadUserInput) {
		t.Errorf("code = %v, want %s", ext["code"], CodeBadUserInput)
	}
	if ext["field"] != "email" {
		t.Errorf("field = %v, want email", ext["field"])
	}

	ext = NotFound("Order not found").Extensions()
	if _, ok := ext["field"]; ok {
		t.Error("field should be absent when not set")
	}
	httpExt, ok := ext["http"].(map[string]interface{})
	if !ok || httpExt["status"] != http.StatusNotFound {
		t.Errorf("http extension = %v, want status %d", ext["http"], http.StatusNotFound)
	}
}

func TestCodeOf(t *testing.T) {
	if got := CodeOf(Conflict("dup")); got != CodeConflict {
		t.Errorf("CodeOf(conflict) = %s, want %s", got, CodeConflict)
	}
	wrapped := fmt.Errorf("storage: %w", NotFound("gone"))
	if got := CodeOf(wrapped); got != CodeNotFound {
		t.Errorf("CodeOf(wrapped) = %s, want %s", got, CodeNotFound)
	}
	if got := CodeOf(errors.New("plain")); got != CodeInternal {
		t.Errorf("CodeOf(plain) = %s, want %s", got, CodeInternal)
	}
	if !Is(Forbidden("no"), CodeForbidden) {
		t.Error("Is(forbidden, CodeForbidden) = false, want true")
	}
}
