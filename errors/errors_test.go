package errors_test

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/skillsenselab/fintrust/errors"
)

func TestInvalidCredentials_SingleMessage(t *testing.T) {
	unknown := errors.InvalidCredentials()
	wrongPassword := errors.InvalidCredentials()

	if unknown.Message != wrongPassword.Message {
		t.Fatalf("credential failures must be undifferentiated: %q vs %q", unknown.Message, wrongPassword.Message)
	}
	if unknown.HTTPStatus != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", unknown.HTTPStatus)
	}
	if unknown.Code != errors.ErrCodeInvalidCredentials {
		t.Fatalf("unexpected code: %s", unknown.Code)
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := stderrors.New("db gone")
	err := errors.Internal(cause)

	if !stderrors.Is(err, cause) {
		t.Fatal("expected Is to find the cause")
	}

	var appErr *errors.AppError
	wrapped := fmt.Errorf("handler: %w", err)
	if !stderrors.As(wrapped, &appErr) {
		t.Fatal("expected As to find the AppError through wrapping")
	}
	if appErr.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", appErr.HTTPStatus)
	}
}

func TestToResponse_OmitsCause(t *testing.T) {
	err := errors.Internal(stderrors.New("secret detail")).WithDetail("op", "transfer")

	raw, jsonErr := json.Marshal(err.ToResponse())
	if jsonErr != nil {
		t.Fatalf("marshal: %v", jsonErr)
	}
	body := string(raw)
	if want := `"code":"INTERNAL_ERROR"`; !contains(body, want) {
		t.Errorf("response missing %s: %s", want, body)
	}
	if contains(body, "secret detail") {
		t.Errorf("cause leaked into response: %s", body)
	}
}

func TestStatusMapping(t *testing.T) {
	tests := []struct {
		name string
		err  *errors.AppError
		want int
	}{
		{"validation", errors.Validation("amount must be a positive number"), http.StatusBadRequest},
		{"unauthorized", errors.Unauthorized(), http.StatusUnauthorized},
		{"forbidden", errors.Forbidden(""), http.StatusForbidden},
		{"insufficient funds", errors.InsufficientFunds("Transfer amount exceeds your available balance."), http.StatusBadRequest},
		{"not found", errors.NotFound("user"), http.StatusNotFound},
		{"rate limited", errors.RateLimited(), http.StatusTooManyRequests},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.HTTPStatus != tt.want {
				t.Fatalf("expected %d, got %d", tt.want, tt.err.HTTPStatus)
			}
		})
	}
}

func TestAsAppError(t *testing.T) {
	if _, ok := errors.AsAppError(stderrors.New("plain")); ok {
		t.Fatal("plain error should not convert")
	}
	if _, ok := errors.AsAppError(errors.RateLimited()); !ok {
		t.Fatal("AppError should convert")
	}
}

func contains(haystack, needle string) bool {
	return strings.Contains(haystack, needle)
}
