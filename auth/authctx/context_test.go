package authctx

import (
	"context"
	"testing"

	"github.com/skillsenselab/fintrust/auth/token"
)

func TestWithFrom(t *testing.T) {
	ctx := With(context.Background(), token.Caller{Subject: "1", Email: "alice@example.com"})

	caller, ok := From(ctx)
	if !ok {
		t.Fatal("expected caller in context")
	}
	if caller.Subject != "1" || caller.Email != "alice@example.com" {
		t.Fatalf("unexpected caller: %+v", caller)
	}
}

func TestFrom_Empty(t *testing.T) {
	if _, ok := From(context.Background()); ok {
		t.Fatal("expected no caller in empty context")
	}
}

func TestMustFrom_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for missing caller")
		}
	}()
	MustFrom(context.Background())
}
