package ctxutil

import (
	"context"
	"testing"

	"github.com/google/uuid"
)

func TestRunID(t *testing.T) {
	ctx := context.Background()
	if got := RunIDFromContext(ctx); got != "" {
		t.Errorf("RunIDFromContext() = %q, want empty", got)
	}

	id := NewRunID()
	if _, err := uuid.Parse(id); err != nil {
		t.Errorf("NewRunID() = %q is not a uuid: %v", id, err)
	}

	ctx = WithRunID(ctx, id)
	if got := RunIDFromContext(ctx); got != id {
		t.Errorf("RunIDFromContext() = %q, want %q", got, id)
	}
}
