package users

import (
	"context"
	"errors"
	"testing"

	"github.com/avasquez/taskkeeper/internal/common"
)

func TestInMemoryRepository_SequentialIDs(t *testing.T) {
	repo := NewInMemoryRepository()
	ctx := context.Background()

	for i := 1; i <= 3; i++ {
		u, err := repo.Create(ctx, &User{UserName: "u"})
		if err != nil {
			t.Fatalf("Create error: %v", err)
		}
		if u.ID != int64(i) {
			t.Fatalf("expected id %d, got %d", i, u.ID)
		}
	}
}

func TestInMemoryRepository_GetUserByLogin_FirstMatch(t *testing.T) {
	repo := NewInMemoryRepository()
	ctx := context.Background()

	first, _ := repo.Create(ctx, &User{UserName: "alice", PasswordHash: "h1"})
	_, _ = repo.Create(ctx, &User{UserName: "alice", PasswordHash: "h2"})

	got, err := repo.GetUserByLogin(ctx, "alice")
	if err != nil {
		t.Fatalf("GetUserByLogin error: %v", err)
	}
	if got.ID != first.ID {
		t.Fatalf("expected first record (id %d), got id %d", first.ID, got.ID)
	}
}

func TestInMemoryRepository_GetUserByLogin_NotFound(t *testing.T) {
	repo := NewInMemoryRepository()

	_, err := repo.GetUserByLogin(context.Background(), "ghost")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("expected ErrorNotFound, got %v", err)
	}
}
