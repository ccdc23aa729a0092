package users

import (
	"context"
	"errors"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/avasquez/taskkeeper/internal/common"
	"github.com/avasquez/taskkeeper/internal/server/auth"
	"github.com/avasquez/taskkeeper/internal/server/config"
)

// --- helpers ---

func newTestService(t *testing.T, repo Repository) *Service {
	t.Helper()
	cfg := &config.Config{
		SecretKey:             "k",
		TokenValidityDuration: time.Hour,
	}
	return NewService(repo, cfg)
}

type fakeUsersRepo struct {
	createOut *User
	createErr error

	getOut *User
	getErr error
}

func (f *fakeUsersRepo) Create(ctx context.Context, u *User) (*User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	return f.createOut, nil
}

func (f *fakeUsersRepo) GetUserByLogin(ctx context.Context, login string) (*User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

func mustHash(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt error: %v", err)
	}
	return string(h)
}

// --- tests ---

func TestRegister_HashesPassword(t *testing.T) {
	s := newTestService(t, NewInMemoryRepository())

	u, err := s.Register(context.Background(), "alice", "pw")
	if err != nil {
		t.Fatalf("Register error: %v", err)
	}
	if u.ID != 1 {
		t.Fatalf("expected id 1, got %d", u.ID)
	}
	if u.PasswordHash == "pw" || u.PasswordHash == "" {
		t.Fatalf("password was not hashed: %q", u.PasswordHash)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("pw")); err != nil {
		t.Fatalf("stored hash does not verify: %v", err)
	}
}

func TestRegister_DuplicateUsernameGetsDistinctID(t *testing.T) {
	s := newTestService(t, NewInMemoryRepository())
	ctx := context.Background()

	first, err := s.Register(ctx, "alice", "pw1")
	if err != nil {
		t.Fatalf("first Register error: %v", err)
	}
	second, err := s.Register(ctx, "alice", "pw2")
	if err != nil {
		t.Fatalf("second Register error: %v", err)
	}
	if first.ID == second.ID {
		t.Fatalf("expected distinct ids, both are %d", first.ID)
	}
}

func TestRegister_RepoError(t *testing.T) {
	s := newTestService(t, &fakeUsersRepo{createErr: errors.New("boom")})

	_, err := s.Register(context.Background(), "alice", "pw")
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestLogin_Success(t *testing.T) {
	repo := &fakeUsersRepo{
		getOut: &User{ID: 42, UserName: "alice", PasswordHash: mustHash(t, "pw")},
	}
	s := newTestService(t, repo)

	token, err := s.Login(context.Background(), "alice", "pw")
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}

	userID, err := auth.GetUserIDFromToken(token, []byte("k"))
	if err != nil {
		t.Fatalf("issued token does not verify: %v", err)
	}
	if userID != 42 {
		t.Fatalf("token subject mismatch: got %d want 42", userID)
	}
}

func TestLogin_UnknownUserAndWrongPasswordLookTheSame(t *testing.T) {
	ctx := context.Background()

	unknown := newTestService(t, &fakeUsersRepo{getErr: common.ErrorNotFound})
	_, errUnknown := unknown.Login(ctx, "nobody", "pw")

	wrongPw := newTestService(t, &fakeUsersRepo{
		getOut: &User{ID: 1, UserName: "alice", PasswordHash: mustHash(t, "pw")},
	})
	_, errWrong := wrongPw.Login(ctx, "alice", "not-pw")

	if !errors.Is(errUnknown, common.ErrorUnauthorized) {
		t.Fatalf("unknown user: expected ErrorUnauthorized, got %v", errUnknown)
	}
	if !errors.Is(errWrong, common.ErrorUnauthorized) {
		t.Fatalf("wrong password: expected ErrorUnauthorized, got %v", errWrong)
	}
}

func TestLogin_RepoFailureIsInternal(t *testing.T) {
	s := newTestService(t, &fakeUsersRepo{getErr: errors.New("storage down")})

	_, err := s.Login(context.Background(), "alice", "pw")
	if !errors.Is(err, common.ErrorInternal) {
		t.Fatalf("expected ErrorInternal, got %v", err)
	}
}
