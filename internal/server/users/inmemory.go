package users

import (
	"context"
	"sync"
	"time"

	"github.com/avasquez/taskkeeper/internal/common"
)

// InMemoryRepository keeps user records in an ordered, process-lifetime
// slice. Records are never mutated or removed after insertion, so lookups
// can hand out the stored pointer. Usernames are not unique; GetUserByLogin
// returns the first match in insertion order.
type InMemoryRepository struct {
	mu     sync.Mutex
	users  []*User
	nextID int64
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{}
}

func (r *InMemoryRepository) Create(ctx context.Context, user *User) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	user.ID = r.nextID
	user.CreatedAt = time.Now()
	r.users = append(r.users, user)

	return user, nil
}

func (r *InMemoryRepository) GetUserByLogin(ctx context.Context, login string) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.UserName == login {
			return u, nil
		}
	}

	return nil, common.ErrorNotFound
}
