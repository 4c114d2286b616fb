package store

import (
	"sync"

	"github.com/xmikiesx/usage-metrics-api/internal/domain"
	"github.com/xmikiesx/usage-metrics-api/pkg/util"
)

// UserStore holds user records in memory for the lifetime of the process.
// Records are only ever appended; there is no mutation or deletion.
type UserStore struct {
	mu    sync.Mutex
	users []domain.User
}

// NewUserStore returns an empty store.
func NewUserStore() *UserStore {
	return &UserStore{}
}

// NewSeededUserStore returns a store pre-populated with the demo dataset.
func NewSeededUserStore() *UserStore {
	s := NewUserStore()
	s.users = append(s.users, seedUsers...)
	return s
}

// Append validates and stores a new record. The identifier is one greater
// than the highest identifier currently in the store, and the role is always
// "user" for created records.
func (s *UserStore) Append(name, email string) (domain.User, error) {
	if name == "" || email == "" {
		return domain.User{}, util.NewValidationError("Missing fields", "")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var maxID int64
	for _, u := range s.users {
		if u.ID > maxID {
			maxID = u.ID
		}
	}

	user := domain.User{
		ID:    maxID + 1,
		Name:  name,
		Email: email,
		Role:  domain.RoleUser,
	}
	s.users = append(s.users, user)
	return user, nil
}

// ListAll returns a copy of all records in insertion order.
func (s *UserStore) ListAll() []domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.User, len(s.users))
	copy(out, s.users)
	return out
}

var seedUsers = []domain.User{
	{ID: 1, Name: "John Doe", Email: "john@example.com", Role: domain.RoleAdmin},
	{ID: 2, Name: "Jane Smith", Email: "jane@example.com", Role: domain.RoleUser},
	{ID: 3, Name: "Bob Johnson", Email: "bob@example.com", Role: domain.RoleUser},
	{ID: 4, Name: "Alice Wilson", Email: "alice@example.com", Role: domain.RoleAdmin},
	{ID: 5, Name: "Charlie Brown", Email: "charlie@example.com", Role: domain.RoleUser},
	{ID: 6, Name: "Diana Prince", Email: "diana@example.com", Role: domain.RoleAdmin},
	{ID: 7, Name: "Eva Green", Email: "eva@example.com", Role: domain.RoleUser},
	{ID: 8, Name: "Frank Miller", Email: "frank@example.com", Role: domain.RoleUser},
	{ID: 9, Name: "Grace Lee", Email: "grace@example.com", Role: domain.RoleAdmin},
	{ID: 10, Name: "Henry Ford", Email: "henry@example.com", Role: domain.RoleUser},
	{ID: 11, Name: "Ivy Chen", Email: "ivy@example.com", Role: domain.RoleUser},
	{ID: 12, Name: "Jack Black", Email: "jack@example.com", Role: domain.RoleAdmin},
	{ID: 13, Name: "Kate Stone", Email: "kate@example.com", Role: domain.RoleUser},
	{ID: 14, Name: "Leo Martinez", Email: "leo@example.com", Role: domain.RoleUser},
	{ID: 15, Name: "Maya Patel", Email: "maya@example.com", Role: domain.RoleAdmin},
}
