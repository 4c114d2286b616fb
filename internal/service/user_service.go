package service

import (
	"github.com/xmikiesx/usage-metrics-api/internal/domain"
	"github.com/xmikiesx/usage-metrics-api/internal/store"
	"github.com/xmikiesx/usage-metrics-api/pkg/util"
)

const (
	// DefaultLimit is the page size applied when no usable limit is supplied.
	DefaultLimit = 10
	// MaxLimit caps the page size regardless of what the caller asks for.
	MaxLimit = 100
)

// ListParams carries the listing query inputs. Zero values take defaults;
// out-of-range values are clamped rather than rejected.
type ListParams struct {
	Limit  int
	Offset int
	Role   string
}

// Pagination is the derived page metadata, computed over the filtered count.
type Pagination struct {
	CurrentPage int  `json:"currentPage"`
	TotalPages  int  `json:"totalPages"`
	TotalCount  int  `json:"totalCount"`
	Limit       int  `json:"limit"`
	Offset      int  `json:"offset"`
	HasNext     bool `json:"hasNext"`
	HasPrevious bool `json:"hasPrevious"`
}

// UserService coordinates record creation and the listing query engine.
type UserService struct {
	users *store.UserStore
}

// NewUserService builds the service.
func NewUserService(users *store.UserStore) *UserService {
	return &UserService{users: users}
}

// Create appends a new user record.
func (s *UserService) Create(name, email string) (domain.User, error) {
	return s.users.Append(name, email)
}

// List applies the optional role filter, then the offset/limit window, and
// computes pagination metadata from the filtered total.
func (s *UserService) List(p ListParams) ([]domain.User, Pagination, error) {
	if p.Role != "" && !domain.Role(p.Role).Valid() {
		return nil, Pagination{}, util.NewValidationError(
			"Invalid role filter", "Role must be either 'admin' or 'user'")
	}

	limit := p.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	offset := p.Offset
	if offset < 0 {
		offset = 0
	}

	records := s.users.ListAll()
	filtered := records
	if p.Role != "" {
		filtered = make([]domain.User, 0, len(records))
		for _, u := range records {
			if u.Role == domain.Role(p.Role) {
				filtered = append(filtered, u)
			}
		}
	}

	totalCount := len(filtered)
	start := offset
	if start > totalCount {
		start = totalCount
	}
	end := offset + limit
	if end > totalCount {
		end = totalCount
	}
	page := filtered[start:end]

	pagination := Pagination{
		CurrentPage: offset/limit + 1,
		TotalPages:  (totalCount + limit - 1) / limit,
		TotalCount:  totalCount,
		Limit:       limit,
		Offset:      offset,
		HasNext:     offset+limit < totalCount,
		HasPrevious: offset > 0,
	}
	return page, pagination, nil
}
