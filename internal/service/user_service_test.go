package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xmikiesx/usage-metrics-api/internal/domain"
	"github.com/xmikiesx/usage-metrics-api/internal/store"
)

func newSeededService() *UserService {
	return NewUserService(store.NewSeededUserStore())
}

func TestListDefaults(t *testing.T) {
	svc := newSeededService()

	page, pagination, err := svc.List(ListParams{})
	require.NoError(t, err)

	assert.Len(t, page, 10)
	assert.Equal(t, 10, pagination.Limit)
	assert.Equal(t, 0, pagination.Offset)
	assert.Equal(t, 1, pagination.CurrentPage)
	assert.Equal(t, 15, pagination.TotalCount)
	assert.Equal(t, 2, pagination.TotalPages)
	assert.True(t, pagination.HasNext)
	assert.False(t, pagination.HasPrevious)
}

func TestListClampsLimit(t *testing.T) {
	svc := newSeededService()

	testCases := []struct {
		name     string
		limit    int
		expected int
	}{
		{"above max", 200, 100},
		{"zero takes default", 0, 10},
		{"negative takes default", -5, 10},
		{"in range", 5, 5},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, pagination, err := svc.List(ListParams{Limit: tc.limit})
			require.NoError(t, err)
			assert.Equal(t, tc.expected, pagination.Limit)
		})
	}
}

func TestListClampsNegativeOffset(t *testing.T) {
	svc := newSeededService()

	_, pagination, err := svc.List(ListParams{Offset: -3})
	require.NoError(t, err)
	assert.Equal(t, 0, pagination.Offset)
	assert.False(t, pagination.HasPrevious)
}

func TestListSecondPage(t *testing.T) {
	svc := newSeededService()

	page, pagination, err := svc.List(ListParams{Limit: 3, Offset: 3})
	require.NoError(t, err)

	require.Len(t, page, 3)
	assert.Equal(t, int64(4), page[0].ID, "window preserves insertion order")
	assert.Equal(t, 2, pagination.CurrentPage)
	assert.Equal(t, 5, pagination.TotalPages)
	assert.True(t, pagination.HasNext)
	assert.True(t, pagination.HasPrevious)
}

func TestListRoleFilter(t *testing.T) {
	svc := newSeededService()

	page, pagination, err := svc.List(ListParams{Role: "admin"})
	require.NoError(t, err)

	assert.Equal(t, 6, pagination.TotalCount)
	require.Len(t, page, 6)
	for _, u := range page {
		assert.Equal(t, domain.RoleAdmin, u.Role)
	}
}

func TestListInvalidRoleFilter(t *testing.T) {
	svc := newSeededService()

	_, _, err := svc.List(ListParams{Role: "bogus"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid role filter")
}

func TestListOffsetBeyondTotal(t *testing.T) {
	svc := newSeededService()

	page, pagination, err := svc.List(ListParams{Offset: 50})
	require.NoError(t, err)

	assert.Empty(t, page)
	assert.False(t, pagination.HasNext)
	assert.True(t, pagination.HasPrevious)
	assert.Equal(t, 15, pagination.TotalCount)
	assert.Equal(t, 6, pagination.CurrentPage)
}

func TestCreateForcesUserRole(t *testing.T) {
	svc := newSeededService()

	user, err := svc.Create("New User", "new@example.com")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleUser, user.Role)
}
