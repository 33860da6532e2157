package repository

import (
	"testing"

	"garage-backend/internal/app/ds"
	"garage-backend/internal/app/role"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserExistsByUsername(t *testing.T) {
	repo := setupTestRepo(t)

	exists, err := repo.UserExistsByUsername("cashier")
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, repo.CreateUser(&ds.User{
		Username: "cashier",
		Password: "hash",
		FullName: "Justin Bieber",
		Role:     role.Cashier,
	}))

	exists, err = repo.UserExistsByUsername("cashier")
	require.NoError(t, err)
	assert.True(t, exists)

	user, err := repo.GetUserByUsername("cashier")
	require.NoError(t, err)
	assert.Equal(t, role.Cashier, user.Role)

	_, err = repo.GetUserByUsername("nobody")
	require.ErrorIs(t, err, ErrUserNotFound)
}
