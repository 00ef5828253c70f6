package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fakeHash = "$2a$10$abcdefghijklmnopqrstuvwxyz012345678901234567890123456"

func TestNewUser(t *testing.T) {
	user, err := NewUser("alice@example.com", fakeHash)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.False(t, user.CreatedAt.IsZero())
	assert.Equal(t, user.CreatedAt, user.UpdatedAt)
}

func TestUserValidate(t *testing.T) {
	testCases := []struct {
		name    string
		email   string
		hash    string
		wantErr error
	}{
		{name: "valid", email: "alice@example.com", hash: fakeHash, wantErr: nil},
		{name: "empty email", email: "", hash: fakeHash, wantErr: ErrEmptyEmail},
		{name: "missing at sign", email: "alice.example.com", hash: fakeHash, wantErr: ErrInvalidEmail},
		{name: "missing domain dot", email: "alice@example", hash: fakeHash, wantErr: ErrInvalidEmail},
		{name: "dot at domain start", email: "alice@.com", hash: fakeHash, wantErr: ErrInvalidEmail},
		{name: "dot at domain end", email: "alice@example.", hash: fakeHash, wantErr: ErrInvalidEmail},
		{name: "empty local part", email: "@example.com", hash: fakeHash, wantErr: ErrInvalidEmail},
		{name: "missing hash", email: "alice@example.com", hash: "", wantErr: ErrEmptyHashedPassword},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			user := &User{ID: uuid.New(), Email: tc.email, HashedPassword: tc.hash}
			err := user.Validate()
			if tc.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tc.wantErr)
			}
		})
	}

	t.Run("nil ID", func(t *testing.T) {
		user := &User{Email: "alice@example.com", HashedPassword: fakeHash}
		assert.ErrorIs(t, user.Validate(), ErrEmptyUserID)
	})
}
