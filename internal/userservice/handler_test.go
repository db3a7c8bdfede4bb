package userservice

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"github.com/sushihentaime/mediumclone/internal/common"
)

func setupTestEnvironment(t *testing.T) (*UserService, *sql.DB, func() error, error) {
	db := common.TestDB("file://../../migrations", t)
	connURL := common.TestRabbitMQ(t)
	mb, err := common.NewMessageBroker(connURL)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("could not create message broker: %w", err)
	}

	err = common.SetupUserExchange(mb)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("could not setup user exchange: %w", err)
	}

	cleanup := func() error {
		_, err := db.Exec("DELETE FROM follows")
		if err != nil {
			return err
		}

		_, err = db.Exec("DELETE FROM users")
		if err != nil {
			return err
		}

		return nil
	}

	return NewUserService(db, mb, "test-secret"), db, cleanup, nil
}

func TestSignupUser(t *testing.T) {
	s, db, cleanup, err := setupTestEnvironment(t)
	assert.NoError(t, err)

	testCases := []struct {
		name        string
		userName    string
		email       string
		password    string
		expectedErr error
	}{
		{
			name:        "valid user",
			userName:    "testuser",
			email:       "testuser@example.com",
			password:    "pass123",
			expectedErr: nil,
		},
		{
			name:        "short password and malformed email",
			userName:    "testuser",
			email:       "invalid-email",
			password:    "123",
			expectedErr: common.ValidationError{Errors: map[string]string{"email": "must be a valid email address", "password": "must be between 5 and 72 characters long"}},
		},
		{
			name:        "empty payload",
			userName:    "",
			email:       "",
			password:    "",
			expectedErr: common.ValidationError{Errors: map[string]string{"name": "must be provided", "email": "must be provided", "password": "must be provided"}},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			user, err := s.SignupUser(ctx, tc.userName, tc.email, tc.password)
			assert.Equal(t, tc.expectedErr, err)

			if err == nil {
				assert.NotZero(t, user.ID)

				// the stored hash must verify against the plaintext
				var hash []byte
				err = db.QueryRow("SELECT password FROM users WHERE id = $1", user.ID).Scan(&hash)
				assert.NoError(t, err)
				assert.NoError(t, bcrypt.CompareHashAndPassword(hash, []byte(tc.password)))
			}

			t.Cleanup(func() {
				err := cleanup()
				assert.NoError(t, err)
			})
		})
	}
}

func TestSignupUserDuplicateEmail(t *testing.T) {
	s, _, cleanup, err := setupTestEnvironment(t)
	assert.NoError(t, err)

	ctx := context.Background()

	_, err = s.SignupUser(ctx, "testuser", "testuser@example.com", "pass123")
	assert.NoError(t, err)

	_, err = s.SignupUser(ctx, "otheruser", "testuser@example.com", "pass123")
	assert.ErrorIs(t, err, ErrDuplicateEmail)

	t.Cleanup(func() {
		err := cleanup()
		assert.NoError(t, err)
	})
}

func TestLoginUser(t *testing.T) {
	s, _, cleanup, err := setupTestEnvironment(t)
	assert.NoError(t, err)

	ctx := context.Background()

	_, err = s.SignupUser(ctx, "testuser", "testuser@example.com", "pass123")
	assert.NoError(t, err)

	testCases := []struct {
		name        string
		email       string
		password    string
		expectedErr error
	}{
		{
			name:        "valid credentials",
			email:       "testuser@example.com",
			password:    "pass123",
			expectedErr: nil,
		},
		{
			name:        "unregistered email",
			email:       "nobody@example.com",
			password:    "pass123",
			expectedErr: ErrNotFound,
		},
		{
			name:        "wrong password",
			email:       "testuser@example.com",
			password:    "wrongpass",
			expectedErr: ErrAuthenticationFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			user, token, err := s.LoginUser(ctx, tc.email, tc.password)
			assert.Equal(t, tc.expectedErr, err)

			if err == nil {
				assert.NotEmpty(t, token)

				// the token must decode back to the original identity
				payload, err := s.VerifyAccessToken(token)
				assert.NoError(t, err)
				assert.Equal(t, tc.email, payload.Email)
				assert.Equal(t, user.ID, payload.ID)
			}
		})
	}

	t.Cleanup(func() {
		err := cleanup()
		assert.NoError(t, err)
	})
}

func TestFollowUser(t *testing.T) {
	s, _, cleanup, err := setupTestEnvironment(t)
	assert.NoError(t, err)

	ctx := context.Background()

	alice, err := s.SignupUser(ctx, "alice", "alice@example.com", "pass123")
	assert.NoError(t, err)

	bob, err := s.SignupUser(ctx, "bob", "bob@example.com", "pass123")
	assert.NoError(t, err)

	err = s.FollowUser(ctx, alice.ID, bob.ID)
	assert.NoError(t, err)

	// duplicate edge violates the composite key
	err = s.FollowUser(ctx, alice.ID, bob.ID)
	assert.Error(t, err)

	follows, err := s.GetFollowers(ctx, alice.ID)
	assert.NoError(t, err)
	assert.Len(t, follows.Following, 1)
	assert.Equal(t, bob.ID, follows.Following[0].ID)
	assert.Empty(t, follows.FollowedBy)

	follows, err = s.GetFollowers(ctx, bob.ID)
	assert.NoError(t, err)
	assert.Empty(t, follows.Following)
	assert.Len(t, follows.FollowedBy, 1)
	assert.Equal(t, alice.ID, follows.FollowedBy[0].ID)

	err = s.UnfollowUser(ctx, alice.ID, bob.ID)
	assert.NoError(t, err)

	// deleting the same pair again has nothing to remove
	err = s.UnfollowUser(ctx, alice.ID, bob.ID)
	assert.Error(t, err)

	t.Cleanup(func() {
		err := cleanup()
		assert.NoError(t, err)
	})
}
