//go:build integration

package postgres_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/vporoshin/accounts-server/internal/model"
	repo "github.com/vporoshin/accounts-server/internal/repository/postgres"
)

var dsn string

func TestMain(m *testing.M) {
	ctx := context.Background()
	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: tc.ContainerRequest{
			Image:        "postgres:15-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "postgres",
				"POSTGRES_PASSWORD": "password",
				"POSTGRES_DB":       "accounts_test",
			},
			WaitingFor: wait.ForListeningPort("5432/tcp").WithStartupTimeout(2 * time.Minute),
		},
		Started: true,
	})
	if err != nil {
		panic(err)
	}
	host, err := container.Host(ctx)
	if err != nil {
		panic(err)
	}
	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		panic(err)
	}
	dsn = fmt.Sprintf("postgres://postgres:password@%s:%s/accounts_test?sslmode=disable", host, port.Port())

	code := m.Run()
	_ = container.Terminate(ctx)
	os.Exit(code)
}

func TestUserRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	conn, err := repo.NewConection(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	ur := repo.NewUserRepository(conn)
	u := model.User{
		ID:           uuid.New(),
		Username:     "alice",
		Email:        "alice@example.com",
		PasswordHash: "$2a$10$fakefakefakefakefakefake",
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	t.Run("create_and_lookups", func(t *testing.T) {
		saved, err := ur.Create(ctx, u)
		require.NoError(t, err)
		require.Equal(t, u.ID, saved.ID)
		require.Empty(t, saved.RefreshTokenHash)
		require.Nil(t, saved.ResetToken)

		byEmail, err := ur.GetByEmail(ctx, u.Email)
		require.NoError(t, err)
		require.Equal(t, u.ID, byEmail.ID)

		byUsername, err := ur.GetByUsername(ctx, "Alice")
		require.NoError(t, err)
		require.Equal(t, u.ID, byUsername.ID)

		byID, err := ur.GetByID(ctx, u.ID)
		require.NoError(t, err)
		require.Equal(t, u.Email, byID.Email)

		_, err = ur.GetByEmail(ctx, "nobody@example.com")
		require.ErrorIs(t, err, model.ErrNotFound)
	})

	t.Run("duplicate_email_rejected", func(t *testing.T) {
		dup := u
		dup.ID = uuid.New()
		dup.Username = "alice2"
		_, err := ur.Create(ctx, dup)
		require.Error(t, err)
	})

	t.Run("refresh_token_lifecycle", func(t *testing.T) {
		hash := []byte("refresh-hash")
		require.NoError(t, ur.UpdateRefreshToken(ctx, u.ID, hash))

		got, err := ur.GetByID(ctx, u.ID)
		require.NoError(t, err)
		require.Equal(t, hash, got.RefreshTokenHash)

		require.NoError(t, ur.UpdateRefreshToken(ctx, u.ID, nil))
		got, err = ur.GetByID(ctx, u.ID)
		require.NoError(t, err)
		require.Empty(t, got.RefreshTokenHash)

		require.ErrorIs(t, ur.UpdateRefreshToken(ctx, uuid.New(), hash), model.ErrNotFound)
	})

	t.Run("username_update_lowercases", func(t *testing.T) {
		updated, err := ur.UpdateUsername(ctx, u.ID, "AliceNew")
		require.NoError(t, err)
		require.Equal(t, "alicenew", updated.Username)
	})

	t.Run("reset_token_lifecycle", func(t *testing.T) {
		expiry := time.Now().Add(time.Hour).UTC()
		require.NoError(t, ur.SetResetToken(ctx, u.ID, "reset-token", expiry))

		byToken, err := ur.GetByResetToken(ctx, "reset-token")
		require.NoError(t, err)
		require.Equal(t, u.ID, byToken.ID)
		require.NotNil(t, byToken.ResetTokenExpires)

		require.NoError(t, ur.UpdatePassword(ctx, u.ID, "$2a$10$newhashnewhashnewhash"))

		got, err := ur.GetByID(ctx, u.ID)
		require.NoError(t, err)
		require.Equal(t, "$2a$10$newhashnewhashnewhash", got.PasswordHash)
		require.Nil(t, got.ResetToken)
		require.Nil(t, got.ResetTokenExpires)

		_, err = ur.GetByResetToken(ctx, "reset-token")
		require.ErrorIs(t, err, model.ErrNotFound)
	})
}
