package usecase

import (
	"context"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkarwowski/bingoroom/internal/domain"
	"github.com/mkarwowski/bingoroom/internal/infra/adapters/memory"
)

func TestRegister_HashesPassword(t *testing.T) {
	store := memory.NewStore()
	uc := NewUserUsecase([]byte("test-secret"), memory.NewUserRepo(store))
	ctx := context.Background()

	user, err := uc.Register(ctx, "alice@test.local", "alice", "secret123")
	require.NoError(t, err)

	assert.Equal(t, "alice@test.local", user.Email)
	assert.Equal(t, "alice", user.Username)
	assert.NotEqual(t, "secret123", user.PasswordHash)
	assert.NotEmpty(t, user.PasswordHash)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	store := memory.NewStore()
	uc := NewUserUsecase([]byte("test-secret"), memory.NewUserRepo(store))
	ctx := context.Background()

	_, err := uc.Register(ctx, "alice@test.local", "alice", "secret123")
	require.NoError(t, err)

	_, err = uc.Register(ctx, "alice@test.local", "another", "secret456")
	assert.ErrorIs(t, err, domain.ErrEmailTaken)
}

func TestValidateCredentials(t *testing.T) {
	store := memory.NewStore()
	uc := NewUserUsecase([]byte("test-secret"), memory.NewUserRepo(store))
	ctx := context.Background()

	registered, err := uc.Register(ctx, "alice@test.local", "alice", "secret123")
	require.NoError(t, err)

	user, err := uc.ValidateCredentials(ctx, "alice@test.local", "secret123")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)

	_, err = uc.ValidateCredentials(ctx, "alice@test.local", "wrong")
	assert.Error(t, err)

	_, err = uc.ValidateCredentials(ctx, "nobody@test.local", "secret123")
	assert.Error(t, err)
}

func TestGenerateJWT_SubjectIsUserID(t *testing.T) {
	secret := []byte("test-secret")
	store := memory.NewStore()
	uc := NewUserUsecase(secret, memory.NewUserRepo(store))

	user, err := uc.Register(context.Background(), "alice@test.local", "alice", "secret123")
	require.NoError(t, err)

	tokenString, err := uc.GenerateJWT(user)
	require.NoError(t, err)

	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return secret, nil
	})
	require.NoError(t, err)

	assert.True(t, token.Valid)
	assert.Equal(t, user.ID.String(), claims.Subject)
}

func TestGetProfile_Winrate(t *testing.T) {
	store := memory.NewStore()
	userRepo := memory.NewUserRepo(store)
	uc := NewUserUsecase([]byte("test-secret"), userRepo)
	ctx := context.Background()

	user, err := uc.Register(ctx, "alice@test.local", "alice", "secret123")
	require.NoError(t, err)

	profile, err := uc.GetProfile(ctx, user.ID)
	require.NoError(t, err)

	// Ещё не сыграно ни одной партии.
	assert.Equal(t, 0, profile.GamesPlayed)
	assert.Zero(t, profile.Winrate)
}
