package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/mkarwowski/bingoroom/internal/domain/models"
	"github.com/mkarwowski/bingoroom/internal/domain/output"
	"github.com/mkarwowski/bingoroom/internal/infra/adapters/postgres/repository"
)

// UserUsecase определяет интерфейс для работы с пользователями
type UserUsecase interface {
	Register(ctx context.Context, email, username, password string) (*models.User, error)
	ValidateCredentials(ctx context.Context, email, password string) (*models.User, error)
	GenerateJWT(user *models.User) (string, error)
	GetProfile(ctx context.Context, id uuid.UUID) (*output.ProfileView, error)
}

type userUsecase struct {
	jwtSecret []byte

	userRepo repository.UserRepository
}

func NewUserUsecase(jwtSecret []byte, userRepo repository.UserRepository) UserUsecase {
	return &userUsecase{
		jwtSecret: jwtSecret,
		userRepo:  userRepo,
	}
}

// Register создает нового пользователя с хешированным паролем
func (uc *userUsecase) Register(ctx context.Context, email, username, password string) (*models.User, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := models.NewUser(email, username)
	user.PasswordHash = string(hashedPassword)

	if err = uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// ValidateCredentials проверяет учетные данные пользователя
func (uc *userUsecase) ValidateCredentials(ctx context.Context, email, password string) (*models.User, error) {
	user, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, err
	}

	return user, nil
}

// GenerateJWT генерирует JWT токен для пользователя
func (uc *userUsecase) GenerateJWT(user *models.User) (string, error) {
	claims := &jwt.RegisteredClaims{
		Subject:   user.ID.String(),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour * 72)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(uc.jwtSecret)
}

func (uc *userUsecase) GetProfile(ctx context.Context, id uuid.UUID) (*output.ProfileView, error) {
	user, err := uc.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	return &output.ProfileView{
		ID:          user.ID,
		Email:       user.Email,
		Username:    user.Username,
		GamesPlayed: user.GamesPlayed,
		GamesWon:    user.GamesWon,
		Winrate:     user.Winrate(),
	}, nil
}
