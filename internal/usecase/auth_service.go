package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/openlot/leadhub/internal/domain"
	"github.com/openlot/leadhub/pkg/util"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

type authService struct {
	userRepo  domain.UserRepository
	jwtSecret string
	jwtExpiry time.Duration
}

func NewAuthService(userRepo domain.UserRepository, jwtSecret string, jwtExpiry time.Duration) AuthUseCase {
	return &authService{
		userRepo:  userRepo,
		jwtSecret: jwtSecret,
		jwtExpiry: jwtExpiry,
	}
}

func (s *authService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}

	if !util.CheckPasswordHash(password, user.PasswordHash) {
		return "", nil, ErrInvalidCredentials
	}

	token, err := util.GenerateToken(user, s.jwtSecret, s.jwtExpiry)
	if err != nil {
		return "", nil, err
	}

	return token, user, nil
}

func (s *authService) Profile(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	return s.userRepo.FindByID(ctx, userID)
}
