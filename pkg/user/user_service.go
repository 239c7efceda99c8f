package user

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"Scanstock-Backend/domain"
	"Scanstock-Backend/entities"
	"Scanstock-Backend/pkg/jwt"
)

type (
	// UserService is the identity provider for the scan stores. Sessions are
	// anonymous by default, matching how scanning clients sign in.
	UserService interface {
		SignInAnonymous(ctx context.Context) (domain.AnonymousSignInResponse, error)
		Me(ctx context.Context, userID string) (domain.MeResponse, error)
	}

	userService struct {
		userRepository UserRepository
		jwtService     jwt.JWTService
	}
)

func NewUserService(userRepository UserRepository, jwtService jwt.JWTService) UserService {
	return &userService{
		userRepository: userRepository,
		jwtService:     jwtService,
	}
}

func (s *userService) SignInAnonymous(ctx context.Context) (domain.AnonymousSignInResponse, error) {
	if s.userRepository == nil {
		return domain.AnonymousSignInResponse{}, domain.ErrRemoteUnconfigured
	}

	user := &entities.User{
		ID:          uuid.New(),
		Role:        domain.RoleUser,
		IsAnonymous: true,
	}

	if err := s.userRepository.CreateUser(ctx, user); err != nil {
		return domain.AnonymousSignInResponse{}, err
	}

	token := s.jwtService.GenerateTokenUser(user.ID.String(), user.Role)

	return domain.AnonymousSignInResponse{
		UserID:      user.ID.String(),
		Token:       token,
		IsAnonymous: true,
	}, nil
}

func (s *userService) Me(ctx context.Context, userID string) (domain.MeResponse, error) {
	if s.userRepository == nil {
		return domain.MeResponse{}, domain.ErrRemoteUnconfigured
	}

	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.MeResponse{}, domain.ErrUserNotFound
		}
		return domain.MeResponse{}, err
	}

	return domain.MeResponse{
		UserID:      user.ID.String(),
		Email:       user.Email,
		Role:        user.Role,
		IsAnonymous: user.IsAnonymous,
	}, nil
}
