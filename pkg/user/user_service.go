package user

import (
	"Fridge-Elf-Backend/domain"
	"Fridge-Elf-Backend/entities"
	"Fridge-Elf-Backend/pkg/jwt"
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	UserService interface {
		LoginWithLine(ctx context.Context, req domain.LineLoginRequest) (domain.LineLoginResponse, error)
		EnsureLineUser(ctx context.Context, lineUserID string, displayName string) (*entities.User, error)
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

// LoginWithLine exchanges a LIFF-supplied LINE user id for an API token,
// creating the account on first contact.
func (s *userService) LoginWithLine(ctx context.Context, req domain.LineLoginRequest) (domain.LineLoginResponse, error) {
	user, err := s.EnsureLineUser(ctx, req.LineUserID, req.DisplayName)
	if err != nil {
		return domain.LineLoginResponse{}, err
	}

	if req.Email != "" && req.Email != user.Email {
		user.Email = req.Email
		if err := s.userRepository.Update(ctx, user); err != nil {
			return domain.LineLoginResponse{}, err
		}
	}

	token := s.jwtService.GenerateTokenUser(user.ID.String(), user.LineUserID)
	if token == "" {
		return domain.LineLoginResponse{}, domain.ErrTokenNotFound
	}

	return domain.LineLoginResponse{
		Token:       token,
		UserID:      user.ID.String(),
		DisplayName: user.DisplayName,
	}, nil
}

func (s *userService) EnsureLineUser(ctx context.Context, lineUserID string, displayName string) (*entities.User, error) {
	user, err := s.userRepository.GetByLineUserID(ctx, lineUserID)
	if err == nil {
		if displayName != "" && displayName != user.DisplayName {
			user.DisplayName = displayName
			if err := s.userRepository.Update(ctx, user); err != nil {
				return nil, err
			}
		}
		return user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	user = &entities.User{
		ID:          uuid.New(),
		LineUserID:  lineUserID,
		DisplayName: displayName,
	}
	if err := s.userRepository.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
