package user

import (
	"UnityPlate-Backend/domain"
	"UnityPlate-Backend/entities"
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	UserService interface {
		UpsertUser(ctx context.Context, req domain.UpsertUserRequest, fullUpdate bool) (domain.UpsertUserResponse, error)
		GetUserByEmail(ctx context.Context, email string) (domain.UserResponse, error)
	}

	userService struct {
		userRepository UserRepository
	}
)

func NewUserService(userRepository UserRepository) UserService {
	return &userService{userRepository: userRepository}
}

// UpsertUser inserts the identity on first sight and mutates it in place
// afterwards. The avatar is only replaced when the caller asks for a full
// update; a plain sign-in refreshes the name alone.
func (s *userService) UpsertUser(ctx context.Context, req domain.UpsertUserRequest, fullUpdate bool) (domain.UpsertUserResponse, error) {
	existing, err := s.userRepository.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			user := &entities.User{
				ID:    uuid.New(),
				Email: req.Email,
				Name:  req.Name,
				Dp:    req.Dp,
			}
			if err := s.userRepository.CreateUser(ctx, user); err != nil {
				return domain.UpsertUserResponse{}, err
			}
			return domain.UpsertUserResponse{User: domain.UserOutcomeAdded}, nil
		}
		return domain.UpsertUserResponse{}, err
	}

	existing.Name = req.Name
	if fullUpdate {
		existing.Dp = req.Dp
	}
	now := time.Now()
	existing.LastModified = &now

	if err := s.userRepository.UpdateUser(ctx, existing); err != nil {
		return domain.UpsertUserResponse{}, err
	}
	return domain.UpsertUserResponse{User: domain.UserOutcomeUpdated}, nil
}

func (s *userService) GetUserByEmail(ctx context.Context, email string) (domain.UserResponse, error) {
	user, err := s.userRepository.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.UserResponse{}, domain.ErrUserNotFound
		}
		return domain.UserResponse{}, err
	}

	return domain.UserResponse{
		ID:           user.ID.String(),
		Email:        user.Email,
		Name:         user.Name,
		Dp:           user.Dp,
		LastModified: user.LastModified,
		CreatedAt:    user.CreatedAt,
	}, nil
}
