package user

import (
	"Fridge-Elf-Backend/entities"
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	UserRepository interface {
		GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error)
		GetByLineUserID(ctx context.Context, lineUserID string) (*entities.User, error)
		Create(ctx context.Context, user *entities.User) error
		Update(ctx context.Context, user *entities.User) error
	}

	userRepository struct {
		db *gorm.DB
	}
)

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	var user entities.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetByLineUserID(ctx context.Context, lineUserID string) (*entities.User, error) {
	var user entities.User
	if err := r.db.WithContext(ctx).Where("line_user_id = ?", lineUserID).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) Create(ctx context.Context, user *entities.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) Update(ctx context.Context, user *entities.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}
