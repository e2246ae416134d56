package service

import (
	"context"
	"errors"
	"fmt"

	"aoa/internal/model"

	"gorm.io/gorm"
)

const defaultTimezone = "America/New_York"

// UserService is the account registry. Accounts are create-and-read only.
type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService { return &UserService{db: db} }

// Create registers an account. Duplicate emails fail with ErrConflict.
func (s *UserService) Create(ctx context.Context, in model.UserCreate) (*model.User, error) {
	return createUser(s.db.WithContext(ctx), in)
}

func createUser(tx *gorm.DB, in model.UserCreate) (*model.User, error) {
	if existing, err := userByEmail(tx, in.Email); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, fmt.Errorf("user %s: %w", in.Email, ErrConflict)
	}

	user := model.User{Email: in.Email, Name: in.Name, Timezone: defaultTimezone}
	if in.Timezone != nil && *in.Timezone != "" {
		user.Timezone = *in.Timezone
	}
	if err := tx.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("user %s: %w", in.Email, ErrConflict)
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return &user, nil
}

// CreateWithLog signs a user up and records their first check-in in a single
// transaction; a failure on either side persists neither.
func (s *UserService) CreateWithLog(ctx context.Context, in model.UserCreateWithLog) (*model.User, error) {
	var user *model.User
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		u, err := createUser(tx, in.UserData)
		if err != nil {
			return err
		}
		if _, err := createLog(tx, u.ID, in.LogData); err != nil {
			return err
		}
		user = u
		return nil
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

// Get fetches a user by id, ErrNotFound when absent.
func (s *UserService) Get(ctx context.Context, id int) (*model.User, error) {
	var user model.User
	err := s.db.WithContext(ctx).First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("user %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("query user: %w", err)
	}
	return &user, nil
}

// List pages through all accounts.
func (s *UserService) List(ctx context.Context, skip, limit int) ([]model.User, error) {
	var users []model.User
	err := s.db.WithContext(ctx).Offset(skip).Limit(limit).Find(&users).Error
	if err != nil {
		return nil, fmt.Errorf("query users: %w", err)
	}
	return users, nil
}

// userByEmail looks an account up by email, nil when absent.
func userByEmail(tx *gorm.DB, email string) (*model.User, error) {
	var user model.User
	err := tx.Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query user by email: %w", err)
	}
	return &user, nil
}
