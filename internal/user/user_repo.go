package user

import (
	"errors"

	"gorm.io/gorm"
)

// UserRepository defines the database operations for account management.
type UserRepository interface {
	GetByID(id uint) (*User, error)
	GetByUsernameExcept(username string, excludeID uint) (*User, error)
	Update(u *User) error
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) GetByID(id uint) (*User, error) {
	var u User
	err := r.db.First(&u, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

// GetByUsernameExcept looks up a username collision, ignoring the given
// user's own row so a profile update can keep its current username.
func (r *userRepository) GetByUsernameExcept(username string, excludeID uint) (*User, error) {
	var u User
	err := r.db.Where("username = ? AND id <> ?", username, excludeID).First(&u).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) Update(u *User) error {
	return r.db.Save(u).Error
}
