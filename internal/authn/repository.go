package authn

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository defines the storage operations an operator account needs.
//
//go:generate mockgen -source=repository.go -destination=../../tests/mocks/authn/mock_repository.go -package=authnmocks
type Repository interface {
	CreateUser(user *User) error
	GetUserByUsername(username string) (*User, error)
	GetUserByID(id uuid.UUID) (*User, error)
}

// GormRepository implements Repository using GORM.
type GormRepository struct {
	db *gorm.DB
}

// NewGormRepository creates a new GormRepository.
func NewGormRepository(db *gorm.DB) Repository {
	return &GormRepository{db: db}
}

// CreateUser creates a new operator account.
func (r *GormRepository) CreateUser(user *User) error {
	return r.db.Create(user).Error
}

// GetUserByUsername retrieves an operator account by username.
func (r *GormRepository) GetUserByUsername(username string) (*User, error) {
	var user User
	err := r.db.Where("username = ?", username).First(&user).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	return &user, err
}

// GetUserByID retrieves an operator account by id.
func (r *GormRepository) GetUserByID(id uuid.UUID) (*User, error) {
	var user User
	err := r.db.First(&user, "id = ?", id).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	return &user, err
}
