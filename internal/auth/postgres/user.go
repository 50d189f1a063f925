package postgres

import (
	"github.com/prakashpaswan/employee-portal/internal/auth"
	userDatamodel "github.com/prakashpaswan/employee-portal/internal/core/datamodel/user"
	"gorm.io/gorm"
)

// UserRepository implements the auth.UserRepository interface using GORM
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) auth.UserRepository {
	return &UserRepository{db: db}
}

// GetByUsername retrieves a credential record by username
func (r *UserRepository) GetByUsername(username string) (*userDatamodel.User, error) {
	var user userDatamodel.User
	err := r.db.Where("username = ?", username).First(&user).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, auth.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}
