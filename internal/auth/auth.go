package auth

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
	userDatamodel "github.com/prakashpaswan/employee-portal/internal/core/datamodel/user"
)

// Claims represents JWT token claims. The user identifier doubles as the
// registered subject.
type Claims struct {
	UserID string `json:"userId"`
	jwt.RegisteredClaims
}

// TokenGenerator mints and verifies bearer tokens.
type TokenGenerator interface {
	GenerateToken(userID string) (string, error)
	ValidateToken(tokenString string) (*Claims, error)
}

// UserRepository looks up credential records. Username is the sole lookup key.
type UserRepository interface {
	GetByUsername(username string) (*userDatamodel.User, error)
}

// ServiceAPI performs authentication business logic.
type ServiceAPI interface {
	Authenticate(dto LoginDTO) (LoginResponse, error)
	ValidateToken(tokenString string) (*Claims, error)
}

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrTokenExpired       = errors.New("token expired")
)
