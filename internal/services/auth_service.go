package services

import (
	"errors"
	"strings"

	"github.com/wellnestlab/wellnest/internal/models"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 8

var (
	ErrAuthEmailInvalid       = errors.New("email invalid")
	ErrAuthEmailTaken         = errors.New("email already registered")
	ErrAuthPasswordTooShort   = errors.New("password too short")
	ErrAuthInvalidCredentials = errors.New("invalid credentials")
	ErrAuthLookupFailed       = errors.New("user lookup failed")
	ErrAuthCreateFailed       = errors.New("create user failed")
)

type AuthUserRepository interface {
	ExistsByNormalizedEmail(email string) (bool, error)
	FindByNormalizedEmail(email string) (models.User, bool, error)
	FindByID(userID uint) (models.User, bool, error)
	Create(user *models.User) error
}

type AuthService struct {
	users AuthUserRepository
}

func NewAuthService(users AuthUserRepository) *AuthService {
	return &AuthService{users: users}
}

func (service *AuthService) Register(email string, password string) (models.User, error) {
	email = strings.TrimSpace(email)
	if email == "" || !strings.Contains(email, "@") {
		return models.User{}, ErrAuthEmailInvalid
	}
	if len(password) < minPasswordLength {
		return models.User{}, ErrAuthPasswordTooShort
	}

	exists, err := service.users.ExistsByNormalizedEmail(email)
	if err != nil {
		return models.User{}, ErrAuthLookupFailed
	}
	if exists {
		return models.User{}, ErrAuthEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, ErrAuthCreateFailed
	}

	user := models.User{
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := service.users.Create(&user); err != nil {
		return models.User{}, ErrAuthCreateFailed
	}
	return user, nil
}

func (service *AuthService) Login(email string, password string) (models.User, error) {
	user, found, err := service.users.FindByNormalizedEmail(email)
	if err != nil {
		return models.User{}, ErrAuthLookupFailed
	}
	if !found {
		return models.User{}, ErrAuthInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return models.User{}, ErrAuthInvalidCredentials
	}
	return user, nil
}

func (service *AuthService) FindByID(userID uint) (models.User, bool, error) {
	return service.users.FindByID(userID)
}
