package services

import (
	"errors"
	"time"

	"organizer/internal/apperr"
	"organizer/internal/config"
	"organizer/internal/models"
	"organizer/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type AuthService interface {
	Register(email, password string) (*models.User, error)
	Login(email, password string) (string, error)
	ParseToken(token string) (string, error)
}

type authServiceImpl struct {
	userRepo      repository.UserRepository
	configuration *config.Configuration
}

func NewAuthService(userRepo repository.UserRepository, configuration *config.Configuration) AuthService {
	return &authServiceImpl{userRepo: userRepo, configuration: configuration}
}

func (s *authServiceImpl) Register(email, password string) (*models.User, error) {
	if email == "" || password == "" {
		return nil, errors.New("email and password are required")
	}
	existing, err := s.userRepo.FindByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errors.New("email already registered")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &models.User{Email: email, PasswordHash: string(hash)}
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *authServiceImpl) Login(email, password string) (string, error) {
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", apperr.ErrNotAuthenticated
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", apperr.ErrNotAuthenticated
	}
	ttl := time.Duration(s.configuration.Auth.TokenTTLHours) * time.Hour
	claims := jwt.RegisteredClaims{
		Subject:   user.ID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.configuration.Auth.JWTSecret))
}

// ParseToken validates the bearer token and returns the owner id it carries.
func (s *authServiceImpl) ParseToken(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, apperr.ErrNotAuthenticated
		}
		return []byte(s.configuration.Auth.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return "", apperr.ErrNotAuthenticated
	}
	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return "", apperr.ErrNotAuthenticated
	}
	return claims.Subject, nil
}
