package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"goblog/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// Domain errors for auth flows.
var (
	ErrEmailTaken      = errors.New("email already registered")
	ErrUnknownEmail    = errors.New("unknown email")
	ErrInvalidPassword = errors.New("invalid password")
	ErrInvalidToken    = errors.New("invalid token")
)

// AuthService handles registration, login and session tokens.
type AuthService struct {
	users repository.Users
	cfg   AuthConfig
}

func NewAuthService(users repository.Users, cfg AuthConfig) *AuthService {
	return &AuthService{users: users, cfg: cfg}
}

// Claims defines JWT claims for a session.
type Claims struct {
	jwt.RegisteredClaims
	UserID  int    `json:"user_id"`
	Name    string `json:"name"`
	IsAdmin bool   `json:"is_admin"`
}

// Register creates a new user and returns a session token for it.
// The very first registered user becomes the admin.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (string, error) {
	existing, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if existing != nil {
		return "", ErrEmailTaken
	}

	hash, err := hashPassword(password)
	if err != nil {
		return "", fmt.Errorf("invalid password: %w", err)
	}

	count, err := s.users.Count(ctx)
	if err != nil {
		return "", err
	}
	isAdmin := count == 0

	id, err := s.users.Create(ctx, name, email, hash, isAdmin)
	if err != nil {
		return "", err
	}

	return s.issueToken(Identity{UserID: id, Name: name, IsAdmin: isAdmin})
}

// Login validates credentials and returns a session token.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if u == nil {
		return "", ErrUnknownEmail
	}

	if err := verifyPassword(u.PasswordHash, password); err != nil {
		return "", ErrInvalidPassword
	}

	return s.issueToken(Identity{UserID: u.ID, Name: u.Name, IsAdmin: u.IsAdmin})
}

// ParseToken parses a session token and returns the actor's identity.
func (s *AuthService) ParseToken(accessToken string) (Identity, error) {
	token, err := jwt.ParseWithClaims(accessToken, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		// Ensure HMAC signing is used
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.cfg.SigningKey, nil
	})
	if err != nil {
		return Identity{}, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return Identity{}, ErrInvalidToken
	}

	return Identity{UserID: claims.UserID, Name: claims.Name, IsAdmin: claims.IsAdmin}, nil
}

// helper: hash password safely
func hashPassword(password string) (string, error) {
	if strings.TrimSpace(password) == "" {
		return "", errors.New("password is empty")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// helper: verify password against hash
func verifyPassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}

// helper: issue a signed session token for an identity
func (s *AuthService) issueToken(ident Identity) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.TokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		UserID:  ident.UserID,
		Name:    ident.Name,
		IsAdmin: ident.IsAdmin,
	})
	return token.SignedString(s.cfg.SigningKey)
}
