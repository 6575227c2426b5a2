package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/mosaops/timesheet-backend-go/internal/models"
	"github.com/mosaops/timesheet-backend-go/internal/repository"
)

// Authentication failures surfaced to clients.
var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUsernameTaken      = errors.New("username already exists")
	ErrWeakPassword       = errors.New("password must be at least 4 characters long")
	ErrShortUsername      = errors.New("username must be at least 3 characters long")
	ErrFieldsRequired     = errors.New("all fields are required")
)

// AuthService registers users and issues JWTs.
type AuthService struct {
	users    *repository.UserRepository
	secret   []byte
	tokenTTL time.Duration
}

// NewAuthService creates a new auth service
func NewAuthService(users *repository.UserRepository, secret string, tokenTTL time.Duration) *AuthService {
	return &AuthService{users: users, secret: []byte(secret), tokenTTL: tokenTTL}
}

// HashPassword hashes a password with SHA-256, hex-encoded. Kept compatible
// with the existing user table.
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// Register validates and creates a new user. Full names are stored uppercase.
func (s *AuthService) Register(ctx context.Context, username, password, fullname string) (int64, error) {
	username = strings.TrimSpace(username)
	password = strings.TrimSpace(password)
	fullname = strings.TrimSpace(fullname)

	if username == "" || password == "" || fullname == "" {
		return 0, ErrFieldsRequired
	}
	if len(password) < 4 {
		return 0, ErrWeakPassword
	}
	if len(username) < 3 {
		return 0, ErrShortUsername
	}

	taken, err := s.users.UsernameExists(ctx, username)
	if err != nil {
		return 0, err
	}
	if taken {
		return 0, ErrUsernameTaken
	}

	return s.users.CreateUser(ctx, username, HashPassword(password), strings.ToUpper(fullname))
}

// Login checks credentials and returns the user with a signed token.
func (s *AuthService) Login(ctx context.Context, username, password string) (*models.User, string, error) {
	username = strings.TrimSpace(username)
	password = strings.TrimSpace(password)
	if username == "" || password == "" {
		return nil, "", ErrInvalidCredentials
	}

	user, err := s.users.GetByCredentials(ctx, username, HashPassword(password))
	if err != nil {
		return nil, "", err
	}
	if user == nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.issueToken(user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Claims carried by issued tokens.
type Claims struct {
	UserID   int64  `json:"uid"`
	Username string `json:"username"`
	FullName string `json:"fullname"`
	jwt.RegisteredClaims
}

func (s *AuthService) issueToken(u *models.User) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:   u.ID,
		Username: u.Username,
		FullName: u.FullName,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// ParseToken validates a token and returns its claims.
func (s *AuthService) ParseToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}
