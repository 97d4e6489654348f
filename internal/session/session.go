// Package session is the identity gate: it issues bearer tokens at
// login, invalidates them at logout, and resolves the current actor —
// the live entity record tagged with its role — from a presented token.
//
// Credential checking is intentionally a trivial lookup. The tracker has
// never verified passwords and hardening that is out of scope here.
package session

import (
	"errors"
	"fmt"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"hosteldesk/backend/internal/config"
	"hosteldesk/backend/internal/models"
	"hosteldesk/backend/internal/storage"
)

// ErrInvalidToken covers malformed, expired and logged-out tokens.
var ErrInvalidToken = errors.New("invalid or expired session")

// TokenStore tracks which session ids are still live, so logout actually
// revokes a token instead of waiting for its expiry.
type TokenStore interface {
	Put(jti string, ttl time.Duration) error
	Exists(jti string) (bool, error)
	Delete(jti string) error
}

// Service issues and resolves sessions.
type Service struct {
	Storage *storage.Service
	Tokens  TokenStore
	secret  []byte
}

// NewService creates the gate with the given signing secret.
func NewService(store *storage.Service, tokens TokenStore, secret []byte) *Service {
	return &Service{Storage: store, Tokens: tokens, secret: secret}
}

// LoginStudent resolves the student by register number and opens a
// session for them.
func (s *Service) LoginStudent(registerNumber string) (string, models.SessionUser, error) {
	student, err := s.Storage.StudentByID(registerNumber)
	if err != nil {
		return "", models.SessionUser{}, err
	}
	user := models.SessionUser{Role: models.RoleStudent, Student: &student}
	token, err := s.issue(student.ID, models.RoleStudent)
	return token, user, err
}

// LoginWarden resolves the warden by username and opens a session.
func (s *Service) LoginWarden(username string) (string, models.SessionUser, error) {
	warden, err := s.Storage.WardenByUsername(username)
	if err != nil {
		return "", models.SessionUser{}, err
	}
	user := models.SessionUser{Role: models.RoleWarden, Warden: &warden}
	token, err := s.issue(warden.ID, models.RoleWarden)
	return token, user, err
}

// Logout revokes the session behind the token. Revoking an already-dead
// token is not an error.
func (s *Service) Logout(token string) error {
	claims, err := s.parse(token)
	if err != nil {
		return err
	}
	jti, _ := claims["jti"].(string)
	if jti == "" {
		return ErrInvalidToken
	}
	return s.Tokens.Delete(jti)
}

// Authenticate resolves the current actor from a bearer token. The
// returned record is looked up live from the canonical collection, so a
// profile edit is visible on the very next request even though the token
// predates it.
func (s *Service) Authenticate(token string) (models.SessionUser, error) {
	claims, err := s.parse(token)
	if err != nil {
		return models.SessionUser{}, err
	}

	jti, _ := claims["jti"].(string)
	sub, _ := claims["sub"].(string)
	role, _ := claims["role"].(string)
	if jti == "" || sub == "" {
		return models.SessionUser{}, ErrInvalidToken
	}

	live, err := s.Tokens.Exists(jti)
	if err != nil {
		return models.SessionUser{}, err
	}
	if !live {
		return models.SessionUser{}, ErrInvalidToken
	}

	switch models.Role(role) {
	case models.RoleStudent:
		student, err := s.Storage.StudentByID(sub)
		if err != nil {
			return models.SessionUser{}, ErrInvalidToken
		}
		return models.SessionUser{Role: models.RoleStudent, Student: &student}, nil
	case models.RoleWarden:
		warden, err := s.Storage.WardenByID(sub)
		if err != nil {
			return models.SessionUser{}, ErrInvalidToken
		}
		return models.SessionUser{Role: models.RoleWarden, Warden: &warden}, nil
	}
	return models.SessionUser{}, ErrInvalidToken
}

func (s *Service) issue(subject string, role models.Role) (string, error) {
	jti := uuid.New().String()
	claims := jwt.MapClaims{
		"sub":  subject,
		"role": string(role),
		"jti":  jti,
		"exp":  time.Now().Add(config.SessionTTL).Unix(),
		"iss":  config.SessionIssuer,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", err
	}
	if err := s.Tokens.Put(jti, config.SessionTTL); err != nil {
		return "", err
	}
	return signed, nil
}

func (s *Service) parse(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
