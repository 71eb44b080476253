package services

import (
	"errors"
	"log"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"tokobaju/internal/apperrors"
	"tokobaju/internal/models"
	"tokobaju/internal/repositories"
)

// dummyHash is a valid bcrypt hash compared against when the email is
// unknown, so the unknown-email and wrong-password paths cost the same.
var dummyHash = []byte("$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy")

// AuthService verifies credentials against the user store and issues
// session tokens.
type AuthService struct {
	userRepo repositories.UserRepository
	tokens   *TokenService
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repositories.UserRepository, tokens *TokenService) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

// NormalizeEmail lowercases and trims an email for lookup and storage.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register hashes the password, stores the new user and issues a token so
// registration doubles as login. The plaintext is discarded right after
// hashing. Duplicate emails surface as Conflict.
func (s *AuthService) Register(email, password, fullName string) (models.User, string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("Failed to hash password: %v", err)
		return models.User{}, "", apperrors.ErrInternal
	}

	user := models.User{
		Email:    NormalizeEmail(email),
		Password: string(hashed),
		FullName: fullName,
		Roles:    []string{models.RoleUser},
		IsActive: true,
	}
	if err := s.userRepo.Create(&user); err != nil {
		if _, ok := apperrors.IsConflict(err); ok {
			return models.User{}, "", err
		}
		log.Printf("Failed to create user: %v", err)
		return models.User{}, "", apperrors.ErrInternal
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		log.Printf("Failed to issue token: %v", err)
		return models.User{}, "", apperrors.ErrInternal
	}
	return user.Sanitized(), token, nil
}

// Login verifies the credentials and returns the user plus a fresh token.
// Unknown email and wrong password fail identically; a bcrypt comparison
// runs on both paths.
func (s *AuthService) Login(email, password string) (models.User, string, error) {
	user, err := s.userRepo.GetByEmail(NormalizeEmail(email))
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			log.Printf("Failed to look up user: %v", err)
			return models.User{}, "", apperrors.ErrInternal
		}
		bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
		return models.User{}, "", apperrors.ErrUnauthorized
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return models.User{}, "", apperrors.ErrUnauthorized
	}
	if !user.IsActive {
		return models.User{}, "", apperrors.ErrUnauthorized
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		log.Printf("Failed to issue token: %v", err)
		return models.User{}, "", apperrors.ErrInternal
	}
	return user.Sanitized(), token, nil
}

// Authenticate verifies a bearer token and re-fetches the current user so
// tokens held by since-deactivated or deleted accounts are rejected.
func (s *AuthService) Authenticate(tokenString string) (*models.User, error) {
	subjectID, err := s.tokens.Verify(tokenString)
	if err != nil {
		return nil, apperrors.ErrUnauthorized
	}
	return s.CurrentUser(subjectID)
}

// CurrentUser loads the user behind a verified subject id, rejecting
// missing and inactive accounts.
func (s *AuthService) CurrentUser(subjectID string) (*models.User, error) {
	user, err := s.userRepo.GetByID(subjectID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		log.Printf("Failed to load user %s: %v", subjectID, err)
		return nil, apperrors.ErrInternal
	}
	if !user.IsActive {
		return nil, apperrors.ErrUnauthorized
	}
	return user, nil
}

// CheckAuthStatus returns the user with a fresh token.
func (s *AuthService) CheckAuthStatus(user *models.User) (models.User, string, error) {
	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		log.Printf("Failed to issue token: %v", err)
		return models.User{}, "", apperrors.ErrInternal
	}
	return user.Sanitized(), token, nil
}
