package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"hydroponics/internal/models"
	"hydroponics/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Domain errors for auth flows.
var (
	ErrInvalidPassword = errors.New("invalid password")
	ErrUserNotFound    = errors.New("user not found")
	ErrInvalidToken    = errors.New("invalid token")
)

const msgBadCredentials = "Unable to authenticate with provided credentials."

var usernamePattern = regexp.MustCompile(`^[\w.@+-]+$`)

// AuthService handles registration, tokens and the self profile.
type AuthService struct {
	authRepo repository.Authorization
	cfg      Config
}

func NewAuthService(repo repository.Authorization, cfg Config) *AuthService {
	return &AuthService{authRepo: repo, cfg: cfg.withDefaults()}
}

var (
	_ Authorization = (*AuthService)(nil)
	_ Profile       = (*AuthService)(nil)
)

// ProfileInput is a registration or profile update payload. Nil fields are
// left unchanged on partial updates.
type ProfileInput struct {
	Username *string
	Password *string
}

// SignUp validates the credentials, hashes the password and creates the user.
func (s *AuthService) SignUp(ctx context.Context, username, password string) (models.User, error) {
	v := &ValidationError{}
	s.checkUsername(v, &username, true)
	s.checkPassword(v, &password, true)
	if err := v.OrNil(); err != nil {
		return models.User{}, err
	}

	hash, err := hashPassword(password)
	if err != nil {
		return models.User{}, err
	}
	id, err := s.authRepo.Create(ctx, username, hash)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return models.User{}, duplicateUsername(err)
		}
		return models.User{}, err
	}
	return models.User{ID: id, Username: username, PasswordHash: hash}, nil
}

// Claims defines JWT claims
type Claims struct {
	jwt.RegisteredClaims
	UserID int64 `json:"user_id"`
}

// GenerateToken validates credentials and returns a signed token.
// Every credential failure carries the same client-facing message.
func (s *AuthService) GenerateToken(ctx context.Context, username, password string) (string, error) {
	if strings.TrimSpace(username) == "" || password == "" {
		return "", badCredentials(nil)
	}
	u, err := s.authRepo.GetByUsername(ctx, username)
	if err != nil {
		return "", err
	}
	if u == nil {
		return "", badCredentials(ErrUserNotFound)
	}

	if err := verifyPassword(u.PasswordHash, password); err != nil {
		return "", badCredentials(ErrInvalidPassword)
	}

	return s.issueToken(u.ID)
}

// ParseToken parses JWT and returns userID
func (s *AuthService) ParseToken(accessToken string) (int64, error) {
	token, err := jwt.ParseWithClaims(accessToken, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		// Ensure HMAC signing is used
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.SigningKey), nil
	})
	if err != nil {
		return 0, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.UserID == 0 {
		return 0, ErrInvalidToken
	}

	return claims.UserID, nil
}

// Me returns the caller's own record.
func (s *AuthService) Me(ctx context.Context, userID int64) (models.User, error) {
	u, err := s.authRepo.GetByID(ctx, userID)
	if err != nil {
		return models.User{}, err
	}
	if u == nil {
		// token outlived its user
		return models.User{}, ErrAuthenticationRequired
	}
	return *u, nil
}

// UpdateMe changes username and/or password. A full update requires both.
func (s *AuthService) UpdateMe(ctx context.Context, userID int64, in ProfileInput, partial bool) (models.User, error) {
	u, err := s.Me(ctx, userID)
	if err != nil {
		return models.User{}, err
	}

	v := &ValidationError{}
	s.checkUsername(v, in.Username, !partial)
	s.checkPassword(v, in.Password, !partial)
	if err := v.OrNil(); err != nil {
		return models.User{}, err
	}

	if in.Username != nil {
		u.Username = *in.Username
	}
	if in.Password != nil {
		if u.PasswordHash, err = hashPassword(*in.Password); err != nil {
			return models.User{}, err
		}
	}
	if err := s.authRepo.Update(ctx, u); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return models.User{}, duplicateUsername(err)
		}
		return models.User{}, err
	}
	return u, nil
}

func (s *AuthService) checkUsername(v *ValidationError, username *string, required bool) {
	checkText(v, "username", username, required, maxUsernameLength)
	if username != nil && *username != "" && !usernamePattern.MatchString(*username) {
		v.Add("username", "Enter a valid username. This value may contain only letters, numbers, and @/./+/-/_ characters.")
	}
}

const maxPasswordBytes = 72

func (s *AuthService) checkPassword(v *ValidationError, password *string, required bool) {
	if password == nil {
		if required {
			v.Add("password", msgRequired)
		}
		return
	}
	if strings.TrimSpace(*password) == "" {
		v.Add("password", msgBlank)
		return
	}
	if len([]rune(*password)) < s.cfg.MinPasswordLength {
		v.Add("password", fmt.Sprintf("Ensure this field has at least %d characters.", s.cfg.MinPasswordLength))
	}
	// bcrypt rejects longer input
	if len(*password) > maxPasswordBytes {
		v.Add("password", fmt.Sprintf("Ensure this field has no more than %d bytes.", maxPasswordBytes))
	}
}

func badCredentials(cause error) error {
	v := Invalid(NonFieldErrors, msgBadCredentials)
	v.Err = cause
	return v
}

func duplicateUsername(cause error) error {
	v := Invalid("username", "A user with that username already exists.")
	v.Err = cause
	return v
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

// issueToken signs a token for userID with the configured TTL.
func (s *AuthService) issueToken(userID int64) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.TokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		UserID: userID,
	})
	return token.SignedString([]byte(s.cfg.SigningKey))
}
