package application

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/grn-engineering/smartvend/backend/internal/domain"
	"github.com/grn-engineering/smartvend/backend/internal/session"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)

// Claims represents JWT claims carried by the dashboard's bearer token
type Claims struct {
	UserID  string         `json:"user_id"`
	Email   string         `json:"email"`
	Role    domain.Role    `json:"role"`
	Country domain.Country `json:"country"`
	jwt.RegisteredClaims
}

// AuthService authenticates dashboard users. Login delegates to the
// session store (which owns ordering and persistence) and issues a JWT
// for subsequent requests.
type AuthService struct {
	sessions        *session.Store
	users           domain.UserRepository
	jwtSecret       []byte
	tokenExpiration time.Duration
	issuer          string
}

// NewAuthService creates a new auth service
func NewAuthService(sessions *session.Store, users domain.UserRepository, jwtSecret, issuer string, tokenExpHours int) *AuthService {
	return &AuthService{
		sessions:        sessions,
		users:           users,
		jwtSecret:       []byte(jwtSecret),
		tokenExpiration: time.Duration(tokenExpHours) * time.Hour,
		issuer:          issuer,
	}
}

// LoginResult carries the authenticated user and their bearer token
type LoginResult struct {
	User      *domain.User `json:"user"`
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
}

// Login authenticates and issues a token. On success the user's last
// login timestamp is stamped through the user repository.
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	user, err := s.sessions.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}

	// best effort stamp; a failed write does not fail the login
	user.LastLogin = time.Now().UTC()
	_ = s.users.Update(ctx, user)

	token, expiresAt, err := s.generateToken(user)
	if err != nil {
		return nil, err
	}

	return &LoginResult{User: user, Token: token, ExpiresAt: expiresAt}, nil
}

// Logout clears the session. Idempotent.
func (s *AuthService) Logout() {
	s.sessions.Logout()
}

// CurrentUser returns the session subject, if any
func (s *AuthService) CurrentUser() (*domain.User, bool) {
	return s.sessions.CurrentUser()
}

// ValidateToken validates a bearer token and returns its claims
func (s *AuthService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return s.jwtSecret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// UserFromToken resolves the full user record behind a bearer token
func (s *AuthService) UserFromToken(ctx context.Context, tokenString string) (*domain.User, error) {
	claims, err := s.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}
	return s.users.GetByID(ctx, claims.UserID)
}

func (s *AuthService) generateToken(user *domain.User) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(s.tokenExpiration)

	claims := &Claims{
		UserID:  user.ID,
		Email:   user.Email,
		Role:    user.Role,
		Country: user.Country,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    s.issuer,
			Subject:   user.ID,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// BcryptVerifier checks passwords against stored bcrypt hashes. Used
// when the user store carries real credentials instead of the demo
// policy.
type BcryptVerifier struct{}

// Verify compares the password against the user's stored hash
func (BcryptVerifier) Verify(user *domain.User, password string) error {
	if user.PasswordHash == "" {
		return session.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return session.ErrInvalidCredentials
	}
	return nil
}

// HashPassword produces a bcrypt hash for storage alongside a user
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
