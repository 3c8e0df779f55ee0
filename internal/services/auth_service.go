package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/thereayou/skillconnect/internal/models"
	"github.com/thereayou/skillconnect/pkg/auth"
)

var (
	ErrUserNotFound   = errors.New("user not found")
	ErrBadCredentials = errors.New("invalid username or password")
)

// ResolutionStatus tags the outcome of resolving a session token.
type ResolutionStatus int

const (
	ResolutionOk ResolutionStatus = iota
	ResolutionExpired
	ResolutionInvalid
	ResolutionNotFound
)

// Resolution is the result of ResolveToken. User is set only for
// ResolutionOk.
type Resolution struct {
	Status ResolutionStatus
	User   *models.User
}

// AuthService verifies credentials and converts them to and from
// session tokens. Token validation is stateless; nothing is stored per
// session.
type AuthService struct {
	store UserStore
	jwt   *auth.JWTManager
}

func NewAuthService(store UserStore, jwtMgr *auth.JWTManager) *AuthService {
	return &AuthService{store: store, jwt: jwtMgr}
}

// Authenticate checks a username/password pair against the store.
// Callers are expected to collapse both failure cases into one message.
func (s *AuthService) Authenticate(username, password string) (*models.User, error) {
	user, err := s.store.FindUserByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if !auth.VerifyPassword(password, user.PasswordHash) {
		return nil, ErrBadCredentials
	}
	return user, nil
}

// IssueToken signs a session token naming the user as subject, expiring
// after the configured lifetime.
func (s *AuthService) IssueToken(user *models.User) (string, error) {
	return s.jwt.Generate(user.Username)
}

// ResolveToken decodes and verifies a raw token and looks up its
// subject. Each caller decides how to translate the non-Ok tags; the
// active flag is deliberately not consulted here.
func (s *AuthService) ResolveToken(raw string) Resolution {
	claims, err := s.jwt.Verify(raw)
	if err != nil {
		if errors.Is(err, auth.ErrTokenExpired) {
			return Resolution{Status: ResolutionExpired}
		}
		return Resolution{Status: ResolutionInvalid}
	}

	user, err := s.store.FindUserByUsername(claims.Subject)
	if err != nil {
		return Resolution{Status: ResolutionNotFound}
	}
	return Resolution{Status: ResolutionOk, User: user}
}
